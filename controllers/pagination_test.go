package controllers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func testContext(t *testing.T, url string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", url, nil)
	return c
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		url       string
		wantPage  int
		wantLimit int
	}{
		{"/places", 1, 20},
		{"/places?page=3&limit=5", 3, 5},
		{"/places?page=0", 1, 20},
		{"/places?page=-2&limit=-1", 1, 20},
		{"/places?page=abc&limit=xyz", 1, 20},
		{"/places?limit=100", 1, 100},
	}

	for _, tt := range tests {
		c := testContext(t, tt.url)
		page, limit := ParsePagination(c, defaultPageLimit)
		if page != tt.wantPage || limit != tt.wantLimit {
			t.Errorf("ParsePagination(%q) = (%d, %d), want (%d, %d)", tt.url, page, limit, tt.wantPage, tt.wantLimit)
		}
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total int64
		limit int
		want  int
	}{
		{0, 20, 0},
		{1, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
		{100, 10, 10},
		{101, 10, 11},
		{5, 0, 0},
	}

	for _, tt := range tests {
		if got := TotalPages(tt.total, tt.limit); got != tt.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.total, tt.limit, got, tt.want)
		}
	}
}

func TestPaginationEnvelope(t *testing.T) {
	envelope := paginationEnvelope(45, 2, 20)

	if envelope["total"] != int64(45) {
		t.Errorf("total = %v, want 45", envelope["total"])
	}
	if envelope["page"] != 2 {
		t.Errorf("page = %v, want 2", envelope["page"])
	}
	if envelope["pages"] != 3 {
		t.Errorf("pages = %v, want 3", envelope["pages"])
	}
}

func TestSortExpr(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"", "average_rating DESC"},
		{"-averageRating", "average_rating DESC"},
		{"averageRating", "average_rating ASC"},
		{"-createdAt", "created_at DESC"},
		{"name", "name ASC"},
		{"views", "views ASC"},
		{"-totalReviews", "total_reviews DESC"},
		{"drop table", "average_rating DESC"}, // unknown keys fall back
		{"-password", "average_rating DESC"},
	}

	for _, tt := range tests {
		if got := sortExpr(tt.raw, "-averageRating"); got != tt.want {
			t.Errorf("sortExpr(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestReviewSortExpr(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"", "created_at DESC"},
		{"-createdAt", "created_at DESC"},
		{"rating", "rating ASC"},
		{"-rating", "rating DESC"},
		{"bogus", "created_at DESC"},
	}

	for _, tt := range tests {
		if got := reviewSortExpr(tt.raw); got != tt.want {
			t.Errorf("reviewSortExpr(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}
