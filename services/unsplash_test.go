package services

import (
	"strings"
	"testing"
)

func TestGetCoverURLFromResponse(t *testing.T) {
	body := `{"results":[{"urls":{"regular":"https://images.unsplash.com/photo-1"}}]}`

	url, err := GetCoverURLFromResponse(strings.NewReader(body))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "https://images.unsplash.com/photo-1" {
		t.Errorf("url = %q", url)
	}
}

func TestGetCoverURLFromResponseEmpty(t *testing.T) {
	if _, err := GetCoverURLFromResponse(strings.NewReader(`{"results":[]}`)); err == nil {
		t.Error("empty result set should return an error")
	}
}

func TestGetCoverURLFromResponseInvalid(t *testing.T) {
	if _, err := GetCoverURLFromResponse(strings.NewReader("not json")); err == nil {
		t.Error("invalid body should return an error")
	}
}
