package services

import "testing"

func TestComputeAverageRating(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		want    float64
	}{
		{"no reviews", nil, 0},
		{"empty slice", []int{}, 0},
		{"single review", []int{5}, 5},
		{"exact mean", []int{4, 5}, 4.5},
		{"all same", []int{3, 3, 3}, 3},
		{"rounds down", []int{3, 3, 4}, 3.3},  // 3.333...
		{"rounds up", []int{3, 4, 4}, 3.7},    // 3.666...
		{"half rounds up", []int{3, 3, 3, 4}, 3.3}, // 3.25
		{"one to five", []int{1, 2, 3, 4, 5}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeAverageRating(tt.ratings); got != tt.want {
				t.Errorf("ComputeAverageRating(%v) = %v, want %v", tt.ratings, got, tt.want)
			}
		})
	}
}

func TestComputeAverageRatingBounds(t *testing.T) {
	ratings := []int{1, 1, 1, 1}
	if got := ComputeAverageRating(ratings); got != 1 {
		t.Errorf("minimum ratings should average 1, got %v", got)
	}

	ratings = []int{5, 5, 5, 5, 5}
	if got := ComputeAverageRating(ratings); got != 5 {
		t.Errorf("maximum ratings should average 5, got %v", got)
	}
}
