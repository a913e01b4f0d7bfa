package services

import (
	"math"
	"travelbharat/config"
	"travelbharat/models"

	"gorm.io/gorm"
)

// ComputeAverageRating returns the mean of the given ratings rounded half-up
// to one decimal place. An empty slice yields 0.
func ComputeAverageRating(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}

	sum := 0
	for _, rating := range ratings {
		sum += rating
	}

	average := float64(sum) / float64(len(ratings))
	return math.Floor(average*10+0.5) / 10
}

// UpdatePlaceRating recomputes averageRating and totalReviews for a place from
// its current review set and writes the result back. The read and the
// write-back run in one transaction scoped to the place, so a crash cannot
// leave a half-applied update; between concurrent writers the last
// recomputation wins.
func UpdatePlaceRating(placeID uint) error {
	return config.DB.Transaction(func(tx *gorm.DB) error {
		var ratings []int
		if err := tx.Model(&models.Review{}).Where("place_id = ?", placeID).Pluck("rating", &ratings).Error; err != nil {
			return err
		}

		return tx.Model(&models.Place{}).Where("id = ?", placeID).Updates(map[string]interface{}{
			"average_rating": ComputeAverageRating(ratings),
			"total_reviews":  len(ratings),
		}).Error
	})
}
