package controllers

import (
	"errors"
	"net/http"
	"time"
	"travelbharat/config"
	middlewares "travelbharat/middleware"
	"travelbharat/models"
	"travelbharat/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReviewInput struct {
	PlaceID  uint   `json:"placeId" binding:"required"`
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Comment  string `json:"comment" binding:"required,max=1000"`
	Language string `json:"language" binding:"omitempty,oneof=en hi ta"`
}

type ReviewUpdateInput struct {
	Rating   int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Comment  string `json:"comment" binding:"omitempty,max=1000"`
	Language string `json:"language" binding:"omitempty,oneof=en hi ta"`
}

type ReviewResponse struct {
	ID        uint      `json:"id"`
	PlaceID   uint      `json:"placeId"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Language  string    `json:"language"`
	UserName  string    `json:"userName"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

var reviewSortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"rating":    "rating",
}

func reviewSortExpr(raw string) string {
	direction := "DESC"
	key := raw
	if key == "" {
		key = "-createdAt"
	}
	if key[0] == '-' {
		key = key[1:]
	} else {
		direction = "ASC"
	}
	column, ok := reviewSortColumns[key]
	if !ok {
		return "created_at DESC"
	}
	return column + " " + direction
}

func toReviewResponse(review models.Review) ReviewResponse {
	return ReviewResponse{
		ID:        review.ID,
		PlaceID:   review.PlaceID,
		Rating:    review.Rating,
		Comment:   review.Comment,
		Language:  review.Language,
		UserName:  review.UserName,
		CreatedAt: review.CreatedAt,
		UpdatedAt: review.UpdatedAt,
	}
}

func CreateReview(c *gin.Context) {
	claims, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"code": 0, "mess": "Invalid token"})
		return
	}

	var input ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": err.Error()})
		return
	}

	var place models.Place
	if err := config.DB.First(&place, input.PlaceID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 0, "mess": "Place not found"})
		return
	}

	var existing models.Review
	if err := config.DB.Where("user_id = ? AND place_id = ?", claims.UserID, input.PlaceID).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": "You have already reviewed this place. Please update your existing review."})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": err.Error()})
		return
	}

	language := input.Language
	if language == "" {
		language = "en"
	}

	review := models.Review{
		UserID:   claims.UserID,
		PlaceID:  input.PlaceID,
		Rating:   input.Rating,
		Comment:  input.Comment,
		Language: language,
		UserName: claims.Username,
	}

	if err := config.DB.Create(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Failed to create review", "error": err.Error()})
		return
	}

	if err := services.UpdatePlaceRating(review.PlaceID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Failed to update place rating"})
		return
	}

	invalidatePlaceCaches()

	c.JSON(http.StatusCreated, gin.H{"code": 1, "mess": "Review created successfully", "data": toReviewResponse(review)})
}

func GetReviewsByPlace(c *gin.Context) {
	placeID := c.Param("placeId")
	page, limit := ParsePagination(c, 10)

	var total int64
	if err := config.DB.Model(&models.Review{}).Where("place_id = ?", placeID).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Failed to fetch reviews", "error": err.Error()})
		return
	}

	reviews := make([]models.Review, 0)
	if err := config.DB.Where("place_id = ?", placeID).
		Order(reviewSortExpr(c.Query("sort"))).
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Failed to fetch reviews", "error": err.Error()})
		return
	}

	reviewResponses := make([]ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		reviewResponses = append(reviewResponses, toReviewResponse(review))
	}

	c.JSON(http.StatusOK, gin.H{
		"code":       1,
		"mess":       "Reviews fetched successfully",
		"data":       reviewResponses,
		"pagination": paginationEnvelope(total, page, limit),
	})
}

func GetUserReviews(c *gin.Context) {
	claims, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"code": 0, "mess": "Invalid token"})
		return
	}

	reviews := make([]models.Review, 0)
	if err := config.DB.Preload("Place").
		Where("user_id = ?", claims.UserID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Failed to fetch reviews", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Reviews fetched successfully", "data": reviews})
}

func UpdateReview(c *gin.Context) {
	claims, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"code": 0, "mess": "Invalid token"})
		return
	}

	var input ReviewUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": err.Error()})
		return
	}

	var review models.Review
	if err := config.DB.First(&review, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 0, "mess": "Review not found"})
		return
	}

	if review.UserID != claims.UserID {
		c.JSON(http.StatusForbidden, gin.H{"code": 0, "mess": "Not authorized to update this review"})
		return
	}

	// Partial update: only supplied fields are replaced.
	if input.Rating != 0 {
		review.Rating = input.Rating
	}
	if input.Comment != "" {
		review.Comment = input.Comment
	}
	if input.Language != "" {
		review.Language = input.Language
	}

	if err := config.DB.Save(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Failed to update review", "error": err.Error()})
		return
	}

	if err := services.UpdatePlaceRating(review.PlaceID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Failed to update place rating"})
		return
	}

	invalidatePlaceCaches()

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Review updated successfully", "data": toReviewResponse(review)})
}

func DeleteReview(c *gin.Context) {
	claims, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"code": 0, "mess": "Invalid token"})
		return
	}

	var review models.Review
	if err := config.DB.First(&review, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 0, "mess": "Review not found"})
		return
	}

	if review.UserID != claims.UserID && claims.Role != "admin" {
		c.JSON(http.StatusForbidden, gin.H{"code": 0, "mess": "Not authorized to delete this review"})
		return
	}

	placeID := review.PlaceID
	if err := config.DB.Delete(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Failed to delete review", "error": err.Error()})
		return
	}

	if err := services.UpdatePlaceRating(placeID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Failed to update place rating"})
		return
	}

	invalidatePlaceCaches()

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Review deleted successfully"})
}

// GetAllReviews lists every review for the admin back-office.
func GetAllReviews(c *gin.Context) {
	page, limit := ParsePagination(c, defaultPageLimit)

	var total int64
	if err := config.DB.Model(&models.Review{}).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Failed to fetch reviews", "error": err.Error()})
		return
	}

	reviews := make([]models.Review, 0)
	if err := config.DB.Preload("Place").Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Failed to fetch reviews", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":       1,
		"mess":       "Reviews fetched successfully",
		"data":       reviews,
		"pagination": paginationEnvelope(total, page, limit),
	})
}
