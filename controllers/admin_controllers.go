package controllers

import (
	"log"
	"net/http"
	"travelbharat/config"
	"travelbharat/models"
	"travelbharat/services"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type PlaceInput struct {
	Name              string   `json:"name" binding:"required"`
	NameHi            string   `json:"name_hi"`
	NameTa            string   `json:"name_ta"`
	State             string   `json:"state" binding:"required"`
	City              string   `json:"city" binding:"required"`
	Category          string   `json:"category" binding:"required"`
	Description       string   `json:"description" binding:"required"`
	DescriptionHi     string   `json:"description_hi"`
	DescriptionTa     string   `json:"description_ta"`
	BestTimeToVisit   string   `json:"bestTimeToVisit" binding:"required"`
	Location          string   `json:"location"`
	Images            []string `json:"images"`
	EntryFees         string   `json:"entryFees"`
	Timings           string   `json:"timings"`
	NearbyAttractions []string `json:"nearbyAttractions"`
}

type PlaceUpdateInput struct {
	Name              string   `json:"name"`
	NameHi            string   `json:"name_hi"`
	NameTa            string   `json:"name_ta"`
	State             string   `json:"state"`
	City              string   `json:"city"`
	Category          string   `json:"category"`
	Description       string   `json:"description"`
	DescriptionHi     string   `json:"description_hi"`
	DescriptionTa     string   `json:"description_ta"`
	BestTimeToVisit   string   `json:"bestTimeToVisit"`
	Location          string   `json:"location"`
	Images            []string `json:"images"`
	EntryFees         string   `json:"entryFees"`
	Timings           string   `json:"timings"`
	NearbyAttractions []string `json:"nearbyAttractions"`
}

type UserRoleInput struct {
	UserID uint   `json:"userId" binding:"required"`
	Role   string `json:"role" binding:"required"`
}

func CreatePlace(c *gin.Context) {
	var input PlaceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": err.Error()})
		return
	}

	place := models.Place{
		Name:              input.Name,
		NameHi:            input.NameHi,
		NameTa:            input.NameTa,
		State:             input.State,
		City:              input.City,
		Category:          services.NormalizeCategory(input.Category),
		Description:       input.Description,
		DescriptionHi:     input.DescriptionHi,
		DescriptionTa:     input.DescriptionTa,
		BestTimeToVisit:   input.BestTimeToVisit,
		Location:          input.Location,
		Images:            pq.StringArray(input.Images),
		EntryFees:         input.EntryFees,
		Timings:           input.Timings,
		NearbyAttractions: pq.StringArray(input.NearbyAttractions),
	}

	// Best-effort cover enrichment; a failed lookup never blocks creation.
	if len(place.Images) == 0 {
		if cover, err := services.FetchCoverImage(place.Name); err != nil {
			log.Printf("Cover fetch failed for %q: %v", place.Name, err)
		} else {
			place.Images = pq.StringArray{cover}
		}
	}

	if err := config.DB.Create(&place).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Failed to create place", "error": err.Error()})
		return
	}

	invalidatePlaceCaches()

	c.JSON(http.StatusCreated, gin.H{"code": 1, "mess": "Place created successfully", "data": place})
}

func UpdatePlace(c *gin.Context) {
	var input PlaceUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": err.Error()})
		return
	}

	var place models.Place
	if err := config.DB.First(&place, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 0, "mess": "Place not found"})
		return
	}

	if input.Name != "" {
		place.Name = input.Name
	}
	if input.NameHi != "" {
		place.NameHi = input.NameHi
	}
	if input.NameTa != "" {
		place.NameTa = input.NameTa
	}
	if input.State != "" {
		place.State = input.State
	}
	if input.City != "" {
		place.City = input.City
	}
	if input.Category != "" {
		place.Category = services.NormalizeCategory(input.Category)
	}
	if input.Description != "" {
		place.Description = input.Description
	}
	if input.DescriptionHi != "" {
		place.DescriptionHi = input.DescriptionHi
	}
	if input.DescriptionTa != "" {
		place.DescriptionTa = input.DescriptionTa
	}
	if input.BestTimeToVisit != "" {
		place.BestTimeToVisit = input.BestTimeToVisit
	}
	if input.Location != "" {
		place.Location = input.Location
	}
	if input.Images != nil {
		place.Images = pq.StringArray(input.Images)
	}
	if input.EntryFees != "" {
		place.EntryFees = input.EntryFees
	}
	if input.Timings != "" {
		place.Timings = input.Timings
	}
	if input.NearbyAttractions != nil {
		place.NearbyAttractions = pq.StringArray(input.NearbyAttractions)
	}

	if err := config.DB.Save(&place).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Failed to update place", "error": err.Error()})
		return
	}

	invalidatePlaceCaches()

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Place updated successfully", "data": place})
}

// DeletePlace removes a place together with all of its reviews; the store has
// no referential integrity of its own.
func DeletePlace(c *gin.Context) {
	var place models.Place
	if err := config.DB.First(&place, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 0, "mess": "Place not found"})
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("place_id = ?", place.ID).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		return tx.Delete(&place).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Failed to delete place", "error": err.Error()})
		return
	}

	invalidatePlaceCaches()

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Place deleted successfully"})
}

// GetAllPlacesAdmin lists places for the back-office, newest first, with
// optional search/category/state filters.
func GetAllPlacesAdmin(c *gin.Context) {
	page, limit := ParsePagination(c, defaultPageLimit)

	tx := config.DB.Model(&models.Place{})

	if search := c.Query("search"); search != "" {
		pattern := "%" + search + "%"
		tx = tx.Where("name ILIKE ? OR state ILIKE ? OR city ILIKE ?", pattern, pattern, pattern)
	}
	if category := c.Query("category"); category != "" {
		tx = tx.Where("category ~* ?", services.CategoryFilterPattern(category))
	}
	if state := c.Query("state"); state != "" {
		tx = tx.Where("state = ?", state)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Failed to fetch places", "error": err.Error()})
		return
	}

	places := make([]models.Place, 0)
	if err := tx.Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&places).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Failed to fetch places", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":       1,
		"mess":       "Places fetched successfully",
		"data":       places,
		"pagination": paginationEnvelope(total, page, limit),
	})
}

type categoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type stateCount struct {
	State string `json:"state"`
	Count int    `json:"count"`
}

// GetStats aggregates the dashboard numbers for the admin overview page.
func GetStats(c *gin.Context) {
	var totalPlaces, totalUsers, totalReviews int64
	if err := config.DB.Model(&models.Place{}).Count(&totalPlaces).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": err.Error()})
		return
	}
	if err := config.DB.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": err.Error()})
		return
	}
	if err := config.DB.Model(&models.Review{}).Count(&totalReviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": err.Error()})
		return
	}

	var totalViews int64
	if err := config.DB.Model(&models.Place{}).Select("COALESCE(SUM(views), 0)").Scan(&totalViews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": err.Error()})
		return
	}

	recentPlaces := make([]models.Place, 0)
	if err := config.DB.Select("id", "name", "state", "created_at").
		Order("created_at DESC").Limit(5).Find(&recentPlaces).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": err.Error()})
		return
	}

	recentReviews := make([]models.Review, 0)
	if err := config.DB.Preload("Place").Preload("User").
		Order("created_at DESC").Limit(5).Find(&recentReviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": err.Error()})
		return
	}

	categoryStats := make([]categoryCount, 0)
	if err := config.DB.Model(&models.Place{}).
		Select("category, COUNT(*) AS count").
		Group("category").
		Order("count DESC").
		Scan(&categoryStats).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": err.Error()})
		return
	}

	stateStats := make([]stateCount, 0)
	if err := config.DB.Model(&models.Place{}).
		Select("state, COUNT(*) AS count").
		Group("state").
		Order("count DESC").
		Limit(10).
		Scan(&stateStats).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": err.Error()})
		return
	}

	topRated := make([]models.Place, 0)
	if err := config.DB.Select("id", "name", "state", "average_rating", "total_reviews").
		Where("total_reviews >= ?", 1).
		Order("average_rating DESC").
		Limit(5).
		Find(&topRated).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Stats fetched successfully", "data": gin.H{
		"overview": gin.H{
			"totalPlaces":  totalPlaces,
			"totalUsers":   totalUsers,
			"totalReviews": totalReviews,
			"totalViews":   totalViews,
		},
		"recentActivity": gin.H{
			"places":  recentPlaces,
			"reviews": recentReviews,
		},
		"analytics": gin.H{
			"categoryDistribution": categoryStats,
			"stateDistribution":    stateStats,
			"topRatedPlaces":       topRated,
		},
	}})
}

func GetAllUsers(c *gin.Context) {
	page, limit := ParsePagination(c, defaultPageLimit)

	var total int64
	if err := config.DB.Model(&models.User{}).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Failed to fetch users", "error": err.Error()})
		return
	}

	users := make([]models.User, 0)
	if err := config.DB.Order("id DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Failed to fetch users", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":       1,
		"mess":       "Users fetched successfully",
		"data":       users,
		"pagination": paginationEnvelope(total, page, limit),
	})
}

func UpdateUserRole(c *gin.Context) {
	var input UserRoleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": err.Error()})
		return
	}

	if input.Role != "user" && input.Role != "admin" {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": "Invalid role"})
		return
	}

	var user models.User
	if err := config.DB.First(&user, input.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 0, "mess": "User not found"})
		return
	}

	user.Role = input.Role
	if err := config.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Failed to update user role", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "User role updated successfully", "data": user})
}
