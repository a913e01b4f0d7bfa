package controllers

import (
	"log"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
	"travelbharat/config"
	"travelbharat/models"
	"travelbharat/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type StateSummary struct {
	State string  `json:"state"`
	Count int     `json:"count"`
	Image *string `json:"image"`
}

type CitySummary struct {
	City  string `json:"city"`
	Count int    `json:"count"`
}

// sortColumns whitelists the sort keys the client may send. Keys mirror the
// JSON field names; a leading "-" means descending.
var sortColumns = map[string]string{
	"averageRating": "average_rating",
	"totalReviews":  "total_reviews",
	"createdAt":     "created_at",
	"updatedAt":     "updated_at",
	"views":         "views",
	"name":          "name",
}

func sortExpr(raw, fallback string) string {
	if raw == "" {
		raw = fallback
	}
	direction := "ASC"
	if strings.HasPrefix(raw, "-") {
		direction = "DESC"
		raw = strings.TrimPrefix(raw, "-")
	}
	column, ok := sortColumns[raw]
	if !ok {
		return "average_rating DESC"
	}
	return column + " " + direction
}

func GetAllPlaces(c *gin.Context) {
	cacheKey := "places:all"

	rdb, err := config.ConnectRedis()
	if err == nil {
		var cached []models.Place
		if err := services.GetFromRedis(config.Ctx, rdb, cacheKey, &cached); err == nil && len(cached) > 0 {
			c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Places fetched successfully", "data": cached})
			return
		}
	}

	var places []models.Place
	if err := config.DB.Order("id").Find(&places).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Failed to fetch places", "error": err.Error()})
		return
	}

	if rdb != nil {
		if err := services.SetToRedis(config.Ctx, rdb, cacheKey, places, time.Hour); err != nil {
			log.Printf("Failed to cache places: %v", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Places fetched successfully", "data": places})
}

func GetPlaceDetail(c *gin.Context) {
	id := c.Param("id")
	var place models.Place
	if err := config.DB.First(&place, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 0, "mess": "Place not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Place fetched successfully", "data": place})
}

func GetPlacesByState(c *gin.Context) {
	state, _ := url.QueryUnescape(c.Param("state"))

	var places []models.Place
	if err := config.DB.Where("state = ?", state).Order("id").Find(&places).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Failed to fetch places", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Places fetched successfully", "data": places})
}

func GetPlacesByCategory(c *gin.Context) {
	pattern := services.CategoryFilterPattern(c.Param("category"))
	page, limit := ParsePagination(c, defaultPageLimit)

	var total int64
	if err := config.DB.Model(&models.Place{}).Where("category ~* ?", pattern).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Failed to fetch places", "error": err.Error()})
		return
	}

	places := make([]models.Place, 0)
	if err := config.DB.Where("category ~* ?", pattern).
		Order("average_rating DESC").
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

func SearchPlaces(c *gin.Context) {
	query := c.Query("query")
	category := c.Query("category")
	state := c.Query("state")
	city := c.Query("city")
	minRating := c.Query("minRating")
	page, limit := ParsePagination(c, defaultPageLimit)

	tx := config.DB.Model(&models.Place{})

	if query != "" {
		pattern := "%" + query + "%"
		tx = tx.Where("name ILIKE ? OR state ILIKE ? OR city ILIKE ? OR category ILIKE ?",
			pattern, pattern, pattern, pattern)
	}
	if category != "" {
		tx = tx.Where("category ~* ?", services.CategoryFilterPattern(category))
	}
	if state != "" {
		tx = tx.Where("state = ?", state)
	}
	if city != "" {
		tx = tx.Where("city = ?", city)
	}
	if minRating != "" {
		if parsed, err := strconv.ParseFloat(minRating, 64); err == nil {
			tx = tx.Where("average_rating >= ?", parsed)
		}
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Search failed", "error": err.Error()})
		return
	}

	places := make([]models.Place, 0)
	if err := tx.Order(sortExpr(c.Query("sort"), "-averageRating")).
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&places).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Search failed", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":       1,
		"mess":       "Search completed successfully",
		"data":       places,
		"pagination": paginationEnvelope(total, page, limit),
	})
}

// GetFeaturedPlaces lists top rated places; only places with at least one
// review qualify.
func GetFeaturedPlaces(c *gin.Context) {
	limit := 10
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	places := make([]models.Place, 0)
	if err := config.DB.Where("total_reviews >= ?", 1).
		Order("average_rating DESC").
		Order("total_reviews DESC").
		Limit(limit).
		Find(&places).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Failed to fetch featured places", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Featured places fetched successfully", "data": places})
}

// GetStates aggregates distinct states with place counts and a representative
// image: the first non-empty image found across the state's places in storage
// order.
func GetStates(c *gin.Context) {
	cacheKey := "places:states"

	rdb, err := config.ConnectRedis()
	if err == nil {
		var cached []StateSummary
		if err := services.GetFromRedis(config.Ctx, rdb, cacheKey, &cached); err == nil && len(cached) > 0 {
			c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "States fetched successfully", "data": cached})
			return
		}
	}

	var places []models.Place
	if err := config.DB.Order("id").Find(&places).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Failed to fetch states", "error": err.Error()})
		return
	}

	counts := make(map[string]int)
	images := make(map[string]*string)
	for _, place := range places {
		counts[place.State]++
		if images[place.State] == nil {
			for _, image := range place.Images {
				if image != "" {
					cover := image
					images[place.State] = &cover
					break
				}
			}
		}
	}

	states := make([]StateSummary, 0, len(counts))
	for state, count := range counts {
		states = append(states, StateSummary{State: state, Count: count, Image: images[state]})
	}
	sort.Slice(states, func(i, j int) bool {
		return states[i].State < states[j].State
	})

	if rdb != nil {
		if err := services.SetToRedis(config.Ctx, rdb, cacheKey, states, time.Hour); err != nil {
			log.Printf("Failed to cache states: %v", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "States fetched successfully", "data": states})
}

func GetCitiesByState(c *gin.Context) {
	state, _ := url.QueryUnescape(c.Param("state"))

	cities := make([]CitySummary, 0)
	if err := config.DB.Model(&models.Place{}).
		Select("city, COUNT(*) AS count").
		Where("state = ?", state).
		Group("city").
		Order("city ASC").
		Scan(&cities).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Failed to fetch cities", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Cities fetched successfully", "data": cities})
}

// IncrementViews bumps the view counter in one atomic update. It does not
// touch ratings and is not read back by the caller.
func IncrementViews(c *gin.Context) {
	id := c.Param("id")

	if err := config.DB.Model(&models.Place{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Failed to update view count", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "View count updated"})
}

func invalidatePlaceCaches() {
	rdb, err := config.ConnectRedis()
	if err != nil {
		return
	}
	_ = services.DeleteFromRedis(config.Ctx, rdb, "places:all")
	_ = services.DeleteFromRedis(config.Ctx, rdb, "places:states")
}
