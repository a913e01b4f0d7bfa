package routes

import (
	"context"
	"net/http"
	"time"
	"travelbharat/controllers"
	middlewares "travelbharat/middleware"

	"github.com/gin-gonic/gin"

	"github.com/redis/go-redis/v9"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary) {

	v1 := router.Group("/api/v1")
	v1.Use(middlewares.RateLimitMiddleware(redisCli, "api", 100, 15*time.Minute))

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "TravelBharat API is running"})
	})

	auth := v1.Group("/auth")
	auth.Use(middlewares.RateLimitMiddleware(redisCli, "auth", 5, 15*time.Minute))
	auth.POST("/register", controllers.RegisterUser)
	auth.POST("/login", controllers.Login)
	auth.POST("/google", controllers.AuthGoogle)

	// Specific place routes go before the parameterized ones.
	v1.GET("/places/search", controllers.SearchPlaces)
	v1.GET("/places/featured", controllers.GetFeaturedPlaces)
	v1.GET("/places/states", controllers.GetStates)
	v1.GET("/places/category/:category", controllers.GetPlacesByCategory)
	v1.GET("/places/state/:state", controllers.GetPlacesByState)
	v1.GET("/places/cities/:state", controllers.GetCitiesByState)
	v1.GET("/places", controllers.GetAllPlaces)
	v1.GET("/places/:id", controllers.GetPlaceDetail)
	v1.POST("/places/:id/view", controllers.IncrementViews)

	v1.GET("/reviews/place/:placeId", controllers.GetReviewsByPlace)
	v1.GET("/reviews/all", middlewares.AuthMiddleware("admin"), controllers.GetAllReviews)
	v1.GET("/reviews/my-reviews", middlewares.AuthMiddleware("user", "admin"), controllers.GetUserReviews)
	v1.POST("/reviews", middlewares.AuthMiddleware("user", "admin"), controllers.CreateReview)
	v1.PUT("/reviews/:id", middlewares.AuthMiddleware("user", "admin"), controllers.UpdateReview)
	v1.DELETE("/reviews/:id", middlewares.AuthMiddleware("user", "admin"), controllers.DeleteReview)

	admin := v1.Group("/admin")
	admin.Use(middlewares.AuthMiddleware("admin"))
	admin.GET("/stats", controllers.GetStats)
	admin.GET("/places", controllers.GetAllPlacesAdmin)
	admin.POST("/places", controllers.CreatePlace)
	admin.PUT("/places/:id", controllers.UpdatePlace)
	admin.DELETE("/places/:id", controllers.DeletePlace)
	admin.GET("/users", controllers.GetAllUsers)
	admin.PUT("/users/role", controllers.UpdateUserRole)

	admin.POST("/img/multi-upload", func(c *gin.Context) {
		form, er := c.MultipartForm()
		if er != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": "No file provided"})
			return
		}
		files := form.File["files"]
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": "No file provided"})
			return
		}

		var urls []string
		for _, file := range files {
			src, err := file.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": "Failed to open file"})
				return
			}
			defer src.Close()

			ctx := context.Background()
			resp, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "places"})
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Upload failed"})
				return
			}
			urls = append(urls, resp.SecureURL)
		}

		c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Upload successful", "urls": urls})
	})

	admin.POST("/img/upload", func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": "No file provided"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": "Failed to open file"})
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "places"})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Upload failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Upload successful", "url": resp.SecureURL})
	})
}
