// File: /routes/routes.go
package routes

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"safarplan-api/catalog"
	"safarplan-api/config"
	"safarplan-api/controllers"
	"safarplan-api/middleware"
	"safarplan-api/services"
)

// SetupCORS builds the CORS middleware from the configured frontend origins.
func SetupCORS(cfg *config.Config) gin.HandlerFunc {
	allowedOrigins := []string{"http://localhost:5173", "http://localhost:3000"}
	if cfg.FrontendURL != "" {
		for _, u := range strings.Split(cfg.FrontendURL, ",") {
			u = strings.TrimSpace(u)
			if u != "" {
				allowedOrigins = append(allowedOrigins, u)
			}
		}
	}

	return cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	})
}

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, cat *catalog.Catalog, emailService *services.EmailService) {
	// Controllers
	authController := controllers.NewAuthController(db, cfg.JWTSecret, emailService)
	tripController := controllers.NewTripController(db, cat)
	catalogController := controllers.NewCatalogController(cat)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	api := r.Group("/api")

	// Auth routes (public)
	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)
	}

	// Catalog routes (public reference data)
	destinations := api.Group("/destinations")
	{
		destinations.GET("/", catalogController.GetDestinations)
		destinations.GET("/:id/options", catalogController.GetDestinationOptions)
	}

	// Protected routes
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		trips := protected.Group("/trips")
		{
			trips.POST("/optimize",
				middleware.RateLimit(cfg.OptimizeRatePerMinute, cfg.OptimizeRateBurst),
				tripController.OptimizeTrip)
			trips.GET("/history", tripController.GetHistory)
			trips.GET("/:id", tripController.GetTrip)
			trips.POST("/:id/save", tripController.SaveTrip)
			trips.DELETE("/:id", tripController.DeleteTrip)
			trips.GET("/:id/pdf", tripController.DownloadTripPDF)
		}
	}
}
