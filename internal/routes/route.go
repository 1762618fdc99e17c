package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/evently-app/server/internal/container"
	"github.com/evently-app/server/internal/handlers"
	"github.com/evently-app/server/internal/middleware"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Add middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	// API version 1
	v1 := r.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "OK",
				"service": "evently-api",
			})
		})
	}

	eventRoutes := v1.Group("/events")
	{
		eventRoutes.GET("", handlers.ListEvents(container.EventService))
		eventRoutes.POST("", handlers.CreateEvent(container.EventService))
		eventRoutes.GET("/:id", handlers.GetEvent(container.EventService))
		eventRoutes.POST("/:id/favorites", handlers.AddFavorite(container.EventService))
		eventRoutes.DELETE("/:id/favorites", handlers.RemoveFavorite(container.EventService))
	}

	return r
}
