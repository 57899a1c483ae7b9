package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"alcyxob/exercise-tracker/internal/service"
)

// SetupRoutes wires middleware, the static demo page, and the exercise API
// onto the given engine.
func SetupRoutes(router *gin.Engine, logger zerolog.Logger, trackerService service.TrackerService) {
	trackerHandler := NewTrackerHandler(trackerService)

	router.Use(RequestIDMiddleware())
	router.Use(LoggerMiddleware(logger))
	router.Use(gin.Recovery())

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Demo page with the new-user / add-exercise forms.
	router.StaticFile("/", "./public/index.html")

	exerciseGroup := router.Group("/api/exercise")
	{
		exerciseGroup.POST("/new-user", trackerHandler.NewUser)
		exerciseGroup.GET("/users", trackerHandler.ListUsers)
		exerciseGroup.POST("/add", trackerHandler.AddExercise)
		exerciseGroup.GET("/log", trackerHandler.GetLog)
	}

	router.NoRoute(func(c *gin.Context) {
		abortWithError(c, http.StatusNotFound, "not found")
	})
}
