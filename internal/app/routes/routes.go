package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mergington/highschool/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	activityController *controllers.ActivityController,
) {
	// The landing page redirects to the static web UI
	router.GET("/", activityController.Root)

	activities := router.Group("/activities")
	{
		activities.GET("", activityController.GetAllActivities)
		activities.POST("/:name/signup", activityController.SignUp)
		activities.DELETE("/:name/unregister", activityController.Unregister)
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
