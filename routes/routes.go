package routes

import (
	"performance-review-api/controllers"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "ok",
				"message": "Performance Review API is running",
			})
		})

		// Staff and organization chart
		staff := v1.Group("/staff")
		{
			staff.GET("", controllers.GetStaffMembers)
			staff.GET("/:id", controllers.GetStaffMember)
			staff.POST("", controllers.CreateStaffMember)
			staff.PUT("/:id", controllers.UpdateStaffMember)
		}
		v1.GET("/org-chart", controllers.GetOrgChart)

		// Review templates
		templates := v1.Group("/templates")
		{
			templates.GET("", controllers.GetTemplates)
			templates.GET("/:id", controllers.GetTemplate)
			templates.POST("", controllers.CreateTemplate)
			templates.PUT("/:id", controllers.UpdateTemplate)
		}

		// Reviews and responses
		reviews := v1.Group("/reviews")
		{
			reviews.GET("", controllers.GetReviews)
			reviews.GET("/:id", controllers.GetReview)
			reviews.POST("", controllers.CreateReview)
			reviews.GET("/:id/questions/:role", controllers.GetReviewQuestions)
			reviews.POST("/:id/responses/:role", controllers.SubmitResponses)
		}

		// Dashboard
		v1.GET("/dashboard/stats", controllers.GetDashboardStats)
	}
}
