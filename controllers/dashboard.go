package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"performance-review-api/config"
	"performance-review-api/models"
)

// GetDashboardStats returns dashboard statistics
func GetDashboardStats(c *gin.Context) {
	stats := make(map[string]interface{})

	var staffCount int64
	config.DB.Model(&models.Staff{}).Count(&staffCount)

	var templateCount int64
	config.DB.Model(&models.ReviewTemplate{}).Count(&templateCount)

	var reviewCount int64
	config.DB.Model(&models.Review{}).Count(&reviewCount)

	var completedCount int64
	config.DB.Model(&models.Review{}).
		Where("status = ?", models.ReviewStatusCompleted).
		Count(&completedCount)

	var latest []models.Review
	if err := config.DB.
		Preload("Template").
		Preload("Reviewer").
		Preload("Reviewee").
		Order("create_at DESC").
		Limit(8).
		Find(&latest).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch latest reviews"})
		return
	}

	latestResponses := make([]models.ReviewResponse, 0, len(latest))
	for i := range latest {
		latestResponses = append(latestResponses, latest[i].ToResponse())
	}

	stats["staff_count"] = staffCount
	stats["template_count"] = templateCount
	stats["review_count"] = reviewCount
	stats["completed_count"] = completedCount
	stats["latest_reviews"] = latestResponses

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats":   stats,
	})
}
