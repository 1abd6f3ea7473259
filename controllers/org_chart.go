// controllers/org_chart.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"performance-review-api/config"
	"performance-review-api/services"
)

// GetOrgChart - organization chart as a forest of staff nodes
func GetOrgChart(c *gin.Context) {
	orgService := services.NewOrgService(config.DB)
	roots, err := orgService.BuildOrgChart()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to build organization chart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    roots,
		"count":   len(roots),
	})
}
