// controllers/review_template.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"performance-review-api/config"
	"performance-review-api/models"
	"performance-review-api/services"
	"performance-review-api/utils"
)

// ===== REVIEW TEMPLATE CONTROLLERS =====

// GetTemplates - list templates, newest first
func GetTemplates(c *gin.Context) {
	var templates []models.ReviewTemplate
	if err := config.DB.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC")
		}).
		Order("create_at DESC").
		Find(&templates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch templates"})
		return
	}

	responses := make([]models.TemplateResponse, 0, len(templates))
	for i := range templates {
		responses = append(responses, templates[i].ToResponse())
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    responses,
		"count":   len(responses),
	})
}

// GetTemplate - fetch one template with its ordered questions
func GetTemplate(c *gin.Context) {
	id := c.Param("id")

	var template models.ReviewTemplate
	if err := config.DB.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC")
		}).
		Where("template_id = ?", id).
		First(&template).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Template not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    template.ToResponse(),
	})
}

// CreateTemplate - create a template together with its question set
func CreateTemplate(c *gin.Context) {
	var req models.TemplateCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Template name is required"})
		return
	}

	name := utils.SanitizeInput(req.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Template name is required"})
		return
	}

	var existing models.ReviewTemplate
	if err := config.DB.Where("name = ?", name).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Template name must be unique"})
		return
	}

	questions, err := services.NormalizeQuestionDrafts(req.Questions)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	template := models.ReviewTemplate{Name: name}
	if description := utils.SanitizeInput(req.Description); description != "" {
		template.Description = &description
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&template).Error; err != nil {
			return err
		}
		for i := range questions {
			questions[i].TemplateID = template.TemplateID
		}
		return tx.Create(&questions).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create template"})
		return
	}

	template.Questions = questions
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    template.ToResponse(),
	})
}

// UpdateTemplate - replace a template's name, description and question set.
// Reviews referencing the template keep their answers; what counts as
// required changes going forward, so their statuses are recomputed.
func UpdateTemplate(c *gin.Context) {
	id := c.Param("id")

	var template models.ReviewTemplate
	if err := config.DB.Where("template_id = ?", id).First(&template).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Template not found"})
		return
	}

	var req models.TemplateCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Template name is required"})
		return
	}

	name := utils.SanitizeInput(req.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Template name is required"})
		return
	}

	var existing models.ReviewTemplate
	if err := config.DB.Where("name = ? AND template_id != ?", name, template.TemplateID).
		First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Template name must be unique"})
		return
	}

	questions, err := services.NormalizeQuestionDrafts(req.Questions)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	template.Name = name
	template.Description = nil
	if description := utils.SanitizeInput(req.Description); description != "" {
		template.Description = &description
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&template).Error; err != nil {
			return err
		}
		if err := tx.Where("template_id = ?", template.TemplateID).
			Delete(&models.TemplateQuestion{}).Error; err != nil {
			return err
		}
		for i := range questions {
			questions[i].TemplateID = template.TemplateID
		}
		return tx.Create(&questions).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update template"})
		return
	}

	statusService := services.NewReviewStatusService(config.DB)
	if err := statusService.RecomputeForTemplate(template.TemplateID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to refresh review statuses"})
		return
	}

	template.Questions = questions
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    template.ToResponse(),
	})
}
