// controllers/staff.go
package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"performance-review-api/config"
	"performance-review-api/models"
	"performance-review-api/services"
	"performance-review-api/utils"
)

// ===== STAFF CONTROLLERS =====

// GetStaffMembers - list all staff ordered by name
func GetStaffMembers(c *gin.Context) {
	var members []models.Staff
	if err := config.DB.Preload("Manager").Order("name ASC").Find(&members).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch staff"})
		return
	}

	responses := make([]models.StaffResponse, 0, len(members))
	for i := range members {
		responses = append(responses, members[i].ToResponse())
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    responses,
		"count":   len(responses),
	})
}

// GetStaffMember - fetch one staff member with manager and direct reports
func GetStaffMember(c *gin.Context) {
	id := c.Param("id")

	var member models.Staff
	if err := config.DB.Preload("Manager").Preload("Reports").
		Where("staff_id = ?", id).
		First(&member).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Staff member not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    member,
	})
}

// CreateStaffMember - register a staff member
func CreateStaffMember(c *gin.Context) {
	var req models.StaffCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Name, title, and email are required"})
		return
	}

	name := utils.SanitizeInput(req.Name)
	title := utils.SanitizeInput(req.Title)
	email := strings.ToLower(utils.SanitizeInput(req.Email))

	if name == "" || title == "" || email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Name, title, and email are required"})
		return
	}
	if !utils.ValidateEmail(email) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid email address"})
		return
	}

	var existing models.Staff
	if err := config.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "A staff member with that email already exists"})
		return
	}

	if req.ManagerID != nil {
		var manager models.Staff
		if err := config.DB.Where("staff_id = ?", *req.ManagerID).First(&manager).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Manager not found"})
			return
		}
	}

	member := models.Staff{
		Name:      name,
		Title:     title,
		Email:     email,
		ManagerID: req.ManagerID,
	}
	if err := config.DB.Create(&member).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create staff member"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    member.ToResponse(),
	})
}

// UpdateStaffMember - update staff fields; manager changes run the cycle check
func UpdateStaffMember(c *gin.Context) {
	id := c.Param("id")

	var member models.Staff
	if err := config.DB.Where("staff_id = ?", id).First(&member).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Staff member not found"})
		return
	}

	var req models.StaffUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if req.Name != nil {
		name := utils.SanitizeInput(*req.Name)
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Name cannot be empty"})
			return
		}
		member.Name = name
	}
	if req.Title != nil {
		title := utils.SanitizeInput(*req.Title)
		if title == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Title cannot be empty"})
			return
		}
		member.Title = title
	}
	if req.Email != nil {
		email := strings.ToLower(utils.SanitizeInput(*req.Email))
		if !utils.ValidateEmail(email) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid email address"})
			return
		}
		var existing models.Staff
		if err := config.DB.Where("email = ? AND staff_id != ?", email, member.StaffID).
			First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "A staff member with that email already exists"})
			return
		}
		member.Email = email
	}
	if req.ManagerID != nil {
		var manager models.Staff
		if err := config.DB.Where("staff_id = ?", *req.ManagerID).First(&manager).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Manager not found"})
			return
		}

		orgService := services.NewOrgService(config.DB)
		if err := orgService.CheckManagerAssignment(member.StaffID, *req.ManagerID); err != nil {
			if errors.Is(err, services.ErrManagerCycle) {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Manager assignment would create a reporting cycle"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to verify manager assignment"})
			return
		}
		member.ManagerID = req.ManagerID
	}

	if err := config.DB.Save(&member).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update staff member"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    member.ToResponse(),
	})
}
