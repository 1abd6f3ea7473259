// controllers/review.go
package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"performance-review-api/config"
	"performance-review-api/models"
	"performance-review-api/services"
	"performance-review-api/utils"
)

// ===== REVIEW CONTROLLERS =====

// GetReviews - list reviews, newest first
func GetReviews(c *gin.Context) {
	var reviews []models.Review
	if err := config.DB.
		Preload("Template").
		Preload("Reviewer").
		Preload("Reviewee").
		Order("create_at DESC").
		Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch reviews"})
		return
	}

	responses := make([]models.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		responses = append(responses, reviews[i].ToResponse())
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    responses,
		"count":   len(responses),
	})
}

// GetReview - review detail: the template's current questions in order with
// the answers submitted so far, keyed by role
func GetReview(c *gin.Context) {
	id := c.Param("id")

	var review models.Review
	if err := config.DB.
		Preload("Template").
		Preload("Reviewer").
		Preload("Reviewee").
		Where("review_id = ?", id).
		First(&review).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Review not found"})
		return
	}

	var questions []models.TemplateQuestion
	if err := config.DB.Where("template_id = ?", review.TemplateID).
		Order("order_index ASC").
		Find(&questions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch questions"})
		return
	}

	var answers []models.ReviewAnswer
	if err := config.DB.Where("review_id = ?", review.ReviewID).Find(&answers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch answers"})
		return
	}

	indexed := make(map[int]map[string]string, len(questions))
	for _, answer := range answers {
		if indexed[answer.QuestionID] == nil {
			indexed[answer.QuestionID] = make(map[string]string)
		}
		indexed[answer.QuestionID][answer.Role] = answer.AnswerText
	}

	detail := make([]models.QuestionWithAnswers, 0, len(questions))
	for _, question := range questions {
		entry := models.QuestionWithAnswers{Question: question, Answers: indexed[question.QuestionID]}
		if entry.Answers == nil {
			entry.Answers = map[string]string{}
		}
		detail = append(detail, entry)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"review":    review.ToResponse(),
			"questions": detail,
		},
	})
}

// CreateReview - initiate a review of a reviewee by a reviewer against a template
func CreateReview(c *gin.Context) {
	var req models.ReviewCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "All fields are required to initiate a review"})
		return
	}

	title := utils.SanitizeInput(req.Title)
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "All fields are required to initiate a review"})
		return
	}
	if req.ReviewerID == req.RevieweeID {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Reviewer and reviewee must be different staff members"})
		return
	}

	var template models.ReviewTemplate
	if err := config.DB.Where("template_id = ?", req.TemplateID).First(&template).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Template not found"})
		return
	}
	var reviewer models.Staff
	if err := config.DB.Where("staff_id = ?", req.ReviewerID).First(&reviewer).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Reviewer not found"})
		return
	}
	var reviewee models.Staff
	if err := config.DB.Where("staff_id = ?", req.RevieweeID).First(&reviewee).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Reviewee not found"})
		return
	}

	var questions []models.TemplateQuestion
	if err := config.DB.Where("template_id = ?", template.TemplateID).
		Find(&questions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch questions"})
		return
	}

	review := models.Review{
		Title:      title,
		TemplateID: req.TemplateID,
		ReviewerID: req.ReviewerID,
		RevieweeID: req.RevieweeID,
		// A template with zero questions is complete the moment the
		// review is created.
		Status: services.EvaluateStatus(questions, nil),
	}
	if err := config.DB.Create(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to initiate review"})
		return
	}

	review.Template = &template
	review.Reviewer = &reviewer
	review.Reviewee = &reviewee
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    review.ToResponse(),
	})
}

// GetReviewQuestions - the questions one role must answer, with that role's
// existing answers for form prefill
func GetReviewQuestions(c *gin.Context) {
	id := c.Param("id")
	role := c.Param("role")

	if !utils.ValidateRole(role) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid role"})
		return
	}

	var review models.Review
	if err := config.DB.Where("review_id = ?", id).First(&review).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Review not found"})
		return
	}

	applicable, err := applicableQuestions(review.TemplateID, role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch questions"})
		return
	}

	var answers []models.ReviewAnswer
	if err := config.DB.Where("review_id = ? AND role = ?", review.ReviewID, role).
		Find(&answers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch answers"})
		return
	}

	existing := make(map[int]string, len(answers))
	for _, answer := range answers {
		existing[answer.QuestionID] = answer.AnswerText
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"review":           review.ToResponse(),
			"role":             role,
			"questions":        applicable,
			"existing_answers": existing,
		},
	})
}

// SubmitResponses - record one role's answers and recompute the review status.
// Blank answers are skipped, answers to questions the role is not asked (or
// that are no longer in the template) are ignored, and resubmitting a question
// overwrites the earlier answer.
func SubmitResponses(c *gin.Context) {
	id := c.Param("id")
	role := c.Param("role")

	if !utils.ValidateRole(role) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid role"})
		return
	}

	var review models.Review
	if err := config.DB.Where("review_id = ?", id).First(&review).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Review not found"})
		return
	}

	var req models.SubmitResponsesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	applicable, err := applicableQuestions(review.TemplateID, role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch questions"})
		return
	}
	applicableIDs := make(map[int]bool, len(applicable))
	for _, question := range applicable {
		applicableIDs[question.QuestionID] = true
	}

	saved := 0
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		for _, submission := range req.Answers {
			text := strings.TrimSpace(submission.AnswerText)
			if text == "" || !applicableIDs[submission.QuestionID] {
				continue
			}

			var answer models.ReviewAnswer
			findErr := tx.Where("review_id = ? AND question_id = ? AND role = ?",
				review.ReviewID, submission.QuestionID, role).
				First(&answer).Error
			switch {
			case findErr == nil:
				// Latest submission wins.
				answer.AnswerText = text
				if err := tx.Save(&answer).Error; err != nil {
					return err
				}
			case errors.Is(findErr, gorm.ErrRecordNotFound):
				answer = models.ReviewAnswer{
					ReviewID:   review.ReviewID,
					QuestionID: submission.QuestionID,
					Role:       role,
					AnswerText: text,
				}
				if err := tx.Create(&answer).Error; err != nil {
					return err
				}
			default:
				return findErr
			}
			saved++
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to save responses"})
		return
	}

	statusService := services.NewReviewStatusService(config.DB)
	status, err := statusService.Recompute(review.ReviewID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to recompute review status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"review_id":     review.ReviewID,
			"role":          role,
			"saved_answers": saved,
			"status":        status,
		},
	})
}

// applicableQuestions returns the template questions a role must answer,
// in template order.
func applicableQuestions(templateID int, role string) ([]models.TemplateQuestion, error) {
	var questions []models.TemplateQuestion
	err := config.DB.Where("template_id = ? AND answer_by IN ?",
		templateID, []string{role, models.AnswerByBoth}).
		Order("order_index ASC").
		Find(&questions).Error
	return questions, err
}
