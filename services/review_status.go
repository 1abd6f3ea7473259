package services

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"performance-review-api/models"
)

// answerKey identifies one logical submission: one role answering one question.
type answerKey struct {
	QuestionID int
	Role       string
}

// EvaluateStatus derives a review status from the current template questions
// and the answers submitted so far. A review is Completed when every role a
// question targets has a non-blank answer on file for it. Answers that
// reference questions outside the given set are ignored, duplicates count
// once, and an empty question list evaluates to Completed.
func EvaluateStatus(questions []models.TemplateQuestion, answers []models.ReviewAnswer) string {
	answered := make(map[answerKey]bool, len(answers))
	for _, answer := range answers {
		if strings.TrimSpace(answer.AnswerText) == "" {
			continue
		}
		answered[answerKey{QuestionID: answer.QuestionID, Role: answer.Role}] = true
	}

	for _, question := range questions {
		for _, role := range RequiredRoles(question.AnswerBy) {
			if !answered[answerKey{QuestionID: question.QuestionID, Role: role}] {
				return models.ReviewStatusInProgress
			}
		}
	}

	return models.ReviewStatusCompleted
}

// RequiredRoles maps a question's responder target to the roles that must
// answer it. Unknown targets require nothing.
func RequiredRoles(answerBy string) []string {
	switch answerBy {
	case models.AnswerByReviewer:
		return []string{models.RoleReviewer}
	case models.AnswerByReviewee:
		return []string{models.RoleReviewee}
	case models.AnswerByBoth:
		return []string{models.RoleReviewer, models.RoleReviewee}
	}
	return nil
}

// ReviewStatusService recomputes and persists review statuses.
type ReviewStatusService struct {
	db *gorm.DB
}

func NewReviewStatusService(db *gorm.DB) *ReviewStatusService {
	return &ReviewStatusService{db: db}
}

// Recompute re-derives the status of one review from its template's current
// questions and the answers on file, overwrites the stored status and returns
// it. Called after every answer write and after template edits.
func (s *ReviewStatusService) Recompute(reviewID int) (string, error) {
	var review models.Review
	if err := s.db.Where("review_id = ?", reviewID).First(&review).Error; err != nil {
		return "", fmt.Errorf("failed to load review %d: %w", reviewID, err)
	}

	var questions []models.TemplateQuestion
	if err := s.db.Where("template_id = ?", review.TemplateID).
		Order("order_index ASC").
		Find(&questions).Error; err != nil {
		return "", fmt.Errorf("failed to load questions for review %d: %w", reviewID, err)
	}

	var answers []models.ReviewAnswer
	if err := s.db.Where("review_id = ?", reviewID).Find(&answers).Error; err != nil {
		return "", fmt.Errorf("failed to load answers for review %d: %w", reviewID, err)
	}

	status := EvaluateStatus(questions, answers)
	if err := s.db.Model(&models.Review{}).
		Where("review_id = ?", reviewID).
		Update("status", status).Error; err != nil {
		return "", fmt.Errorf("failed to store status for review %d: %w", reviewID, err)
	}

	return status, nil
}

// RecomputeForTemplate refreshes the status of every review that references
// the template. Template edits change what is required going forward.
func (s *ReviewStatusService) RecomputeForTemplate(templateID int) error {
	var reviewIDs []int
	if err := s.db.Model(&models.Review{}).
		Where("template_id = ?", templateID).
		Pluck("review_id", &reviewIDs).Error; err != nil {
		return fmt.Errorf("failed to list reviews for template %d: %w", templateID, err)
	}

	for _, id := range reviewIDs {
		if _, err := s.Recompute(id); err != nil {
			return err
		}
	}
	return nil
}
