// models/review.go
package models

import (
	"time"
)

// Review statuses. Status is derived from the submitted answers and is
// recomputed on every answer write, never set directly.
const (
	ReviewStatusInProgress = "In Progress"
	ReviewStatusCompleted  = "Completed"
)

// Answer author roles
const (
	RoleReviewer = "reviewer"
	RoleReviewee = "reviewee"
)

// Review represents the reviews table: one template applied to a
// reviewer/reviewee pair
type Review struct {
	ReviewID   int       `gorm:"primaryKey;column:review_id" json:"review_id"`
	Title      string    `gorm:"column:title" json:"title"`
	TemplateID int       `gorm:"column:template_id;index" json:"template_id"`
	ReviewerID int       `gorm:"column:reviewer_id" json:"reviewer_id"`
	RevieweeID int       `gorm:"column:reviewee_id" json:"reviewee_id"`
	Status     string    `gorm:"column:status;type:enum('In Progress','Completed');default:'In Progress'" json:"status"`
	CreateAt   time.Time `gorm:"column:create_at;autoCreateTime" json:"create_at"`

	// Relations
	Template *ReviewTemplate `gorm:"foreignKey:TemplateID" json:"template,omitempty"`
	Reviewer *Staff          `gorm:"foreignKey:ReviewerID" json:"reviewer,omitempty"`
	Reviewee *Staff          `gorm:"foreignKey:RevieweeID" json:"reviewee,omitempty"`
}

// ReviewAnswer represents the review_answers table. A role answers a
// question at most once per review; a resubmission overwrites the row.
type ReviewAnswer struct {
	AnswerID   int       `gorm:"primaryKey;column:answer_id" json:"answer_id"`
	ReviewID   int       `gorm:"column:review_id;uniqueIndex:uq_answer_per_role" json:"review_id"`
	QuestionID int       `gorm:"column:question_id;uniqueIndex:uq_answer_per_role" json:"question_id"`
	Role       string    `gorm:"column:role;type:enum('reviewer','reviewee');uniqueIndex:uq_answer_per_role" json:"role"`
	AnswerText string    `gorm:"column:answer_text;type:text" json:"answer_text"`
	UpdateAt   time.Time `gorm:"column:update_at;autoUpdateTime" json:"update_at"`
}

// TableName overrides
func (Review) TableName() string {
	return "reviews"
}

func (ReviewAnswer) TableName() string {
	return "review_answers"
}

// ReviewCreateRequest is the payload for initiating a review
type ReviewCreateRequest struct {
	Title      string `json:"title" binding:"required"`
	TemplateID int    `json:"template_id" binding:"required"`
	ReviewerID int    `json:"reviewer_id" binding:"required"`
	RevieweeID int    `json:"reviewee_id" binding:"required"`
}

// AnswerSubmission is one answer in a response submission
type AnswerSubmission struct {
	QuestionID int    `json:"question_id" binding:"required"`
	AnswerText string `json:"answer_text"`
}

// SubmitResponsesRequest is the payload for a role submitting answers
type SubmitResponsesRequest struct {
	Answers []AnswerSubmission `json:"answers" binding:"required"`
}

// ReviewResponse is the API representation of a review
type ReviewResponse struct {
	ReviewID     int       `json:"review_id"`
	Title        string    `json:"title"`
	TemplateID   int       `json:"template_id"`
	TemplateName string    `json:"template_name,omitempty"`
	ReviewerID   int       `json:"reviewer_id"`
	ReviewerName string    `json:"reviewer_name,omitempty"`
	RevieweeID   int       `json:"reviewee_id"`
	RevieweeName string    `json:"reviewee_name,omitempty"`
	Status       string    `json:"status"`
	CreateAt     time.Time `json:"create_at"`
}

func (r *Review) ToResponse() ReviewResponse {
	resp := ReviewResponse{
		ReviewID:   r.ReviewID,
		Title:      r.Title,
		TemplateID: r.TemplateID,
		ReviewerID: r.ReviewerID,
		RevieweeID: r.RevieweeID,
		Status:     r.Status,
		CreateAt:   r.CreateAt,
	}
	if r.Template != nil {
		resp.TemplateName = r.Template.Name
	}
	if r.Reviewer != nil {
		resp.ReviewerName = r.Reviewer.Name
	}
	if r.Reviewee != nil {
		resp.RevieweeName = r.Reviewee.Name
	}
	return resp
}

// QuestionWithAnswers pairs a template question with the answers
// submitted against it so far, keyed by role
type QuestionWithAnswers struct {
	Question TemplateQuestion  `json:"question"`
	Answers  map[string]string `json:"answers"`
}
