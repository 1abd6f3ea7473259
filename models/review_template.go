// models/review_template.go
package models

import (
	"time"
)

// Responder targets for template questions
const (
	AnswerByReviewer = "reviewer"
	AnswerByReviewee = "reviewee"
	AnswerByBoth     = "both"
)

// ReviewTemplate represents the review_templates table
type ReviewTemplate struct {
	TemplateID  int       `gorm:"primaryKey;column:template_id" json:"template_id"`
	Name        string    `gorm:"column:name;unique" json:"name"`
	Description *string   `gorm:"column:description" json:"description,omitempty"`
	CreateAt    time.Time `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdateAt    time.Time `gorm:"column:update_at;autoUpdateTime" json:"update_at"`

	// Relations
	Questions []TemplateQuestion `gorm:"foreignKey:TemplateID" json:"questions,omitempty"`
}

// TemplateQuestion represents the template_questions table.
// AnswerBy controls which role(s) must answer: reviewer, reviewee or both.
type TemplateQuestion struct {
	QuestionID int    `gorm:"primaryKey;column:question_id" json:"question_id"`
	TemplateID int    `gorm:"column:template_id;index" json:"template_id"`
	Prompt     string `gorm:"column:prompt;type:text" json:"prompt"`
	AnswerBy   string `gorm:"column:answer_by;type:enum('reviewer','reviewee','both');default:'both'" json:"answer_by"`
	OrderIndex int    `gorm:"column:order_index" json:"order_index"`
}

// TableName overrides
func (ReviewTemplate) TableName() string {
	return "review_templates"
}

func (TemplateQuestion) TableName() string {
	return "template_questions"
}

// QuestionDraft is one question row submitted with a template create/update
type QuestionDraft struct {
	Prompt   string `json:"prompt"`
	AnswerBy string `json:"answer_by"`
}

// TemplateCreateRequest is the payload for creating a review template
type TemplateCreateRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Questions   []QuestionDraft `json:"questions"`
}

// TemplateResponse is the API representation of a review template
type TemplateResponse struct {
	TemplateID    int                `json:"template_id"`
	Name          string             `json:"name"`
	Description   *string            `json:"description,omitempty"`
	QuestionCount int                `json:"question_count"`
	Questions     []TemplateQuestion `json:"questions"`
	CreateAt      time.Time          `json:"create_at"`
}

func (t *ReviewTemplate) ToResponse() TemplateResponse {
	questions := t.Questions
	if questions == nil {
		questions = []TemplateQuestion{}
	}
	return TemplateResponse{
		TemplateID:    t.TemplateID,
		Name:          t.Name,
		Description:   t.Description,
		QuestionCount: len(questions),
		Questions:     questions,
		CreateAt:      t.CreateAt,
	}
}
