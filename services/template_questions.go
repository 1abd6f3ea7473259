package services

import (
	"errors"
	"fmt"
	"strings"

	"performance-review-api/models"
)

// ErrNoQuestions is returned when a template submission has no usable
// questions left after blank prompts are dropped.
var ErrNoQuestions = errors.New("add at least one question")

// NormalizeQuestionDrafts turns the submitted question rows into question
// records ready to insert. Client-side ordering is not trusted beyond the
// submitted sequence: prompts are trimmed, blank rows dropped, a missing
// responder target defaults to both, and order_index is reassigned 1..n
// server-side.
func NormalizeQuestionDrafts(drafts []models.QuestionDraft) ([]models.TemplateQuestion, error) {
	questions := make([]models.TemplateQuestion, 0, len(drafts))
	for i, draft := range drafts {
		prompt := strings.TrimSpace(draft.Prompt)
		if prompt == "" {
			continue
		}

		answerBy := strings.TrimSpace(draft.AnswerBy)
		if answerBy == "" {
			answerBy = models.AnswerByBoth
		}
		switch answerBy {
		case models.AnswerByReviewer, models.AnswerByReviewee, models.AnswerByBoth:
		default:
			return nil, fmt.Errorf("question %d has invalid responder target '%s'", i+1, draft.AnswerBy)
		}

		questions = append(questions, models.TemplateQuestion{
			Prompt:     prompt,
			AnswerBy:   answerBy,
			OrderIndex: len(questions) + 1,
		})
	}

	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	return questions, nil
}
