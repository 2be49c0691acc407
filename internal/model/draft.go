package model

import "time"

// DraftQuestion is one staged question in an authoring draft. Order is
// assigned from the staged position when the draft is published.
type DraftQuestion struct {
	QuestionText   string       `json:"question_text" validate:"required"`
	QuestionType   QuestionType `json:"question_type" validate:"required,oneof=mcq likert short_answer long_answer"`
	IsRequired     bool         `json:"is_required"`
	Options        []string     `json:"options,omitempty"`
	LikertMin      int          `json:"likert_min,omitempty"`
	LikertMax      int          `json:"likert_max,omitempty"`
	LikertMinLabel string       `json:"likert_min_label,omitempty"`
	LikertMaxLabel string       `json:"likert_max_label,omitempty"`
}

// SurveyDraft is the two-step authoring wizard state: survey metadata
// from step one plus the staged question list from step two. Abandoning
// the draft loses all input once its TTL lapses.
type SurveyDraft struct {
	ID          string          `json:"id"`
	OwnerID     int             `json:"ownerId"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Status      SurveyStatus    `json:"status"`
	DueDate     string          `json:"due_date,omitempty"`
	Questions   []DraftQuestion `json:"questions"`
	CreatedAt   time.Time       `json:"createdAt"`
}
