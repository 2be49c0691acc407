package model

// SurveyStatus is the survey lifecycle state. Transitions are opaque
// writes to the backend; no transition validation happens in this layer.
type SurveyStatus string

const (
	StatusDraft  SurveyStatus = "draft"
	StatusActive SurveyStatus = "active"
	StatusClosed SurveyStatus = "closed"
)

// Survey is a named collection of ordered questions with a lifecycle status
type Survey struct {
	ID            int          `json:"id"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	Status        SurveyStatus `json:"status"`
	DueDate       string       `json:"due_date,omitempty"`
	CreatedAt     string       `json:"created_at,omitempty"`
	UpdatedAt     string       `json:"updated_at,omitempty"`
	CreatedBy     int          `json:"created_by,omitempty"`
	CreatedByName string       `json:"created_by_name,omitempty"`
	Questions     []Question   `json:"questions,omitempty"`
}

// SurveyListItem is the list-view projection returned by the backend
type SurveyListItem struct {
	ID            int          `json:"id"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	Status        SurveyStatus `json:"status"`
	DueDate       string       `json:"due_date,omitempty"`
	CreatedAt     string       `json:"created_at,omitempty"`
	CreatedByName string       `json:"created_by_name,omitempty"`
	QuestionCount int          `json:"question_count"`
	ResponseCount int          `json:"response_count"`
}

// SurveyCreate is the payload for creating or updating a survey record
type SurveyCreate struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      SurveyStatus `json:"status"`
	DueDate     string       `json:"due_date,omitempty"`
}
