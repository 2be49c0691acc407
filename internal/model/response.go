package model

import "time"

// Answer is one stored answer within a response. Exactly one of the
// three value fields is populated, matching the question's type.
type Answer struct {
	ID           int          `json:"id,omitempty"`
	Question     int          `json:"question"`
	QuestionText string       `json:"question_text,omitempty"`
	QuestionType QuestionType `json:"question_type,omitempty"`
	AnswerText   *string      `json:"answer_text,omitempty"`
	AnswerChoice *string      `json:"answer_choice,omitempty"`
	AnswerNumber *int         `json:"answer_number,omitempty"`
}

// Response is one student's complete set of answers to one survey,
// submitted at most once. Uniqueness per (survey, student) is enforced
// by the backend.
type Response struct {
	ID          int       `json:"id"`
	Survey      int       `json:"survey"`
	SurveyTitle string    `json:"survey_title,omitempty"`
	Student     int       `json:"student"`
	StudentName string    `json:"student_name"`
	SubmittedAt time.Time `json:"submitted_at"`
	Answers     []Answer  `json:"answers"`
}

// AnswerCreate is one normalized answer in the submission payload. The
// populated field is chosen from the referenced question's type at
// submission time.
type AnswerCreate struct {
	QuestionID   int     `json:"question_id"`
	AnswerText   *string `json:"answer_text,omitempty"`
	AnswerChoice *string `json:"answer_choice,omitempty"`
	AnswerNumber *int    `json:"answer_number,omitempty"`
}

// ResponseCreate is the single submission payload for a survey
type ResponseCreate struct {
	Survey  int            `json:"survey"`
	Answers []AnswerCreate `json:"answers"`
}
