package model

// QuestionType determines which answer field is valid and how
// analytics are aggregated
type QuestionType string

const (
	QuestionMCQ         QuestionType = "mcq"
	QuestionLikert      QuestionType = "likert"
	QuestionShortAnswer QuestionType = "short_answer"
	QuestionLongAnswer  QuestionType = "long_answer"
)

const (
	DefaultLikertMin = 1
	DefaultLikertMax = 5
)

// Question is a typed prompt belonging to exactly one survey
type Question struct {
	ID             int          `json:"id"`
	Survey         int          `json:"survey"`
	QuestionText   string       `json:"question_text"`
	QuestionType   QuestionType `json:"question_type"`
	Order          int          `json:"order"`
	IsRequired     bool         `json:"is_required"`
	Options        []string     `json:"options,omitempty"`
	LikertMin      int          `json:"likert_min,omitempty"`
	LikertMax      int          `json:"likert_max,omitempty"`
	LikertMinLabel string       `json:"likert_min_label,omitempty"`
	LikertMaxLabel string       `json:"likert_max_label,omitempty"`
	CreatedAt      string       `json:"created_at,omitempty"`
	UpdatedAt      string       `json:"updated_at,omitempty"`
}

// LikertRange returns the question's scale bounds, defaulting to 1..5
// when the backend omits them.
func (q *Question) LikertRange() (int, int) {
	min, max := q.LikertMin, q.LikertMax
	if min == 0 && max == 0 {
		return DefaultLikertMin, DefaultLikertMax
	}
	return min, max
}

// HasOption reports whether value is one of the question's options
func (q *Question) HasOption(value string) bool {
	for _, opt := range q.Options {
		if opt == value {
			return true
		}
	}
	return false
}

// QuestionCreate is the payload for creating a question record
type QuestionCreate struct {
	Survey         int          `json:"survey"`
	QuestionText   string       `json:"question_text"`
	QuestionType   QuestionType `json:"question_type"`
	Order          int          `json:"order"`
	IsRequired     bool         `json:"is_required"`
	Options        []string     `json:"options,omitempty"`
	LikertMin      int          `json:"likert_min,omitempty"`
	LikertMax      int          `json:"likert_max,omitempty"`
	LikertMinLabel string       `json:"likert_min_label,omitempty"`
	LikertMaxLabel string       `json:"likert_max_label,omitempty"`
}
