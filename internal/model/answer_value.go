package model

// AnswerKind tags an in-progress answer value with the question type
// it is valid for.
type AnswerKind string

const (
	AnswerKindChoice AnswerKind = "choice"
	AnswerKindNumber AnswerKind = "number"
	AnswerKindText   AnswerKind = "text"
)

// AnswerValue is a tagged variant collected during a survey attempt,
// keyed by question id in the attempt's answer map. The kind is checked
// against the question's declared type when the value is inserted, not
// deferred to submit time.
type AnswerValue struct {
	Kind   AnswerKind `json:"kind"`
	Choice string     `json:"choice,omitempty"`
	Number int        `json:"number,omitempty"`
	Text   string     `json:"text,omitempty"`
}

// ChoiceAnswer builds an mcq answer value
func ChoiceAnswer(option string) AnswerValue {
	return AnswerValue{Kind: AnswerKindChoice, Choice: option}
}

// NumberAnswer builds a likert answer value
func NumberAnswer(n int) AnswerValue {
	return AnswerValue{Kind: AnswerKindNumber, Number: n}
}

// TextAnswer builds a free-text answer value
func TextAnswer(text string) AnswerValue {
	return AnswerValue{Kind: AnswerKindText, Text: text}
}

// IsEmpty reports whether the value does not count as an answer for
// required-question checks. A number answer always counts, even when
// the scale includes zero.
func (v AnswerValue) IsEmpty() bool {
	switch v.Kind {
	case AnswerKindChoice:
		return v.Choice == ""
	case AnswerKindNumber:
		return false
	case AnswerKindText:
		return v.Text == ""
	}
	return true
}

// KindForQuestionType maps a question type to the answer kind it accepts
func KindForQuestionType(t QuestionType) AnswerKind {
	switch t {
	case QuestionMCQ:
		return AnswerKindChoice
	case QuestionLikert:
		return AnswerKindNumber
	default:
		return AnswerKindText
	}
}
