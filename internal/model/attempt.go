package model

import "time"

// AttemptState is the in-progress take-survey state for one
// (session, survey) pair: the survey snapshot loaded on entry, the
// answer map keyed by question id, and the current page index.
type AttemptState struct {
	SurveyID  int                 `json:"surveyId"`
	Survey    *Survey             `json:"survey"`
	Page      int                 `json:"page"`
	Answers   map[int]AnswerValue `json:"answers"`
	StartedAt time.Time           `json:"startedAt"`
}

// AnsweredCount returns how many questions have a non-empty answer
func (a *AttemptState) AnsweredCount() int {
	n := 0
	for _, v := range a.Answers {
		if !v.IsEmpty() {
			n++
		}
	}
	return n
}
