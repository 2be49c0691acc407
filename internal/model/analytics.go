package model

import "encoding/json"

// AnalyticsData is one backend-computed aggregate per question. The
// data payload shape depends on the question type: option→count for
// mcq, {distribution, average} (or a bare count map) for likert, and
// {responses, word_frequency} for free text. This layer never computes
// aggregates; it only renders them, so the payload is kept raw and
// decoded defensively at render time.
type AnalyticsData struct {
	QuestionID     int             `json:"question_id"`
	QuestionText   string          `json:"question_text"`
	QuestionType   QuestionType    `json:"question_type"`
	TotalResponses int             `json:"total_responses"`
	Data           json.RawMessage `json:"data"`
}
