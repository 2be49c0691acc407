package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"sync"

	"github.com/VincentPrime/Survey-client/internal/backend"
	"github.com/VincentPrime/Survey-client/internal/model"
)

const wordCloudLimit = 20

// AnalyticsService turns the backend's per-question aggregates into
// render-ready view models. Aggregate payloads are decoded defensively:
// a malformed section degrades to its empty state instead of failing
// the whole page.
type AnalyticsService struct {
	surveys backend.SurveyAPI
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(surveys backend.SurveyAPI) *AnalyticsService {
	return &AnalyticsService{surveys: surveys}
}

// AnalyticsView is the analytics page for one survey
type AnalyticsView struct {
	Survey    *model.Survey       `json:"survey"`
	Questions []QuestionAnalytics `json:"questions"`
}

// QuestionAnalytics carries exactly one chart variant, chosen by the
// question's type. A nil chart means there is no data to draw.
type QuestionAnalytics struct {
	QuestionID     int                `json:"question_id"`
	QuestionText   string             `json:"question_text"`
	QuestionType   model.QuestionType `json:"question_type"`
	TotalResponses int                `json:"total_responses"`
	MCQ            *MCQChart          `json:"mcq,omitempty"`
	Likert         *LikertChart       `json:"likert,omitempty"`
	Text           *TextBreakdown     `json:"text,omitempty"`
}

// MCQBar is one option's share of the answers
type MCQBar struct {
	Option     string  `json:"option"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// MCQChart is the option distribution for a multiple choice question
type MCQChart struct {
	Total int      `json:"total"`
	Bars  []MCQBar `json:"bars"`
}

// LikertBar is one scale point's bar. HeightPct scales against the
// most frequent point; FloorPx keeps non-zero bars visible.
type LikertBar struct {
	Value     int     `json:"value"`
	Count     int     `json:"count"`
	HeightPct float64 `json:"height_pct"`
	FloorPx   int     `json:"floor_px"`
}

// LikertChart is the rating distribution plus its average
type LikertChart struct {
	Average      float64     `json:"average"`
	AverageLabel string      `json:"average_label"`
	Total        int         `json:"total"`
	Bars         []LikertBar `json:"bars"`
}

// CloudWord is one word-cloud entry with its render size and opacity
type CloudWord struct {
	Word    string  `json:"word"`
	Count   int     `json:"count"`
	SizePx  float64 `json:"size_px"`
	Opacity float64 `json:"opacity"`
}

// TextBreakdown is the free-text view: a word cloud capped at the top
// twenty words plus the raw response list. The two sections decode
// independently.
type TextBreakdown struct {
	Words     []CloudWord `json:"words"`
	Responses []string    `json:"responses"`
}

// Overview fetches the survey and its aggregates in parallel and builds
// the chart model for every question.
func (s *AnalyticsService) Overview(ctx context.Context, sess *model.PortalSession, surveyID int) (*AnalyticsView, error) {
	var (
		survey       *model.Survey
		analytics    []model.AnalyticsData
		surveyErr    error
		analyticsErr error
	)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		survey, surveyErr = s.surveys.Get(ctx, sess.Access, surveyID)
	}()
	go func() {
		defer wg.Done()
		analytics, analyticsErr = s.surveys.Analytics(ctx, sess.Access, surveyID)
	}()
	wg.Wait()

	if surveyErr != nil {
		return nil, surveyErr
	}
	if analyticsErr != nil {
		return nil, analyticsErr
	}

	options := make(map[int][]string, len(survey.Questions))
	for i := range survey.Questions {
		options[survey.Questions[i].ID] = survey.Questions[i].Options
	}

	questions := make([]QuestionAnalytics, 0, len(analytics))
	for _, data := range analytics {
		qa := QuestionAnalytics{
			QuestionID:     data.QuestionID,
			QuestionText:   data.QuestionText,
			QuestionType:   data.QuestionType,
			TotalResponses: data.TotalResponses,
		}
		switch data.QuestionType {
		case model.QuestionMCQ:
			qa.MCQ = buildMCQChart(data.Data, options[data.QuestionID])
		case model.QuestionLikert:
			qa.Likert = buildLikertChart(data.Data)
		default:
			qa.Text = buildTextBreakdown(data.Data)
		}
		questions = append(questions, qa)
	}

	return &AnalyticsView{Survey: survey, Questions: questions}, nil
}

// buildMCQChart renders an option count map. Bars follow the question's
// option order, with unexpected keys appended alphabetically. An empty
// or all-zero map yields no chart.
func buildMCQChart(data json.RawMessage, options []string) *MCQChart {
	var counts map[string]interface{}
	if err := json.Unmarshal(data, &counts); err != nil || len(counts) == 0 {
		return nil
	}

	total := 0
	for _, v := range counts {
		total += toCount(v)
	}
	if total == 0 {
		return nil
	}

	ordered := make([]string, 0, len(counts))
	seen := make(map[string]bool, len(counts))
	for _, opt := range options {
		if _, ok := counts[opt]; ok {
			ordered = append(ordered, opt)
			seen[opt] = true
		}
	}
	extras := make([]string, 0)
	for key := range counts {
		if !seen[key] {
			extras = append(extras, key)
		}
	}
	sort.Strings(extras)
	ordered = append(ordered, extras...)

	bars := make([]MCQBar, 0, len(ordered))
	for _, opt := range ordered {
		count := toCount(counts[opt])
		bars = append(bars, MCQBar{
			Option:     opt,
			Count:      count,
			Percentage: round1(float64(count) / float64(total) * 100),
		})
	}
	return &MCQChart{Total: total, Bars: bars}
}

// buildLikertChart accepts either a flat value-to-count map or a
// wrapper object with "distribution" and "average" fields. When no
// usable average comes with the payload it is computed as the weighted
// mean of the distribution.
func buildLikertChart(data json.RawMessage) *LikertChart {
	var sections map[string]json.RawMessage
	if err := json.Unmarshal(data, &sections); err != nil || len(sections) == 0 {
		return nil
	}

	var dist map[string]interface{}
	var average float64
	if distRaw, ok := sections["distribution"]; ok {
		if err := json.Unmarshal(distRaw, &dist); err != nil {
			return nil
		}
		if avgRaw, ok := sections["average"]; ok {
			_ = json.Unmarshal(avgRaw, &average)
		}
	} else {
		if err := json.Unmarshal(data, &dist); err != nil {
			return nil
		}
	}

	type entry struct {
		value int
		count int
	}
	entries := make([]entry, 0, len(dist))
	for key, v := range dist {
		value, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		entries = append(entries, entry{value: value, count: toCount(v)})
	}
	if len(entries) == 0 {
		return nil
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].value < entries[j].value })

	total, maxCount, weighted := 0, 0, 0
	for _, e := range entries {
		total += e.count
		weighted += e.value * e.count
		if e.count > maxCount {
			maxCount = e.count
		}
	}

	bars := make([]LikertBar, 0, len(entries))
	for _, e := range entries {
		bar := LikertBar{Value: e.value, Count: e.count}
		if maxCount > 0 {
			bar.HeightPct = float64(e.count) / float64(maxCount) * 100
		}
		if e.count > 0 {
			bar.FloorPx = 20
		}
		bars = append(bars, bar)
	}

	if average == 0 && total > 0 {
		average = float64(weighted) / float64(total)
	}

	return &LikertChart{
		Average:      average,
		AverageLabel: fmt.Sprintf("%.2f", average),
		Total:        total,
		Bars:         bars,
	}
}

// buildTextBreakdown renders word frequencies and raw responses. Each
// section tolerates the other being missing or malformed.
func buildTextBreakdown(data json.RawMessage) *TextBreakdown {
	breakdown := &TextBreakdown{}

	var sections map[string]json.RawMessage
	if err := json.Unmarshal(data, &sections); err != nil {
		return breakdown
	}

	if raw, ok := sections["responses"]; ok {
		var responses []string
		if err := json.Unmarshal(raw, &responses); err == nil {
			breakdown.Responses = responses
		}
	}

	if raw, ok := sections["word_frequency"]; ok {
		var freq map[string]interface{}
		if err := json.Unmarshal(raw, &freq); err == nil {
			breakdown.Words = buildWordCloud(freq)
		}
	}

	return breakdown
}

func buildWordCloud(freq map[string]interface{}) []CloudWord {
	type entry struct {
		word  string
		count int
	}
	entries := make([]entry, 0, len(freq))
	maxCount := 0
	for word, v := range freq {
		count := toCount(v)
		if count <= 0 {
			continue
		}
		entries = append(entries, entry{word: word, count: count})
		if count > maxCount {
			maxCount = count
		}
	}
	if len(entries) == 0 {
		return nil
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].word < entries[j].word
	})
	if len(entries) > wordCloudLimit {
		entries = entries[:wordCloudLimit]
	}

	words := make([]CloudWord, 0, len(entries))
	for _, e := range entries {
		ratio := float64(e.count) / float64(maxCount)
		words = append(words, CloudWord{
			Word:    e.word,
			Count:   e.count,
			SizePx:  12 + ratio*20,
			Opacity: 0.5 + ratio*0.5,
		})
	}
	return words
}

// toCount reads a decoded JSON value as a count; anything non-numeric
// counts as zero.
func toCount(v interface{}) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	default:
		return 0
	}
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
