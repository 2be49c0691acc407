package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"testing"

	"github.com/VincentPrime/Survey-client/internal/model"
)

func TestMCQChartPercentages(t *testing.T) {
	chart := buildMCQChart(json.RawMessage(`{"A":6,"B":3,"C":1}`), []string{"A", "B", "C"})
	if chart == nil {
		t.Fatal("expected a chart")
	}
	if chart.Total != 10 {
		t.Errorf("expected total 10, got %d", chart.Total)
	}

	want := []MCQBar{
		{Option: "A", Count: 6, Percentage: 60},
		{Option: "B", Count: 3, Percentage: 30},
		{Option: "C", Count: 1, Percentage: 10},
	}
	for i, bar := range chart.Bars {
		if bar != want[i] {
			t.Errorf("bar %d: expected %+v, got %+v", i, want[i], bar)
		}
	}
}

func TestMCQChartRoundsToOneDecimal(t *testing.T) {
	chart := buildMCQChart(json.RawMessage(`{"A":1,"B":1,"C":1}`), []string{"A", "B", "C"})
	if chart == nil {
		t.Fatal("expected a chart")
	}
	for _, bar := range chart.Bars {
		if bar.Percentage != 33.3 {
			t.Errorf("expected 33.3 for %s, got %v", bar.Option, bar.Percentage)
		}
	}
}

func TestMCQChartOrdering(t *testing.T) {
	chart := buildMCQChart(json.RawMessage(`{"Z":2,"A":3,"B":1,"Other":1}`), []string{"A", "B"})
	if chart == nil {
		t.Fatal("expected a chart")
	}
	got := make([]string, 0, len(chart.Bars))
	for _, bar := range chart.Bars {
		got = append(got, bar.Option)
	}
	want := []string{"A", "B", "Other", "Z"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected option order %v, got %v", want, got)
		}
	}
}

func TestMCQChartNoData(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty map", `{}`},
		{"all zero", `{"A":0,"B":0}`},
		{"malformed", `"oops"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if chart := buildMCQChart(json.RawMessage(tt.data), []string{"A", "B"}); chart != nil {
				t.Errorf("expected no chart, got %+v", chart)
			}
		})
	}
}

func TestLikertChartFlatMap(t *testing.T) {
	chart := buildLikertChart(json.RawMessage(`{"1":1,"2":0,"3":3}`))
	if chart == nil {
		t.Fatal("expected a chart")
	}
	if chart.Total != 4 {
		t.Errorf("expected total 4, got %d", chart.Total)
	}
	if math.Abs(chart.Average-2.5) > 1e-9 {
		t.Errorf("expected computed average 2.5, got %v", chart.Average)
	}
	if chart.AverageLabel != "2.50" {
		t.Errorf("expected label 2.50, got %q", chart.AverageLabel)
	}

	if len(chart.Bars) != 3 || chart.Bars[0].Value != 1 || chart.Bars[2].Value != 3 {
		t.Fatalf("expected bars sorted by value, got %+v", chart.Bars)
	}
	if chart.Bars[2].HeightPct != 100 || chart.Bars[2].FloorPx != 20 {
		t.Errorf("tallest bar should be 100%% with a floor, got %+v", chart.Bars[2])
	}
	if chart.Bars[1].HeightPct != 0 || chart.Bars[1].FloorPx != 0 {
		t.Errorf("zero-count bar gets no height and no floor, got %+v", chart.Bars[1])
	}
}

func TestLikertChartWrapped(t *testing.T) {
	chart := buildLikertChart(json.RawMessage(`{"distribution":{"4":2,"5":2},"average":4.5}`))
	if chart == nil {
		t.Fatal("expected a chart")
	}
	if chart.Average != 4.5 || chart.AverageLabel != "4.50" {
		t.Errorf("expected supplied average 4.5, got %v (%q)", chart.Average, chart.AverageLabel)
	}

	// Without a usable average the weighted mean fills in
	chart = buildLikertChart(json.RawMessage(`{"distribution":{"4":2,"5":2}}`))
	if chart == nil {
		t.Fatal("expected a chart")
	}
	if math.Abs(chart.Average-4.5) > 1e-9 {
		t.Errorf("expected computed average 4.5, got %v", chart.Average)
	}
}

func TestLikertChartIgnoresBadKeysAndCounts(t *testing.T) {
	chart := buildLikertChart(json.RawMessage(`{"1":2,"two":5,"3":"lots"}`))
	if chart == nil {
		t.Fatal("expected a chart")
	}
	if len(chart.Bars) != 2 {
		t.Fatalf("expected non-integer keys dropped, got %+v", chart.Bars)
	}
	if chart.Bars[1].Value != 3 || chart.Bars[1].Count != 0 {
		t.Errorf("non-numeric count should read as zero, got %+v", chart.Bars[1])
	}

	if chart := buildLikertChart(json.RawMessage(`{"only":"words"}`)); chart != nil {
		t.Errorf("expected no chart without numeric keys, got %+v", chart)
	}
}

func TestTextBreakdownWordCloud(t *testing.T) {
	breakdown := buildTextBreakdown(json.RawMessage(`{
		"word_frequency": {"pace": 4, "great": 2, "slides": 2, "ok": 1},
		"responses": ["The pace was great", "pace ok"]
	}`))

	if len(breakdown.Responses) != 2 {
		t.Fatalf("expected 2 responses, got %d", len(breakdown.Responses))
	}
	if len(breakdown.Words) != 4 {
		t.Fatalf("expected 4 cloud words, got %d", len(breakdown.Words))
	}

	top := breakdown.Words[0]
	if top.Word != "pace" || top.SizePx != 32 || top.Opacity != 1.0 {
		t.Errorf("top word scales to max size, got %+v", top)
	}
	// Ties break alphabetically
	if breakdown.Words[1].Word != "great" || breakdown.Words[2].Word != "slides" {
		t.Errorf("expected tie broken alphabetically, got %s then %s", breakdown.Words[1].Word, breakdown.Words[2].Word)
	}
	half := breakdown.Words[1]
	if half.SizePx != 22 || half.Opacity != 0.75 {
		t.Errorf("expected half-frequency word at 22px/0.75, got %+v", half)
	}
}

func TestTextBreakdownCapsAtTwenty(t *testing.T) {
	freq := make(map[string]int, 25)
	for i := 0; i < 25; i++ {
		freq[fmt.Sprintf("word%02d", i)] = i + 1
	}
	data, _ := json.Marshal(map[string]interface{}{"word_frequency": freq})

	breakdown := buildTextBreakdown(data)
	if len(breakdown.Words) != 20 {
		t.Errorf("expected the cloud capped at 20 words, got %d", len(breakdown.Words))
	}
	if breakdown.Words[0].Count != 25 {
		t.Errorf("expected highest-frequency word first, got %+v", breakdown.Words[0])
	}
}

func TestTextBreakdownDegradesIndependently(t *testing.T) {
	breakdown := buildTextBreakdown(json.RawMessage(`{
		"word_frequency": ["not", "a", "map"],
		"responses": ["still here"]
	}`))
	if breakdown.Words != nil {
		t.Errorf("malformed frequency should yield no cloud, got %+v", breakdown.Words)
	}
	if len(breakdown.Responses) != 1 || breakdown.Responses[0] != "still here" {
		t.Errorf("responses must survive a malformed cloud section, got %+v", breakdown.Responses)
	}

	breakdown = buildTextBreakdown(json.RawMessage(`not json`))
	if breakdown == nil || breakdown.Words != nil || breakdown.Responses != nil {
		t.Errorf("fully malformed payload degrades to empty sections, got %+v", breakdown)
	}
}

func TestAnalyticsOverviewDispatch(t *testing.T) {
	survey := testSurvey(3, false)
	surveys := &fakeSurveyAPI{
		survey: survey,
		analytics: []model.AnalyticsData{
			{QuestionID: 1, QuestionText: "Question 1", QuestionType: model.QuestionMCQ, TotalResponses: 3, Data: json.RawMessage(`{"A":2,"B":1}`)},
			{QuestionID: 2, QuestionText: "Question 2", QuestionType: model.QuestionLikert, TotalResponses: 3, Data: json.RawMessage(`{"4":1,"5":2}`)},
			{QuestionID: 3, QuestionText: "Question 3", QuestionType: model.QuestionShortAnswer, TotalResponses: 2, Data: json.RawMessage(`{"responses":["good"],"word_frequency":{"good":1}}`)},
		},
	}
	svc := NewAnalyticsService(surveys)

	view, err := svc.Overview(context.Background(), testSession(), 10)
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}
	if len(view.Questions) != 3 {
		t.Fatalf("expected 3 question views, got %d", len(view.Questions))
	}
	if view.Questions[0].MCQ == nil || view.Questions[0].Likert != nil || view.Questions[0].Text != nil {
		t.Errorf("mcq question should carry only the mcq chart: %+v", view.Questions[0])
	}
	if view.Questions[1].Likert == nil {
		t.Errorf("likert question missing its chart: %+v", view.Questions[1])
	}
	if view.Questions[2].Text == nil {
		t.Errorf("text question missing its breakdown: %+v", view.Questions[2])
	}
}
