package service

import (
	"strings"
	"testing"
	"time"

	"github.com/VincentPrime/Survey-client/internal/model"
)

func stringPtr(s string) *string { return &s }
func intPtr(n int) *int          { return &n }

func exportFixture() (*model.Survey, []model.Response, time.Time) {
	survey := &model.Survey{
		ID:    10,
		Title: "Course Feedback",
		Questions: []model.Question{
			{ID: 1, QuestionText: "Pick one", QuestionType: model.QuestionMCQ, Options: []string{"Yes", "No"}},
			{ID: 2, QuestionText: "Rate the pace", QuestionType: model.QuestionLikert},
			{ID: 3, QuestionText: "Any comments?", QuestionType: model.QuestionLongAnswer},
		},
	}
	responses := []model.Response{
		{
			StudentName: `Dela Cruz, Juan`,
			SubmittedAt: time.Date(2026, 3, 5, 14, 30, 0, 0, time.UTC),
			Answers: []model.Answer{
				{Question: 1, AnswerChoice: stringPtr("Yes")},
				{Question: 2, AnswerNumber: intPtr(4)},
				{Question: 3, AnswerText: stringPtr(`He said "great"`)},
			},
		},
		{
			StudentName: "Reyes, Maria",
			SubmittedAt: time.Date(2026, 3, 6, 8, 5, 30, 0, time.UTC),
			Answers: []model.Answer{
				{Question: 1, AnswerChoice: stringPtr("No")},
			},
		},
	}
	now := time.Date(2026, 3, 7, 10, 0, 0, 0, time.UTC)
	return survey, responses, now
}

func TestReportLayout(t *testing.T) {
	survey, responses, now := exportFixture()
	report := BuildResponseReport(survey, responses, now)

	lines := strings.Split(string(report.Content), "\n")

	if lines[0] != `"Course Feedback - Response Report"` {
		t.Errorf("unexpected banner line %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], `"Generated on: `) {
		t.Errorf("unexpected timestamp line %q", lines[1])
	}
	if lines[2] != `"Total Responses: 2"` {
		t.Errorf("unexpected total line %q", lines[2])
	}
	if lines[3] != "" {
		t.Errorf("expected blank line after banner, got %q", lines[3])
	}
	if lines[4] != "Student Name,Submission Date,Submission Time,Question 1,Question 2,Question 3" {
		t.Errorf("unexpected header row %q", lines[4])
	}
	if lines[5] != `,,,"Pick one","Rate the pace","Any comments?"` {
		t.Errorf("unexpected question text row %q", lines[5])
	}
	if lines[6] != "---,---,---,---,---,---" {
		t.Errorf("unexpected separator row %q", lines[6])
	}
}

func TestReportDataRows(t *testing.T) {
	survey, responses, now := exportFixture()
	report := BuildResponseReport(survey, responses, now)

	lines := strings.Split(string(report.Content), "\n")

	if lines[7] != `"Dela Cruz, Juan",2026-03-05,14:30:00,"Yes",4,"He said ""great"""` {
		t.Errorf("unexpected first data row %q", lines[7])
	}
	if lines[8] != `"Reyes, Maria",2026-03-06,08:05:30,"No",(No answer),(No answer)` {
		t.Errorf("unexpected second data row %q", lines[8])
	}
	if lines[9] != "" || lines[10] != `"--- End of Report ---"` || lines[11] != `"Total Students: 2"` {
		t.Errorf("unexpected trailer %q %q %q", lines[9], lines[10], lines[11])
	}
}

func TestReportFileName(t *testing.T) {
	survey, responses, now := exportFixture()
	survey.Title = "Mid-Term Survey (Sec A)!"
	report := BuildResponseReport(survey, responses, now)

	want := "Mid_Term_Survey__Sec_A___responses_1772877600000.csv"
	if report.FileName != want {
		t.Errorf("expected %q, got %q", want, report.FileName)
	}
}
