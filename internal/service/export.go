package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/VincentPrime/Survey-client/internal/model"
)

var fileNameSafe = regexp.MustCompile(`[^a-zA-Z0-9]`)

// ResponseReport is a downloadable CSV-style report. The layout carries
// banner, separator and trailer rows, so it is meant for reading in a
// spreadsheet rather than for machine parsing.
type ResponseReport struct {
	FileName string
	Content  []byte
}

// BuildResponseReport renders the full, unfiltered response set of a
// survey into the report format. Cells with commas or quotes are
// quoted with doubled inner quotes; the "(No answer)" placeholder is
// deliberately left bare.
func BuildResponseReport(survey *model.Survey, responses []model.Response, now time.Time) *ResponseReport {
	questions := survey.Questions
	headers := make([]string, 0, len(questions)+3)
	headers = append(headers, "Student Name", "Submission Date", "Submission Time")
	for i := range questions {
		headers = append(headers, fmt.Sprintf("Question %d", i+1))
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		b.WriteString(strings.Join(cells, ","))
		b.WriteString("\n")
	}

	writeRow([]string{quoteCell(survey.Title + " - Response Report")})
	writeRow([]string{quoteCell("Generated on: " + now.Format("Jan 2, 2006 3:04:05 PM"))})
	writeRow([]string{quoteCell(fmt.Sprintf("Total Responses: %d", len(responses)))})
	writeRow([]string{""})

	writeRow(headers)

	textRow := []string{"", "", ""}
	for i := range questions {
		textRow = append(textRow, quoteCell(questions[i].QuestionText))
	}
	writeRow(textRow)

	separator := make([]string, len(headers))
	for i := range separator {
		separator[i] = "---"
	}
	writeRow(separator)

	for _, r := range responses {
		row := []string{
			quoteCell(r.StudentName),
			r.SubmittedAt.Format("2006-01-02"),
			r.SubmittedAt.Format("15:04:05"),
		}
		for i := range questions {
			row = append(row, answerCell(&questions[i], r.Answers))
		}
		writeRow(row)
	}

	writeRow([]string{""})
	writeRow([]string{quoteCell("--- End of Report ---")})
	writeRow([]string{quoteCell(fmt.Sprintf("Total Students: %d", len(responses)))})

	return &ResponseReport{
		FileName: reportFileName(survey.Title, now),
		Content:  []byte(b.String()),
	}
}

// answerCell picks the populated variant of the stored answer: choice,
// then rating, then free text.
func answerCell(q *model.Question, answers []model.Answer) string {
	for i := range answers {
		a := &answers[i]
		if a.Question != q.ID {
			continue
		}
		if a.AnswerChoice != nil && *a.AnswerChoice != "" {
			return quoteCell(*a.AnswerChoice)
		}
		if a.AnswerNumber != nil {
			return strconv.Itoa(*a.AnswerNumber)
		}
		if a.AnswerText != nil && *a.AnswerText != "" {
			return quoteCell(*a.AnswerText)
		}
		break
	}
	return "(No answer)"
}

func quoteCell(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func reportFileName(title string, now time.Time) string {
	return fmt.Sprintf("%s_responses_%d.csv", fileNameSafe.ReplaceAllString(title, "_"), now.UnixMilli())
}
