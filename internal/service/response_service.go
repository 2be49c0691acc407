package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/VincentPrime/Survey-client/internal/backend"
	"github.com/VincentPrime/Survey-client/internal/model"
)

const responsesPerPage = 10

// ResponseService renders the teacher's response browser: the survey
// header plus a searched, paginated slice of its responses.
type ResponseService struct {
	surveys   backend.SurveyAPI
	responses backend.ResponseAPI
}

// NewResponseService creates a new response service
func NewResponseService(surveys backend.SurveyAPI, responses backend.ResponseAPI) *ResponseService {
	return &ResponseService{
		surveys:   surveys,
		responses: responses,
	}
}

// ResponsePage is one page of the response browser
type ResponsePage struct {
	Survey        *model.Survey    `json:"survey"`
	Total         int              `json:"total"`
	FilteredTotal int              `json:"filtered_total"`
	Page          int              `json:"page"`
	TotalPages    int              `json:"total_pages"`
	Rows          []model.Response `json:"rows"`
	RangeText     string           `json:"range_text"`
}

// Overview fetches the survey and its responses in parallel, filters by
// student name and returns the requested page. Search matches
// case-insensitively anywhere in the name; a page outside the filtered
// range is clamped.
func (s *ResponseService) Overview(ctx context.Context, sess *model.PortalSession, surveyID int, search string, page int) (*ResponsePage, error) {
	var (
		survey    *model.Survey
		responses []model.Response
		surveyErr error
		respErr   error
	)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		survey, surveyErr = s.surveys.Get(ctx, sess.Access, surveyID)
	}()
	go func() {
		defer wg.Done()
		responses, respErr = s.responses.BySurvey(ctx, sess.Access, surveyID)
	}()
	wg.Wait()

	if surveyErr != nil {
		return nil, surveyErr
	}
	if respErr != nil {
		return nil, respErr
	}

	filtered := filterByStudent(responses, search)
	totalPages := pageCount(len(filtered), responsesPerPage)
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * responsesPerPage
	end := start + responsesPerPage
	if end > len(filtered) {
		end = len(filtered)
	}

	return &ResponsePage{
		Survey:        survey,
		Total:         len(responses),
		FilteredTotal: len(filtered),
		Page:          page,
		TotalPages:    totalPages,
		Rows:          filtered[start:end],
		RangeText:     rangeText(start, end, len(filtered)),
	}, nil
}

// Export renders the survey's full response set into a downloadable
// report. Any active search filter is deliberately not applied.
func (s *ResponseService) Export(ctx context.Context, sess *model.PortalSession, surveyID int) (*ResponseReport, error) {
	var (
		survey    *model.Survey
		responses []model.Response
		surveyErr error
		respErr   error
	)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		survey, surveyErr = s.surveys.Get(ctx, sess.Access, surveyID)
	}()
	go func() {
		defer wg.Done()
		responses, respErr = s.responses.BySurvey(ctx, sess.Access, surveyID)
	}()
	wg.Wait()

	if surveyErr != nil {
		return nil, surveyErr
	}
	if respErr != nil {
		return nil, respErr
	}

	return BuildResponseReport(survey, responses, time.Now()), nil
}

// Detail loads a single response with its answers
func (s *ResponseService) Detail(ctx context.Context, sess *model.PortalSession, responseID int) (*model.Response, error) {
	return s.responses.Get(ctx, sess.Access, responseID)
}

// History lists the session user's own submissions
func (s *ResponseService) History(ctx context.Context, sess *model.PortalSession) ([]model.Response, error) {
	return s.responses.MyHistory(ctx, sess.Access)
}

func filterByStudent(responses []model.Response, search string) []model.Response {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return responses
	}
	filtered := make([]model.Response, 0, len(responses))
	for _, r := range responses {
		if strings.Contains(strings.ToLower(r.StudentName), search) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func rangeText(start, end, total int) string {
	if total == 0 {
		return "Showing 0 to 0 of 0 results"
	}
	return fmt.Sprintf("Showing %d to %d of %d results", start+1, end, total)
}

func pageCount(total, perPage int) int {
	if total == 0 {
		return 1
	}
	return (total + perPage - 1) / perPage
}
