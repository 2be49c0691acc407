package service

import (
	"context"
	"sync"

	"github.com/VincentPrime/Survey-client/internal/backend"
	"github.com/VincentPrime/Survey-client/internal/model"
)

// DashboardService assembles the landing views for both roles
type DashboardService struct {
	surveys   backend.SurveyAPI
	responses backend.ResponseAPI
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(surveys backend.SurveyAPI, responses backend.ResponseAPI) *DashboardService {
	return &DashboardService{
		surveys:   surveys,
		responses: responses,
	}
}

// TeacherDashboard is the teacher landing view with summary stats
type TeacherDashboard struct {
	Surveys        []model.SurveyListItem `json:"surveys"`
	TotalSurveys   int                    `json:"total_surveys"`
	ActiveSurveys  int                    `json:"active_surveys"`
	TotalResponses int                    `json:"total_responses"`
}

// StudentDashboard is the student landing view: open surveys plus the
// student's own submission history.
type StudentDashboard struct {
	Surveys []model.SurveyListItem `json:"surveys"`
	History []model.Response       `json:"history"`
}

// Survey loads one survey with its questions
func (s *DashboardService) Survey(ctx context.Context, sess *model.PortalSession, surveyID int) (*model.Survey, error) {
	return s.surveys.Get(ctx, sess.Access, surveyID)
}

// TeacherOverview lists the teacher's surveys and derives the stat cards
func (s *DashboardService) TeacherOverview(ctx context.Context, sess *model.PortalSession) (*TeacherDashboard, error) {
	surveys, err := s.surveys.List(ctx, sess.Access)
	if err != nil {
		return nil, err
	}

	dashboard := &TeacherDashboard{
		Surveys:      surveys,
		TotalSurveys: len(surveys),
	}
	for _, sv := range surveys {
		if sv.Status == model.StatusActive {
			dashboard.ActiveSurveys++
		}
		dashboard.TotalResponses += sv.ResponseCount
	}
	return dashboard, nil
}

// StudentOverview fetches open surveys and submission history in parallel
func (s *DashboardService) StudentOverview(ctx context.Context, sess *model.PortalSession) (*StudentDashboard, error) {
	var (
		surveys    []model.SurveyListItem
		history    []model.Response
		surveyErr  error
		historyErr error
	)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		surveys, surveyErr = s.surveys.List(ctx, sess.Access)
	}()
	go func() {
		defer wg.Done()
		history, historyErr = s.responses.MyHistory(ctx, sess.Access)
	}()
	wg.Wait()

	if surveyErr != nil {
		return nil, surveyErr
	}
	if historyErr != nil {
		return nil, historyErr
	}

	return &StudentDashboard{Surveys: surveys, History: history}, nil
}
