package backend

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/VincentPrime/Survey-client/internal/model"
)

// SurveyAPI wraps the backend's survey CRUD, submission-check and
// analytics endpoints.
type SurveyAPI interface {
	List(ctx context.Context, token string) ([]model.SurveyListItem, error)
	Get(ctx context.Context, token string, id int) (*model.Survey, error)
	Create(ctx context.Context, token string, req *model.SurveyCreate) (*model.Survey, error)
	Update(ctx context.Context, token string, id int, req *model.SurveyCreate) (*model.Survey, error)
	Delete(ctx context.Context, token string, id int) error
	CheckSubmission(ctx context.Context, token string, id int) (bool, error)
	Analytics(ctx context.Context, token string, id int) ([]model.AnalyticsData, error)
}

type surveyAPI struct {
	client *Client
}

// NewSurveyAPI creates the survey endpoint wrapper
func NewSurveyAPI(client *Client) SurveyAPI {
	return &surveyAPI{client: client}
}

// List tolerates the three envelope shapes the backend has been seen
// to return: a bare array, {results: [...]} and {surveys: [...]}.
func (s *surveyAPI) List(ctx context.Context, token string) ([]model.SurveyListItem, error) {
	data, err := s.client.do(ctx, "GET", "/api/surveys/", token, nil)
	if err != nil {
		return nil, err
	}

	var list []model.SurveyListItem
	if err := json.Unmarshal(data, &list); err == nil {
		return list, nil
	}

	var envelope struct {
		Results []model.SurveyListItem `json:"results"`
		Surveys []model.SurveyListItem `json:"surveys"`
	}
	if err := decode(data, &envelope); err != nil {
		return nil, err
	}
	if envelope.Results != nil {
		return envelope.Results, nil
	}
	if envelope.Surveys != nil {
		return envelope.Surveys, nil
	}
	return []model.SurveyListItem{}, nil
}

func (s *surveyAPI) Get(ctx context.Context, token string, id int) (*model.Survey, error) {
	data, err := s.client.do(ctx, "GET", fmt.Sprintf("/api/surveys/%d/", id), token, nil)
	if err != nil {
		return nil, err
	}
	var survey model.Survey
	if err := decode(data, &survey); err != nil {
		return nil, err
	}
	return &survey, nil
}

func (s *surveyAPI) Create(ctx context.Context, token string, req *model.SurveyCreate) (*model.Survey, error) {
	data, err := s.client.do(ctx, "POST", "/api/surveys/", token, req)
	if err != nil {
		return nil, err
	}
	var survey model.Survey
	if err := decode(data, &survey); err != nil {
		return nil, err
	}
	return &survey, nil
}

func (s *surveyAPI) Update(ctx context.Context, token string, id int, req *model.SurveyCreate) (*model.Survey, error) {
	data, err := s.client.do(ctx, "PUT", fmt.Sprintf("/api/surveys/%d/", id), token, req)
	if err != nil {
		return nil, err
	}
	var survey model.Survey
	if err := decode(data, &survey); err != nil {
		return nil, err
	}
	return &survey, nil
}

func (s *surveyAPI) Delete(ctx context.Context, token string, id int) error {
	_, err := s.client.do(ctx, "DELETE", fmt.Sprintf("/api/surveys/%d/", id), token, nil)
	return err
}

func (s *surveyAPI) CheckSubmission(ctx context.Context, token string, id int) (bool, error) {
	data, err := s.client.do(ctx, "GET", fmt.Sprintf("/api/surveys/%d/check_submission/", id), token, nil)
	if err != nil {
		return false, err
	}
	var result struct {
		HasSubmitted bool `json:"has_submitted"`
	}
	if err := decode(data, &result); err != nil {
		return false, err
	}
	return result.HasSubmitted, nil
}

func (s *surveyAPI) Analytics(ctx context.Context, token string, id int) ([]model.AnalyticsData, error) {
	data, err := s.client.do(ctx, "GET", fmt.Sprintf("/api/surveys/%d/analytics/", id), token, nil)
	if err != nil {
		return nil, err
	}
	var analytics []model.AnalyticsData
	if err := decode(data, &analytics); err != nil {
		return nil, err
	}
	return analytics, nil
}
