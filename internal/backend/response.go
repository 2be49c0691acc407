package backend

import (
	"context"
	"fmt"

	"github.com/VincentPrime/Survey-client/internal/model"
)

// ResponseAPI wraps the backend's response endpoints
type ResponseAPI interface {
	Submit(ctx context.Context, token string, req *model.ResponseCreate) (*model.Response, error)
	BySurvey(ctx context.Context, token string, surveyID int) ([]model.Response, error)
	Get(ctx context.Context, token string, id int) (*model.Response, error)
	MyHistory(ctx context.Context, token string) ([]model.Response, error)
}

type responseAPI struct {
	client *Client
}

// NewResponseAPI creates the response endpoint wrapper
func NewResponseAPI(client *Client) ResponseAPI {
	return &responseAPI{client: client}
}

func (r *responseAPI) Submit(ctx context.Context, token string, req *model.ResponseCreate) (*model.Response, error) {
	data, err := r.client.do(ctx, "POST", "/api/responses/", token, req)
	if err != nil {
		return nil, err
	}
	var response model.Response
	if err := decode(data, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (r *responseAPI) BySurvey(ctx context.Context, token string, surveyID int) ([]model.Response, error) {
	data, err := r.client.do(ctx, "GET", fmt.Sprintf("/api/responses/by_survey/?survey_id=%d", surveyID), token, nil)
	if err != nil {
		return nil, err
	}
	var responses []model.Response
	if err := decode(data, &responses); err != nil {
		return nil, err
	}
	return responses, nil
}

func (r *responseAPI) Get(ctx context.Context, token string, id int) (*model.Response, error) {
	data, err := r.client.do(ctx, "GET", fmt.Sprintf("/api/responses/%d/", id), token, nil)
	if err != nil {
		return nil, err
	}
	var response model.Response
	if err := decode(data, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (r *responseAPI) MyHistory(ctx context.Context, token string) ([]model.Response, error) {
	data, err := r.client.do(ctx, "GET", "/api/responses/my_history/", token, nil)
	if err != nil {
		return nil, err
	}
	var responses []model.Response
	if err := decode(data, &responses); err != nil {
		return nil, err
	}
	return responses, nil
}
