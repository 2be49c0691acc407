package backend

import (
	"context"
	"fmt"

	"github.com/VincentPrime/Survey-client/internal/model"
)

// QuestionAPI wraps the backend's question CRUD endpoints
type QuestionAPI interface {
	ListBySurvey(ctx context.Context, token string, surveyID int) ([]model.Question, error)
	Create(ctx context.Context, token string, req *model.QuestionCreate) (*model.Question, error)
	Update(ctx context.Context, token string, id int, req *model.QuestionCreate) (*model.Question, error)
	Delete(ctx context.Context, token string, id int) error
}

type questionAPI struct {
	client *Client
}

// NewQuestionAPI creates the question endpoint wrapper
func NewQuestionAPI(client *Client) QuestionAPI {
	return &questionAPI{client: client}
}

func (q *questionAPI) ListBySurvey(ctx context.Context, token string, surveyID int) ([]model.Question, error) {
	data, err := q.client.do(ctx, "GET", fmt.Sprintf("/api/questions/?survey_id=%d", surveyID), token, nil)
	if err != nil {
		return nil, err
	}
	var questions []model.Question
	if err := decode(data, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (q *questionAPI) Create(ctx context.Context, token string, req *model.QuestionCreate) (*model.Question, error) {
	data, err := q.client.do(ctx, "POST", "/api/questions/", token, req)
	if err != nil {
		return nil, err
	}
	var question model.Question
	if err := decode(data, &question); err != nil {
		return nil, err
	}
	return &question, nil
}

func (q *questionAPI) Update(ctx context.Context, token string, id int, req *model.QuestionCreate) (*model.Question, error) {
	data, err := q.client.do(ctx, "PUT", fmt.Sprintf("/api/questions/%d/", id), token, req)
	if err != nil {
		return nil, err
	}
	var question model.Question
	if err := decode(data, &question); err != nil {
		return nil, err
	}
	return &question, nil
}

func (q *questionAPI) Delete(ctx context.Context, token string, id int) error {
	_, err := q.client.do(ctx, "DELETE", fmt.Sprintf("/api/questions/%d/", id), token, nil)
	return err
}
