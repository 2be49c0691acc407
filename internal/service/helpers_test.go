package service

import (
	"context"
	"fmt"
	"time"

	"github.com/VincentPrime/Survey-client/internal/model"
)

// In-memory fakes for the backend API wrappers and caches.

type fakeSurveyAPI struct {
	survey    *model.Survey
	list      []model.SurveyListItem
	analytics []model.AnalyticsData
	submitted bool

	getErr    error
	checkErr  error
	createErr error

	getCalls   int
	checkCalls int
	created    []*model.SurveyCreate
	updated    []*model.SurveyCreate
	deleted    []int
}

func (f *fakeSurveyAPI) List(ctx context.Context, token string) ([]model.SurveyListItem, error) {
	return f.list, nil
}

func (f *fakeSurveyAPI) Get(ctx context.Context, token string, id int) (*model.Survey, error) {
	f.getCalls++
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.survey, nil
}

func (f *fakeSurveyAPI) Create(ctx context.Context, token string, req *model.SurveyCreate) (*model.Survey, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, req)
	return &model.Survey{ID: 42, Title: req.Title, Description: req.Description, Status: req.Status}, nil
}

func (f *fakeSurveyAPI) Update(ctx context.Context, token string, id int, req *model.SurveyCreate) (*model.Survey, error) {
	f.updated = append(f.updated, req)
	return &model.Survey{ID: id, Title: req.Title}, nil
}

func (f *fakeSurveyAPI) Delete(ctx context.Context, token string, id int) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeSurveyAPI) CheckSubmission(ctx context.Context, token string, id int) (bool, error) {
	f.checkCalls++
	if f.checkErr != nil {
		return false, f.checkErr
	}
	return f.submitted, nil
}

func (f *fakeSurveyAPI) Analytics(ctx context.Context, token string, id int) ([]model.AnalyticsData, error) {
	return f.analytics, nil
}

type fakeQuestionAPI struct {
	created []*model.QuestionCreate
	failAt  int // fail the creation at this index; -1 disables
}

func newFakeQuestionAPI() *fakeQuestionAPI {
	return &fakeQuestionAPI{failAt: -1}
}

func (f *fakeQuestionAPI) ListBySurvey(ctx context.Context, token string, surveyID int) ([]model.Question, error) {
	return nil, nil
}

func (f *fakeQuestionAPI) Create(ctx context.Context, token string, req *model.QuestionCreate) (*model.Question, error) {
	if f.failAt >= 0 && len(f.created) == f.failAt {
		return nil, fmt.Errorf("question create failed")
	}
	f.created = append(f.created, req)
	return &model.Question{ID: 100 + len(f.created), QuestionText: req.QuestionText}, nil
}

func (f *fakeQuestionAPI) Update(ctx context.Context, token string, id int, req *model.QuestionCreate) (*model.Question, error) {
	return nil, nil
}

func (f *fakeQuestionAPI) Delete(ctx context.Context, token string, id int) error {
	return nil
}

type fakeResponseAPI struct {
	responses []model.Response
	history   []model.Response
	detail    *model.Response

	submitErr error
	submitted []*model.ResponseCreate
}

func (f *fakeResponseAPI) Submit(ctx context.Context, token string, req *model.ResponseCreate) (*model.Response, error) {
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	f.submitted = append(f.submitted, req)
	return &model.Response{ID: 1, Survey: req.Survey}, nil
}

func (f *fakeResponseAPI) BySurvey(ctx context.Context, token string, surveyID int) ([]model.Response, error) {
	return f.responses, nil
}

func (f *fakeResponseAPI) Get(ctx context.Context, token string, id int) (*model.Response, error) {
	return f.detail, nil
}

func (f *fakeResponseAPI) MyHistory(ctx context.Context, token string) ([]model.Response, error) {
	return f.history, nil
}

type fakeAttemptCache struct {
	states map[string]*model.AttemptState
}

func newFakeAttemptCache() *fakeAttemptCache {
	return &fakeAttemptCache{states: make(map[string]*model.AttemptState)}
}

func (f *fakeAttemptCache) key(sessionID string, surveyID int) string {
	return fmt.Sprintf("%s:%d", sessionID, surveyID)
}

func (f *fakeAttemptCache) Set(ctx context.Context, sessionID string, state *model.AttemptState) error {
	f.states[f.key(sessionID, state.SurveyID)] = state
	return nil
}

func (f *fakeAttemptCache) Get(ctx context.Context, sessionID string, surveyID int) (*model.AttemptState, error) {
	return f.states[f.key(sessionID, surveyID)], nil
}

func (f *fakeAttemptCache) Delete(ctx context.Context, sessionID string, surveyID int) error {
	delete(f.states, f.key(sessionID, surveyID))
	return nil
}

type fakeDraftCache struct {
	drafts map[string]*model.SurveyDraft
}

func newFakeDraftCache() *fakeDraftCache {
	return &fakeDraftCache{drafts: make(map[string]*model.SurveyDraft)}
}

func (f *fakeDraftCache) Set(ctx context.Context, draft *model.SurveyDraft) error {
	f.drafts[draft.ID] = draft
	return nil
}

func (f *fakeDraftCache) Get(ctx context.Context, id string) (*model.SurveyDraft, error) {
	return f.drafts[id], nil
}

func (f *fakeDraftCache) Delete(ctx context.Context, id string) error {
	delete(f.drafts, id)
	return nil
}

type fakeSessionCache struct {
	sessions map[string]*model.PortalSession
}

func newFakeSessionCache() *fakeSessionCache {
	return &fakeSessionCache{sessions: make(map[string]*model.PortalSession)}
}

func (f *fakeSessionCache) Set(ctx context.Context, session *model.PortalSession) error {
	f.sessions[session.ID] = session
	return nil
}

func (f *fakeSessionCache) Get(ctx context.Context, id string) (*model.PortalSession, error) {
	return f.sessions[id], nil
}

func (f *fakeSessionCache) Delete(ctx context.Context, id string) error {
	delete(f.sessions, id)
	return nil
}

type fakeAuthAPI struct {
	pair     *model.TokenPair
	user     *model.User
	loginErr error
}

func (f *fakeAuthAPI) Login(ctx context.Context, username, password string) (*model.TokenPair, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.pair, nil
}

func (f *fakeAuthAPI) Signup(ctx context.Context, req *model.SignupRequest) (*model.User, error) {
	return f.user, nil
}

func (f *fakeAuthAPI) Me(ctx context.Context, token string) (*model.User, error) {
	return f.user, nil
}

func testSession() *model.PortalSession {
	return &model.PortalSession{
		ID:        "sess-1",
		UserID:    7,
		Username:  "jdoe",
		Role:      model.RoleStudent,
		Access:    "access-token",
		Refresh:   "refresh-token",
		CreatedAt: time.Now(),
	}
}

// testSurvey builds a survey whose question types cycle through mcq,
// likert and short answer.
func testSurvey(questionCount int, required bool) *model.Survey {
	s := &model.Survey{
		ID:          10,
		Title:       "Course Feedback",
		Description: "End of term feedback",
		Status:      model.StatusActive,
	}
	for i := 1; i <= questionCount; i++ {
		q := model.Question{
			ID:           i,
			Survey:       s.ID,
			QuestionText: fmt.Sprintf("Question %d", i),
			Order:        i - 1,
			IsRequired:   required,
		}
		switch i % 3 {
		case 1:
			q.QuestionType = model.QuestionMCQ
			q.Options = []string{"A", "B", "C"}
		case 2:
			q.QuestionType = model.QuestionLikert
			q.LikertMin = 1
			q.LikertMax = 5
		default:
			q.QuestionType = model.QuestionShortAnswer
		}
		s.Questions = append(s.Questions, q)
	}
	return s
}
