package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/VincentPrime/Survey-client/internal/backend"
	"github.com/VincentPrime/Survey-client/internal/cache"
	"github.com/VincentPrime/Survey-client/internal/model"
)

const questionsPerPage = 5

var (
	ErrAlreadySubmitted   = errors.New("survey already submitted")
	ErrNoAttempt          = errors.New("no attempt in progress")
	ErrUnknownQuestion    = errors.New("question does not belong to this survey")
	ErrAnswerMismatch     = errors.New("answer kind does not match question type")
	ErrInvalidChoice      = errors.New("choice is not one of the question's options")
	ErrOutOfRange         = errors.New("rating is outside the question's scale")
	ErrRequiredUnanswered = errors.New("required question not answered")
)

// TakeService drives the survey-taking flow: one attempt per
// (session, survey), paged questions, required-answer gating and a
// single normalized submission. Answers are validated against the
// question's declared type when inserted.
type TakeService struct {
	surveys   backend.SurveyAPI
	responses backend.ResponseAPI
	attempts  cache.AttemptCache
}

// NewTakeService creates a new take service
func NewTakeService(surveys backend.SurveyAPI, responses backend.ResponseAPI, attempts cache.AttemptCache) *TakeService {
	return &TakeService{
		surveys:   surveys,
		responses: responses,
		attempts:  attempts,
	}
}

// TakeView is the rendered state of an attempt: the current page of
// questions plus overall progress.
type TakeView struct {
	SurveyID    int                       `json:"survey_id"`
	Title       string                    `json:"title"`
	Description string                    `json:"description"`
	Page        int                       `json:"page"`
	TotalPages  int                       `json:"total_pages"`
	Questions   []model.Question          `json:"questions"`
	Answers     map[int]model.AnswerValue `json:"answers"`
	Progress    int                       `json:"progress"`
}

// Start checks prior submission and opens a fresh attempt. A student
// who has already submitted never reaches the question-rendering state;
// this check happens once on entry and is not repeated before submit.
func (s *TakeService) Start(ctx context.Context, sess *model.PortalSession, surveyID int) (*TakeView, error) {
	submitted, err := s.surveys.CheckSubmission(ctx, sess.Access, surveyID)
	if err != nil {
		return nil, err
	}
	if submitted {
		return nil, ErrAlreadySubmitted
	}

	survey, err := s.surveys.Get(ctx, sess.Access, surveyID)
	if err != nil {
		return nil, err
	}

	state := &model.AttemptState{
		SurveyID:  surveyID,
		Survey:    survey,
		Page:      0,
		Answers:   make(map[int]model.AnswerValue),
		StartedAt: time.Now(),
	}
	if err := s.attempts.Set(ctx, sess.ID, state); err != nil {
		return nil, err
	}
	return s.view(state), nil
}

// Current returns the attempt's current page
func (s *TakeService) Current(ctx context.Context, sess *model.PortalSession, surveyID int) (*TakeView, error) {
	state, err := s.load(ctx, sess, surveyID)
	if err != nil {
		return nil, err
	}
	return s.view(state), nil
}

// SetAnswer records one answer in the attempt's answer map. The tagged
// value must match the question's declared type; mcq choices must be
// one of the question's options and likert ratings must fall inside
// the scale. A rejected answer leaves the map unchanged.
func (s *TakeService) SetAnswer(ctx context.Context, sess *model.PortalSession, surveyID, questionID int, value model.AnswerValue) (*TakeView, error) {
	state, err := s.load(ctx, sess, surveyID)
	if err != nil {
		return nil, err
	}

	question := findQuestion(state.Survey.Questions, questionID)
	if question == nil {
		return nil, ErrUnknownQuestion
	}
	if value.Kind != model.KindForQuestionType(question.QuestionType) {
		return nil, fmt.Errorf("%w: question %d", ErrAnswerMismatch, questionID)
	}
	switch question.QuestionType {
	case model.QuestionMCQ:
		if !question.HasOption(value.Choice) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidChoice, value.Choice)
		}
	case model.QuestionLikert:
		min, max := question.LikertRange()
		if value.Number < min || value.Number > max {
			return nil, fmt.Errorf("%w: %d not in [%d,%d]", ErrOutOfRange, value.Number, min, max)
		}
	}

	state.Answers[questionID] = value
	if err := s.attempts.Set(ctx, sess.ID, state); err != nil {
		return nil, err
	}
	return s.view(state), nil
}

// Next advances to the next page. Navigation is blocked until every
// required question on the current page has a non-empty answer.
func (s *TakeService) Next(ctx context.Context, sess *model.PortalSession, surveyID int) (*TakeView, error) {
	state, err := s.load(ctx, sess, surveyID)
	if err != nil {
		return nil, err
	}

	if err := validatePage(state, state.Page); err != nil {
		return nil, err
	}
	if state.Page+1 < totalPages(len(state.Survey.Questions)) {
		state.Page++
		if err := s.attempts.Set(ctx, sess.ID, state); err != nil {
			return nil, err
		}
	}
	return s.view(state), nil
}

// Previous goes back one page; reviewing earlier answers is always allowed
func (s *TakeService) Previous(ctx context.Context, sess *model.PortalSession, surveyID int) (*TakeView, error) {
	state, err := s.load(ctx, sess, surveyID)
	if err != nil {
		return nil, err
	}
	if state.Page > 0 {
		state.Page--
		if err := s.attempts.Set(ctx, sess.ID, state); err != nil {
			return nil, err
		}
	}
	return s.view(state), nil
}

// Submit re-validates every required question across the whole survey,
// normalizes the collected answers into the wire format and performs
// the single submission call. On failure the attempt is left intact; on
// success it is discarded.
func (s *TakeService) Submit(ctx context.Context, sess *model.PortalSession, surveyID int) (*model.Response, error) {
	state, err := s.load(ctx, sess, surveyID)
	if err != nil {
		return nil, err
	}

	questions := state.Survey.Questions
	for i := range questions {
		q := &questions[i]
		if !q.IsRequired {
			continue
		}
		if v, ok := state.Answers[q.ID]; !ok || v.IsEmpty() {
			return nil, fmt.Errorf("%w: %s", ErrRequiredUnanswered, q.QuestionText)
		}
	}

	payload := &model.ResponseCreate{
		Survey:  surveyID,
		Answers: normalizeAnswers(questions, state.Answers),
	}

	response, err := s.responses.Submit(ctx, sess.Access, payload)
	if err != nil {
		return nil, err
	}

	// The submission already succeeded; a stale attempt only wastes
	// cache space until its TTL lapses.
	_ = s.attempts.Delete(ctx, sess.ID, surveyID)
	return response, nil
}

// normalizeAnswers converts the answer map into the wire payload. The
// populated field is chosen from the looked-up question type, and
// answers are emitted in question order.
func normalizeAnswers(questions []model.Question, answers map[int]model.AnswerValue) []model.AnswerCreate {
	out := make([]model.AnswerCreate, 0, len(answers))
	for i := range questions {
		q := &questions[i]
		v, ok := answers[q.ID]
		if !ok || v.IsEmpty() {
			continue
		}
		a := model.AnswerCreate{QuestionID: q.ID}
		switch q.QuestionType {
		case model.QuestionMCQ:
			choice := v.Choice
			a.AnswerChoice = &choice
		case model.QuestionLikert:
			number := v.Number
			a.AnswerNumber = &number
		default:
			text := v.Text
			a.AnswerText = &text
		}
		out = append(out, a)
	}
	return out
}

func (s *TakeService) load(ctx context.Context, sess *model.PortalSession, surveyID int) (*model.AttemptState, error) {
	state, err := s.attempts.Get(ctx, sess.ID, surveyID)
	if err != nil {
		return nil, err
	}
	if state == nil || state.Survey == nil {
		return nil, ErrNoAttempt
	}
	return state, nil
}

func (s *TakeService) view(state *model.AttemptState) *TakeView {
	questions := state.Survey.Questions
	start := state.Page * questionsPerPage
	end := start + questionsPerPage
	if end > len(questions) {
		end = len(questions)
	}
	if start > len(questions) {
		start = len(questions)
	}

	answers := make(map[int]model.AnswerValue, len(state.Answers))
	for id, v := range state.Answers {
		answers[id] = v
	}

	return &TakeView{
		SurveyID:    state.SurveyID,
		Title:       state.Survey.Title,
		Description: state.Survey.Description,
		Page:        state.Page + 1,
		TotalPages:  totalPages(len(questions)),
		Questions:   questions[start:end],
		Answers:     answers,
		Progress:    progress(state),
	}
}

// progress is the cosmetic completion indicator: answered map size over
// total question count, rounded to integer percent.
func progress(state *model.AttemptState) int {
	total := len(state.Survey.Questions)
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(state.AnsweredCount()) / float64(total) * 100))
}

func validatePage(state *model.AttemptState, page int) error {
	questions := state.Survey.Questions
	start := page * questionsPerPage
	end := start + questionsPerPage
	if end > len(questions) {
		end = len(questions)
	}
	for i := start; i < end; i++ {
		q := &questions[i]
		if !q.IsRequired {
			continue
		}
		if v, ok := state.Answers[q.ID]; !ok || v.IsEmpty() {
			return fmt.Errorf("%w: %s", ErrRequiredUnanswered, q.QuestionText)
		}
	}
	return nil
}

func totalPages(questionCount int) int {
	if questionCount == 0 {
		return 1
	}
	return (questionCount + questionsPerPage - 1) / questionsPerPage
}

func findQuestion(questions []model.Question, id int) *model.Question {
	for i := range questions {
		if questions[i].ID == id {
			return &questions[i]
		}
	}
	return nil
}
