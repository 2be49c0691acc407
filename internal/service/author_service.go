package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/VincentPrime/Survey-client/internal/backend"
	"github.com/VincentPrime/Survey-client/internal/cache"
	"github.com/VincentPrime/Survey-client/internal/model"
)

var (
	ErrNoDraft       = errors.New("draft not found")
	ErrNotDraftOwner = errors.New("draft belongs to another session")
	ErrBlankTitle    = errors.New("title is required")
	ErrNoOptions     = errors.New("multiple choice questions need at least one non-empty option")
	ErrBadScale      = errors.New("scale minimum must not exceed maximum")
	ErrBadIndex      = errors.New("question index out of range")
	ErrEmptyDraft    = errors.New("draft has no questions")
)

// PartialPublishError reports a publish that created the survey but
// failed partway through question creation. The survey exists on the
// backend with Created questions; there is no rollback.
type PartialPublishError struct {
	SurveyID int
	Created  int
	Err      error
}

func (e *PartialPublishError) Error() string {
	return fmt.Sprintf("survey %d created with %d of its questions: %v", e.SurveyID, e.Created, e.Err)
}

func (e *PartialPublishError) Unwrap() error { return e.Err }

// DraftMetadata is the survey-level portion of the authoring wizard
type DraftMetadata struct {
	Title       string             `json:"title" validate:"required"`
	Description string             `json:"description"`
	Status      model.SurveyStatus `json:"status" validate:"omitempty,oneof=draft active closed"`
	DueDate     string             `json:"due_date"`
}

// AuthorService backs the survey creation wizard. Drafts are staged in
// the cache and nothing reaches the backend until Publish.
type AuthorService struct {
	surveys   backend.SurveyAPI
	questions backend.QuestionAPI
	drafts    cache.DraftCache
	validate  *validator.Validate
}

// NewAuthorService creates a new author service
func NewAuthorService(surveys backend.SurveyAPI, questions backend.QuestionAPI, drafts cache.DraftCache) *AuthorService {
	return &AuthorService{
		surveys:   surveys,
		questions: questions,
		drafts:    drafts,
		validate:  validator.New(),
	}
}

// StartDraft opens a new wizard draft for the session's user
func (s *AuthorService) StartDraft(ctx context.Context, sess *model.PortalSession, meta *DraftMetadata) (*model.SurveyDraft, error) {
	if err := s.validate.Struct(meta); err != nil {
		return nil, err
	}
	status := meta.Status
	if status == "" {
		status = model.StatusDraft
	}

	draft := &model.SurveyDraft{
		ID:          uuid.New().String(),
		OwnerID:     sess.UserID,
		Title:       strings.TrimSpace(meta.Title),
		Description: meta.Description,
		Status:      status,
		DueDate:     meta.DueDate,
		Questions:   []model.DraftQuestion{},
		CreatedAt:   time.Now(),
	}
	if draft.Title == "" {
		return nil, ErrBlankTitle
	}
	if err := s.drafts.Set(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// GetDraft loads a draft owned by the session's user
func (s *AuthorService) GetDraft(ctx context.Context, sess *model.PortalSession, draftID string) (*model.SurveyDraft, error) {
	draft, err := s.drafts.Get(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, ErrNoDraft
	}
	if draft.OwnerID != sess.UserID {
		return nil, ErrNotDraftOwner
	}
	return draft, nil
}

// AddQuestion validates and appends one staged question. Multiple
// choice questions keep only their non-empty options; scale questions
// default to a 1..5 range when none is given.
func (s *AuthorService) AddQuestion(ctx context.Context, sess *model.PortalSession, draftID string, q *model.DraftQuestion) (*model.SurveyDraft, error) {
	draft, err := s.GetDraft(ctx, sess, draftID)
	if err != nil {
		return nil, err
	}
	if err := s.validate.Struct(q); err != nil {
		return nil, err
	}

	switch q.QuestionType {
	case model.QuestionMCQ:
		options := make([]string, 0, len(q.Options))
		for _, opt := range q.Options {
			if strings.TrimSpace(opt) != "" {
				options = append(options, opt)
			}
		}
		if len(options) == 0 {
			return nil, ErrNoOptions
		}
		q.Options = options
	case model.QuestionLikert:
		if q.LikertMin == 0 && q.LikertMax == 0 {
			q.LikertMin = model.DefaultLikertMin
			q.LikertMax = model.DefaultLikertMax
		}
		if q.LikertMin > q.LikertMax {
			return nil, ErrBadScale
		}
	}

	draft.Questions = append(draft.Questions, *q)
	if err := s.drafts.Set(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// RemoveQuestion drops the staged question at the given position
func (s *AuthorService) RemoveQuestion(ctx context.Context, sess *model.PortalSession, draftID string, index int) (*model.SurveyDraft, error) {
	draft, err := s.GetDraft(ctx, sess, draftID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(draft.Questions) {
		return nil, ErrBadIndex
	}
	draft.Questions = append(draft.Questions[:index], draft.Questions[index+1:]...)
	if err := s.drafts.Set(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// Publish creates the survey on the backend, then creates its staged
// questions one at a time in order. A failure partway through leaves
// the already-created survey and questions in place and is reported as
// a PartialPublishError.
func (s *AuthorService) Publish(ctx context.Context, sess *model.PortalSession, draftID string) (*model.Survey, error) {
	draft, err := s.GetDraft(ctx, sess, draftID)
	if err != nil {
		return nil, err
	}
	if len(draft.Questions) == 0 {
		return nil, ErrEmptyDraft
	}

	survey, err := s.surveys.Create(ctx, sess.Access, &model.SurveyCreate{
		Title:       draft.Title,
		Description: draft.Description,
		Status:      draft.Status,
		DueDate:     draft.DueDate,
	})
	if err != nil {
		return nil, err
	}

	for i, dq := range draft.Questions {
		payload := &model.QuestionCreate{
			Survey:         survey.ID,
			QuestionText:   dq.QuestionText,
			QuestionType:   dq.QuestionType,
			Order:          i,
			IsRequired:     dq.IsRequired,
			Options:        dq.Options,
			LikertMin:      dq.LikertMin,
			LikertMax:      dq.LikertMax,
			LikertMinLabel: dq.LikertMinLabel,
			LikertMaxLabel: dq.LikertMaxLabel,
		}
		if _, err := s.questions.Create(ctx, sess.Access, payload); err != nil {
			return survey, &PartialPublishError{SurveyID: survey.ID, Created: i, Err: err}
		}
	}

	if err := s.drafts.Delete(ctx, draftID); err != nil {
		// The survey is already live; a leftover draft only lingers
		// until its TTL.
		return survey, nil
	}
	return survey, nil
}

// UpdateSurvey forwards a survey-level edit to the backend as-is
func (s *AuthorService) UpdateSurvey(ctx context.Context, sess *model.PortalSession, surveyID int, meta *DraftMetadata) (*model.Survey, error) {
	if err := s.validate.Struct(meta); err != nil {
		return nil, err
	}
	return s.surveys.Update(ctx, sess.Access, surveyID, &model.SurveyCreate{
		Title:       meta.Title,
		Description: meta.Description,
		Status:      meta.Status,
		DueDate:     meta.DueDate,
	})
}

// DeleteSurvey removes a survey on the backend
func (s *AuthorService) DeleteSurvey(ctx context.Context, sess *model.PortalSession, surveyID int) error {
	return s.surveys.Delete(ctx, sess.Access, surveyID)
}
