package service

import (
	"context"
	"errors"
	"testing"

	"github.com/VincentPrime/Survey-client/internal/model"
)

func newTakeFixture(survey *model.Survey) (*TakeService, *fakeSurveyAPI, *fakeResponseAPI, *fakeAttemptCache) {
	surveys := &fakeSurveyAPI{survey: survey}
	responses := &fakeResponseAPI{}
	attempts := newFakeAttemptCache()
	return NewTakeService(surveys, responses, attempts), surveys, responses, attempts
}

func TestStartBlockedAfterSubmission(t *testing.T) {
	svc, surveys, _, _ := newTakeFixture(testSurvey(3, true))
	surveys.submitted = true

	_, err := svc.Start(context.Background(), testSession(), 10)
	if !errors.Is(err, ErrAlreadySubmitted) {
		t.Fatalf("expected ErrAlreadySubmitted, got %v", err)
	}
	if surveys.getCalls != 0 {
		t.Errorf("survey should not be fetched after the submission check blocks entry, got %d fetches", surveys.getCalls)
	}
}

func TestStartOpensFirstPage(t *testing.T) {
	svc, _, _, _ := newTakeFixture(testSurvey(7, false))

	view, err := svc.Start(context.Background(), testSession(), 10)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if view.Page != 1 || view.TotalPages != 2 {
		t.Errorf("expected page 1 of 2, got %d of %d", view.Page, view.TotalPages)
	}
	if len(view.Questions) != 5 {
		t.Errorf("expected 5 questions on the first page, got %d", len(view.Questions))
	}
	if view.Progress != 0 {
		t.Errorf("expected 0%% progress, got %d", view.Progress)
	}
}

func TestSetAnswerRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name       string
		questionID int
		value      model.AnswerValue
		wantErr    error
	}{
		{"choice outside options", 1, model.ChoiceAnswer("Z"), ErrInvalidChoice},
		{"rating above scale", 2, model.NumberAnswer(6), ErrOutOfRange},
		{"rating below scale", 2, model.NumberAnswer(0), ErrOutOfRange},
		{"text for mcq question", 1, model.TextAnswer("hello"), ErrAnswerMismatch},
		{"choice for likert question", 2, model.ChoiceAnswer("A"), ErrAnswerMismatch},
		{"unknown question", 99, model.TextAnswer("hello"), ErrUnknownQuestion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _, _ := newTakeFixture(testSurvey(3, true))
			sess := testSession()
			if _, err := svc.Start(context.Background(), sess, 10); err != nil {
				t.Fatalf("Start: %v", err)
			}

			_, err := svc.SetAnswer(context.Background(), sess, 10, tt.questionID, tt.value)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}

			view, err := svc.Current(context.Background(), sess, 10)
			if err != nil {
				t.Fatalf("Current: %v", err)
			}
			if len(view.Answers) != 0 {
				t.Errorf("rejected answer must leave the answer map unchanged, got %d entries", len(view.Answers))
			}
		})
	}
}

func TestSetAnswerUpdatesProgress(t *testing.T) {
	svc, _, _, _ := newTakeFixture(testSurvey(3, true))
	sess := testSession()
	if _, err := svc.Start(context.Background(), sess, 10); err != nil {
		t.Fatalf("Start: %v", err)
	}

	view, err := svc.SetAnswer(context.Background(), sess, 10, 1, model.ChoiceAnswer("A"))
	if err != nil {
		t.Fatalf("SetAnswer: %v", err)
	}
	if got := view.Answers[1].Choice; got != "A" {
		t.Errorf("expected stored choice A, got %q", got)
	}
	if view.Progress != 33 {
		t.Errorf("expected 33%% progress after 1 of 3, got %d", view.Progress)
	}

	view, err = svc.SetAnswer(context.Background(), sess, 10, 2, model.NumberAnswer(4))
	if err != nil {
		t.Fatalf("SetAnswer: %v", err)
	}
	if view.Progress != 67 {
		t.Errorf("expected 67%% progress after 2 of 3, got %d", view.Progress)
	}
}

func TestNextGatedOnRequiredAnswers(t *testing.T) {
	svc, _, _, _ := newTakeFixture(testSurvey(6, true))
	sess := testSession()
	if _, err := svc.Start(context.Background(), sess, 10); err != nil {
		t.Fatalf("Start: %v", err)
	}

	answer := func(id int) {
		t.Helper()
		q := testSurvey(6, true).Questions[id-1]
		var v model.AnswerValue
		switch q.QuestionType {
		case model.QuestionMCQ:
			v = model.ChoiceAnswer("A")
		case model.QuestionLikert:
			v = model.NumberAnswer(3)
		default:
			v = model.TextAnswer("fine")
		}
		if _, err := svc.SetAnswer(context.Background(), sess, 10, id, v); err != nil {
			t.Fatalf("SetAnswer(%d): %v", id, err)
		}
	}

	for id := 1; id <= 4; id++ {
		answer(id)
	}

	if _, err := svc.Next(context.Background(), sess, 10); !errors.Is(err, ErrRequiredUnanswered) {
		t.Fatalf("expected ErrRequiredUnanswered with question 5 blank, got %v", err)
	}
	view, _ := svc.Current(context.Background(), sess, 10)
	if view.Page != 1 {
		t.Errorf("failed validation must not advance the page, got page %d", view.Page)
	}

	answer(5)
	view, err := svc.Next(context.Background(), sess, 10)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if view.Page != 2 {
		t.Errorf("expected page 2, got %d", view.Page)
	}

	// Going back never validates
	view, err = svc.Previous(context.Background(), sess, 10)
	if err != nil {
		t.Fatalf("Previous: %v", err)
	}
	if view.Page != 1 {
		t.Errorf("expected page 1 after Previous, got %d", view.Page)
	}
}

func TestSubmitNormalizesAnswers(t *testing.T) {
	survey := testSurvey(3, false)
	survey.Questions[0].IsRequired = true
	survey.Questions[1].IsRequired = true
	svc, _, responses, attempts := newTakeFixture(survey)
	sess := testSession()

	if _, err := svc.Start(context.Background(), sess, 10); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, err := svc.SetAnswer(context.Background(), sess, 10, 1, model.ChoiceAnswer("B")); err != nil {
		t.Fatalf("SetAnswer: %v", err)
	}
	if _, err := svc.SetAnswer(context.Background(), sess, 10, 2, model.NumberAnswer(4)); err != nil {
		t.Fatalf("SetAnswer: %v", err)
	}

	if _, err := svc.Submit(context.Background(), sess, 10); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if len(responses.submitted) != 1 {
		t.Fatalf("expected a single submission call, got %d", len(responses.submitted))
	}
	payload := responses.submitted[0]
	if payload.Survey != 10 {
		t.Errorf("expected survey 10 in payload, got %d", payload.Survey)
	}
	if len(payload.Answers) != 2 {
		t.Fatalf("expected 2 answers (question 3 skipped), got %d", len(payload.Answers))
	}

	first := payload.Answers[0]
	if first.QuestionID != 1 || first.AnswerChoice == nil || *first.AnswerChoice != "B" {
		t.Errorf("mcq answer not normalized to answer_choice: %+v", first)
	}
	if first.AnswerText != nil || first.AnswerNumber != nil {
		t.Errorf("mcq answer must populate only answer_choice: %+v", first)
	}

	second := payload.Answers[1]
	if second.QuestionID != 2 || second.AnswerNumber == nil || *second.AnswerNumber != 4 {
		t.Errorf("likert answer not normalized to answer_number: %+v", second)
	}

	if len(attempts.states) != 0 {
		t.Errorf("successful submit must discard the attempt")
	}
}

func TestSubmitRequiresAllRequiredQuestions(t *testing.T) {
	svc, _, responses, _ := newTakeFixture(testSurvey(3, true))
	sess := testSession()

	if _, err := svc.Start(context.Background(), sess, 10); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, err := svc.SetAnswer(context.Background(), sess, 10, 1, model.ChoiceAnswer("A")); err != nil {
		t.Fatalf("SetAnswer: %v", err)
	}

	_, err := svc.Submit(context.Background(), sess, 10)
	if !errors.Is(err, ErrRequiredUnanswered) {
		t.Fatalf("expected ErrRequiredUnanswered, got %v", err)
	}
	if len(responses.submitted) != 0 {
		t.Errorf("failed validation must not reach the backend")
	}
}

func TestSubmitFailureKeepsAttempt(t *testing.T) {
	svc, _, responses, attempts := newTakeFixture(testSurvey(1, true))
	responses.submitErr = errors.New("upstream down")
	sess := testSession()

	if _, err := svc.Start(context.Background(), sess, 10); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, err := svc.SetAnswer(context.Background(), sess, 10, 1, model.ChoiceAnswer("C")); err != nil {
		t.Fatalf("SetAnswer: %v", err)
	}

	if _, err := svc.Submit(context.Background(), sess, 10); err == nil {
		t.Fatal("expected submit error")
	}
	if len(attempts.states) != 1 {
		t.Errorf("failed submit must keep the attempt for retry")
	}

	view, err := svc.Current(context.Background(), sess, 10)
	if err != nil {
		t.Fatalf("Current after failed submit: %v", err)
	}
	if got := view.Answers[1].Choice; got != "C" {
		t.Errorf("answers must survive a failed submit, got %q", got)
	}
}

func TestCurrentWithoutAttempt(t *testing.T) {
	svc, _, _, _ := newTakeFixture(testSurvey(1, false))
	_, err := svc.Current(context.Background(), testSession(), 10)
	if !errors.Is(err, ErrNoAttempt) {
		t.Fatalf("expected ErrNoAttempt, got %v", err)
	}
}
