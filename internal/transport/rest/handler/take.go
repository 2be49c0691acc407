package handler

import (
	"encoding/json"
	"net/http"

	"github.com/VincentPrime/Survey-client/internal/model"
	"github.com/VincentPrime/Survey-client/internal/service"
	"github.com/VincentPrime/Survey-client/internal/transport/rest/middleware"
)

// TakeHandler handles the student survey-taking endpoints
type TakeHandler struct {
	takeSvc *service.TakeService
}

// NewTakeHandler creates a new take handler
func NewTakeHandler(takeSvc *service.TakeService) *TakeHandler {
	return &TakeHandler{takeSvc: takeSvc}
}

type answerRequest struct {
	QuestionID int    `json:"question_id"`
	Kind       string `json:"kind"`
	Choice     string `json:"choice,omitempty"`
	Number     int    `json:"number,omitempty"`
	Text       string `json:"text,omitempty"`
}

// Start handles POST /v1/surveys/{surveyId}/attempt
func (h *TakeHandler) Start(w http.ResponseWriter, r *http.Request) {
	surveyID, ok := pathInt(r, "surveyId")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid survey id")
		return
	}

	sess := middleware.GetSession(r.Context())
	view, err := h.takeSvc.Start(r.Context(), sess, surveyID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

// Current handles GET /v1/surveys/{surveyId}/attempt
func (h *TakeHandler) Current(w http.ResponseWriter, r *http.Request) {
	surveyID, ok := pathInt(r, "surveyId")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid survey id")
		return
	}

	sess := middleware.GetSession(r.Context())
	view, err := h.takeSvc.Current(r.Context(), sess, surveyID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Answer handles PUT /v1/surveys/{surveyId}/attempt/answers
func (h *TakeHandler) Answer(w http.ResponseWriter, r *http.Request) {
	surveyID, ok := pathInt(r, "surveyId")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid survey id")
		return
	}

	var req answerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	value := model.AnswerValue{
		Kind:   model.AnswerKind(req.Kind),
		Choice: req.Choice,
		Number: req.Number,
		Text:   req.Text,
	}

	sess := middleware.GetSession(r.Context())
	view, err := h.takeSvc.SetAnswer(r.Context(), sess, surveyID, req.QuestionID, value)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Next handles POST /v1/surveys/{surveyId}/attempt/next
func (h *TakeHandler) Next(w http.ResponseWriter, r *http.Request) {
	surveyID, ok := pathInt(r, "surveyId")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid survey id")
		return
	}

	sess := middleware.GetSession(r.Context())
	view, err := h.takeSvc.Next(r.Context(), sess, surveyID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Previous handles POST /v1/surveys/{surveyId}/attempt/previous
func (h *TakeHandler) Previous(w http.ResponseWriter, r *http.Request) {
	surveyID, ok := pathInt(r, "surveyId")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid survey id")
		return
	}

	sess := middleware.GetSession(r.Context())
	view, err := h.takeSvc.Previous(r.Context(), sess, surveyID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Submit handles POST /v1/surveys/{surveyId}/attempt/submit
func (h *TakeHandler) Submit(w http.ResponseWriter, r *http.Request) {
	surveyID, ok := pathInt(r, "surveyId")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid survey id")
		return
	}

	sess := middleware.GetSession(r.Context())
	response, err := h.takeSvc.Submit(r.Context(), sess, surveyID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, response)
}
