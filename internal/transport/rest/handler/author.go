package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/VincentPrime/Survey-client/internal/model"
	"github.com/VincentPrime/Survey-client/internal/service"
	"github.com/VincentPrime/Survey-client/internal/transport/rest/middleware"
)

// AuthorHandler handles the teacher's survey authoring endpoints
type AuthorHandler struct {
	authorSvc *service.AuthorService
}

// NewAuthorHandler creates a new author handler
func NewAuthorHandler(authorSvc *service.AuthorService) *AuthorHandler {
	return &AuthorHandler{authorSvc: authorSvc}
}

// CreateDraft handles POST /v1/drafts
func (h *AuthorHandler) CreateDraft(w http.ResponseWriter, r *http.Request) {
	var meta service.DraftMetadata
	if err := json.NewDecoder(r.Body).Decode(&meta); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sess := middleware.GetSession(r.Context())
	draft, err := h.authorSvc.StartDraft(r.Context(), sess, &meta)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, draft)
}

// GetDraft handles GET /v1/drafts/{draftId}
func (h *AuthorHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())
	draft, err := h.authorSvc.GetDraft(r.Context(), sess, mux.Vars(r)["draftId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

// AddQuestion handles POST /v1/drafts/{draftId}/questions
func (h *AuthorHandler) AddQuestion(w http.ResponseWriter, r *http.Request) {
	var q model.DraftQuestion
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sess := middleware.GetSession(r.Context())
	draft, err := h.authorSvc.AddQuestion(r.Context(), sess, mux.Vars(r)["draftId"], &q)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

// RemoveQuestion handles DELETE /v1/drafts/{draftId}/questions/{index}
func (h *AuthorHandler) RemoveQuestion(w http.ResponseWriter, r *http.Request) {
	index, ok := pathInt(r, "index")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid question index")
		return
	}

	sess := middleware.GetSession(r.Context())
	draft, err := h.authorSvc.RemoveQuestion(r.Context(), sess, mux.Vars(r)["draftId"], index)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

// Publish handles POST /v1/drafts/{draftId}/publish
func (h *AuthorHandler) Publish(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())
	survey, err := h.authorSvc.Publish(r.Context(), sess, mux.Vars(r)["draftId"])
	if err != nil {
		var partial *service.PartialPublishError
		if errors.As(err, &partial) {
			writeJSON(w, http.StatusBadGateway, map[string]interface{}{
				"error":             partial.Error(),
				"survey_id":         partial.SurveyID,
				"questions_created": partial.Created,
			})
			return
		}
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, survey)
}

// UpdateSurvey handles PUT /v1/surveys/{surveyId}
func (h *AuthorHandler) UpdateSurvey(w http.ResponseWriter, r *http.Request) {
	surveyID, ok := pathInt(r, "surveyId")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid survey id")
		return
	}

	var meta service.DraftMetadata
	if err := json.NewDecoder(r.Body).Decode(&meta); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sess := middleware.GetSession(r.Context())
	survey, err := h.authorSvc.UpdateSurvey(r.Context(), sess, surveyID, &meta)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, survey)
}

// DeleteSurvey handles DELETE /v1/surveys/{surveyId}
func (h *AuthorHandler) DeleteSurvey(w http.ResponseWriter, r *http.Request) {
	surveyID, ok := pathInt(r, "surveyId")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid survey id")
		return
	}

	sess := middleware.GetSession(r.Context())
	if err := h.authorSvc.DeleteSurvey(r.Context(), sess, surveyID); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
