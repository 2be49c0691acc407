package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/VincentPrime/Survey-client/internal/service"
	"github.com/VincentPrime/Survey-client/internal/transport/rest/middleware"
)

// ResponseHandler handles the response browsing and export endpoints
type ResponseHandler struct {
	responseSvc *service.ResponseService
}

// NewResponseHandler creates a new response handler
func NewResponseHandler(responseSvc *service.ResponseService) *ResponseHandler {
	return &ResponseHandler{responseSvc: responseSvc}
}

// List handles GET /v1/surveys/{surveyId}/responses?search=&page=
func (h *ResponseHandler) List(w http.ResponseWriter, r *http.Request) {
	surveyID, ok := pathInt(r, "surveyId")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid survey id")
		return
	}

	search := r.URL.Query().Get("search")
	page := 1
	if p := r.URL.Query().Get("page"); p != "" {
		if n, err := strconv.Atoi(p); err == nil {
			page = n
		}
	}

	sess := middleware.GetSession(r.Context())
	result, err := h.responseSvc.Overview(r.Context(), sess, surveyID, search, page)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Export handles GET /v1/surveys/{surveyId}/responses/export
func (h *ResponseHandler) Export(w http.ResponseWriter, r *http.Request) {
	surveyID, ok := pathInt(r, "surveyId")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid survey id")
		return
	}

	sess := middleware.GetSession(r.Context())
	report, err := h.responseSvc.Export(r.Context(), sess, surveyID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.FileName))
	w.WriteHeader(http.StatusOK)
	w.Write(report.Content)
}

// Detail handles GET /v1/responses/{responseId}
func (h *ResponseHandler) Detail(w http.ResponseWriter, r *http.Request) {
	responseID, ok := pathInt(r, "responseId")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid response id")
		return
	}

	sess := middleware.GetSession(r.Context())
	response, err := h.responseSvc.Detail(r.Context(), sess, responseID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, response)
}

// History handles GET /v1/history
func (h *ResponseHandler) History(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())
	history, err := h.responseSvc.History(r.Context(), sess)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, history)
}
