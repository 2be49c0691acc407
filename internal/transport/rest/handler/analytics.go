package handler

import (
	"net/http"

	"github.com/VincentPrime/Survey-client/internal/service"
	"github.com/VincentPrime/Survey-client/internal/transport/rest/middleware"
)

// AnalyticsHandler handles the survey analytics endpoint
type AnalyticsHandler struct {
	analyticsSvc *service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsSvc *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsSvc: analyticsSvc}
}

// Get handles GET /v1/surveys/{surveyId}/analytics
func (h *AnalyticsHandler) Get(w http.ResponseWriter, r *http.Request) {
	surveyID, ok := pathInt(r, "surveyId")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid survey id")
		return
	}

	sess := middleware.GetSession(r.Context())
	view, err := h.analyticsSvc.Overview(r.Context(), sess, surveyID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}
