package handler

import (
	"net/http"

	"github.com/VincentPrime/Survey-client/internal/service"
	"github.com/VincentPrime/Survey-client/internal/transport/rest/middleware"
)

// DashboardHandler handles the role landing pages
type DashboardHandler struct {
	dashboardSvc *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardSvc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardSvc: dashboardSvc}
}

// Survey handles GET /v1/surveys/{surveyId}
func (h *DashboardHandler) Survey(w http.ResponseWriter, r *http.Request) {
	surveyID, ok := pathInt(r, "surveyId")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid survey id")
		return
	}

	sess := middleware.GetSession(r.Context())
	survey, err := h.dashboardSvc.Survey(r.Context(), sess, surveyID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, survey)
}

// Teacher handles GET /v1/dashboard/teacher
func (h *DashboardHandler) Teacher(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())
	dashboard, err := h.dashboardSvc.TeacherOverview(r.Context(), sess)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dashboard)
}

// Student handles GET /v1/dashboard/student
func (h *DashboardHandler) Student(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())
	dashboard, err := h.dashboardSvc.StudentOverview(r.Context(), sess)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dashboard)
}
