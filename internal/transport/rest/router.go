package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"github.com/VincentPrime/Survey-client/internal/model"
	"github.com/VincentPrime/Survey-client/internal/service"
	"github.com/VincentPrime/Survey-client/internal/transport/rest/handler"
	"github.com/VincentPrime/Survey-client/internal/transport/rest/middleware"
)

// Container holds all dependencies for the router
type Container struct {
	SessionService   *service.SessionService
	TakeService      *service.TakeService
	AuthorService    *service.AuthorService
	ResponseService  *service.ResponseService
	AnalyticsService *service.AnalyticsService
	DashboardService *service.DashboardService
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.SessionService)
	takeHandler := handler.NewTakeHandler(c.TakeService)
	authorHandler := handler.NewAuthorHandler(c.AuthorService)
	responseHandler := handler.NewResponseHandler(c.ResponseService)
	analyticsHandler := handler.NewAnalyticsHandler(c.AnalyticsService)
	dashboardHandler := handler.NewDashboardHandler(c.DashboardService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.SessionService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/auth/signup", authHandler.Signup).Methods("POST", "OPTIONS")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Authenticated routes (any role)
	authed := v1.NewRoute().Subrouter()
	authed.Use(authMW.RequireSession)

	authed.HandleFunc("/auth/logout", authHandler.Logout).Methods("POST", "OPTIONS")
	authed.HandleFunc("/me", authHandler.Me).Methods("GET", "OPTIONS")
	authed.HandleFunc("/surveys/{surveyId}", dashboardHandler.Survey).Methods("GET", "OPTIONS")

	// Teacher routes
	teacherRoutes := authed.NewRoute().Subrouter()
	teacherRoutes.Use(authMW.RequireRole(model.RoleTeacher))

	teacherRoutes.HandleFunc("/dashboard/teacher", dashboardHandler.Teacher).Methods("GET", "OPTIONS")
	teacherRoutes.HandleFunc("/drafts", authorHandler.CreateDraft).Methods("POST", "OPTIONS")
	teacherRoutes.HandleFunc("/drafts/{draftId}", authorHandler.GetDraft).Methods("GET", "OPTIONS")
	teacherRoutes.HandleFunc("/drafts/{draftId}/questions", authorHandler.AddQuestion).Methods("POST", "OPTIONS")
	teacherRoutes.HandleFunc("/drafts/{draftId}/questions/{index}", authorHandler.RemoveQuestion).Methods("DELETE", "OPTIONS")
	teacherRoutes.HandleFunc("/drafts/{draftId}/publish", authorHandler.Publish).Methods("POST", "OPTIONS")
	teacherRoutes.HandleFunc("/surveys/{surveyId}", authorHandler.UpdateSurvey).Methods("PUT", "OPTIONS")
	teacherRoutes.HandleFunc("/surveys/{surveyId}", authorHandler.DeleteSurvey).Methods("DELETE", "OPTIONS")
	teacherRoutes.HandleFunc("/surveys/{surveyId}/responses", responseHandler.List).Methods("GET", "OPTIONS")
	teacherRoutes.HandleFunc("/surveys/{surveyId}/responses/export", responseHandler.Export).Methods("GET", "OPTIONS")
	teacherRoutes.HandleFunc("/surveys/{surveyId}/analytics", analyticsHandler.Get).Methods("GET", "OPTIONS")
	teacherRoutes.HandleFunc("/responses/{responseId}", responseHandler.Detail).Methods("GET", "OPTIONS")

	// Student routes
	studentRoutes := authed.NewRoute().Subrouter()
	studentRoutes.Use(authMW.RequireRole(model.RoleStudent))

	studentRoutes.HandleFunc("/dashboard/student", dashboardHandler.Student).Methods("GET", "OPTIONS")
	studentRoutes.HandleFunc("/history", responseHandler.History).Methods("GET", "OPTIONS")
	studentRoutes.HandleFunc("/surveys/{surveyId}/attempt", takeHandler.Start).Methods("POST", "OPTIONS")
	studentRoutes.HandleFunc("/surveys/{surveyId}/attempt", takeHandler.Current).Methods("GET", "OPTIONS")
	studentRoutes.HandleFunc("/surveys/{surveyId}/attempt/answers", takeHandler.Answer).Methods("PUT", "OPTIONS")
	studentRoutes.HandleFunc("/surveys/{surveyId}/attempt/next", takeHandler.Next).Methods("POST", "OPTIONS")
	studentRoutes.HandleFunc("/surveys/{surveyId}/attempt/previous", takeHandler.Previous).Methods("POST", "OPTIONS")
	studentRoutes.HandleFunc("/surveys/{surveyId}/attempt/submit", takeHandler.Submit).Methods("POST", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
