package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/VincentPrime/Survey-client/internal/backend"
	"github.com/VincentPrime/Survey-client/internal/cache"
	"github.com/VincentPrime/Survey-client/internal/config"
	"github.com/VincentPrime/Survey-client/internal/service"
	"github.com/VincentPrime/Survey-client/internal/transport/rest"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()
	log.Printf("Backend API: %s", cfg.BackendURL)

	// Redis connection
	redisAddr := strings.TrimPrefix(cfg.RedisAddr, "redis://")
	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})
	defer rdb.Close()

	// Ping Redis
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize backend API clients
	client := backend.NewClient(cfg.BackendURL)
	authAPI := backend.NewAuthAPI(client)
	surveyAPI := backend.NewSurveyAPI(client)
	questionAPI := backend.NewQuestionAPI(client)
	responseAPI := backend.NewResponseAPI(client)

	// Initialize caches
	sessionCache := cache.NewSessionCache(rdb, cfg.SessionTTL)
	attemptCache := cache.NewAttemptCache(rdb)
	draftCache := cache.NewDraftCache(rdb)

	// Initialize services
	sessionSvc := service.NewSessionService(authAPI, sessionCache, cfg.JWTSecret, cfg.SessionTTL)
	takeSvc := service.NewTakeService(surveyAPI, responseAPI, attemptCache)
	authorSvc := service.NewAuthorService(surveyAPI, questionAPI, draftCache)
	responseSvc := service.NewResponseService(surveyAPI, responseAPI)
	analyticsSvc := service.NewAnalyticsService(surveyAPI)
	dashboardSvc := service.NewDashboardService(surveyAPI, responseAPI)

	// Create router with container
	container := &rest.Container{
		SessionService:   sessionSvc,
		TakeService:      takeSvc,
		AuthorService:    authorSvc,
		ResponseService:  responseSvc,
		AnalyticsService: analyticsSvc,
		DashboardService: dashboardSvc,
	}

	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /v1/auth/login")
		log.Println("  POST /v1/auth/signup")
		log.Println("  GET  /v1/dashboard/{teacher|student}")
		log.Println("  POST /v1/drafts")
		log.Println("  POST /v1/drafts/{draftId}/publish")
		log.Println("  POST /v1/surveys/{surveyId}/attempt")
		log.Println("  GET  /v1/surveys/{surveyId}/responses")
		log.Println("  GET  /v1/surveys/{surveyId}/responses/export")
		log.Println("  GET  /v1/surveys/{surveyId}/analytics")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
