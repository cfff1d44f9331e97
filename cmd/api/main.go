package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"profilecard-backend/config"
	_ "profilecard-backend/docs" // Important for Swagger
	v1 "profilecard-backend/internal/delivery/http/v1"
	"profilecard-backend/internal/domain"
	"profilecard-backend/internal/repository/memory"
	pgrepo "profilecard-backend/internal/repository/postgres"
	"profilecard-backend/internal/usecase"
	"profilecard-backend/pkg/ai"
	"profilecard-backend/pkg/database"
	"profilecard-backend/pkg/logger"
	"profilecard-backend/pkg/redis"
	"profilecard-backend/pkg/validation"
)

// @title           ProfileCard Backend API
// @version         1.0
// @description     Profile builder backend: editable user profiles with a shareable public view and AI skill suggestions.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting profilecard backend", "port", cfg.Port, "store", cfg.StoreBackend)

	// 3. Setup Store
	var profileRepo domain.ProfileRepository
	if cfg.StoreBackend == "postgres" {
		dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
		if err != nil {
			logger.Log.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer dbPool.Close()
		profileRepo = pgrepo.NewProfileRepository(dbPool)
	} else {
		memRepo := memory.NewProfileRepository()
		// Seeding is an explicit startup step, not a side effect of lookups
		if err := memRepo.Seed(context.Background()); err != nil {
			logger.Log.Error("Failed to seed demo profile", "error", err)
			os.Exit(1)
		}
		profileRepo = memRepo
	}

	// 4. Setup Redis (rate limiting backing; in-memory fallback when absent)
	if cfg.UpstashRedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
		}
		defer redis.Close()
	}

	// 5. Setup AI Suggestion Client
	var suggester domain.SkillSuggester
	aiClient := ai.NewClient(cfg.AIBaseURL, cfg.AIAPIKey, cfg.AIModel, time.Duration(cfg.AITimeoutSeconds)*time.Second)
	if aiClient.IsConfigured() {
		suggester = aiClient
	} else {
		logger.Log.Warn("AI provider not configured - skill suggestions will be empty")
	}

	// 6. Setup UseCases
	validate := validation.New()
	profileUC := usecase.NewProfileUsecase(profileRepo, validate)
	viewUC := usecase.NewViewUsecase()
	suggestionUC := usecase.NewSuggestionUsecase(suggester)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ProfileUC:    profileUC,
		ViewUC:       viewUC,
		SuggestionUC: suggestionUC,
		Config:       cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
