package main

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cvconnect-backend/config"
	_ "cvconnect-backend/docs" // Important for Swagger
	v1 "cvconnect-backend/internal/delivery/http/v1"
	"cvconnect-backend/internal/repository/postgres"
	"cvconnect-backend/internal/usecase"
	"cvconnect-backend/pkg/credentials"
	"cvconnect-backend/pkg/database"
	"cvconnect-backend/pkg/email"
	"cvconnect-backend/pkg/logger"
	"cvconnect-backend/pkg/redis"
	"cvconnect-backend/pkg/token"

	"github.com/go-playground/validator/v10"
)

// @title           CVConnect API
// @version         1.0
// @description     Professional networking and recruitment backend.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting cvconnect backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (rate limiting; the API still runs without it)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
	}
	defer redis.Close()

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	profileRepo := postgres.NewProfileRepository(dbPool)
	imageRepo := postgres.NewProfileImageRepository(dbPool)
	connectionRepo := postgres.NewConnectionRepository(dbPool)
	employmentRepo := postgres.NewEmploymentRepository(dbPool)
	educationRepo := postgres.NewEducationRepository(dbPool)
	skillRepo := postgres.NewSkillRepository(dbPool)
	companyRepo := postgres.NewCompanyRepository(dbPool)
	jobRepo := postgres.NewJobPostingRepository(dbPool)
	applicationRepo := postgres.NewJobApplicationRepository(dbPool)
	feedRepo := postgres.NewFeedPostRepository(dbPool)
	tokenRepo := postgres.NewForgottenPasswordTokenRepository(dbPool)
	searchRepo := postgres.NewSearchRepository(dbPool)

	// 6. Setup Collaborators
	emailService := email.NewService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - invites and password resets will be unavailable")
	}
	hasher := credentials.NewHasher()
	tokens := token.NewProvider(cfg.TokenSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	// 7. Setup UseCases
	validate := validator.New()
	userUC := usecase.NewUserUsecase(userRepo, profileRepo, hasher, validate)
	accountUC := usecase.NewAccountUsecase(userRepo, profileRepo, tokenRepo, emailService, hasher, tokens, validate)
	profileUC := usecase.NewProfileUsecase(profileRepo, imageRepo, connectionRepo, employmentRepo, educationRepo, cfg.BaseURL, rng, validate)
	connectionUC := usecase.NewConnectionUsecase(profileRepo, connectionRepo)
	employmentUC := usecase.NewEmploymentUsecase(employmentRepo, profileRepo, validate)
	educationUC := usecase.NewEducationUsecase(educationRepo, profileRepo, validate)
	skillUC := usecase.NewSkillUsecase(skillRepo, profileRepo, validate)
	companyUC := usecase.NewCompanyUsecase(companyRepo, profileRepo, validate)
	jobUC := usecase.NewJobUsecase(jobRepo, userRepo)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo, profileRepo, employmentRepo, skillRepo)
	searchUC := usecase.NewSearchUsecase(searchRepo, cfg.BaseURL)
	feedUC := usecase.NewFeedUsecase(feedRepo, userRepo, profileRepo)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		UserUC:        userUC,
		AccountUC:     accountUC,
		ProfileUC:     profileUC,
		ConnectionUC:  connectionUC,
		EmploymentUC:  employmentUC,
		EducationUC:   educationUC,
		SkillUC:       skillUC,
		CompanyUC:     companyUC,
		JobUC:         jobUC,
		ApplicationUC: applicationUC,
		SearchUC:      searchUC,
		FeedUC:        feedUC,
		Tokens:        tokens,
		UserRepo:      userRepo,
		Config:        cfg,
	})

	// 9. Start Server
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
