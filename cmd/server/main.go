package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"venture-link.backend/internal/config"
	"venture-link.backend/internal/infrastructure/jobs"
	"venture-link.backend/internal/infrastructure/repositories"
	"venture-link.backend/internal/interfaces/http/handlers"
	"venture-link.backend/internal/interfaces/http/middleware"
	"venture-link.backend/internal/usecases"
	"venture-link.backend/pkg/jwt"
	"venture-link.backend/pkg/logger"
	"venture-link.backend/pkg/metrics"
	"venture-link.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt:    false,
			TranslateError: true,
		})
	}
	newSessionStore = redis.NewSessionStore
	runServer       = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB        = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize repositories
	profileRepo := repositories.NewProfileRepository(db)
	startupRepo := repositories.NewStartupProfileRepository(db)
	mentorRepo := repositories.NewMentorProfileRepository(db)
	investorRepo := repositories.NewInvestorProfileRepository(db)
	connectionRepo := repositories.NewConnectionRepository(db)
	mentorshipRepo := repositories.NewMentorshipRequestRepository(db)
	investmentRepo := repositories.NewInvestmentRequestRepository(db)
	eventRepo := repositories.NewEventRepository(db)
	registrationRepo := repositories.NewEventRegistrationRepository(db)
	messageRepo := repositories.NewMessageRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	activityRepo := repositories.NewActivityLogRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Initialize Session Store
	sessionStore, err := newSessionStore(cfg.Security.SessionEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(profileRepo, startupRepo, mentorRepo, investorRepo, activityRepo, uow, jwtService, sessionStore)
	profileUsecase := usecases.NewProfileUsecase(profileRepo, startupRepo, mentorRepo, investorRepo, activityRepo)
	connectionUsecase := usecases.NewConnectionUsecase(connectionRepo, profileRepo, notificationRepo, activityRepo, uow)
	mentorshipUsecase := usecases.NewMentorshipUsecase(mentorshipRepo, profileRepo, notificationRepo, activityRepo, uow)
	investmentUsecase := usecases.NewInvestmentUsecase(investmentRepo, profileRepo, notificationRepo, activityRepo, uow)
	eventUsecase := usecases.NewEventUsecase(eventRepo, registrationRepo, profileRepo, notificationRepo, activityRepo, uow)
	messageUsecase := usecases.NewMessageUsecase(messageRepo, connectionRepo, profileRepo, notificationRepo, uow)
	notificationUsecase := usecases.NewNotificationUsecase(notificationRepo)
	adminUsecase := usecases.NewAdminUsecase(profileRepo, connectionRepo, mentorshipRepo, investmentRepo, eventRepo, registrationRepo, notificationRepo, activityRepo, uow)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	profileHandler := handlers.NewProfileHandler(profileUsecase)
	connectionHandler := handlers.NewConnectionHandler(connectionUsecase)
	mentorshipHandler := handlers.NewMentorshipHandler(mentorshipUsecase)
	investmentHandler := handlers.NewInvestmentHandler(investmentUsecase)
	eventHandler := handlers.NewEventHandler(eventUsecase)
	messageHandler := handlers.NewMessageHandler(messageUsecase)
	notificationHandler := handlers.NewNotificationHandler(notificationUsecase)
	adminHandler := handlers.NewAdminHandler(adminUsecase, eventUsecase)

	// Auth middleware and message rate limiter
	authMiddleware := middleware.AuthMiddleware(jwtService, sessionStore)
	messageLimiter := redis.NewRateLimiter("ratelimit:messages", int64(cfg.RateLimit.MessagesPerWindow), cfg.RateLimit.MessageWindow)
	messageRateLimit := middleware.RateLimitMiddleware(messageLimiter)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dispatchJob := jobs.NewNotificationDispatchJob(notificationRepo, 15*time.Second)
	go dispatchJob.Start(ctx)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(metrics.Middleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	r.GET("/metrics", metrics.Handler())
	registerAPIV1Routes(r, routeDeps{
		authHandler:         authHandler,
		profileHandler:      profileHandler,
		connectionHandler:   connectionHandler,
		mentorshipHandler:   mentorshipHandler,
		investmentHandler:   investmentHandler,
		eventHandler:        eventHandler,
		messageHandler:      messageHandler,
		notificationHandler: notificationHandler,
		adminHandler:        adminHandler,
		authMiddleware:      authMiddleware,
		messageRateLimit:    messageRateLimit,
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		dispatchJob.Stop()
		cancel()
	}()

	// Start server
	log.Printf("🚀 VentureLink Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
