package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/tanziljws/tanipintar-website/internal/config"
	"github.com/tanziljws/tanipintar-website/internal/database/minio"
	"github.com/tanziljws/tanipintar-website/internal/database/postgres"
	"github.com/tanziljws/tanipintar-website/internal/database/redis"
	"github.com/tanziljws/tanipintar-website/internal/event"
	"github.com/tanziljws/tanipintar-website/internal/handlers"
	"github.com/tanziljws/tanipintar-website/internal/notify"
	"github.com/tanziljws/tanipintar-website/internal/repository"
	"github.com/tanziljws/tanipintar-website/internal/services"
	"github.com/tanziljws/tanipintar-website/internal/utils"
)

// setupLogging opens today's log file under logDir and routes slog and gin
// output to it and to stdout.
func setupLogging(logDir string) (*os.File, error) {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	logFileName := fmt.Sprintf("log_%s.log", time.Now().Format("2006-01-02"))
	file, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	out := io.MultiWriter(os.Stdout, file)
	slog.SetDefault(slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{AddSource: true})))
	gin.DefaultWriter = out
	gin.DefaultErrorWriter = out
	return file, nil
}

// rotateLogs reopens the log file at every local midnight until ctx ends.
func rotateLogs(ctx context.Context, logDir string, current *os.File) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(utils.DurationUntilNextMidnight(time.Now())):
		}

		next, err := setupLogging(logDir)
		if err != nil {
			slog.Error("failed to rotate log file", "error", err)
			continue
		}
		current.Close()
		current = next
	}
}

func main() {
	cfg := config.New()

	logFile, err := setupLogging(cfg.LogDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to set up logging: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go rotateLogs(ctx, cfg.LogDir, logFile)

	if cfg.AuthCfg.JWTSecret == "" {
		slog.Error("JWT_SECRET must be set")
		os.Exit(1)
	}

	// postgres
	db, err := postgres.ConnectAndCreateDB(cfg.PostgresCfg)
	if err != nil {
		slog.Error("error connecting to database, retrying", "error", err)
		postgres.RetryConnectOnFailed(30*time.Second, &db, cfg.PostgresCfg)
	}
	defer db.Close()

	// redis
	redisClient, err := redis.NewRedisClient(cfg.RedisCfg)
	if err != nil {
		slog.Error("failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()

	// minio
	minioClient, err := minio.NewMinioClient(cfg.MinioCfg)
	if err != nil {
		slog.Error("failed to initialize MinIO", "error", err)
		os.Exit(1)
	}

	// rabbitmq is optional: without it contact messages are stored but not e-mailed.
	var (
		publisher        *event.ContactPublisher
		contactPublisher services.ContactEventPublisher
	)
	rabbitConn, err := event.ConnectRabbitMQ(cfg.RabbitMQCfg)
	if err != nil {
		slog.Error("failed to connect to RabbitMQ, contact notifications disabled", "error", err)
	} else {
		defer rabbitConn.Close()
		publisher = event.NewContactPublisher(rabbitConn)
		contactPublisher = publisher

		consumer := event.NewContactConsumer(rabbitConn, notify.NewEmailService(cfg.MailCfg))
		if err := consumer.Start(ctx); err != nil {
			slog.Error("failed to start contact consumer", "error", err)
		}
	}

	// repositories
	adminRepo := repository.NewAdminUserRepository(db)
	sessionRepo := repository.NewSessionRepository(redisClient.GetClient(), cfg.AuthCfg.TokenTTL)
	recordCacheRepo := repository.NewRecordCacheRepository(redisClient.GetClient(), cfg.CacheCfg.RecordTTL)
	farmerRepo := repository.NewFarmerRepository(db)
	markerRepo := repository.NewMarkerRepository(db)
	educationRepo := repository.NewEducationRepository(db)
	contactRepo := repository.NewContactRepository(db)
	galleryRepo := repository.NewGalleryRepository(db)

	// services
	jwtService := services.NewJWTService(cfg.AuthCfg.JWTSecret, cfg.AuthCfg.TokenTTL)
	sessionService := services.NewSessionService(sessionRepo)
	authService := services.NewAuthService(adminRepo, sessionService, jwtService)
	farmerService := services.NewFarmerService(farmerRepo, recordCacheRepo)
	analyticsService := services.NewAnalyticsService(farmerService, farmerService)
	farmerService.OnChange(analyticsService.MarkStale)
	educationService := services.NewEducationService(educationRepo)
	markerService := services.NewMarkerService(markerRepo)
	contactService := services.NewContactService(contactRepo, contactPublisher)
	galleryService := services.NewGalleryService(galleryRepo, minioClient, minio.Storage.Gallery)

	if err := authService.EnsureDefaultAdmin(ctx, cfg.AuthCfg.AdminUsername, cfg.AuthCfg.AdminPassword); err != nil {
		slog.Error("failed to seed default admin", "error", err)
	}
	if warning := analyticsService.Refresh(ctx); warning != "" {
		slog.Warn("initial analytics load used fallback data")
	}

	// handlers
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), handlers.CORS(cfg.CORSCfg.AllowedOrigin))

	middleware := handlers.NewMiddleware(authService)
	healthHandler := handlers.NewHealthHandler(healthChecks(db, redisClient))
	if publisher != nil {
		healthHandler.WithOptional("rabbitmq", func(ctx context.Context) bool {
			return publisher.HealthCheck().IsHealthy
		})
	}
	healthHandler.RegisterRoutes(r)
	handlers.NewAuthHandler(authService, middleware).RegisterRoutes(r)
	handlers.NewFarmerHandler(farmerService, middleware).RegisterRoutes(r)
	handlers.NewAnalyticsHandler(analyticsService).RegisterRoutes(r)
	handlers.NewEducationHandler(educationService, middleware).RegisterRoutes(r)
	handlers.NewMarkerHandler(markerService, middleware).RegisterRoutes(r)
	handlers.NewContactHandler(contactService, middleware).RegisterRoutes(r)
	handlers.NewGalleryHandler(galleryService, middleware).RegisterRoutes(r)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("starting TaniPintar API", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("failed to start server", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	if publisher != nil {
		stats := publisher.HealthCheck()
		slog.Info("shutting down", "contact_events_published", stats.MessagesPublished, "contact_events_failed", stats.MessagesFailed)
	} else {
		slog.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}

func healthChecks(db *sqlx.DB, redisClient *redis.Client) map[string]handlers.HealthCheck {
	return map[string]handlers.HealthCheck{
		"postgres": func(ctx context.Context) bool {
			return db.PingContext(ctx) == nil
		},
		"redis": redisClient.Healthy,
	}
}
