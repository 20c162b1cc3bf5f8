package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/docspot/docspot-api/config"
	"github.com/docspot/docspot-api/internal/handler"
	appointmentHandler "github.com/docspot/docspot-api/internal/handler/appointment"
	authHandler "github.com/docspot/docspot-api/internal/handler/auth"
	dashboardHandler "github.com/docspot/docspot-api/internal/handler/dashboard"
	doctorHandler "github.com/docspot/docspot-api/internal/handler/doctor"
	medicalHandler "github.com/docspot/docspot-api/internal/handler/medical"
	patientHandler "github.com/docspot/docspot-api/internal/handler/patient"
	profileHandler "github.com/docspot/docspot-api/internal/handler/profile"
	"github.com/docspot/docspot-api/internal/middleware"
	"github.com/docspot/docspot-api/internal/repository/kv"
	"github.com/docspot/docspot-api/internal/router"
	appointmentService "github.com/docspot/docspot-api/internal/service/appointment"
	authService "github.com/docspot/docspot-api/internal/service/auth"
	doctorService "github.com/docspot/docspot-api/internal/service/doctor"
	medicalService "github.com/docspot/docspot-api/internal/service/medical"
	patientService "github.com/docspot/docspot-api/internal/service/patient"
	profileService "github.com/docspot/docspot-api/internal/service/profile"
	"github.com/docspot/docspot-api/internal/store"
	"github.com/docspot/docspot-api/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	level, err := zerolog.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	appLogger := logger.NewLogger(&logger.Config{
		Level:      level,
		TimeFormat: time.RFC3339,
		Output:     os.Stdout,
		Console:    cfg.Logger.Console,
	})

	docStore, err := newStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.Storage.Backend).Msg("failed to initialize storage")
	}
	defer docStore.Close()
	appLogger.Info("storage ready", "backend", cfg.Storage.Backend)

	// Repositories
	registry := kv.NewCredentialRegistry(docStore)
	sessions := kv.NewSessionRepository(docStore)
	appointments := kv.NewAppointmentRepository(docStore)
	schedules := kv.NewScheduleRepository(docStore)
	summaries := kv.NewSummaryRepository(docStore)
	profiles := kv.NewProfileRepository(docStore)

	// Services
	authSvc := authService.NewService(registry, sessions)
	doctorSvc := doctorService.NewService(schedules)
	appointmentSvc := appointmentService.NewService(appointments, doctorSvc, cfg.SeedDemo)
	medicalSvc := medicalService.NewService(summaries, cfg.SeedDemo)
	patientSvc := patientService.NewService()
	profileSvc := profileService.NewService(profiles)

	// Session guard; the subscription keeps its cache honest when the
	// session document changes under it.
	sessionAuth := middleware.NewSessionAuth(authSvc)
	docStore.Subscribe(store.KeyCurrentUser, sessionAuth.Invalidate)

	// Handlers
	h := handler.NewHandler(docStore)
	authH := authHandler.NewHandler(authSvc)
	dashboardH := dashboardHandler.NewHandler(appointmentSvc, doctorSvc)
	doctorH := doctorHandler.NewHandler(doctorSvc)
	appointmentH := appointmentHandler.NewHandler(appointmentSvc)
	medicalH := medicalHandler.NewHandler(medicalSvc)
	patientH := patientHandler.NewHandler(patientSvc)
	profileH := profileHandler.NewHandler(profileSvc)

	router.RegisterValidators()

	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.Security.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.Security.AllowedOrigins
	}

	rps := cfg.RateLimit.RequestsPerSecond
	if !cfg.RateLimit.Enabled {
		rps = 0
	}

	r := router.NewRouter(
		sessionAuth,
		authH,
		dashboardH,
		doctorH,
		appointmentH,
		medicalH,
		patientH,
		profileH,
		h,
		router.RouterConfig{
			RateLimitRPS:  rps,
			RateBurst:     cfg.RateLimit.Burst,
			CORSConfig:    corsConfig,
			MetricsPrefix: cfg.Monitoring.MetricsPrefix,
		},
	)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		appLogger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	appLogger.Info("server exited properly")
}

func newStore(cfg *config.Config) (store.Store, error) {
	switch cfg.Storage.Backend {
	case "memory", "":
		return store.NewMemoryStore(), nil
	case "file":
		s, err := store.NewFileStore(cfg.Storage.File.Path)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "redis":
		s, err := store.NewRedisStore(cfg.Redis.ToStoreConfig())
		if err != nil {
			return nil, err
		}
		return s, nil
	case "postgres":
		s, err := store.NewPostgresStore(cfg.Database.ToStoreConfig())
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
