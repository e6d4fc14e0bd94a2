package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Aruzhan01/academy-system/config"
	"github.com/Aruzhan01/academy-system/db"
	"github.com/Aruzhan01/academy-system/handlers"
	"github.com/Aruzhan01/academy-system/live"
	"github.com/Aruzhan01/academy-system/repositories"
	api "github.com/Aruzhan01/academy-system/routes"
	"github.com/Aruzhan01/academy-system/services"
	"github.com/Aruzhan01/academy-system/storage"
	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	logger.Info("database connection established")

	if err := db.Migrate(dbConn); err != nil {
		logger.Error("failed to apply database migrations", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("database migrations applied")

	cloudflareUploader, err := storage.NewCloudflareR2Uploader(storage.CloudflareR2UploaderConfig{
		AccountID:       cfg.R2AccountID,
		AccessKeyID:     cfg.R2AccessKeyID,
		SecretAccessKey: cfg.R2SecretAccessKey,
		BucketName:      cfg.R2BucketName,
		PublicBaseURL:   cfg.R2PublicBaseURL,
	})
	if err != nil {
		logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("Cloudflare R2 uploader initialized")

	liveHub := live.NewHub()
	go liveHub.Run()
	logger.Info("live events hub started")

	coachRepo := repositories.NewPostgresCoachRepository(dbConn)
	partnerRepo := repositories.NewPostgresPartnerRepository(dbConn)
	tournamentRepo := repositories.NewPostgresTournamentRepository(dbConn)
	achievementRepo := repositories.NewPostgresAchievementRepository(dbConn)
	testimonialRepo := repositories.NewPostgresTestimonialRepository(dbConn)
	matchRepo := repositories.NewPostgresMatchRepository(dbConn)
	aboutRepo := repositories.NewPostgresAboutRepository(dbConn)
	adminRepo := repositories.NewPostgresAdminRepository(dbConn)
	logger.Info("repositories initialized")

	authService := services.NewAuthService(adminRepo)
	coachService := services.NewCoachService(coachRepo)
	partnerService := services.NewPartnerService(partnerRepo, cloudflareUploader)
	tournamentService := services.NewTournamentService(tournamentRepo, cloudflareUploader)
	achievementService := services.NewAchievementService(achievementRepo, cloudflareUploader)
	testimonialService := services.NewTestimonialService(testimonialRepo)
	matchService := services.NewMatchService(matchRepo, liveHub)
	aboutService := services.NewAboutService(aboutRepo)
	dashboardService := services.NewDashboardService(
		coachRepo,
		partnerRepo,
		tournamentRepo,
		achievementRepo,
		testimonialRepo,
		matchRepo,
	)
	logger.Info("services initialized")

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 10*time.Second)
	if err := authService.EnsureDefaultAdmin(seedCtx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		cancelSeed()
		logger.Error("failed to seed default admin account", slog.Any("error", err))
		os.Exit(1)
	}
	cancelSeed()

	h := api.Handlers{
		Auth:        handlers.NewAuthHandler(authService, cfg.JWTSecretKey),
		Coach:       handlers.NewCoachHandler(coachService),
		Partner:     handlers.NewPartnerHandler(partnerService),
		Tournament:  handlers.NewTournamentHandler(tournamentService),
		Achievement: handlers.NewAchievementHandler(achievementService),
		Testimonial: handlers.NewTestimonialHandler(testimonialService),
		Match:       handlers.NewMatchHandler(matchService),
		About:       handlers.NewAboutHandler(aboutService),
		Dashboard:   handlers.NewDashboardHandler(dashboardService),
		WebSocket:   handlers.NewWebSocketHandler(liveHub),
	}
	logger.Info("HTTP handlers initialized")

	router := chi.NewRouter()
	api.SetupRoutes(router, h, cfg.JWTSecretKey, cfg.CORSAllowedOrigins)
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		} else {
			logger.Info("server stopped gracefully")
		}
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		logger.Info("shutting down server", slog.Duration("timeout", 15*time.Second))
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		} else {
			logger.Info("server shutdown complete")
		}
	}
	logger.Info("application exited")
}
