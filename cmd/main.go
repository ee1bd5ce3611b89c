package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config2 "team-service/pkg/config"

	_ "team-service/docs"
	"team-service/internal/handler"
	"team-service/internal/repository"
	"team-service/internal/router"
	"team-service/internal/service"

	"github.com/go-playground/validator/v10"
)

// @title Team Membership Service API
// @version 1.0
// @description Team lifecycle, role-based membership, invitations and activity feed
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Configure logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config2.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Connect to database
	pool, err := config2.MustInitDB(context.Background(), *cfg)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	slog.Info("successfully connected to database")

	// Initialize repositories
	userRepo := repository.NewUserRepository(pool)
	teamRepo := repository.NewTeamRepository(pool)
	memberRepo := repository.NewMembershipRepository(pool)
	inviteRepo := repository.NewInvitationRepository(pool)
	activityRepo := repository.NewActivityRepository(pool)

	// Initialize validator
	validate := validator.New()

	// Initialize services
	authService := service.NewAuthService(userRepo, cfg.JWTSecret)
	teamService := service.NewTeamService(teamRepo, memberRepo)
	memberService := service.NewMemberService(memberRepo)
	inviteService := service.NewInviteService(inviteRepo, service.LogNotifier{})
	activityService := service.NewActivityService(activityRepo, memberRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, validate)
	teamHandler := handler.NewTeamHandler(teamService, validate)
	memberHandler := handler.NewMemberHandler(memberService, validate)
	inviteHandler := handler.NewInviteHandler(inviteService, validate)
	activityHandler := handler.NewActivityHandler(activityService)
	healthHandler := handler.NewHealthHandler()

	slog.Info("successfully configured services and handlers")

	// Setup router
	r := router.SetupRouter(
		authHandler,
		teamHandler,
		memberHandler,
		inviteHandler,
		activityHandler,
		healthHandler,
		authService,
	)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
	}

	slog.Info("server stopped")
}
