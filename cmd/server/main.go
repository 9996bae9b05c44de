package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/forgo/frontdesk/api/internal/config"
	"github.com/forgo/frontdesk/api/internal/handler"
	"github.com/forgo/frontdesk/api/internal/middleware"
	"github.com/forgo/frontdesk/api/internal/seed"
	"github.com/forgo/frontdesk/api/internal/service"
	"github.com/forgo/frontdesk/api/internal/store"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize the in-memory store; it stays not-ready until the deferred
	// seed load completes
	reservationStore := store.NewMemStore()

	// Initialize services
	roomService := service.NewRoomService(service.RoomServiceConfig{
		Repo: reservationStore,
	})
	reservationService := service.NewReservationService(service.ReservationServiceConfig{
		Repo:  reservationStore,
		Rooms: roomService,
	})
	transitionService := service.NewTransitionService(service.TransitionServiceConfig{
		Repo: reservationStore,
	})

	// Schedule the one-shot seed load
	loader := seed.NewLoader(reservationStore, cfg.Seed.File, cfg.Seed.Delay)
	loader.Start()
	defer loader.Stop()

	// Initialize handlers
	reservationHandler := handler.NewReservationHandler(reservationService)
	transitionHandler := handler.NewTransitionHandler(transitionService, reservationService)
	roomHandler := handler.NewRoomHandler(roomService)

	// Create router and register routes
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /health", handler.Health)

	// Reservation endpoints
	mux.HandleFunc("GET /v1/reservations", reservationHandler.ListGrouped)
	mux.HandleFunc("POST /v1/reservations", reservationHandler.Create)
	mux.HandleFunc("GET /v1/reservations/{reservationId}", reservationHandler.Get)
	mux.HandleFunc("PATCH /v1/reservations/{reservationId}", reservationHandler.Update)
	mux.HandleFunc("DELETE /v1/reservations/{reservationId}", reservationHandler.Delete)

	// Status transition endpoints (two-phase: propose, then confirm)
	mux.HandleFunc("GET /v1/reservations/{reservationId}/transitions", transitionHandler.Options)
	mux.HandleFunc("POST /v1/reservations/{reservationId}/transition", transitionHandler.Propose)
	mux.HandleFunc("POST /v1/transitions/{proposalId}/confirm", transitionHandler.Confirm)
	mux.HandleFunc("DELETE /v1/transitions/{proposalId}", transitionHandler.Cancel)

	// Room availability endpoint
	mux.HandleFunc("GET /v1/rooms/occupied", roomHandler.Occupied)

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.Compress,
	)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
