package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/nis2ready/nis2ready-backend/internal/roadmap/consumers"
	"github.com/nis2ready/nis2ready-backend/internal/roadmap/events"
	"github.com/nis2ready/nis2ready-backend/internal/roadmap/handler"
	"github.com/nis2ready/nis2ready-backend/internal/roadmap/repository"
	"github.com/nis2ready/nis2ready-backend/internal/roadmap/service"
	"github.com/nis2ready/nis2ready-backend/pkg/config"
	"github.com/nis2ready/nis2ready-backend/pkg/database"
	"github.com/nis2ready/nis2ready-backend/pkg/httputil"
	"github.com/nis2ready/nis2ready-backend/pkg/logger"
	"github.com/nis2ready/nis2ready-backend/pkg/messaging"
)

func main() {
	// Load configuration
	cfg, err := config.LoadWithValidation("roadmap-service")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New("roadmap-service", cfg.Server.Environment)
	log.Info().Msg("starting Roadmap Service")

	// Connect to database
	db, err := database.New(&cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	// Connect to RabbitMQ
	rmq, err := messaging.New(&cfg.RabbitMQ, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to RabbitMQ")
	}
	defer rmq.Close()

	// Initialize event publisher
	publisher, err := events.NewRoadmapEventPublisher(rmq, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create event publisher")
	}

	// Initialize repository and service
	roadmapRepo := repository.NewRoadmapRepository(db)
	roadmapService := service.NewRoadmapService(roadmapRepo, publisher, log)

	// Initialize handler
	roadmapHandler := handler.NewRoadmapHandler(roadmapService, log)

	// Start analysis event consumer
	consumerCtx, stopConsumer := context.WithCancel(context.Background())
	defer stopConsumer()

	analysisConsumer, err := consumers.NewAnalysisEventConsumer(rmq, roadmapService, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create analysis event consumer")
	}
	if err := analysisConsumer.Start(consumerCtx); err != nil {
		log.Fatal().Err(err).Msg("failed to start analysis event consumer")
	}

	// Create router
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RealIP)
	r.Use(httputil.RequestID)
	r.Use(httputil.Logger(log))
	r.Use(httputil.Recoverer(log))
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.JSON(w, http.StatusOK, map[string]interface{}{
			"status":   "healthy",
			"service":  "roadmap-service",
			"database": db.Health(r.Context()),
			"rabbitmq": rmq.Health(),
		})
	})

	// API endpoints
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/organizations/{id}/roadmap", func(r chi.Router) {
			r.Get("/", roadmapHandler.List)
			r.Post("/", roadmapHandler.Create)
		})

		r.Route("/roadmap/items/{itemID}", func(r chi.Router) {
			r.Get("/", roadmapHandler.Get)
			r.Patch("/status", roadmapHandler.UpdateStatus)
			r.Delete("/", roadmapHandler.Delete)
		})
	})

	// Create server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server
	go func() {
		log.Info().Str("addr", addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Stop the consumer before the server so in-flight reconciliations finish
	stopConsumer()

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
