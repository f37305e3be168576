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

	"github.com/nis2ready/nis2ready-backend/internal/assessment/catalog"
	assessmentdomain "github.com/nis2ready/nis2ready-backend/internal/assessment/domain"
	assessmentevents "github.com/nis2ready/nis2ready-backend/internal/assessment/events"
	assessmenthandler "github.com/nis2ready/nis2ready-backend/internal/assessment/handler"
	assessmentrepo "github.com/nis2ready/nis2ready-backend/internal/assessment/repository"
	assessmentservice "github.com/nis2ready/nis2ready-backend/internal/assessment/service"
	classevents "github.com/nis2ready/nis2ready-backend/internal/classification/events"
	classhandler "github.com/nis2ready/nis2ready-backend/internal/classification/handler"
	classrepo "github.com/nis2ready/nis2ready-backend/internal/classification/repository"
	"github.com/nis2ready/nis2ready-backend/internal/classification/rules"
	classservice "github.com/nis2ready/nis2ready-backend/internal/classification/service"
	orgevents "github.com/nis2ready/nis2ready-backend/internal/organization/events"
	orghandler "github.com/nis2ready/nis2ready-backend/internal/organization/handler"
	orgrepo "github.com/nis2ready/nis2ready-backend/internal/organization/repository"
	orgservice "github.com/nis2ready/nis2ready-backend/internal/organization/service"
	"github.com/nis2ready/nis2ready-backend/pkg/config"
	"github.com/nis2ready/nis2ready-backend/pkg/database"
	"github.com/nis2ready/nis2ready-backend/pkg/httputil"
	"github.com/nis2ready/nis2ready-backend/pkg/logger"
	"github.com/nis2ready/nis2ready-backend/pkg/messaging"
)

func main() {
	// Load configuration
	cfg, err := config.LoadWithValidation("assessment-service")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New("assessment-service", cfg.Server.Environment)
	log.Info().Msg("starting Assessment Service")

	// Load and validate static rule tables and catalog. Inconsistent
	// configuration data is a fatal startup error.
	tables := rules.Load()
	if err := tables.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid classification rule tables")
	}

	cat := catalog.Load()
	if err := cat.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid assessment catalog")
	}

	policy := assessmentdomain.RecommendationPolicy{
		GapThreshold:       cfg.Engine.GapThreshold,
		CategoryTarget:     cfg.Engine.CategoryTarget,
		CategoryCount:      cfg.Engine.CategoryCount,
		MaxRecommendations: cfg.Engine.MaxRecommendations,
	}

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

	// Initialize event publishers
	orgPublisher, err := orgevents.NewOrganizationEventPublisher(rmq, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create organization event publisher")
	}
	classPublisher, err := classevents.NewClassificationEventPublisher(rmq, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create classification event publisher")
	}
	assessmentPublisher, err := assessmentevents.NewAssessmentEventPublisher(rmq, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create assessment event publisher")
	}

	// Initialize repositories
	organizationRepo := orgrepo.NewOrganizationRepository(db)
	classificationRepo := classrepo.NewClassificationRepository(db)
	answerRepo := assessmentrepo.NewAnswerRepository(db)

	// Initialize services
	classificationService := classservice.NewClassificationService(tables, classificationRepo, classPublisher, log)
	organizationService := orgservice.NewOrganizationService(organizationRepo, classificationService, orgPublisher, log)
	assessmentService := assessmentservice.NewAssessmentService(cat, policy, answerRepo, organizationRepo, assessmentPublisher, log)

	// Initialize handlers
	organizationHandler := orghandler.NewOrganizationHandler(organizationService, log)
	classificationHandler := classhandler.NewClassificationHandler(classificationService, organizationRepo, log)
	assessmentHandler := assessmenthandler.NewAssessmentHandler(assessmentService, log)

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
			"service":  "assessment-service",
			"database": db.Health(r.Context()),
			"rabbitmq": rmq.Health(),
		})
	})

	// API endpoints
	r.Route("/api/v1", func(r chi.Router) {
		// Reference data
		r.Get("/sectors", classificationHandler.ListSectors)
		r.Get("/countries", classificationHandler.ListCountries)
		r.Get("/questions", assessmentHandler.ListQuestions)
		r.Get("/controls", assessmentHandler.ListControls)
		r.Get("/categories", assessmentHandler.ListCategories)
		r.Get("/maturity-levels", assessmentHandler.ListMaturityLevels)

		// Stateless classification preview
		r.Post("/classification/preview", classificationHandler.Preview)

		// Organizations
		r.Route("/organizations", func(r chi.Router) {
			r.Get("/", organizationHandler.List)
			r.Post("/", organizationHandler.Create)
			r.Get("/{id}", organizationHandler.Get)
			r.Put("/{id}", organizationHandler.Update)
			r.Delete("/{id}", organizationHandler.Delete)

			// Classification
			r.Post("/{id}/classification", classificationHandler.Classify)
			r.Get("/{id}/classification", classificationHandler.Get)

			// Answers and evidence
			r.Get("/{id}/answers", assessmentHandler.ListAnswers)
			r.Post("/{id}/answers", assessmentHandler.RecordAnswer)
			r.Delete("/{id}/answers/{questionID}", assessmentHandler.DeleteAnswer)
			r.Post("/{id}/answers/{questionID}/evidence", assessmentHandler.AttachEvidence)
			r.Delete("/{id}/answers/{questionID}/evidence/{evidenceID}", assessmentHandler.DetachEvidence)

			// Analysis
			r.Post("/{id}/analysis", assessmentHandler.Analyze)
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

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
