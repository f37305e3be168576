// Package testutil provides testing utilities for nis2ready backend services.
// It includes testcontainers for PostgreSQL, HTTP handler helpers, and common
// test fixtures.
package testutil

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// PostgresContainer wraps a testcontainers PostgreSQL instance
type PostgresContainer struct {
	*postgres.PostgresContainer
	DSN string
}

// PostgresContainerConfig configures the test PostgreSQL container
type PostgresContainerConfig struct {
	Database string
	Username string
	Password string
	Image    string // Optional: defaults to postgres:15-alpine
}

// DefaultPostgresConfig returns sensible defaults for test containers
func DefaultPostgresConfig() PostgresContainerConfig {
	return PostgresContainerConfig{
		Database: "nis2ready_test",
		Username: "test",
		Password: "test",
		Image:    "postgres:15-alpine",
	}
}

// NewPostgresContainer creates a new PostgreSQL test container.
//
// Usage:
//
//	func TestMain(m *testing.M) {
//	    ctx := context.Background()
//	    container, err := testutil.NewPostgresContainer(ctx, testutil.DefaultPostgresConfig())
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    defer container.Terminate(ctx)
//
//	    // Run tests
//	    code := m.Run()
//	    os.Exit(code)
//	}
func NewPostgresContainer(ctx context.Context, cfg PostgresContainerConfig) (*PostgresContainer, error) {
	if cfg.Image == "" {
		cfg.Image = "postgres:15-alpine"
	}
	if cfg.Database == "" {
		cfg.Database = "nis2ready_test"
	}
	if cfg.Username == "" {
		cfg.Username = "test"
	}
	if cfg.Password == "" {
		cfg.Password = "test"
	}

	container, err := postgres.RunContainer(ctx,
		testcontainers.WithImage(cfg.Image),
		postgres.WithDatabase(cfg.Database),
		postgres.WithUsername(cfg.Username),
		postgres.WithPassword(cfg.Password),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		container.Terminate(ctx)
		return nil, fmt.Errorf("failed to get connection string: %w", err)
	}

	return &PostgresContainer{
		PostgresContainer: container,
		DSN:               dsn,
	}, nil
}

// Connect returns a sqlx.DB connection to the container
func (c *PostgresContainer) Connect(ctx context.Context) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", c.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to test database: %w", err)
	}
	return db, nil
}

// Terminate stops and removes the container
func (c *PostgresContainer) Terminate(ctx context.Context) error {
	return c.PostgresContainer.Terminate(ctx)
}

// CreateAssessmentSchema creates the tables used by assessment-service.
// This mirrors the service's migration files.
func (c *PostgresContainer) CreateAssessmentSchema(ctx context.Context, db *sqlx.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS organizations (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) NOT NULL,
			sector VARCHAR(100) NOT NULL,
			subsector VARCHAR(100),
			country CHAR(2) NOT NULL,
			employees INT NOT NULL DEFAULT 0,
			revenue_millions NUMERIC(12,2) NOT NULL DEFAULT 0,
			population_served NUMERIC(5,2),
			cross_border BOOLEAN NOT NULL DEFAULT FALSE,
			critical_services BOOLEAN NOT NULL DEFAULT FALSE,
			onboarding_complete BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT organizations_organization_name_key UNIQUE (name)
		);

		CREATE TABLE IF NOT EXISTS classifications (
			organization_id UUID PRIMARY KEY REFERENCES organizations(id) ON DELETE CASCADE,
			entity_type VARCHAR(20) NOT NULL,
			reason TEXT NOT NULL,
			rule_name VARCHAR(100) NOT NULL,
			size_category VARCHAR(20) NOT NULL,
			requirements JSONB NOT NULL DEFAULT '{}',
			classified_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT classifications_entity_type_valid
				CHECK (entity_type IN ('essential', 'important', 'excluded', 'not-covered'))
		);

		CREATE TABLE IF NOT EXISTS answers (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			organization_id UUID NOT NULL REFERENCES organizations(id) ON DELETE CASCADE,
			question_id VARCHAR(100) NOT NULL,
			option_value VARCHAR(100) NOT NULL,
			score INT NOT NULL,
			maturity_level VARCHAR(20) NOT NULL,
			answered_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT answers_organization_question_key UNIQUE (organization_id, question_id),
			CONSTRAINT answers_maturity_score_range CHECK (score >= 0 AND score <= 100)
		);

		CREATE TABLE IF NOT EXISTS evidence (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			answer_id UUID NOT NULL REFERENCES answers(id) ON DELETE CASCADE,
			file_name VARCHAR(255) NOT NULL,
			content_type VARCHAR(100) NOT NULL DEFAULT 'application/octet-stream',
			size_bytes BIGINT NOT NULL DEFAULT 0,
			uploaded_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
	`

	_, err := db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("failed to create assessment schema: %w", err)
	}

	return nil
}

// CreateRoadmapSchema creates the tables used by roadmap-service.
func (c *PostgresContainer) CreateRoadmapSchema(ctx context.Context, db *sqlx.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS roadmap_items (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			organization_id UUID NOT NULL,
			control_ref VARCHAR(20),
			title VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			priority VARCHAR(20) NOT NULL,
			effort VARCHAR(50) NOT NULL DEFAULT '',
			timeline VARCHAR(50) NOT NULL DEFAULT '',
			category VARCHAR(100) NOT NULL DEFAULT '',
			status VARCHAR(20) NOT NULL DEFAULT 'pending',
			source VARCHAR(20) NOT NULL DEFAULT 'generated',
			due_date DATE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT roadmap_items_item_status_valid
				CHECK (status IN ('pending', 'in_progress', 'completed', 'overdue'))
		);

		CREATE UNIQUE INDEX IF NOT EXISTS roadmap_items_organization_control_key
			ON roadmap_items (organization_id, control_ref)
			WHERE control_ref IS NOT NULL AND source = 'generated';
	`

	_, err := db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("failed to create roadmap schema: %w", err)
	}

	return nil
}
