package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"medflow-insights/config"
	"medflow-insights/pkg/log"
	"medflow-insights/pkg/postgres"
)

// Seeds a demo project tree plus two demo accounts so the API has something
// to analyze on a fresh database.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         "development",
		ColorEnabled: true,
	})

	ctx := context.Background()
	pool, err := postgres.Connect(ctx, postgres.Config{
		Host:     cfg.Postgres.Host,
		Port:     cfg.Postgres.Port,
		User:     cfg.Postgres.User,
		Password: cfg.Postgres.Password,
		Database: cfg.Postgres.Database,
		SSLMode:  cfg.Postgres.SSLMode,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to connect to Postgres: %v", err)
	}
	defer pool.Close()

	if err := seed(ctx, pool); err != nil {
		logger.Fatalf(ctx, "Seed failed: %v", err)
	}
	logger.Info(ctx, "Demo data seeded")
}

func seed(ctx context.Context, pool *pgxpool.Pool) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	pmHash, err := bcrypt.GenerateFromPassword([]byte("demo-pm"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	techHash, err := bcrypt.GenerateFromPassword([]byte("demo-tech"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	pmID := uuid.NewString()
	techID := uuid.NewString()

	if _, err := tx.Exec(ctx, `
		INSERT INTO users (id, email, name, role, password_hash)
		VALUES ($1, 'pm@medflow.demo', 'Dana Osei', 'project_manager', $2),
		       ($3, 'tech@medflow.demo', 'Rin Maeda', 'technician', $4)
		ON CONFLICT (email) DO NOTHING`,
		pmID, string(pmHash), techID, string(techHash)); err != nil {
		return fmt.Errorf("seeding users: %w", err)
	}

	projectID := uuid.NewString()
	if _, err := tx.Exec(ctx, `
		INSERT INTO projects (id, name, manager_id)
		VALUES ($1, 'Infusion Pump Gen2', $2)`,
		projectID, pmID); err != nil {
		return fmt.Errorf("seeding project: %w", err)
	}

	now := time.Now().UTC().Truncate(24 * time.Hour)
	phaseID := uuid.NewString()
	if _, err := tx.Exec(ctx, `
		INSERT INTO phases (id, project_id, name, status, start_date, end_date, responsible_id, ord)
		VALUES ($1, $2, 'Design Verification', 'in_progress', $3, $4, $5, 1)`,
		phaseID, projectID, now.AddDate(0, 0, -14), now.AddDate(0, 0, 30), pmID); err != nil {
		return fmt.Errorf("seeding phase: %w", err)
	}

	type taskRow struct {
		name      string
		status    string
		assignee  *string
		due       *time.Time
		start     *time.Time
		priority  string
		tags      []string
		milestone bool
	}
	overdue := now.AddDate(0, 0, -2)
	soon := now.AddDate(0, 0, 1)
	freeze := now.AddDate(0, 0, 21)
	tasks := []taskRow{
		{"Firmware validation", "in_progress", &techID, &overdue, nil, "high", nil, false},
		{"EMC pre-scan", "todo", &techID, &soon, nil, "high", nil, false},
		{"Risk file update", "todo", nil, nil, nil, "medium", nil, false},
		{"Design freeze", "todo", &pmID, &freeze, nil, "high", []string{"milestone"}, true},
	}

	for i, t := range tasks {
		taskID := uuid.NewString()
		if _, err := tx.Exec(ctx, `
			INSERT INTO tasks (id, phase_id, name, status, assigned_to, due_date, start_date,
			                   created_at, priority, tags, is_milestone, ord)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
			taskID, phaseID, t.name, t.status, t.assignee, t.due, t.start,
			now.AddDate(0, 0, -14), t.priority, t.tags, t.milestone, i+1); err != nil {
			return fmt.Errorf("seeding task %q: %w", t.name, err)
		}

		if t.name == "Firmware validation" {
			subDue := now.AddDate(0, 0, 3)
			if _, err := tx.Exec(ctx, `
				INSERT INTO subtasks (id, task_id, name, status, assigned_to, due_date, ord)
				VALUES ($1, $2, 'Regression suite run', 'in_progress', $3, $4, 1),
				       ($5, $2, 'Report sign-off', 'todo', NULL, NULL, 2)`,
				uuid.NewString(), taskID, techID, subDue, uuid.NewString()); err != nil {
				return fmt.Errorf("seeding subtasks: %w", err)
			}
		}
	}

	return tx.Commit(ctx)
}
