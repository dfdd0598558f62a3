// Package storage persists saved searches and work plans. It runs on SQLite
// by default and on PostgreSQL when a DATABASE_URL is configured.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common errors
var (
	ErrNotFound = errors.New("record not found")
)

// DB represents a database connection interface.
type DB interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// SavedSearchRepository handles saved search CRUD operations.
type SavedSearchRepository struct {
	db DB
}

// NewSavedSearchRepository creates a new saved search repository.
func NewSavedSearchRepository(db DB) *SavedSearchRepository {
	return &SavedSearchRepository{db: db}
}

// Create inserts a saved search, assigning an ID if absent.
func (r *SavedSearchRepository) Create(ctx context.Context, search *SavedSearch) error {
	if search.ID == uuid.Nil {
		search.ID = uuid.New()
	}
	search.CreatedAt = time.Now()
	search.UpdatedAt = search.CreatedAt

	query := `
		INSERT INTO saved_searches (id, name, query, criteria, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		search.ID, search.Name, search.Query, search.Criteria,
		search.CreatedAt, search.UpdatedAt,
	)
	return err
}

// GetByID retrieves a saved search by ID.
func (r *SavedSearchRepository) GetByID(ctx context.Context, id uuid.UUID) (*SavedSearch, error) {
	query := `
		SELECT id, name, query, criteria, created_at, updated_at
		FROM saved_searches WHERE id = $1
	`
	search := &SavedSearch{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&search.ID, &search.Name, &search.Query, &search.Criteria,
		&search.CreatedAt, &search.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return search, err
}

// List returns saved searches newest first.
func (r *SavedSearchRepository) List(ctx context.Context, limit int) ([]*SavedSearch, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
		SELECT id, name, query, criteria, created_at, updated_at
		FROM saved_searches ORDER BY created_at DESC LIMIT $1
	`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var searches []*SavedSearch
	for rows.Next() {
		search := &SavedSearch{}
		if err := rows.Scan(
			&search.ID, &search.Name, &search.Query, &search.Criteria,
			&search.CreatedAt, &search.UpdatedAt,
		); err != nil {
			return nil, err
		}
		searches = append(searches, search)
	}
	return searches, rows.Err()
}

// Update rewrites a saved search's name, query, and criteria.
func (r *SavedSearchRepository) Update(ctx context.Context, search *SavedSearch) error {
	search.UpdatedAt = time.Now()

	// Placeholders must appear in $1..$n textual order: go-sqlite3 binds
	// them positionally, not by number.
	query := `
		UPDATE saved_searches SET name = $1, query = $2, criteria = $3, updated_at = $4
		WHERE id = $5
	`
	result, err := r.db.ExecContext(ctx, query,
		search.Name, search.Query, search.Criteria, search.UpdatedAt, search.ID,
	)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

// Delete removes a saved search.
func (r *SavedSearchRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM saved_searches WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

// WorkPlanRepository handles work plan CRUD operations.
type WorkPlanRepository struct {
	db DB
}

// NewWorkPlanRepository creates a new work plan repository.
func NewWorkPlanRepository(db DB) *WorkPlanRepository {
	return &WorkPlanRepository{db: db}
}

// Create inserts a work plan, defaulting its status to open.
func (r *WorkPlanRepository) Create(ctx context.Context, plan *WorkPlan) error {
	if plan.ID == uuid.Nil {
		plan.ID = uuid.New()
	}
	if plan.Status == "" {
		plan.Status = WorkPlanStatusOpen
	}
	plan.CreatedAt = time.Now()
	plan.UpdatedAt = plan.CreatedAt

	query := `
		INSERT INTO work_plans (id, title, status, steps, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		plan.ID, plan.Title, plan.Status, plan.Steps,
		plan.CreatedAt, plan.UpdatedAt,
	)
	return err
}

// GetByID retrieves a work plan by ID.
func (r *WorkPlanRepository) GetByID(ctx context.Context, id uuid.UUID) (*WorkPlan, error) {
	query := `
		SELECT id, title, status, steps, created_at, updated_at
		FROM work_plans WHERE id = $1
	`
	plan := &WorkPlan{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&plan.ID, &plan.Title, &plan.Status, &plan.Steps,
		&plan.CreatedAt, &plan.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return plan, err
}

// List returns work plans newest first, optionally filtered by status.
func (r *WorkPlanRepository) List(ctx context.Context, status string, limit int) ([]*WorkPlan, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, title, status, steps, created_at, updated_at
		FROM work_plans
	`
	args := []interface{}{}
	if status != "" {
		query += ` WHERE status = $1 ORDER BY created_at DESC LIMIT $2`
		args = append(args, status, limit)
	} else {
		query += ` ORDER BY created_at DESC LIMIT $1`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plans []*WorkPlan
	for rows.Next() {
		plan := &WorkPlan{}
		if err := rows.Scan(
			&plan.ID, &plan.Title, &plan.Status, &plan.Steps,
			&plan.CreatedAt, &plan.UpdatedAt,
		); err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	return plans, rows.Err()
}

// UpdateStatus transitions a work plan to a new status.
func (r *WorkPlanRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	query := `UPDATE work_plans SET status = $1, updated_at = $2 WHERE id = $3`
	result, err := r.db.ExecContext(ctx, query, status, time.Now(), id)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

// Delete removes a work plan.
func (r *WorkPlanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM work_plans WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func requireAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
