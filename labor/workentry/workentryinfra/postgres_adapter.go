package workentryinfra

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/Abraxas-365/laboral/labor/workentry"
	"github.com/Abraxas-365/laboral/pkg/kernel"
)

// PostgresWorkEntryRepository implements workentry.Repository using PostgreSQL
type PostgresWorkEntryRepository struct {
	db *sqlx.DB
}

// NewPostgresWorkEntryRepository creates a new PostgreSQL work entry repository
func NewPostgresWorkEntryRepository(db *sqlx.DB) *PostgresWorkEntryRepository {
	return &PostgresWorkEntryRepository{
		db: db,
	}
}

type entryModel struct {
	ID          string    `db:"id"`
	UserID      string    `db:"user_id"`
	Date        time.Time `db:"date"`
	HoursWorked float64   `db:"hours_worked"`
	IsOvertime  bool      `db:"is_overtime"`
	Notes       string    `db:"notes"`
	CreatedAt   time.Time `db:"created_at"`
}

func (m *entryModel) toEntity() workentry.WorkEntry {
	return workentry.WorkEntry{
		ID:          kernel.WorkEntryID(m.ID),
		UserID:      kernel.UserID(m.UserID),
		Date:        kernel.DateOf(m.Date),
		HoursWorked: m.HoursWorked,
		IsOvertime:  m.IsOvertime,
		Notes:       m.Notes,
		CreatedAt:   m.CreatedAt,
	}
}

func fromEntity(e *workentry.WorkEntry) *entryModel {
	return &entryModel{
		ID:          e.ID.String(),
		UserID:      e.UserID.String(),
		Date:        e.Date.Time(),
		HoursWorked: e.HoursWorked,
		IsOvertime:  e.IsOvertime,
		Notes:       e.Notes,
		CreatedAt:   e.CreatedAt,
	}
}

const selectColumns = `id, user_id, date, hours_worked, is_overtime, notes, created_at`

// Create inserts a new work entry
func (r *PostgresWorkEntryRepository) Create(ctx context.Context, entry *workentry.WorkEntry) error {
	query := `
		INSERT INTO work_entries (
			id, user_id, date, hours_worked, is_overtime, notes, created_at
		) VALUES (
			:id, :user_id, :date, :hours_worked, :is_overtime, :notes, :created_at
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, fromEntity(entry))
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Code {
			case "23503": // foreign_key_violation
				return fmt.Errorf("unknown user_id %s: %w", entry.UserID, err)
			case "23514": // check_violation
				return workentry.ErrInvalidEntry().WithDetail("constraint", pqErr.Constraint)
			}
		}
		return fmt.Errorf("failed to create work entry: %w", err)
	}
	return nil
}

// GetByID retrieves an entry regardless of owner
func (r *PostgresWorkEntryRepository) GetByID(ctx context.Context, id kernel.WorkEntryID) (*workentry.WorkEntry, error) {
	query := `SELECT ` + selectColumns + ` FROM work_entries WHERE id = $1`

	var model entryModel
	if err := r.db.GetContext(ctx, &model, query, id.String()); err != nil {
		if err == sql.ErrNoRows {
			return nil, workentry.ErrEntryNotFound().WithDetail("id", id.String())
		}
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "22P02" {
			return nil, workentry.ErrEntryNotFound().WithDetail("id", id.String())
		}
		return nil, fmt.Errorf("failed to get work entry: %w", err)
	}

	entry := model.toEntity()
	return &entry, nil
}

// Delete removes an entry
func (r *PostgresWorkEntryRepository) Delete(ctx context.Context, id kernel.WorkEntryID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM work_entries WHERE id = $1`, id.String())
	if err != nil {
		return fmt.Errorf("failed to delete work entry: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return workentry.ErrEntryNotFound().WithDetail("id", id.String())
	}
	return nil
}

// ListByUser retrieves a user's entries, most recent date first
func (r *PostgresWorkEntryRepository) ListByUser(ctx context.Context, userID kernel.UserID) ([]workentry.WorkEntry, error) {
	query := `SELECT ` + selectColumns + ` FROM work_entries WHERE user_id = $1 ORDER BY date DESC, created_at DESC`

	var models []entryModel
	if err := r.db.SelectContext(ctx, &models, query, userID.String()); err != nil {
		return nil, fmt.Errorf("failed to list work entries: %w", err)
	}

	entries := make([]workentry.WorkEntry, 0, len(models))
	for i := range models {
		entries = append(entries, models[i].toEntity())
	}
	return entries, nil
}
