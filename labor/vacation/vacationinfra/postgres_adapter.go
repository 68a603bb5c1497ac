package vacationinfra

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/Abraxas-365/laboral/labor/vacation"
	"github.com/Abraxas-365/laboral/pkg/kernel"
)

// PostgresVacationRepository implements vacation.Repository using PostgreSQL
type PostgresVacationRepository struct {
	db *sqlx.DB
}

// NewPostgresVacationRepository creates a new PostgreSQL vacation repository
func NewPostgresVacationRepository(db *sqlx.DB) *PostgresVacationRepository {
	return &PostgresVacationRepository{
		db: db,
	}
}

// ============================================================================
// Database Model
// ============================================================================

type bookingModel struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	StartDate time.Time `db:"start_date"`
	EndDate   time.Time `db:"end_date"`
	DaysTaken int       `db:"days_taken"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}

// toEntity converts database model to domain entity
func (m *bookingModel) toEntity() vacation.Booking {
	return vacation.Booking{
		ID:        kernel.VacationID(m.ID),
		UserID:    kernel.UserID(m.UserID),
		StartDate: kernel.DateOf(m.StartDate),
		EndDate:   kernel.DateOf(m.EndDate),
		DaysTaken: m.DaysTaken,
		Status:    vacation.BookingStatus(m.Status),
		CreatedAt: m.CreatedAt,
	}
}

// fromEntity converts domain entity to database model
func fromEntity(b *vacation.Booking) *bookingModel {
	return &bookingModel{
		ID:        b.ID.String(),
		UserID:    b.UserID.String(),
		StartDate: b.StartDate.Time(),
		EndDate:   b.EndDate.Time(),
		DaysTaken: b.DaysTaken,
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt,
	}
}

// ============================================================================
// Repository Implementation
// ============================================================================

// Create inserts a new booking
func (r *PostgresVacationRepository) Create(ctx context.Context, booking *vacation.Booking) error {
	query := `
		INSERT INTO vacations (
			id, user_id, start_date, end_date, days_taken, status, created_at
		) VALUES (
			:id, :user_id, :start_date, :end_date, :days_taken, :status, :created_at
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, fromEntity(booking))
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23503" { // foreign_key_violation
				return fmt.Errorf("unknown user_id %s: %w", booking.UserID, err)
			}
			if pqErr.Code == "23514" { // check_violation
				return fmt.Errorf("vacation rejected by constraint %s: %w", pqErr.Constraint, err)
			}
		}
		return fmt.Errorf("failed to create vacation: %w", err)
	}

	return nil
}

// Delete removes a booking scoped by owner
func (r *PostgresVacationRepository) Delete(ctx context.Context, id kernel.VacationID, userID kernel.UserID) error {
	query := `DELETE FROM vacations WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, id.String(), userID.String())
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "22P02" { // invalid_text_representation
			return vacation.ErrBookingNotFound().WithDetail("id", id.String())
		}
		return fmt.Errorf("failed to delete vacation: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return vacation.ErrBookingNotFound().WithDetail("id", id.String())
	}

	return nil
}

// ListByUser retrieves a user's bookings ordered by start date
func (r *PostgresVacationRepository) ListByUser(ctx context.Context, userID kernel.UserID) ([]vacation.Booking, error) {
	query := `
		SELECT id, user_id, start_date, end_date, days_taken, status, created_at
		FROM vacations
		WHERE user_id = $1
		ORDER BY start_date ASC, created_at ASC
	`

	var models []bookingModel
	if err := r.db.SelectContext(ctx, &models, query, userID.String()); err != nil {
		return nil, fmt.Errorf("failed to list vacations: %w", err)
	}

	bookings := make([]vacation.Booking, 0, len(models))
	for i := range models {
		bookings = append(bookings, models[i].toEntity())
	}
	return bookings, nil
}

// SumDaysTaken totals the booked days of a user
func (r *PostgresVacationRepository) SumDaysTaken(ctx context.Context, userID kernel.UserID) (int, error) {
	query := `SELECT COALESCE(SUM(days_taken), 0) FROM vacations WHERE user_id = $1`

	var total int
	if err := r.db.GetContext(ctx, &total, query, userID.String()); err != nil {
		return 0, fmt.Errorf("failed to sum vacation days: %w", err)
	}
	return total, nil
}

// ExistsOverlap checks for a booking sharing at least one day with [start, end]
func (r *PostgresVacationRepository) ExistsOverlap(ctx context.Context, userID kernel.UserID, start, end kernel.Date) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM vacations
			WHERE user_id = $1 AND start_date <= $3 AND end_date >= $2
		)
	`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, userID.String(), start, end); err != nil {
		return false, fmt.Errorf("failed to check overlapping vacations: %w", err)
	}
	return exists, nil
}
