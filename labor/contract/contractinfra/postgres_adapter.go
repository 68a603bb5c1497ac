package contractinfra

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/Abraxas-365/laboral/labor/contract"
	"github.com/Abraxas-365/laboral/pkg/kernel"
)

// PostgresContractRepository implements contract.Repository using PostgreSQL
type PostgresContractRepository struct {
	db *sqlx.DB
}

func NewPostgresContractRepository(db *sqlx.DB) *PostgresContractRepository {
	return &PostgresContractRepository{db: db}
}

// ============================================================================
// Database Model
// ============================================================================

type contractModel struct {
	ID           string         `db:"id"`
	UserID       string         `db:"user_id"`
	Company      string         `db:"company"`
	Role         string         `db:"role"`
	StartDate    time.Time      `db:"start_date"`
	Type         string         `db:"type"`
	HoursPerWeek int            `db:"hours_per_week"`
	Active       bool           `db:"active"`
	FileKey      sql.NullString `db:"file_key"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

func (m *contractModel) toEntity() contract.Contract {
	c := contract.Contract{
		ID:           kernel.ContractID(m.ID),
		UserID:       kernel.UserID(m.UserID),
		Company:      m.Company,
		Role:         m.Role,
		StartDate:    kernel.DateOf(m.StartDate),
		Type:         contract.ContractType(m.Type),
		HoursPerWeek: m.HoursPerWeek,
		Active:       m.Active,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.FileKey.Valid {
		key := m.FileKey.String
		c.FileKey = &key
	}
	return c
}

func fromEntity(c *contract.Contract) *contractModel {
	m := &contractModel{
		ID:           c.ID.String(),
		UserID:       c.UserID.String(),
		Company:      c.Company,
		Role:         c.Role,
		StartDate:    c.StartDate.Time(),
		Type:         string(c.Type),
		HoursPerWeek: c.HoursPerWeek,
		Active:       c.Active,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
	if c.FileKey != nil {
		m.FileKey = sql.NullString{String: *c.FileKey, Valid: true}
	}
	return m
}

const contractColumns = `id, user_id, company, role, start_date, type, hours_per_week, active, file_key, created_at, updated_at`

// ============================================================================
// Repository Implementation
// ============================================================================

func (r *PostgresContractRepository) Create(ctx context.Context, c *contract.Contract) error {
	query := `
		INSERT INTO contracts (` + contractColumns + `)
		VALUES (
			:id, :user_id, :company, :role, :start_date, :type,
			:hours_per_week, :active, :file_key, :created_at, :updated_at
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, fromEntity(c)); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23514" { // check_violation
			return contract.ErrInvalidContract().WithDetail("constraint", pqErr.Constraint)
		}
		return fmt.Errorf("failed to create contract: %w", err)
	}
	return nil
}

func (r *PostgresContractRepository) Update(ctx context.Context, c *contract.Contract) error {
	query := `
		UPDATE contracts SET
			company = :company,
			role = :role,
			start_date = :start_date,
			type = :type,
			hours_per_week = :hours_per_week,
			active = :active,
			file_key = :file_key,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, fromEntity(c))
	if err != nil {
		return fmt.Errorf("failed to update contract: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return contract.ErrContractNotFound()
	}
	return nil
}

func (r *PostgresContractRepository) GetByID(ctx context.Context, id kernel.ContractID) (*contract.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE id = $1`

	var model contractModel
	if err := r.db.GetContext(ctx, &model, query, id.String()); err != nil {
		if err == sql.ErrNoRows {
			return nil, contract.ErrContractNotFound().WithDetail("id", id.String())
		}
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "22P02" { // malformed uuid
			return nil, contract.ErrContractNotFound().WithDetail("id", id.String())
		}
		return nil, fmt.Errorf("failed to get contract: %w", err)
	}

	c := model.toEntity()
	return &c, nil
}

func (r *PostgresContractRepository) Delete(ctx context.Context, id kernel.ContractID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM contracts WHERE id = $1`, id.String())
	if err != nil {
		return fmt.Errorf("failed to delete contract: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return contract.ErrContractNotFound()
	}
	return nil
}

func (r *PostgresContractRepository) ListByUser(ctx context.Context, userID kernel.UserID) ([]contract.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE user_id = $1 ORDER BY start_date DESC`

	var models []contractModel
	if err := r.db.SelectContext(ctx, &models, query, userID.String()); err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}

	contracts := make([]contract.Contract, 0, len(models))
	for i := range models {
		contracts = append(contracts, models[i].toEntity())
	}
	return contracts, nil
}
