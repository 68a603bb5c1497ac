package vacationinfra

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Abraxas-365/laboral/labor/vacation"
	"github.com/Abraxas-365/laboral/pkg/kernel"
)

// PostgresSettingsRepository implements vacation.SettingsRepository using PostgreSQL
type PostgresSettingsRepository struct {
	db *sqlx.DB
}

func NewPostgresSettingsRepository(db *sqlx.DB) *PostgresSettingsRepository {
	return &PostgresSettingsRepository{db: db}
}

type settingsModel struct {
	UserID                  string        `db:"user_id"`
	YearsOfService          int           `db:"years_of_service"`
	TotalAnnualDaysOverride sql.NullInt64 `db:"total_annual_days_override"`
	UpdatedAt               time.Time     `db:"updated_at"`
}

func (m *settingsModel) toEntity() *vacation.Settings {
	s := &vacation.Settings{
		UserID:         kernel.UserID(m.UserID),
		YearsOfService: m.YearsOfService,
		UpdatedAt:      m.UpdatedAt,
	}
	if m.TotalAnnualDaysOverride.Valid {
		total := int(m.TotalAnnualDaysOverride.Int64)
		s.TotalAnnualDaysOverride = &total
	}
	return s
}

func settingsFromEntity(s *vacation.Settings) *settingsModel {
	m := &settingsModel{
		UserID:         s.UserID.String(),
		YearsOfService: s.YearsOfService,
		UpdatedAt:      s.UpdatedAt,
	}
	if s.TotalAnnualDaysOverride != nil {
		m.TotalAnnualDaysOverride = sql.NullInt64{Int64: int64(*s.TotalAnnualDaysOverride), Valid: true}
	}
	return m
}

// Get returns nil, nil when the user never saved settings
func (r *PostgresSettingsRepository) Get(ctx context.Context, userID kernel.UserID) (*vacation.Settings, error) {
	query := `
		SELECT user_id, years_of_service, total_annual_days_override, updated_at
		FROM vacation_settings
		WHERE user_id = $1
	`

	var model settingsModel
	err := r.db.GetContext(ctx, &model, query, userID.String())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get vacation settings: %w", err)
	}
	return model.toEntity(), nil
}

func (r *PostgresSettingsRepository) Upsert(ctx context.Context, settings *vacation.Settings) error {
	query := `
		INSERT INTO vacation_settings (
			user_id, years_of_service, total_annual_days_override, updated_at
		) VALUES (
			:user_id, :years_of_service, :total_annual_days_override, :updated_at
		)
		ON CONFLICT (user_id) DO UPDATE SET
			years_of_service = EXCLUDED.years_of_service,
			total_annual_days_override = EXCLUDED.total_annual_days_override,
			updated_at = EXCLUDED.updated_at
	`

	if _, err := r.db.NamedExecContext(ctx, query, settingsFromEntity(settings)); err != nil {
		return fmt.Errorf("failed to save vacation settings: %w", err)
	}
	return nil
}
