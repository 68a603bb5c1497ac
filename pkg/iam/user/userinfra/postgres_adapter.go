package userinfra

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/Abraxas-365/laboral/pkg/iam/user"
	"github.com/Abraxas-365/laboral/pkg/kernel"
)

// PostgresUserRepository implements user.Repository using PostgreSQL
type PostgresUserRepository struct {
	db *sqlx.DB
}

func NewPostgresUserRepository(db *sqlx.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

type userModel struct {
	ID           string         `db:"id"`
	Name         string         `db:"name"`
	Email        string         `db:"email"`
	PasswordHash string         `db:"password_hash"`
	GoogleID     sql.NullString `db:"google_id"`
	Photo        string         `db:"photo"`
	Position     string         `db:"position"`
	Phone        string         `db:"phone"`
	Address      string         `db:"address"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

func (m *userModel) toEntity() *user.User {
	u := &user.User{
		ID:           kernel.UserID(m.ID),
		Name:         m.Name,
		Email:        kernel.Email(m.Email),
		PasswordHash: m.PasswordHash,
		Photo:        m.Photo,
		Position:     m.Position,
		Phone:        m.Phone,
		Address:      m.Address,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.GoogleID.Valid {
		gid := m.GoogleID.String
		u.GoogleID = &gid
	}
	return u
}

func fromEntity(u *user.User) *userModel {
	m := &userModel{
		ID:           u.ID.String(),
		Name:         u.Name,
		Email:        u.Email.String(),
		PasswordHash: u.PasswordHash,
		Photo:        u.Photo,
		Position:     u.Position,
		Phone:        u.Phone,
		Address:      u.Address,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
	if u.GoogleID != nil {
		m.GoogleID = sql.NullString{String: *u.GoogleID, Valid: true}
	}
	return m
}

const userColumns = `id, name, email, password_hash, google_id, photo, position, phone, address, created_at, updated_at`

func (r *PostgresUserRepository) Create(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES (
			:id, :name, :email, :password_hash, :google_id, :photo,
			:position, :phone, :address, :created_at, :updated_at
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, fromEntity(u))
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" { // unique_violation
			return user.ErrUserAlreadyExists().WithDetail("email", u.Email.String())
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *PostgresUserRepository) Update(ctx context.Context, u *user.User) error {
	query := `
		UPDATE users SET
			name = :name,
			google_id = :google_id,
			photo = :photo,
			position = :position,
			phone = :phone,
			address = :address,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, fromEntity(u))
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return user.ErrUserNotFound()
	}
	return nil
}

func (r *PostgresUserRepository) FindByID(ctx context.Context, id kernel.UserID) (*user.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id.String())
}

func (r *PostgresUserRepository) FindByEmail(ctx context.Context, email kernel.Email) (*user.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email.String())
}

func (r *PostgresUserRepository) findOne(ctx context.Context, query string, arg any) (*user.User, error) {
	var model userModel
	if err := r.db.GetContext(ctx, &model, query, arg); err != nil {
		if err == sql.ErrNoRows {
			return nil, user.ErrUserNotFound()
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return model.toEntity(), nil
}

func (r *PostgresUserRepository) Delete(ctx context.Context, id kernel.UserID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id.String())
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return user.ErrUserNotFound()
	}
	return nil
}
