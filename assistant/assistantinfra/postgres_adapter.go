package assistantinfra

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/Abraxas-365/laboral/assistant"
	"github.com/Abraxas-365/laboral/pkg/kernel"
)

// PostgresChatRepository implements assistant.ChatRepository using PostgreSQL.
// Messages are stored as a JSONB array on the chat row.
type PostgresChatRepository struct {
	db *sqlx.DB
}

// NewPostgresChatRepository creates a new PostgreSQL chat repository
func NewPostgresChatRepository(db *sqlx.DB) *PostgresChatRepository {
	return &PostgresChatRepository{
		db: db,
	}
}

type chatModel struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Title     string    `db:"title"`
	Messages  string    `db:"messages"`
	UpdatedAt time.Time `db:"updated_at"`
}

type summaryModel struct {
	ID        string    `db:"id"`
	Title     string    `db:"title"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (m *chatModel) toEntity() (*assistant.Chat, error) {
	chat := &assistant.Chat{
		ID:        kernel.ChatID(m.ID),
		UserID:    kernel.UserID(m.UserID),
		Title:     m.Title,
		Messages:  []assistant.Message{},
		UpdatedAt: m.UpdatedAt,
	}
	if len(m.Messages) > 0 {
		if err := json.Unmarshal([]byte(m.Messages), &chat.Messages); err != nil {
			return nil, fmt.Errorf("failed to decode messages of chat %s: %w", m.ID, err)
		}
	}
	return chat, nil
}

func fromEntity(c *assistant.Chat) (*chatModel, error) {
	messages := c.Messages
	if messages == nil {
		messages = []assistant.Message{}
	}
	raw, err := json.Marshal(messages)
	if err != nil {
		return nil, fmt.Errorf("failed to encode messages: %w", err)
	}
	return &chatModel{
		ID:        c.ID.String(),
		UserID:    c.UserID.String(),
		Title:     c.Title,
		Messages:  string(raw),
		UpdatedAt: c.UpdatedAt,
	}, nil
}

// Create inserts a new chat
func (r *PostgresChatRepository) Create(ctx context.Context, chat *assistant.Chat) error {
	model, err := fromEntity(chat)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO chats (id, user_id, title, messages, updated_at)
		VALUES (:id, :user_id, :title, :messages, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, model); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			return fmt.Errorf("unknown user_id %s: %w", chat.UserID, err)
		}
		return fmt.Errorf("failed to create chat: %w", err)
	}
	return nil
}

// Update replaces title and messages of an owned chat
func (r *PostgresChatRepository) Update(ctx context.Context, chat *assistant.Chat) error {
	model, err := fromEntity(chat)
	if err != nil {
		return err
	}

	query := `
		UPDATE chats
		SET title = :title, messages = :messages, updated_at = :updated_at
		WHERE id = :id AND user_id = :user_id
	`
	result, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		return fmt.Errorf("failed to update chat: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return assistant.ErrChatNotFound().WithDetail("id", chat.ID.String())
	}
	return nil
}

// GetByID retrieves a chat owned by userID
func (r *PostgresChatRepository) GetByID(ctx context.Context, id kernel.ChatID, userID kernel.UserID) (*assistant.Chat, error) {
	query := `
		SELECT id, user_id, title, messages, updated_at
		FROM chats
		WHERE id = $1 AND user_id = $2
	`

	var model chatModel
	if err := r.db.GetContext(ctx, &model, query, id.String(), userID.String()); err != nil {
		if err == sql.ErrNoRows {
			return nil, assistant.ErrChatNotFound().WithDetail("id", id.String())
		}
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "22P02" {
			return nil, assistant.ErrChatNotFound().WithDetail("id", id.String())
		}
		return nil, fmt.Errorf("failed to get chat: %w", err)
	}
	return model.toEntity()
}

// ListByUser returns chat summaries, most recently updated first
func (r *PostgresChatRepository) ListByUser(ctx context.Context, userID kernel.UserID) ([]assistant.ChatSummary, error) {
	query := `
		SELECT id, title, updated_at
		FROM chats
		WHERE user_id = $1
		ORDER BY updated_at DESC
	`

	var models []summaryModel
	if err := r.db.SelectContext(ctx, &models, query, userID.String()); err != nil {
		return nil, fmt.Errorf("failed to list chats: %w", err)
	}

	summaries := make([]assistant.ChatSummary, 0, len(models))
	for _, m := range models {
		summaries = append(summaries, assistant.ChatSummary{
			ID:        kernel.ChatID(m.ID),
			Title:     m.Title,
			UpdatedAt: m.UpdatedAt,
		})
	}
	return summaries, nil
}

// Delete removes a chat owned by userID
func (r *PostgresChatRepository) Delete(ctx context.Context, id kernel.ChatID, userID kernel.UserID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM chats WHERE id = $1 AND user_id = $2`, id.String(), userID.String())
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "22P02" {
			return assistant.ErrChatNotFound().WithDetail("id", id.String())
		}
		return fmt.Errorf("failed to delete chat: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return assistant.ErrChatNotFound().WithDetail("id", id.String())
	}
	return nil
}
