package assistant

import (
	"context"

	"github.com/Abraxas-365/laboral/pkg/kernel"
)

// ChatRepository persists conversations; lookups are scoped by owner
type ChatRepository interface {
	Create(ctx context.Context, chat *Chat) error

	Update(ctx context.Context, chat *Chat) error

	GetByID(ctx context.Context, id kernel.ChatID, userID kernel.UserID) (*Chat, error)

	// ListByUser returns summaries, most recently updated first
	ListByUser(ctx context.Context, userID kernel.UserID) ([]ChatSummary, error)

	Delete(ctx context.Context, id kernel.ChatID, userID kernel.UserID) error
}

// Completer produces the model's next answer for a conversation
type Completer interface {
	Complete(ctx context.Context, systemPrompt string, history []Message) (string, error)
}
