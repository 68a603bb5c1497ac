package assistant

import (
	"strings"
	"time"

	"github.com/Abraxas-365/laboral/pkg/kernel"
)

// Role identifies the author of a chat message
type Role string

const (
	RoleUser Role = "user"
	RoleAI   Role = "ai"
)

const (
	// DefaultChatTitle names a chat before its first message
	DefaultChatTitle = "Nueva Conversación"

	maxTitleLength = 40
)

// Message is one turn of a conversation
type Message struct {
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Chat is a persisted conversation with the assistant
type Chat struct {
	ID        kernel.ChatID `db:"id" json:"id"`
	UserID    kernel.UserID `db:"user_id" json:"userId"`
	Title     string        `db:"title" json:"title"`
	Messages  []Message     `db:"messages" json:"messages"`
	UpdatedAt time.Time     `db:"updated_at" json:"updatedAt"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// BelongsTo checks chat ownership
func (c *Chat) BelongsTo(userID kernel.UserID) bool {
	return c.UserID == userID
}

// AppendExchange records a question and its answer
func (c *Chat) AppendExchange(question, answer string, at time.Time) {
	c.Messages = append(c.Messages,
		Message{Role: RoleUser, Content: question, Timestamp: at},
		Message{Role: RoleAI, Content: answer, Timestamp: at},
	)
	c.UpdatedAt = at
}

// Recent returns at most n trailing messages
func (c *Chat) Recent(n int) []Message {
	if n <= 0 || len(c.Messages) <= n {
		return c.Messages
	}
	return c.Messages[len(c.Messages)-n:]
}

// TitleFrom derives a chat title from its first message
func TitleFrom(message string) string {
	title := strings.Join(strings.Fields(message), " ")
	if title == "" {
		return DefaultChatTitle
	}
	runes := []rune(title)
	if len(runes) > maxTitleLength {
		return strings.TrimSpace(string(runes[:maxTitleLength])) + "..."
	}
	return title
}
