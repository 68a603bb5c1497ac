package assistant

import (
	"strings"
	"time"

	"github.com/Abraxas-365/laboral/pkg/kernel"
)

// ConsultRequest - one-off question without history
type ConsultRequest struct {
	Question string `json:"question"`
}

func (r *ConsultRequest) Validate() error {
	r.Question = strings.TrimSpace(r.Question)
	if r.Question == "" {
		return ErrInvalidRequest().WithDetail("field", "question")
	}
	return nil
}

type ConsultResponse struct {
	Answer string `json:"answer"`
}

// SendMessageRequest - a message in a new (chatId empty) or existing chat
type SendMessageRequest struct {
	ChatID  kernel.ChatID `json:"chatId,omitempty"`
	Message string        `json:"message"`
}

func (r *SendMessageRequest) Validate() error {
	r.Message = strings.TrimSpace(r.Message)
	if r.Message == "" {
		return ErrInvalidRequest().WithDetail("field", "message")
	}
	return nil
}

type SendMessageResponse struct {
	Reply string `json:"reply"`
	Chat  *Chat  `json:"chat"`
}

// ChatSummary - history list item
type ChatSummary struct {
	ID        kernel.ChatID `db:"id" json:"id"`
	Title     string        `db:"title" json:"title"`
	UpdatedAt time.Time     `db:"updated_at" json:"updatedAt"`
}

type AnalysisResponse struct {
	Filename string `json:"filename"`
	Analysis string `json:"analysis"`
}
