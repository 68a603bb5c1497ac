package assistantsrv

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Abraxas-365/laboral/assistant"
	"github.com/Abraxas-365/laboral/internal/metrics"
	"github.com/Abraxas-365/laboral/internal/pdf"
	"github.com/Abraxas-365/laboral/pkg/errx"
	"github.com/Abraxas-365/laboral/pkg/kernel"
	"github.com/Abraxas-365/laboral/pkg/logx"
)

const (
	LawyerPrompt = "Eres un abogado experto en el código laboral chileno. Responde de forma clara, concisa y útil para un trabajador."

	AnalysisPrompt = LawyerPrompt + " Analiza el contrato de trabajo que te entrega el usuario y resume: " +
		"los derechos del trabajador, la remuneración y jornada pactadas, y las cláusulas que podrían ser abusivas o contrarias a la ley."

	// MaxHistory bounds the turns sent back to the model
	MaxHistory = 20

	// MaxDocumentRunes bounds the extracted contract text sent to the model
	MaxDocumentRunes = 12000
)

const (
	kindConsult = "consult"
	kindSend    = "send"
	kindAnalyze = "analyze"
)

// AssistantService answers labor-law questions and keeps the chat history
type AssistantService struct {
	chats     assistant.ChatRepository
	completer assistant.Completer
}

// NewAssistantService creates a new assistant service.
// completer is nil when no API key is configured.
func NewAssistantService(chats assistant.ChatRepository, completer assistant.Completer) *AssistantService {
	return &AssistantService{
		chats:     chats,
		completer: completer,
	}
}

// Consult answers a single question without storing it
func (s *AssistantService) Consult(ctx context.Context, req assistant.ConsultRequest) (*assistant.ConsultResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	answer, err := s.complete(ctx, kindConsult, LawyerPrompt, []assistant.Message{
		{Role: assistant.RoleUser, Content: req.Question},
	})
	if err != nil {
		return nil, err
	}
	return &assistant.ConsultResponse{Answer: answer}, nil
}

// SendMessage continues a chat, or starts one when no chat id is given.
// Nothing is stored when the model fails.
func (s *AssistantService) SendMessage(ctx context.Context, userID kernel.UserID, req assistant.SendMessageRequest) (*assistant.SendMessageResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	chat := &assistant.Chat{
		ID:       kernel.NewChatID(uuid.NewString()),
		UserID:   userID,
		Title:    assistant.TitleFrom(req.Message),
		Messages: []assistant.Message{},
	}
	isNew := req.ChatID.IsEmpty()
	if !isNew {
		existing, err := s.chats.GetByID(ctx, req.ChatID, userID)
		if err != nil {
			return nil, errx.Wrap(err, "failed to load chat", errx.TypeInternal)
		}
		chat = existing
	}

	now := time.Now()
	recent := chat.Recent(MaxHistory - 1)
	history := make([]assistant.Message, 0, len(recent)+1)
	history = append(history, recent...)
	history = append(history, assistant.Message{Role: assistant.RoleUser, Content: req.Message, Timestamp: now})
	answer, err := s.complete(ctx, kindSend, LawyerPrompt, history)
	if err != nil {
		return nil, err
	}

	chat.AppendExchange(req.Message, answer, now)
	if isNew {
		err = s.chats.Create(ctx, chat)
	} else {
		err = s.chats.Update(ctx, chat)
	}
	if err != nil {
		return nil, errx.Wrap(err, "failed to save chat", errx.TypeInternal)
	}

	return &assistant.SendMessageResponse{Reply: answer, Chat: chat}, nil
}

// ListChats returns the user's chat summaries
func (s *AssistantService) ListChats(ctx context.Context, userID kernel.UserID) ([]assistant.ChatSummary, error) {
	chats, err := s.chats.ListByUser(ctx, userID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list chats", errx.TypeInternal)
	}
	if chats == nil {
		chats = []assistant.ChatSummary{}
	}
	return chats, nil
}

// GetChat returns a chat with its messages
func (s *AssistantService) GetChat(ctx context.Context, id kernel.ChatID, userID kernel.UserID) (*assistant.Chat, error) {
	chat, err := s.chats.GetByID(ctx, id, userID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to load chat", errx.TypeInternal)
	}
	return chat, nil
}

// DeleteChat removes a chat
func (s *AssistantService) DeleteChat(ctx context.Context, id kernel.ChatID, userID kernel.UserID) error {
	if err := s.chats.Delete(ctx, id, userID); err != nil {
		return errx.Wrap(err, "failed to delete chat", errx.TypeInternal)
	}
	return nil
}

// AnalyzeContract extracts the text of a PDF contract and asks the model to review it
func (s *AssistantService) AnalyzeContract(ctx context.Context, filename string, data []byte) (*assistant.AnalysisResponse, error) {
	if s.completer == nil {
		metrics.AssistantRequests.WithLabelValues(kindAnalyze, "not_configured").Inc()
		return nil, assistant.ErrNotConfigured()
	}
	if !pdf.IsPDF(data) {
		return nil, assistant.ErrInvalidDocument().WithDetail("filename", filename)
	}

	text, err := pdf.ExtractText(data)
	if err != nil {
		reason := "unreadable"
		if errors.Is(err, pdf.ErrEmptyDocument) {
			reason = "no text layer"
		}
		logx.Warnf("Could not extract text from %q: %v", filename, err)
		return nil, assistant.ErrInvalidDocument().WithDetail("filename", filename).WithDetail("reason", reason)
	}

	analysis, err := s.complete(ctx, kindAnalyze, AnalysisPrompt, []assistant.Message{
		{Role: assistant.RoleUser, Content: pdf.Truncate(text, MaxDocumentRunes)},
	})
	if err != nil {
		return nil, err
	}
	return &assistant.AnalysisResponse{Filename: filename, Analysis: analysis}, nil
}

func (s *AssistantService) complete(ctx context.Context, kind, systemPrompt string, history []assistant.Message) (string, error) {
	if s.completer == nil {
		metrics.AssistantRequests.WithLabelValues(kind, "not_configured").Inc()
		return "", assistant.ErrNotConfigured()
	}

	answer, err := s.completer.Complete(ctx, systemPrompt, history)
	if err != nil {
		metrics.AssistantRequests.WithLabelValues(kind, "error").Inc()
		logx.Errorf("Assistant %s failed: %v", kind, err)
		return "", assistant.ErrUpstreamFailed(err)
	}

	metrics.AssistantRequests.WithLabelValues(kind, "ok").Inc()
	return answer, nil
}
