package assistantsrv

import (
	"context"
	"errors"
	"testing"

	"github.com/Abraxas-365/laboral/assistant"
	"github.com/Abraxas-365/laboral/pkg/errx"
	"github.com/Abraxas-365/laboral/pkg/kernel"
)

type memoryChats struct {
	items map[kernel.ChatID]assistant.Chat
}

func newMemoryChats() *memoryChats {
	return &memoryChats{items: make(map[kernel.ChatID]assistant.Chat)}
}

func (m *memoryChats) Create(_ context.Context, c *assistant.Chat) error {
	m.items[c.ID] = *c
	return nil
}

func (m *memoryChats) Update(_ context.Context, c *assistant.Chat) error {
	if _, ok := m.items[c.ID]; !ok {
		return assistant.ErrChatNotFound()
	}
	m.items[c.ID] = *c
	return nil
}

func (m *memoryChats) GetByID(_ context.Context, id kernel.ChatID, userID kernel.UserID) (*assistant.Chat, error) {
	c, ok := m.items[id]
	if !ok || c.UserID != userID {
		return nil, assistant.ErrChatNotFound()
	}
	c.Messages = append([]assistant.Message(nil), c.Messages...)
	return &c, nil
}

func (m *memoryChats) ListByUser(_ context.Context, userID kernel.UserID) ([]assistant.ChatSummary, error) {
	var out []assistant.ChatSummary
	for _, c := range m.items {
		if c.UserID == userID {
			out = append(out, assistant.ChatSummary{ID: c.ID, Title: c.Title, UpdatedAt: c.UpdatedAt})
		}
	}
	return out, nil
}

func (m *memoryChats) Delete(_ context.Context, id kernel.ChatID, userID kernel.UserID) error {
	c, ok := m.items[id]
	if !ok || c.UserID != userID {
		return assistant.ErrChatNotFound()
	}
	delete(m.items, id)
	return nil
}

type fakeCompleter struct {
	answer  string
	err     error
	prompts []string
	history [][]assistant.Message
}

func (f *fakeCompleter) Complete(_ context.Context, systemPrompt string, history []assistant.Message) (string, error) {
	f.prompts = append(f.prompts, systemPrompt)
	f.history = append(f.history, history)
	return f.answer, f.err
}

const owner = kernel.UserID("user-1")

func TestConsult(t *testing.T) {
	completer := &fakeCompleter{answer: "Tienes 15 días hábiles."}
	svc := NewAssistantService(newMemoryChats(), completer)

	resp, err := svc.Consult(context.Background(), assistant.ConsultRequest{Question: "¿Cuántos días tengo?"})
	if err != nil {
		t.Fatalf("Consult() error = %v", err)
	}
	if resp.Answer != "Tienes 15 días hábiles." {
		t.Errorf("Answer = %q", resp.Answer)
	}
	if completer.prompts[0] != LawyerPrompt {
		t.Errorf("system prompt = %q", completer.prompts[0])
	}

	if _, err := svc.Consult(context.Background(), assistant.ConsultRequest{Question: " "}); !errx.IsCode(err, assistant.CodeInvalidRequest) {
		t.Errorf("blank question error = %v", err)
	}
}

func TestConsult_Errors(t *testing.T) {
	svc := NewAssistantService(newMemoryChats(), nil)
	if _, err := svc.Consult(context.Background(), assistant.ConsultRequest{Question: "hola"}); !errx.IsCode(err, assistant.CodeNotConfigured) {
		t.Errorf("no completer error = %v, want not configured", err)
	}

	svc = NewAssistantService(newMemoryChats(), &fakeCompleter{err: errors.New("insufficient_quota")})
	if _, err := svc.Consult(context.Background(), assistant.ConsultRequest{Question: "hola"}); !errx.IsCode(err, assistant.CodeUpstreamFailed) {
		t.Errorf("upstream error = %v, want upstream failed", err)
	}
}

func TestSendMessage(t *testing.T) {
	ctx := context.Background()
	chats := newMemoryChats()
	completer := &fakeCompleter{answer: "respuesta"}
	svc := NewAssistantService(chats, completer)

	first, err := svc.SendMessage(ctx, owner, assistant.SendMessageRequest{Message: "¿Qué es el feriado progresivo?"})
	if err != nil {
		t.Fatalf("SendMessage() error = %v", err)
	}
	if first.Chat.Title != "¿Qué es el feriado progresivo?" || len(first.Chat.Messages) != 2 {
		t.Fatalf("new chat = %+v", first.Chat)
	}

	second, err := svc.SendMessage(ctx, owner, assistant.SendMessageRequest{ChatID: first.Chat.ID, Message: "¿Y si cambio de empleador?"})
	if err != nil {
		t.Fatalf("SendMessage() error = %v", err)
	}
	if len(second.Chat.Messages) != 4 {
		t.Errorf("messages = %d, want 4", len(second.Chat.Messages))
	}
	if got := len(completer.history[1]); got != 3 {
		t.Errorf("history sent = %d messages, want 3", got)
	}
	if len(chats.items) != 1 {
		t.Errorf("chats stored = %d, want 1", len(chats.items))
	}

	if _, err := svc.SendMessage(ctx, "intruder", assistant.SendMessageRequest{ChatID: first.Chat.ID, Message: "hola"}); !errx.IsCode(err, assistant.CodeChatNotFound) {
		t.Errorf("foreign chat error = %v, want not found", err)
	}
}

func TestSendMessage_UpstreamFailureStoresNothing(t *testing.T) {
	chats := newMemoryChats()
	svc := NewAssistantService(chats, &fakeCompleter{err: errors.New("timeout")})

	_, err := svc.SendMessage(context.Background(), owner, assistant.SendMessageRequest{Message: "hola"})
	if !errx.IsCode(err, assistant.CodeUpstreamFailed) {
		t.Fatalf("error = %v, want upstream failed", err)
	}
	if len(chats.items) != 0 {
		t.Error("no chat should be stored on failure")
	}
}

func TestHistory(t *testing.T) {
	ctx := context.Background()
	svc := NewAssistantService(newMemoryChats(), &fakeCompleter{answer: "ok"})

	empty, err := svc.ListChats(ctx, owner)
	if err != nil || empty == nil {
		t.Fatalf("ListChats() = %v, %v; want empty non-nil", empty, err)
	}

	resp, _ := svc.SendMessage(ctx, owner, assistant.SendMessageRequest{Message: "hola"})
	list, _ := svc.ListChats(ctx, owner)
	if len(list) != 1 || list[0].ID != resp.Chat.ID {
		t.Errorf("ListChats() = %+v", list)
	}

	chat, err := svc.GetChat(ctx, resp.Chat.ID, owner)
	if err != nil || len(chat.Messages) != 2 {
		t.Errorf("GetChat() = %+v, %v", chat, err)
	}

	if err := svc.DeleteChat(ctx, resp.Chat.ID, "intruder"); !errx.IsCode(err, assistant.CodeChatNotFound) {
		t.Errorf("foreign delete error = %v", err)
	}
	if err := svc.DeleteChat(ctx, resp.Chat.ID, owner); err != nil {
		t.Errorf("DeleteChat() error = %v", err)
	}
}

func TestAnalyzeContract_RejectsBeforeCallingModel(t *testing.T) {
	completer := &fakeCompleter{answer: "análisis"}
	svc := NewAssistantService(newMemoryChats(), completer)

	_, err := svc.AnalyzeContract(context.Background(), "foto.png", []byte("\x89PNG\r\n"))
	if !errx.IsCode(err, assistant.CodeInvalidDocument) {
		t.Errorf("non-pdf error = %v, want invalid document", err)
	}
	if len(completer.prompts) != 0 {
		t.Error("model must not be called for invalid documents")
	}

	svc = NewAssistantService(newMemoryChats(), nil)
	if _, err := svc.AnalyzeContract(context.Background(), "c.pdf", []byte("%PDF-1.4")); !errx.IsCode(err, assistant.CodeNotConfigured) {
		t.Errorf("no completer error = %v, want not configured", err)
	}
}
