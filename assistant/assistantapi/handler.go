package assistantapi

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/Abraxas-365/laboral/assistant"
	"github.com/Abraxas-365/laboral/assistant/assistantsrv"
	"github.com/Abraxas-365/laboral/pkg/iam/auth"
	"github.com/Abraxas-365/laboral/pkg/kernel"
)

// MaxContractSize bounds uploaded PDFs
const MaxContractSize = 10 << 20

// Handlers provides HTTP handlers for the legal assistant
type Handlers struct {
	service *assistantsrv.AssistantService
}

// NewHandlers creates a new assistant handlers instance
func NewHandlers(service *assistantsrv.AssistantService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// Consult
// POST /api/ai/consult
func (h *Handlers) Consult(c *fiber.Ctx) error {
	var req assistant.ConsultRequest
	if err := c.BodyParser(&req); err != nil {
		return assistant.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	resp, err := h.service.Consult(c.Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SendMessage
// POST /api/ai/send
func (h *Handlers) SendMessage(c *fiber.Ctx) error {
	userID, err := auth.MustUserID(c)
	if err != nil {
		return err
	}

	var req assistant.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return assistant.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	resp, err := h.service.SendMessage(c.Context(), userID, req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ListChats
// GET /api/ai/history
func (h *Handlers) ListChats(c *fiber.Ctx) error {
	userID, err := auth.MustUserID(c)
	if err != nil {
		return err
	}

	chats, err := h.service.ListChats(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(chats)
}

// GetChat
// GET /api/ai/history/:id
func (h *Handlers) GetChat(c *fiber.Ctx) error {
	userID, err := auth.MustUserID(c)
	if err != nil {
		return err
	}

	chat, err := h.service.GetChat(c.Context(), kernel.ChatID(c.Params("id")), userID)
	if err != nil {
		return err
	}
	return c.JSON(chat)
}

// DeleteChat
// DELETE /api/ai/history/:id
func (h *Handlers) DeleteChat(c *fiber.Ctx) error {
	userID, err := auth.MustUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteChat(c.Context(), kernel.ChatID(c.Params("id")), userID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"msg": "Chat eliminado"})
}

// AnalyzeContract reviews an uploaded PDF contract
// POST /api/ai/analyze
func (h *Handlers) AnalyzeContract(c *fiber.Ctx) error {
	file, err := c.FormFile("contractPdf")
	if err != nil {
		return assistant.ErrInvalidRequest().WithDetail("field", "contractPdf")
	}
	if file.Size > MaxContractSize {
		return assistant.ErrInvalidDocument().WithDetail("max_bytes", MaxContractSize)
	}

	f, err := file.Open()
	if err != nil {
		return assistant.ErrInvalidDocument().WithCause(err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxContractSize))
	if err != nil {
		return assistant.ErrInvalidDocument().WithCause(err)
	}

	resp, err := h.service.AnalyzeContract(c.Context(), file.Filename, data)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// RegisterRoutes registers assistant routes, all authenticated
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware fiber.Handler) {
	ai := app.Group("/api/ai", authMiddleware)

	ai.Post("/consult", handlers.Consult)
	ai.Post("/send", handlers.SendMessage)
	ai.Post("/analyze", handlers.AnalyzeContract)
	ai.Get("/history", handlers.ListChats)
	ai.Get("/history/:id", handlers.GetChat)
	ai.Delete("/history/:id", handlers.DeleteChat)
}
