package workentryapi

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Abraxas-365/laboral/labor/workentry"
	"github.com/Abraxas-365/laboral/labor/workentry/workentrysrv"
	"github.com/Abraxas-365/laboral/pkg/iam/auth"
	"github.com/Abraxas-365/laboral/pkg/kernel"
)

// Handlers provides HTTP handlers for work entries
type Handlers struct {
	service *workentrysrv.WorkEntryService
}

// NewHandlers creates a new work entry handlers instance
func NewHandlers(service *workentrysrv.WorkEntryService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// ListEntries
// GET /api/labor
func (h *Handlers) ListEntries(c *fiber.Ctx) error {
	userID, err := auth.MustUserID(c)
	if err != nil {
		return err
	}

	entries, err := h.service.ListEntries(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(entries)
}

// CreateEntry
// POST /api/labor
func (h *Handlers) CreateEntry(c *fiber.Ctx) error {
	userID, err := auth.MustUserID(c)
	if err != nil {
		return err
	}

	var req workentry.CreateWorkEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return workentry.ErrInvalidEntry().WithDetail("parse_error", err.Error())
	}

	entry, err := h.service.CreateEntry(c.Context(), userID, req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

// DeleteEntry
// DELETE /api/labor/:id
func (h *Handlers) DeleteEntry(c *fiber.Ctx) error {
	userID, err := auth.MustUserID(c)
	if err != nil {
		return err
	}

	id := kernel.WorkEntryID(c.Params("id"))
	if id.IsEmpty() {
		return workentry.ErrEntryNotFound()
	}

	if err := h.service.DeleteEntry(c.Context(), id, userID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"msg": "Registro eliminado"})
}

// Summary
// GET /api/labor/summary?hourly_rate=&from=&to=
func (h *Handlers) Summary(c *fiber.Ctx) error {
	userID, err := auth.MustUserID(c)
	if err != nil {
		return err
	}

	req, err := parseSummaryQuery(c)
	if err != nil {
		return err
	}

	summary, err := h.service.Summary(c.Context(), userID, req)
	if err != nil {
		return err
	}
	return c.JSON(summary)
}

func parseSummaryQuery(c *fiber.Ctx) (workentry.SummaryRequest, error) {
	var req workentry.SummaryRequest

	if raw := c.Query("hourly_rate"); raw != "" {
		rate, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return req, workentry.ErrInvalidEntry().WithDetail("field", "hourly_rate")
		}
		req.HourlyRate = rate
	}

	for _, p := range []struct {
		name string
		dst  *kernel.Date
	}{{"from", &req.From}, {"to", &req.To}} {
		raw := c.Query(p.name)
		if raw == "" {
			continue
		}
		d, err := kernel.ParseDate(raw)
		if err != nil {
			return req, workentry.ErrInvalidEntry().WithDetail("field", p.name)
		}
		*p.dst = d
	}
	return req, nil
}

// RegisterRoutes registers work entry routes, all authenticated
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware fiber.Handler) {
	api := app.Group("/api/labor", authMiddleware)

	api.Get("/", handlers.ListEntries)
	api.Post("/", handlers.CreateEntry)
	api.Get("/summary", handlers.Summary)
	api.Delete("/:id", handlers.DeleteEntry)
}
