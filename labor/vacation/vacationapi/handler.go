package vacationapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Abraxas-365/laboral/labor/vacation"
	"github.com/Abraxas-365/laboral/labor/vacation/vacationsrv"
	"github.com/Abraxas-365/laboral/pkg/iam/auth"
	"github.com/Abraxas-365/laboral/pkg/kernel"
)

// Handlers provides HTTP handlers for vacation operations
type Handlers struct {
	service *vacationsrv.VacationService
}

// NewHandlers creates a new vacation handlers instance
func NewHandlers(service *vacationsrv.VacationService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// ListVacations lists the caller's bookings by start date
// GET /api/vacations
func (h *Handlers) ListVacations(c *fiber.Ctx) error {
	userID, err := auth.MustUserID(c)
	if err != nil {
		return err
	}

	bookings, err := h.service.ListBookings(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(bookings)
}

// CreateVacation books a range; daysTaken is recomputed on the server
// POST /api/vacations
func (h *Handlers) CreateVacation(c *fiber.Ctx) error {
	userID, err := auth.MustUserID(c)
	if err != nil {
		return err
	}

	req, err := parseBookingRequest(c)
	if err != nil {
		return err
	}

	booking, err := h.service.RequestBooking(c.Context(), userID, req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(booking)
}

// PreviewVacation reports the cost of a range without booking it
// POST /api/vacations/preview
func (h *Handlers) PreviewVacation(c *fiber.Ctx) error {
	userID, err := auth.MustUserID(c)
	if err != nil {
		return err
	}

	req, err := parseBookingRequest(c)
	if err != nil {
		return err
	}

	preview, err := h.service.PreviewBooking(c.Context(), userID, req)
	if err != nil {
		return err
	}
	return c.JSON(preview)
}

// DeleteVacation removes one of the caller's bookings
// DELETE /api/vacations/:id
func (h *Handlers) DeleteVacation(c *fiber.Ctx) error {
	userID, err := auth.MustUserID(c)
	if err != nil {
		return err
	}

	id := kernel.VacationID(c.Params("id"))
	if id.IsEmpty() {
		return vacation.ErrBookingNotFound().WithDetail("id", "missing or empty")
	}

	if err := h.service.DeleteBooking(c.Context(), id, userID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"msg": "Vacaciones eliminadas"})
}

// GetBalance returns entitlement, used and remaining days
// GET /api/vacations/balance
func (h *Handlers) GetBalance(c *fiber.Ctx) error {
	userID, err := auth.MustUserID(c)
	if err != nil {
		return err
	}

	balance, err := h.service.GetBalance(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(balance)
}

// GetEntitlement returns the saved inputs of the entitlement
// GET /api/vacations/entitlement
func (h *Handlers) GetEntitlement(c *fiber.Ctx) error {
	userID, err := auth.MustUserID(c)
	if err != nil {
		return err
	}

	resp, err := h.service.GetEntitlement(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// UpdateEntitlement saves tenure and the manual total
// PUT /api/vacations/entitlement
func (h *Handlers) UpdateEntitlement(c *fiber.Ctx) error {
	userID, err := auth.MustUserID(c)
	if err != nil {
		return err
	}

	var req vacation.UpdateSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return vacation.ErrInvalidSettings().WithDetail("parse_error", err.Error())
	}

	resp, err := h.service.UpdateSettings(c.Context(), userID, req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// CalculateEntitlement is the stateless calculator; bad input counts as 0 years
// GET /api/vacations/entitlement/calculate?years=N
func (h *Handlers) CalculateEntitlement(c *fiber.Ctx) error {
	ent := vacation.ComputeEntitlement(vacation.ParseYearsOfService(c.Query("years")))
	return c.JSON(fiber.Map{
		"entitlement":     ent,
		"maxAccumulation": ent.MaxAccumulation(),
	})
}

func parseBookingRequest(c *fiber.Ctx) (vacation.BookingRequest, error) {
	var req vacation.BookingRequest
	if err := c.BodyParser(&req); err != nil {
		return req, vacation.ErrInvalidRange().WithDetail("parse_error", err.Error())
	}
	return req, nil
}

// RegisterRoutes registers vacation routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware fiber.Handler) {
	api := app.Group("/api/vacations")

	api.Get("/entitlement/calculate", handlers.CalculateEntitlement)

	api.Get("/", authMiddleware, handlers.ListVacations)
	api.Post("/", authMiddleware, handlers.CreateVacation)
	api.Post("/preview", authMiddleware, handlers.PreviewVacation)
	api.Get("/balance", authMiddleware, handlers.GetBalance)
	api.Get("/entitlement", authMiddleware, handlers.GetEntitlement)
	api.Put("/entitlement", authMiddleware, handlers.UpdateEntitlement)
	api.Delete("/:id", authMiddleware, handlers.DeleteVacation)
}
