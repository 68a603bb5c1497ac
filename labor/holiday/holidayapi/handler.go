package holidayapi

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Abraxas-365/laboral/labor/holiday"
	"github.com/Abraxas-365/laboral/labor/holiday/holidaysrv"
)

// Handlers provides HTTP handlers for holiday lookups
type Handlers struct {
	service *holidaysrv.HolidayService
}

func NewHandlers(service *holidaysrv.HolidayService) *Handlers {
	return &Handlers{service: service}
}

// ListHolidays returns the holidays of a year, defaulting to the current one
// GET /api/holidays?year=YYYY
func (h *Handlers) ListHolidays(c *fiber.Ctx) error {
	year := time.Now().Year()
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return holiday.ErrInvalidYear().WithDetail("year", raw)
		}
		year = parsed
	}

	resp, err := h.service.Lookup(c.Context(), year)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// RegisterRoutes registers holiday routes. Holidays are public reference data.
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	app.Get("/api/holidays", handlers.ListHolidays)
}
