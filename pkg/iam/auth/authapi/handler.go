package authapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Abraxas-365/laboral/pkg/iam/auth"
	"github.com/Abraxas-365/laboral/pkg/iam/auth/authsrv"
	"github.com/Abraxas-365/laboral/pkg/iam/user"
	"github.com/Abraxas-365/laboral/pkg/iam/user/usersrv"
)

// Handlers provides HTTP handlers for accounts and sessions
type Handlers struct {
	authService *authsrv.AuthService
	userService *usersrv.UserService
}

func NewHandlers(authService *authsrv.AuthService, userService *usersrv.UserService) *Handlers {
	return &Handlers{
		authService: authService,
		userService: userService,
	}
}

// Register creates an account
// POST /api/auth/register
func (h *Handlers) Register(c *fiber.Ctx) error {
	var req auth.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return auth.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	resp, err := h.authService.Register(c.Context(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Login opens a session with email and password
// POST /api/auth/login
func (h *Handlers) Login(c *fiber.Ctx) error {
	var req auth.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return auth.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	resp, err := h.authService.Login(c.Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GoogleLogin opens a session for a Google account
// POST /api/auth/google
func (h *Handlers) GoogleLogin(c *fiber.Ctx) error {
	var req auth.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return auth.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	resp, err := h.authService.GoogleLogin(c.Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Me returns the authenticated user
// GET /api/auth/me
func (h *Handlers) Me(c *fiber.Ctx) error {
	userID, err := auth.MustUserID(c)
	if err != nil {
		return err
	}

	u, err := h.userService.GetProfile(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(u)
}

// UpdateProfile edits the authenticated user's profile
// PUT /api/auth/profile
func (h *Handlers) UpdateProfile(c *fiber.Ctx) error {
	userID, err := auth.MustUserID(c)
	if err != nil {
		return err
	}

	var req user.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return user.ErrInvalidProfile().WithDetail("parse_error", err.Error())
	}

	u, err := h.userService.UpdateProfile(c.Context(), userID, req)
	if err != nil {
		return err
	}
	return c.JSON(u)
}

// DeleteAccount removes the authenticated user and their data
// DELETE /api/auth/profile
func (h *Handlers) DeleteAccount(c *fiber.Ctx) error {
	userID, err := auth.MustUserID(c)
	if err != nil {
		return err
	}

	if err := h.userService.DeleteAccount(c.Context(), userID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"msg": "Cuenta eliminada"})
}

// RegisterRoutes registers account routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware fiber.Handler) {
	api := app.Group("/api/auth")

	api.Post("/register", handlers.Register)
	api.Post("/login", handlers.Login)
	api.Post("/google", handlers.GoogleLogin)

	api.Get("/me", authMiddleware, handlers.Me)
	api.Put("/profile", authMiddleware, handlers.UpdateProfile)
	api.Delete("/profile", authMiddleware, handlers.DeleteAccount)
}
