package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Abraxas-365/laboral/pkg/kernel"
)

const (
	localUserID = "user_id"
	localEmail  = "user_email"
)

// Middleware validates bearer tokens and stores the caller in the request locals
func Middleware(tokenService TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return ErrMissingToken()
		}

		// "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			return ErrInvalidToken().WithDetail("reason", "invalid authorization format")
		}

		claims, err := tokenService.ValidateAccessToken(strings.TrimSpace(parts[1]))
		if err != nil {
			return err
		}

		c.Locals(localUserID, claims.UserID)
		c.Locals(localEmail, claims.Email)

		return c.Next()
	}
}

// GetUserID extracts the authenticated user from the request
func GetUserID(c *fiber.Ctx) (kernel.UserID, bool) {
	userID, ok := c.Locals(localUserID).(kernel.UserID)
	return userID, ok && !userID.IsEmpty()
}

// GetEmail extracts the authenticated email from the request
func GetEmail(c *fiber.Ctx) (kernel.Email, bool) {
	email, ok := c.Locals(localEmail).(kernel.Email)
	return email, ok
}

// MustUserID is for handlers mounted behind Middleware
func MustUserID(c *fiber.Ctx) (kernel.UserID, error) {
	userID, ok := GetUserID(c)
	if !ok {
		return "", ErrMissingToken()
	}
	return userID, nil
}
