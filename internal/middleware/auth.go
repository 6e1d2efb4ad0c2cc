package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/miniproductivity/backend/internal/config"
	"github.com/miniproductivity/backend/internal/dto"
)

// SessionCookie is the cookie carrying the signed session token.
const SessionCookie = "token"

// CookieAuth verifies the session cookie before any data access. Missing,
// malformed, badly signed and expired tokens all map to the same 401.
func CookieAuth(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:  jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		TokenLookup: "cookie:" + SessionCookie,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Message: "unauthorized access",
			})
		},
	})
}
