package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/miniproductivity/backend/internal/config"
	"github.com/miniproductivity/backend/internal/dto"
	"github.com/miniproductivity/backend/internal/middleware"
)

// AuthHandler mints and clears the session cookie. There is no credential
// check here: identity is established upstream by the federated sign-in the
// client performs before calling /jwt.
type AuthHandler struct {
	cfg *config.Config
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

// IssueToken signs a session token for the given email and sets it as an
// HTTP-only cookie. The token never appears in the response body.
func (h *AuthHandler) IssueToken(c *fiber.Ctx) error {
	var req dto.IssueTokenRequest
	if err := c.BodyParser(&req); err != nil || req.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Message: "email is required",
		})
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"email": req.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(h.cfg.JWTExpiry).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(h.cfg.JWTSecret))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to sign token")
	}

	c.Cookie(h.sessionCookie(token, now.Add(h.cfg.JWTExpiry)))
	return c.JSON(dto.SuccessResponse{Success: true})
}

// Logout clears the cookie with matching attributes. Idempotent: clearing an
// absent cookie is still a success.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	cookie := h.sessionCookie("", time.Now().Add(-time.Hour))
	c.Cookie(cookie)
	return c.JSON(dto.SuccessResponse{Success: true})
}

// sessionCookie carries the cross-site attributes the browser clients need:
// production serves the API and front-end from different sites, so the cookie
// must be Secure with SameSite=None there, and stays Strict in development.
func (h *AuthHandler) sessionCookie(value string, expires time.Time) *fiber.Cookie {
	sameSite := fiber.CookieSameSiteStrictMode
	if h.cfg.IsProduction() {
		sameSite = fiber.CookieSameSiteNoneMode
	}
	return &fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HTTPOnly: true,
		Secure:   h.cfg.IsProduction(),
		SameSite: sameSite,
	}
}
