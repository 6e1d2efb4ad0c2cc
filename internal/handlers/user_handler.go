package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/miniproductivity/backend/internal/dto"
	"github.com/miniproductivity/backend/internal/models"
)

// UserDirectory is the slice of UserService the handler needs.
type UserDirectory interface {
	Upsert(email, name, photoURL string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}

type UserHandler struct {
	users UserDirectory
}

func NewUserHandler(users UserDirectory) *UserHandler {
	return &UserHandler{users: users}
}

// Upsert saves a user on first sign-in and returns the stored record
// unchanged on every later call with the same email.
func (h *UserHandler) Upsert(c *fiber.Ctx) error {
	var req dto.UpsertUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Message: "Invalid request body",
		})
	}
	if req.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Message: "email is required",
		})
	}

	user, err := h.users.Upsert(req.Email, req.Name, req.PhotoURL)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to save user")
	}
	return c.JSON(user)
}

// Info looks up a profile by the email query parameter. Absence is an empty
// body, not a 404; the caller interprets null.
func (h *UserHandler) Info(c *fiber.Ctx) error {
	email := c.Query("email")
	user, err := h.users.GetByEmail(email)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch user")
	}
	if user == nil {
		return c.JSON(nil)
	}
	return c.JSON(user)
}
