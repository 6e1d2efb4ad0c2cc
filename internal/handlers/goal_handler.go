package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/miniproductivity/backend/internal/dto"
	"github.com/miniproductivity/backend/internal/models"
	"github.com/miniproductivity/backend/internal/session"
)

// GoalStore is the slice of GoalService the handler needs.
type GoalStore interface {
	Create(ownerEmail, goal, goalType string) (*dto.InsertResult, error)
	ListByOwner(ownerEmail string) ([]models.Goal, error)
	GetByID(id uuid.UUID, ownerEmail string) (*models.Goal, error)
	Update(id uuid.UUID, ownerEmail string, goal, goalType *string) (*dto.UpdateResult, error)
	Delete(id uuid.UUID, ownerEmail string) (*dto.DeleteResult, error)
}

type GoalHandler struct {
	goals GoalStore
}

func NewGoalHandler(goals GoalStore) *GoalHandler {
	return &GoalHandler{goals: goals}
}

func (h *GoalHandler) Create(c *fiber.Ctx) error {
	email, err := session.Email(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Message: "unauthorized access",
		})
	}

	var req dto.CreateGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Message: "Invalid request body",
		})
	}

	result, err := h.goals.Create(email, req.Goal, req.Type)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to create goal")
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

func (h *GoalHandler) List(c *fiber.Ctx) error {
	email, err := session.Email(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Message: "unauthorized access",
		})
	}

	goals, err := h.goals.ListByOwner(email)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch goals")
	}
	if goals == nil {
		goals = []models.Goal{}
	}
	return c.JSON(goals)
}

func (h *GoalHandler) Get(c *fiber.Ctx) error {
	email, err := session.Email(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Message: "unauthorized access",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Message: "Invalid goal ID",
		})
	}

	goal, err := h.goals.GetByID(id, email)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch goal")
	}
	if goal == nil {
		return c.JSON(nil)
	}
	return c.JSON(goal)
}

func (h *GoalHandler) Update(c *fiber.Ctx) error {
	email, err := session.Email(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Message: "unauthorized access",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Message: "Invalid goal ID",
		})
	}

	var req dto.UpdateGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Message: "Invalid request body",
		})
	}

	result, err := h.goals.Update(id, email, req.Goal, req.Type)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to update goal")
	}
	return c.JSON(result)
}

func (h *GoalHandler) Delete(c *fiber.Ctx) error {
	email, err := session.Email(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Message: "unauthorized access",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Message: "Invalid goal ID",
		})
	}

	result, err := h.goals.Delete(id, email)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to delete goal")
	}
	return c.JSON(result)
}
