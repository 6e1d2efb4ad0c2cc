package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/miniproductivity/backend/internal/dto"
	"github.com/miniproductivity/backend/internal/models"
	"github.com/miniproductivity/backend/internal/session"
)

// TaskStore is the slice of TaskService the handler needs. Every operation is
// scoped to the authenticated owner's email.
type TaskStore interface {
	Create(ownerEmail string, fields map[string]interface{}) (*dto.InsertResult, error)
	ListByOwner(ownerEmail string) ([]models.Task, error)
	GetByID(id uuid.UUID, ownerEmail string) (*models.Task, error)
	Complete(id uuid.UUID, ownerEmail string) (*dto.UpdateResult, error)
	Update(id uuid.UUID, ownerEmail string, fields map[string]interface{}) (*dto.UpdateResult, error)
	Delete(id uuid.UUID, ownerEmail string) (*dto.DeleteResult, error)
}

type TaskHandler struct {
	tasks TaskStore
}

func NewTaskHandler(tasks TaskStore) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

func (h *TaskHandler) Create(c *fiber.Ctx) error {
	email, err := session.Email(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Message: "unauthorized access",
		})
	}

	fields := make(map[string]interface{})
	if err := c.BodyParser(&fields); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Message: "Invalid request body",
		})
	}

	result, err := h.tasks.Create(email, fields)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to create task")
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

func (h *TaskHandler) List(c *fiber.Ctx) error {
	email, err := session.Email(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Message: "unauthorized access",
		})
	}

	tasks, err := h.tasks.ListByOwner(email)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch tasks")
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	return c.JSON(tasks)
}

func (h *TaskHandler) Get(c *fiber.Ctx) error {
	email, err := session.Email(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Message: "unauthorized access",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Message: "Invalid task ID",
		})
	}

	task, err := h.tasks.GetByID(id, email)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch task")
	}
	if task == nil {
		// Absent or foreign ids read the same: an empty result.
		return c.JSON(nil)
	}
	return c.JSON(task)
}

func (h *TaskHandler) Complete(c *fiber.Ctx) error {
	email, err := session.Email(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Message: "unauthorized access",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Message: "Invalid task ID",
		})
	}

	result, err := h.tasks.Complete(id, email)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to complete task")
	}
	return c.JSON(result)
}

func (h *TaskHandler) Update(c *fiber.Ctx) error {
	email, err := session.Email(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Message: "unauthorized access",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Message: "Invalid task ID",
		})
	}

	fields := make(map[string]interface{})
	if err := c.BodyParser(&fields); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Message: "Invalid request body",
		})
	}

	result, err := h.tasks.Update(id, email, fields)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to update task")
	}
	return c.JSON(result)
}

func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	email, err := session.Email(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Message: "unauthorized access",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Message: "Invalid task ID",
		})
	}

	result, err := h.tasks.Delete(id, email)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to delete task")
	}
	return c.JSON(result)
}
