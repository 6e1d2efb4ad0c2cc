package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/miniproductivity/backend/internal/database"
	"github.com/miniproductivity/backend/internal/dto"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Liveness answers the bare root-path check the deployment platform polls.
func (h *HealthHandler) Liveness(c *fiber.Ctx) error {
	return c.SendString("mini productivity platform started")
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	dbStatus := "ok"
	if err := database.Ping(h.db); err != nil {
		dbStatus = "unhealthy: " + err.Error()
	}

	return c.JSON(dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		DB:        dbStatus,
	})
}
