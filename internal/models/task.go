package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	TaskStatusIncomplete = "incomplete"
	TaskStatusCompleted  = "completed"
)

// Task keeps the commonly-used fields as typed columns and routes any other
// caller-supplied fields into Extra, so free-form clients keep working without
// the table growing an unbounded column set.
type Task struct {
	ID          uuid.UUID         `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserEmail   string            `gorm:"not null;size:255;index" json:"userEmail"`
	Title       string            `gorm:"size:255" json:"title"`
	Description string            `gorm:"type:text" json:"description"`
	Priority    string            `gorm:"size:50" json:"priority"`
	DueDate     string            `gorm:"size:64" json:"dueDate"`
	Status      string            `gorm:"size:20;default:'incomplete'" json:"status"`
	Extra       datatypes.JSONMap `gorm:"type:jsonb;default:'{}'" json:"extra"`
	CreatedAt   time.Time         `gorm:"index" json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}
