package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/miniproductivity/backend/internal/dto"
	"github.com/miniproductivity/backend/internal/models"
	"github.com/miniproductivity/backend/internal/session"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// taskColumns maps the caller-facing field names onto typed columns. Anything
// else a client sends lands in the extra JSONB map.
var taskColumns = map[string]string{
	"title":       "title",
	"description": "description",
	"priority":    "priority",
	"dueDate":     "due_date",
	"status":      "status",
}

// reservedTaskFields are owned by the server and silently dropped from any
// caller-supplied document: ownership and timestamps are immutable through
// the generic routes.
var reservedTaskFields = map[string]bool{
	"id":        true,
	"_id":       true,
	"userEmail": true,
	"createdAt": true,
	"updatedAt": true,
	"extra":     true,
}

type TaskService struct {
	db *gorm.DB
}

func NewTaskService(db *gorm.DB) *TaskService {
	return &TaskService{db: db}
}

// Create persists a task owned by ownerEmail. Status is forced to incomplete
// regardless of input, known fields go to columns, unknown fields verbatim
// into the extra map. Only the acknowledgment is returned, not the record.
func (s *TaskService) Create(ownerEmail string, fields map[string]interface{}) (*dto.InsertResult, error) {
	task := models.Task{
		ID:        uuid.New(),
		UserEmail: ownerEmail,
		Status:    models.TaskStatusIncomplete,
		Extra:     datatypes.JSONMap{},
	}

	for key, value := range fields {
		if reservedTaskFields[key] || key == "status" {
			continue
		}
		str, isString := value.(string)
		if _, known := taskColumns[key]; known && isString {
			switch key {
			case "title":
				task.Title = str
			case "description":
				task.Description = str
			case "priority":
				task.Priority = str
			case "dueDate":
				task.DueDate = str
			}
			continue
		}
		task.Extra[key] = value
	}

	if err := s.db.Create(&task).Error; err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return &dto.InsertResult{Acknowledged: true, InsertedID: task.ID}, nil
}

// ListByOwner returns the owner's tasks, newest first.
func (s *TaskService) ListByOwner(ownerEmail string) ([]models.Task, error) {
	var tasks []models.Task
	err := s.db.Scopes(session.OwnedBy(ownerEmail)).
		Order("created_at DESC").
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// GetByID is scoped by both id and owner: an id belonging to another owner
// reads as absent, not forbidden.
func (s *TaskService) GetByID(id uuid.UUID, ownerEmail string) (*models.Task, error) {
	var task models.Task
	err := s.db.Scopes(session.OwnedBy(ownerEmail)).First(&task, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch task: %w", err)
	}
	return &task, nil
}

// Complete sets status to completed unconditionally. An id/owner mismatch
// matches zero rows; the caller inspects the count.
func (s *TaskService) Complete(id uuid.UUID, ownerEmail string) (*dto.UpdateResult, error) {
	result := s.db.Model(&models.Task{}).
		Scopes(session.OwnedBy(ownerEmail)).
		Where("id = ?", id).
		Update("status", models.TaskStatusCompleted)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to complete task: %w", result.Error)
	}
	return &dto.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  result.RowsAffected,
		ModifiedCount: result.RowsAffected,
	}, nil
}

// Update applies merge-patch semantics: provided known fields overwrite their
// columns, provided unknown fields merge into extra, absent fields stay
// untouched. A single UPDATE carries both.
func (s *TaskService) Update(id uuid.UUID, ownerEmail string, fields map[string]interface{}) (*dto.UpdateResult, error) {
	updates := make(map[string]interface{})
	extra := datatypes.JSONMap{}

	for key, value := range fields {
		if reservedTaskFields[key] {
			continue
		}
		column, known := taskColumns[key]
		if str, isString := value.(string); known && isString {
			updates[column] = str
			continue
		}
		extra[key] = value
	}

	if len(extra) > 0 {
		updates["extra"] = gorm.Expr("extra || ?", extra)
	}

	// A patch with nothing to set still reports whether the filter matched,
	// so an empty body stays distinguishable from a foreign id.
	if len(updates) == 0 {
		return s.matchOnly(id, ownerEmail)
	}

	result := s.db.Model(&models.Task{}).
		Scopes(session.OwnedBy(ownerEmail)).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update task: %w", result.Error)
	}
	return &dto.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  result.RowsAffected,
		ModifiedCount: result.RowsAffected,
	}, nil
}

func (s *TaskService) matchOnly(id uuid.UUID, ownerEmail string) (*dto.UpdateResult, error) {
	var matched int64
	err := s.db.Model(&models.Task{}).
		Scopes(session.OwnedBy(ownerEmail)).
		Where("id = ?", id).
		Count(&matched).Error
	if err != nil {
		return nil, fmt.Errorf("failed to match task: %w", err)
	}
	return &dto.UpdateResult{Acknowledged: true, MatchedCount: matched}, nil
}

// Delete removes the task scoped by (id, owner). The original client API let
// any authenticated user delete any task by id; that was an authorization gap,
// so deletion is owner-scoped like every other mutating route.
func (s *TaskService) Delete(id uuid.UUID, ownerEmail string) (*dto.DeleteResult, error) {
	result := s.db.Scopes(session.OwnedBy(ownerEmail)).
		Where("id = ?", id).
		Delete(&models.Task{})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to delete task: %w", result.Error)
	}
	return &dto.DeleteResult{Acknowledged: true, DeletedCount: result.RowsAffected}, nil
}
