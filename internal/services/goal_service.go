package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/miniproductivity/backend/internal/dto"
	"github.com/miniproductivity/backend/internal/models"
	"github.com/miniproductivity/backend/internal/session"
	"gorm.io/gorm"
)

type GoalService struct {
	db *gorm.DB
}

func NewGoalService(db *gorm.DB) *GoalService {
	return &GoalService{db: db}
}

// Create persists a goal owned by ownerEmail.
func (s *GoalService) Create(ownerEmail, goal, goalType string) (*dto.InsertResult, error) {
	record := models.Goal{
		ID:        uuid.New(),
		UserEmail: ownerEmail,
		Goal:      goal,
		Type:      goalType,
	}
	if err := s.db.Create(&record).Error; err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}
	return &dto.InsertResult{Acknowledged: true, InsertedID: record.ID}, nil
}

// ListByOwner returns the owner's goals, newest first.
func (s *GoalService) ListByOwner(ownerEmail string) ([]models.Goal, error) {
	var goals []models.Goal
	err := s.db.Scopes(session.OwnedBy(ownerEmail)).
		Order("created_at DESC").
		Find(&goals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	return goals, nil
}

func (s *GoalService) GetByID(id uuid.UUID, ownerEmail string) (*models.Goal, error) {
	var goal models.Goal
	err := s.db.Scopes(session.OwnedBy(ownerEmail)).First(&goal, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch goal: %w", err)
	}
	return &goal, nil
}

// Update merge-patches the goal description and type; nil fields are left
// untouched. Scoped by (id, owner).
func (s *GoalService) Update(id uuid.UUID, ownerEmail string, goal, goalType *string) (*dto.UpdateResult, error) {
	updates := make(map[string]interface{})
	if goal != nil {
		updates["goal"] = *goal
	}
	if goalType != nil {
		updates["type"] = *goalType
	}
	// A patch with nothing to set still reports whether the filter matched,
	// so an empty body stays distinguishable from a foreign id.
	if len(updates) == 0 {
		var matched int64
		err := s.db.Model(&models.Goal{}).
			Scopes(session.OwnedBy(ownerEmail)).
			Where("id = ?", id).
			Count(&matched).Error
		if err != nil {
			return nil, fmt.Errorf("failed to match goal: %w", err)
		}
		return &dto.UpdateResult{Acknowledged: true, MatchedCount: matched}, nil
	}

	result := s.db.Model(&models.Goal{}).
		Scopes(session.OwnedBy(ownerEmail)).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update goal: %w", result.Error)
	}
	return &dto.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  result.RowsAffected,
		ModifiedCount: result.RowsAffected,
	}, nil
}

// Delete removes the goal scoped by (id, owner).
func (s *GoalService) Delete(id uuid.UUID, ownerEmail string) (*dto.DeleteResult, error) {
	result := s.db.Scopes(session.OwnedBy(ownerEmail)).
		Where("id = ?", id).
		Delete(&models.Goal{})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to delete goal: %w", result.Error)
	}
	return &dto.DeleteResult{Acknowledged: true, DeletedCount: result.RowsAffected}, nil
}
