package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/miniproductivity/backend/internal/models"
	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Upsert returns the stored user for this email untouched if one exists,
// otherwise creates it with the default role. The unique index on email backs
// the no-duplicate guarantee; a create that loses a race re-reads the winner.
// Profile fields are never refreshed after the first sign-in.
func (s *UserService) Upsert(email, name, photoURL string) (*models.User, error) {
	if email == "" {
		return nil, errors.New("email is required")
	}

	var existing models.User
	err := s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	user := models.User{
		ID:       uuid.New(),
		Name:     name,
		Email:    email,
		PhotoURL: photoURL,
		Role:     "user",
	}
	if err := s.db.Create(&user).Error; err != nil {
		// Lost a concurrent upsert for the same email; return the winner.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if ferr := s.db.Where("email = ?", email).First(&existing).Error; ferr == nil {
				return &existing, nil
			}
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

// GetByEmail performs a point lookup. Absence is not an error: the user is
// nil and callers surface an empty body.
func (s *UserService) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	return &user, nil
}
