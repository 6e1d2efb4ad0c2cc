package models

import (
	"time"

	"github.com/google/uuid"
)

// User is created on first sign-in and never updated or deleted afterwards;
// name and photo may drift from the identity provider's current values.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string    `gorm:"size:255" json:"name"`
	Email     string    `gorm:"not null;size:255;uniqueIndex" json:"email"`
	PhotoURL  string    `gorm:"type:text" json:"photoURL"`
	Role      string    `gorm:"size:20;default:'user'" json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}
