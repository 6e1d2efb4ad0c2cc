package models

import (
	"time"

	"github.com/google/uuid"
)

type Goal struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserEmail string    `gorm:"not null;size:255;index" json:"userEmail"`
	Goal      string    `gorm:"type:text" json:"goal"`
	Type      string    `gorm:"size:100" json:"type"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
