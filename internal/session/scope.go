package session

import "gorm.io/gorm"

// OwnedBy returns a GORM scope that filters rows by their owner email.
// Every task and goal query goes through it.
func OwnedBy(email string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_email = ?", email)
	}
}
