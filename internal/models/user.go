package models

import (
	"time"
)

// User is a registered account. Rows are immutable after creation and are
// never deleted.
type User struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Username     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`

	// Relations
	Calculations []Calculation `gorm:"foreignKey:UserID" json:"-"`
}
