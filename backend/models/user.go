package models

import (
	"time"

	"gorm.io/datatypes"
)

type User struct {
	ID           string `gorm:"primaryKey" json:"id"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	Name         string `json:"name"`
	PasswordHash string `gorm:"not null" json:"-"`
	// Topics picked during onboarding, synced on registration
	Preferences datatypes.JSONSlice[string] `json:"preferences"`
	CreatedAt   time.Time                   `json:"createdAt"`
}
