package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	FullName string
	// free-text preference shown on the profile page, e.g. "vegetarian"
	DietaryPreference string
}
