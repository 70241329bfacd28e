package models

import "time"

// Reminder fires a meal notification when the wall clock hits its
// (day, time) pair exactly. Display order is creation order.
type Reminder struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	UserID        uint      `gorm:"index;not null" json:"-"`
	Day           string    `gorm:"size:9;not null" json:"day"`
	MealType      MealType  `gorm:"size:10;not null" json:"meal_type"`
	Time          string    `gorm:"size:5;not null" json:"time"` // "HH:MM", 24h
	Enabled       bool      `json:"enabled"`
	NotifyByEmail bool      `json:"notify_by_email"`
	NotifyByPush  bool      `json:"notify_by_push"`
	CreatedAt     time.Time `json:"created_at"`
}
