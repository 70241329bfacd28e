package models

import "gorm.io/gorm"

// PlanDocument is the persisted form of one user's planner state: the whole
// {plan, goals} document as a single JSON blob. Saves overwrite the prior
// document wholesale; there is no partial-field update and no concurrency
// token (last write wins).
type PlanDocument struct {
	gorm.Model
	UserID uint   `gorm:"uniqueIndex;not null"`
	Data   []byte `gorm:"type:jsonb;not null"`
}
