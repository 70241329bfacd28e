package models

import "errors"

var (
	ErrInvalidDay       = errors.New("invalid day of week")
	ErrInvalidMealType  = errors.New("invalid meal type")
	ErrSnackIndex       = errors.New("snack index out of range")
	ErrInvalidGoal      = errors.New("nutrition goals must all be positive")
	ErrMissingField     = errors.New("day, meal type and time are required")
	ErrInvalidTime      = errors.New("time must be HH:MM in 24h format")
	ErrReminderNotFound = errors.New("reminder not found")
	ErrMealNotFound     = errors.New("meal not found in catalog")
	ErrEmailTaken       = errors.New("email already registered")
	ErrPersistence      = errors.New("persistence failure")
)
