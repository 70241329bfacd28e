package services

import (
	"time"

	"nutriplan/models"

	"github.com/google/uuid"
)

type ReminderService struct {
	repo ReminderRepository
}

func NewReminderService(repo ReminderRepository) *ReminderService {
	return &ReminderService{repo: repo}
}

// ReminderRequest is the create payload. Enabled defaults to true when the
// field is omitted.
type ReminderRequest struct {
	Day           string          `json:"day"`
	MealType      models.MealType `json:"meal_type"`
	Time          string          `json:"time"` // "HH:MM", 24h
	Enabled       *bool           `json:"enabled"`
	NotifyByEmail bool            `json:"notify_by_email"`
	NotifyByPush  bool            `json:"notify_by_push"`
}

// ValidateReminderRequest enforces the create contract: day, meal type and
// time are all required; day and meal type must be known values; time must
// be zero-padded 24h HH:MM.
func ValidateReminderRequest(req *ReminderRequest) error {
	if req.Day == "" || req.MealType == "" || req.Time == "" {
		return models.ErrMissingField
	}
	if !models.ValidDay(req.Day) {
		return models.ErrInvalidDay
	}
	if !models.ValidMealType(req.MealType) {
		return models.ErrInvalidMealType
	}
	if t, err := time.Parse("15:04", req.Time); err != nil || t.Format("15:04") != req.Time {
		return models.ErrInvalidTime
	}
	return nil
}

func (s *ReminderService) Add(userID uint, req *ReminderRequest) (*models.Reminder, error) {
	if err := ValidateReminderRequest(req); err != nil {
		return nil, err
	}

	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}

	r := &models.Reminder{
		ID:            uuid.NewString(),
		UserID:        userID,
		Day:           req.Day,
		MealType:      req.MealType,
		Time:          req.Time,
		Enabled:       enabled,
		NotifyByEmail: req.NotifyByEmail,
		NotifyByPush:  req.NotifyByPush,
	}
	if err := s.repo.Create(r); err != nil {
		return nil, err
	}
	return r, nil
}

// List returns the user's reminders in creation order.
func (s *ReminderService) List(userID uint) ([]models.Reminder, error) {
	return s.repo.List(userID)
}

// Toggle flips the enabled flag of the matching reminder.
func (s *ReminderService) Toggle(userID uint, id string) (*models.Reminder, error) {
	r, err := s.repo.Get(userID, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, models.ErrReminderNotFound
	}

	r.Enabled = !r.Enabled
	if err := s.repo.Update(r); err != nil {
		return nil, err
	}
	return r, nil
}

// Delete removes the matching reminder. Deleting an absent id is a no-op.
func (s *ReminderService) Delete(userID uint, id string) error {
	return s.repo.Delete(userID, id)
}

// ListEnabled returns every enabled reminder across all users; the
// scheduler scans this each tick.
func (s *ReminderService) ListEnabled() ([]models.Reminder, error) {
	return s.repo.ListEnabled()
}
