package services

import (
	"errors"
	"fmt"

	"nutriplan/models"

	"gorm.io/gorm"
)

// ReminderRepository is the storage boundary for reminders. Get returns
// (nil, nil) when no reminder matches; callers decide whether that is an
// error.
type ReminderRepository interface {
	Create(r *models.Reminder) error
	List(userID uint) ([]models.Reminder, error)
	Get(userID uint, id string) (*models.Reminder, error)
	Update(r *models.Reminder) error
	Delete(userID uint, id string) error
	ListEnabled() ([]models.Reminder, error)
}

type gormReminderRepository struct {
	db *gorm.DB
}

func NewReminderRepository(db *gorm.DB) ReminderRepository {
	return &gormReminderRepository{db: db}
}

func (r *gormReminderRepository) Create(rem *models.Reminder) error {
	if err := r.db.Create(rem).Error; err != nil {
		return fmt.Errorf("%w: create reminder: %v", models.ErrPersistence, err)
	}
	return nil
}

func (r *gormReminderRepository) List(userID uint) ([]models.Reminder, error) {
	var out []models.Reminder
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("%w: list reminders: %v", models.ErrPersistence, err)
	}
	return out, nil
}

func (r *gormReminderRepository) Get(userID uint, id string) (*models.Reminder, error) {
	var rem models.Reminder
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&rem).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get reminder: %v", models.ErrPersistence, err)
	}
	return &rem, nil
}

func (r *gormReminderRepository) Update(rem *models.Reminder) error {
	if err := r.db.Save(rem).Error; err != nil {
		return fmt.Errorf("%w: update reminder: %v", models.ErrPersistence, err)
	}
	return nil
}

func (r *gormReminderRepository) Delete(userID uint, id string) error {
	err := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Reminder{}).Error
	if err != nil {
		return fmt.Errorf("%w: delete reminder: %v", models.ErrPersistence, err)
	}
	return nil
}

func (r *gormReminderRepository) ListEnabled() ([]models.Reminder, error) {
	var out []models.Reminder
	err := r.db.Where("enabled = ?", true).Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("%w: list enabled reminders: %v", models.ErrPersistence, err)
	}
	return out, nil
}
