package services

import (
	"log/slog"
	"time"

	"nutriplan/models"
	"nutriplan/utils"

	"gorm.io/gorm"
)

type alertDeps struct {
	db *gorm.DB
	rt *RealtimeHub
	ps *PushService
}

var _alert alertDeps

func InitAlertDeps(db *gorm.DB, rt *RealtimeHub, ps *PushService) {
	_alert = alertDeps{db: db, rt: rt, ps: ps}
}

// EmitAlert records the notification and pushes it to the user's open
// websocket clients. Safe to call anywhere, even before init (no-op).
func EmitAlert(userID uint, typ, message string) {
	if _alert.db == nil {
		return
	}
	a := &models.Alert{UserID: userID, Type: typ, Message: message, CreatedAt: time.Now()}
	_ = _alert.db.Create(a).Error

	if _alert.rt != nil {
		_alert.rt.Broadcast(userID, "alert.created", a)
	}
}

// RecentAlerts returns the user's latest notifications, newest first.
func RecentAlerts(userID uint, limit int) ([]models.Alert, error) {
	if limit <= 0 {
		limit = 20
	}
	if _alert.db == nil {
		return nil, nil
	}
	var out []models.Alert
	err := _alert.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

// BusNotifier routes scheduler fires onto the alert bus: in-app via the
// hub, push via SNS, email via SES. Push and email never fail the fire.
type BusNotifier struct{}

func (BusNotifier) NotifyInApp(userID uint, message string) {
	EmitAlert(userID, "reminder", message)
}

func (BusNotifier) NotifyPush(userID uint, title, body string) {
	if _alert.ps == nil {
		return
	}
	_alert.ps.PushToUser(userID, title, body, map[string]string{"type": "reminder"})
}

func (BusNotifier) NotifyEmail(userID uint, message string) {
	if _alert.db == nil {
		return
	}
	var u models.User
	if err := _alert.db.First(&u, userID).Error; err != nil {
		return
	}
	if err := utils.SendReminderEmail(u.Email, message); err != nil {
		slog.Warn("reminder email failed", "user", userID, "error", err)
	}
}
