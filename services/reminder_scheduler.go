package services

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"nutriplan/models"
)

// ReminderSource supplies the reminders to check each tick.
type ReminderSource interface {
	ListEnabled() ([]models.Reminder, error)
}

// ReminderNotifier receives fire side effects. The in-app channel is
// always used; push and email only when the reminder asks for them.
type ReminderNotifier interface {
	NotifyInApp(userID uint, message string)
	NotifyPush(userID uint, title, body string)
	NotifyEmail(userID uint, message string)
}

// ReminderScheduler polls wall-clock time against stored reminders and
// fires those whose (day, time) exactly equals the current minute.
// Matching is best-effort: a minute that passes while the process is down
// is not caught up later.
type ReminderScheduler struct {
	source   ReminderSource
	notifier ReminderNotifier
	interval time.Duration

	mu       sync.Mutex
	started  bool
	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

func NewReminderScheduler(source ReminderSource, notifier ReminderNotifier, interval time.Duration) *ReminderScheduler {
	if interval <= 0 {
		interval = time.Minute
	}
	return &ReminderScheduler{
		source:   source,
		notifier: notifier,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the single recurring check goroutine. Ticks never run
// concurrently: one goroutine owns the ticker for the scheduler's lifetime.
// Calling Start again is a no-op.
func (s *ReminderScheduler) Start() {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return
	}
	s.started = true
	s.mu.Unlock()

	go func() {
		defer close(s.done)
		t := time.NewTicker(s.interval)
		defer t.Stop()
		for {
			select {
			case now := <-t.C:
				s.Tick(now)
			case <-s.stop:
				return
			}
		}
	}()
}

// Stop cancels the recurring check and waits for the in-flight tick, if
// any, to finish. Safe to call more than once, or without a prior Start.
func (s *ReminderScheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })

	s.mu.Lock()
	started := s.started
	s.mu.Unlock()
	if started {
		<-s.done
	}
}

// Tick checks every enabled reminder against now. The weekday mapping is
// Monday-first with Sunday last; the time key is zero-padded "HH:MM".
func (s *ReminderScheduler) Tick(now time.Time) {
	reminders, err := s.source.ListEnabled()
	if err != nil {
		slog.Error("reminder check failed", "error", err)
		return
	}

	currentDay := models.Days[(int(now.Weekday())+6)%7]
	currentTime := now.Format("15:04")

	for _, r := range reminders {
		if r.Day != currentDay || r.Time != currentTime {
			continue
		}
		s.fire(r, currentDay, currentTime)
	}
}

func (s *ReminderScheduler) fire(r models.Reminder, day, hhmm string) {
	msg := fmt.Sprintf("Time for %s! (%s %s)", r.MealType, day, hhmm)

	s.notifier.NotifyInApp(r.UserID, msg)
	if r.NotifyByPush {
		s.notifier.NotifyPush(r.UserID, "Meal reminder", msg)
	}
	if r.NotifyByEmail {
		s.notifier.NotifyEmail(r.UserID, msg)
	}
	slog.Info("reminder fired", "user", r.UserID, "meal", r.MealType, "day", day, "time", hhmm)
}
