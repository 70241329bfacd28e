package main

import (
	"log/slog"
	"os"
	"time"

	"nutriplan/config"
	"nutriplan/routes"
	"nutriplan/services"
)

func main() {
	cfg := config.Load()

	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	db, err := config.InitDB()
	if err != nil {
		logger.Error("database init failed", "error", err)
		os.Exit(1)
	}

	hub := services.NewRealtimeHub()
	push, err := services.NewPushService(db)
	if err != nil {
		logger.Error("push service init failed", "error", err)
		os.Exit(1)
	}
	services.InitAlertDeps(db, hub, push)

	authSvc := services.NewAuthService(db)
	planSvc := services.NewPlanService(services.NewPlanRepository(db))
	reminderSvc := services.NewReminderService(services.NewReminderRepository(db))

	scheduler := services.NewReminderScheduler(reminderSvc, services.BusNotifier{}, time.Minute)
	scheduler.Start()
	defer scheduler.Stop()

	r := routes.SetupRouter(logger, routes.Deps{
		DB:        db,
		Auth:      authSvc,
		Plan:      planSvc,
		Reminders: reminderSvc,
		Push:      push,
		Hub:       hub,
	})

	logger.Info("listening", "addr", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
