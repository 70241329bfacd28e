package routes

import (
	"log/slog"

	"nutriplan/controllers"
	"nutriplan/middlewares"
	"nutriplan/services"

	"github.com/gin-gonic/gin"
	sloggin "github.com/samber/slog-gin"
	"gorm.io/gorm"
)

type Deps struct {
	DB        *gorm.DB
	Auth      *services.AuthService
	Plan      *services.PlanService
	Reminders *services.ReminderService
	Push      *services.PushService
	Hub       *services.RealtimeHub
}

func SetupRouter(logger *slog.Logger, d Deps) *gin.Engine {
	r := gin.New()
	r.Use(sloggin.New(logger), gin.Recovery())

	authCtl := controllers.NewAuthController(d.Auth)
	planCtl := controllers.NewPlanController(d.Plan)
	goalCtl := controllers.NewGoalController(d.Plan)
	remCtl := controllers.NewReminderController(d.Reminders)
	devCtl := controllers.NewDeviceController(d.Push)
	notifCtl := controllers.NewNotificationController(d.Push)
	rtCtl := controllers.NewRealtimeController(d.Hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware(d.DB))
	{
		user.GET("/profile", authCtl.GetProfile)
		user.PUT("/profile", authCtl.UpdateProfile)

		user.GET("/catalog", controllers.SearchCatalog)

		user.GET("/plan", planCtl.GetPlan)
		user.POST("/plan/meals", planCtl.AddMeal)
		user.DELETE("/plan/meals", planCtl.RemoveMeal)
		user.GET("/plan/totals", planCtl.DailyTotals)
		user.GET("/plan/progress", planCtl.Progress)
		user.GET("/plan/summary", planCtl.WeekSummary)

		user.GET("/goals", goalCtl.GetGoals)
		user.PUT("/goals", goalCtl.UpdateGoals)

		user.GET("/reminders", remCtl.List)
		user.POST("/reminders", remCtl.Create)
		user.PATCH("/reminders/:id/toggle", remCtl.Toggle)
		user.DELETE("/reminders/:id", remCtl.Delete)

		user.POST("/devices", devCtl.Register)
		user.POST("/notifications/toggle", notifCtl.Toggle)
		user.GET("/notifications", notifCtl.Recent)

		user.GET("/ws/alerts", rtCtl.AlertsWS)
	}

	return r
}
