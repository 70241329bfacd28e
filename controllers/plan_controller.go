package controllers

import (
	"net/http"
	"strconv"

	"nutriplan/models"
	"nutriplan/services"

	"github.com/gin-gonic/gin"
)

type PlanController struct {
	Plan *services.PlanService
}

func NewPlanController(plan *services.PlanService) *PlanController {
	return &PlanController{Plan: plan}
}

// GET /user/plan
func (pc *PlanController) GetPlan(c *gin.Context) {
	uid := c.GetUint("userID")
	st, err := pc.Plan.State(uid)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, st)
}

// POST /user/plan/meals
func (pc *PlanController) AddMeal(c *gin.Context) {
	uid := c.GetUint("userID")

	var body struct {
		Day      string `json:"day" binding:"required"`
		MealType string `json:"meal_type" binding:"required"`
		MealID   string `json:"meal_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slot, err := pc.Plan.AddMeal(uid, body.Day, models.MealType(body.MealType), body.MealID)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"day": body.Day, "slot": slot})
}

// DELETE /user/plan/meals?day=Monday&meal_type=snacks&index=1
func (pc *PlanController) RemoveMeal(c *gin.Context) {
	uid := c.GetUint("userID")

	day := c.Query("day")
	mealType := models.MealType(c.Query("meal_type"))
	index := -1
	if raw := c.Query("index"); raw != "" {
		i, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "index must be an integer"})
			return
		}
		index = i
	}

	slot, err := pc.Plan.RemoveMeal(uid, day, mealType, index)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"day": day, "slot": slot})
}

// GET /user/plan/totals?day=Monday
func (pc *PlanController) DailyTotals(c *gin.Context) {
	uid := c.GetUint("userID")
	day := c.Query("day")

	totals, err := pc.Plan.DailyTotals(uid, day)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"day": day, "totals": totals})
}

// GET /user/plan/progress?day=Monday
func (pc *PlanController) Progress(c *gin.Context) {
	uid := c.GetUint("userID")
	day := c.Query("day")

	progress, err := pc.Plan.Progress(uid, day)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"day": day, "progress": progress})
}

// GET /user/plan/summary
func (pc *PlanController) WeekSummary(c *gin.Context) {
	uid := c.GetUint("userID")

	summary, err := pc.Plan.WeekSummary(uid)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"week": summary})
}
