package controllers

import (
	"net/http"

	"nutriplan/models"
	"nutriplan/services"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	Plan *services.PlanService
}

func NewGoalController(plan *services.PlanService) *GoalController {
	return &GoalController{Plan: plan}
}

// GET /user/goals
func (gc *GoalController) GetGoals(c *gin.Context) {
	uid := c.GetUint("userID")
	goals, err := gc.Plan.Goals(uid)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"goals": goals})
}

// PUT /user/goals
func (gc *GoalController) UpdateGoals(c *gin.Context) {
	uid := c.GetUint("userID")

	var body models.NutritionGoals
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := gc.Plan.SetGoals(uid, body); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
