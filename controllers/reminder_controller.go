package controllers

import (
	"net/http"

	"nutriplan/services"

	"github.com/gin-gonic/gin"
)

type ReminderController struct {
	Reminders *services.ReminderService
}

func NewReminderController(r *services.ReminderService) *ReminderController {
	return &ReminderController{Reminders: r}
}

// GET /user/reminders
func (rc *ReminderController) List(c *gin.Context) {
	uid := c.GetUint("userID")
	reminders, err := rc.Reminders.List(uid)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reminders": reminders})
}

// POST /user/reminders
func (rc *ReminderController) Create(c *gin.Context) {
	uid := c.GetUint("userID")

	var body services.ReminderRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reminder, err := rc.Reminders.Add(uid, &body)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, reminder)
}

// PATCH /user/reminders/:id/toggle
func (rc *ReminderController) Toggle(c *gin.Context) {
	uid := c.GetUint("userID")
	id := c.Param("id")

	reminder, err := rc.Reminders.Toggle(uid, id)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reminder)
}

// DELETE /user/reminders/:id
func (rc *ReminderController) Delete(c *gin.Context) {
	uid := c.GetUint("userID")
	id := c.Param("id")

	if err := rc.Reminders.Delete(uid, id); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
