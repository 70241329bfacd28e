package controllers

import (
	"net/http"

	"nutriplan/services"

	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	Push *services.PushService
}

func NewNotificationController(ps *services.PushService) *NotificationController {
	return &NotificationController{Push: ps}
}

type toggleReq struct {
	Enabled bool `json:"enabled"`
}

// POST /user/notifications/toggle — flips push delivery for every device
// of the user. In-app notifications are unaffected.
func (nc *NotificationController) Toggle(c *gin.Context) {
	uid := c.GetUint("userID")

	var req toggleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	if err := nc.Push.SetEnabled(uid, req.Enabled); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "notifications updated",
		"enabled": req.Enabled,
	})
}

// GET /user/notifications — recent in-app notification feed.
func (nc *NotificationController) Recent(c *gin.Context) {
	uid := c.GetUint("userID")

	alerts, err := services.RecentAlerts(uid, 20)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"alerts": alerts})
}
