package controllers

import (
	"errors"
	"net/http"

	"github.com/YarKhan02/Workshop-sub003/store"
	"github.com/YarKhan02/Workshop-sub003/utils"
	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	Store *store.Store
}

func NewNotificationController(s *store.Store) *NotificationController {
	return &NotificationController{Store: s}
}

func (nc *NotificationController) GetAllNotifications(c *gin.Context) {
	if c.Query("unread") == "true" {
		utils.RespondJSON(c, http.StatusOK, "Unread notifications", nc.Store.UnreadNotifications())
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of notifications", nc.Store.Notifications())
}

func (nc *NotificationController) MarkAsRead(c *gin.Context) {
	id := c.Param("notification_id")
	if !nc.Store.MarkNotificationRead(id) {
		utils.RespondError(c, http.StatusNotFound, errors.New("notification not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Notification marked as read", nil)
}

func (nc *NotificationController) DeleteNotification(c *gin.Context) {
	id := c.Param("notification_id")
	if !nc.Store.DeleteNotification(id) {
		utils.RespondError(c, http.StatusNotFound, errors.New("notification not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Notification deleted", nil)
}
