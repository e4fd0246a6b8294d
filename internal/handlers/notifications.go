package handlers

import (
	"github.com/gin-gonic/gin"

	"telehealth-server/internal/utils"
)

// NotificationHandler handles the session notifications.
type NotificationHandler struct{}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler() *NotificationHandler {
	return &NotificationHandler{}
}

// GetNotifications returns the notifications, newest first, with the
// unread count of the signed-in user.
func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	utils.Success(c, "Notifications retrieved successfully", gin.H{
		"notifications":            sess.Store.Notifications(),
		"unreadNotificationsCount": sess.Store.UnreadNotificationsCount(),
	})
}

func (h *NotificationHandler) MarkNotificationAsRead(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	if !sess.Store.MarkNotificationAsRead(c.Param("id")) {
		utils.NotFound(c, "Notification not found")
		return
	}
	utils.Success(c, "Notification marked as read", nil)
}

// MarkAllNotificationsRead marks every notification read; none are deleted.
func (h *NotificationHandler) MarkAllNotificationsRead(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	sess.Store.MarkAllNotificationsRead()
	utils.Success(c, "All notifications marked as read", nil)
}
