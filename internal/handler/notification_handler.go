package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/DiegoMarin025/EduTrack-SW/internal/models"
	"github.com/DiegoMarin025/EduTrack-SW/pkg/response"
)

type notificationLister interface {
	List(ctx context.Context, userID string) ([]models.Notification, error)
}

// NotificationHandler lists user notifications.
type NotificationHandler struct {
	notifications notificationLister
}

// NewNotificationHandler constructs handler.
func NewNotificationHandler(notifications notificationLister) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// List godoc
// @Summary Notifications of a user, newest first
// @Tags Notifications
// @Produce json
// @Param usuario_id path string true "User ID"
// @Success 200 {array} models.Notification
// @Router /notificaciones/{usuario_id} [get]
func (h *NotificationHandler) List(c *gin.Context) {
	notifications, err := h.notifications.List(c.Request.Context(), c.Param("usuario_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, notifications)
}
