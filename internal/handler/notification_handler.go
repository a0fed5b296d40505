package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkwell/internal/service"
)

// ListNotifications 返回当前用户最近的站内通知。
func (a *API) ListNotifications(c *gin.Context) {
	user := currentUser(c)

	notifications, err := a.notifications.ListForUser(user.PublicID)
	if err != nil {
		a.logger.Error().Err(err).Msg("list notifications failed")
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// MarkNotificationRead 将一条通知标记为已读。
func (a *API) MarkNotificationRead(c *gin.Context) {
	user := currentUser(c)

	if err := a.notifications.MarkRead(user.PublicID, c.Param("id")); err != nil {
		switch {
		case errors.Is(err, service.ErrNotificationNotFound):
			respondError(c, http.StatusNotFound, "Notification not found")
		default:
			a.logger.Error().Err(err).Msg("mark notification read failed")
			respondError(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
