package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkwell/internal/service"
)

type subscribeRequest struct {
	Email string `json:"email" binding:"required"`
}

// Subscribe 登记新闻邮件订阅。退订过的邮箱重新订阅只翻转标志位。
func (a *API) Subscribe(c *gin.Context) {
	var req subscribeRequest
	if !bindJSON(c, &req, "email is required") {
		return
	}

	subscriber, err := a.subscribers.Subscribe(req.Email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAlreadySubscribed):
			respondError(c, http.StatusBadRequest, "Email already subscribed")
		default:
			respondError(c, http.StatusBadRequest, "Invalid email")
		}
		return
	}

	c.JSON(http.StatusOK, subscriber)
}

// Unsubscribe 将邮箱标记为退订。
func (a *API) Unsubscribe(c *gin.Context) {
	var req subscribeRequest
	if !bindJSON(c, &req, "email is required") {
		return
	}

	if err := a.subscribers.Unsubscribe(req.Email); err != nil {
		switch {
		case errors.Is(err, service.ErrSubscriberNotFound):
			respondError(c, http.StatusNotFound, "Subscriber not found")
		default:
			a.logger.Error().Err(err).Msg("unsubscribe failed")
			respondError(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListSubscribers 返回全部订阅记录（仅管理员）。
func (a *API) ListSubscribers(c *gin.Context) {
	subscribers, err := a.subscribers.List()
	if err != nil {
		a.logger.Error().Err(err).Msg("list subscribers failed")
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, subscribers)
}
