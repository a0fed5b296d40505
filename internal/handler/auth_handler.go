package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkwell/internal/service"
)

type registerRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register 创建普通用户并返回其初始令牌。
func (a *API) Register(c *gin.Context) {
	var req registerRequest
	if !bindJSON(c, &req, "email, password and name are required") {
		return
	}

	user, err := a.auth.Register(req.Email, req.Password, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			respondError(c, http.StatusBadRequest, "Email already registered")
		default:
			respondError(c, http.StatusBadRequest, "Registration failed")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": user.Token, "user": user})
}

// Login 校验凭证并轮换令牌。
func (a *API) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req, "email and password are required") {
		return
	}

	user, err := a.auth.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			respondError(c, http.StatusUnauthorized, "Invalid credentials")
		default:
			a.logger.Error().Err(err).Msg("login failed")
			respondError(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": user.Token, "user": user})
}

// Me 返回当前令牌对应的用户。
func (a *API) Me(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}
	c.JSON(http.StatusOK, user)
}
