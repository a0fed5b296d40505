package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkwell/internal/db"
	"github.com/inkwell/internal/service"
)

type highlightRequest struct {
	PostID string `json:"post_id" binding:"required"`
	Text   string `json:"text" binding:"required"`
	Color  string `json:"color"`
}

// ListHighlights 返回当前用户的全部高亮。
func (a *API) ListHighlights(c *gin.Context) {
	user := currentUser(c)

	highlights, err := a.highlights.ListForUser(user.PublicID)
	if err != nil {
		a.logger.Error().Err(err).Msg("list highlights failed")
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, highlights)
}

// ListPostHighlights 返回当前用户在单篇文章内的高亮。
// 未认证访客得到空列表而非 401，前台阅读页不因此报错。
func (a *API) ListPostHighlights(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusOK, gin.H{"highlights": []db.Highlight{}})
		return
	}

	highlights, err := a.highlights.ListForPost(user.PublicID, c.Param("post_id"))
	if err != nil {
		a.logger.Error().Err(err).Msg("list post highlights failed")
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, highlights)
}

// AddHighlight 记录一条划线高亮。
func (a *API) AddHighlight(c *gin.Context) {
	var req highlightRequest
	if !bindJSON(c, &req, "post_id and text are required") {
		return
	}

	user := currentUser(c)
	highlight, err := a.highlights.Add(user.PublicID, req.PostID, req.Text, req.Color)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid highlight")
		return
	}

	c.JSON(http.StatusOK, highlight)
}

// RemoveHighlight 删除当前用户的一条高亮。
func (a *API) RemoveHighlight(c *gin.Context) {
	user := currentUser(c)

	if err := a.highlights.Remove(user.PublicID, c.Param("id")); err != nil {
		switch {
		case errors.Is(err, service.ErrHighlightNotFound):
			respondError(c, http.StatusNotFound, "Highlight not found")
		default:
			a.logger.Error().Err(err).Msg("remove highlight failed")
			respondError(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
