package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkwell/internal/service"
)

type bookmarkRequest struct {
	PostID string `json:"post_id" binding:"required"`
}

// ListBookmarks 返回当前用户的收藏，孤儿收藏被过滤掉。
func (a *API) ListBookmarks(c *gin.Context) {
	user := currentUser(c)

	bookmarks, err := a.bookmarks.List(user.PublicID)
	if err != nil {
		a.logger.Error().Err(err).Msg("list bookmarks failed")
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, bookmarks)
}

// AddBookmark 收藏一篇文章，重复收藏返回 400。
func (a *API) AddBookmark(c *gin.Context) {
	var req bookmarkRequest
	if !bindJSON(c, &req, "post_id is required") {
		return
	}

	user := currentUser(c)
	bookmark, err := a.bookmarks.Add(user.PublicID, req.PostID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAlreadyBookmarked):
			respondError(c, http.StatusBadRequest, "Already bookmarked")
		default:
			a.logger.Error().Err(err).Msg("add bookmark failed")
			respondError(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, bookmark)
}

// RemoveBookmark 按文章 ID 取消当前用户的收藏。
func (a *API) RemoveBookmark(c *gin.Context) {
	user := currentUser(c)

	if err := a.bookmarks.Remove(user.PublicID, c.Param("post_id")); err != nil {
		switch {
		case errors.Is(err, service.ErrBookmarkNotFound):
			respondError(c, http.StatusNotFound, "Bookmark not found")
		default:
			a.logger.Error().Err(err).Msg("remove bookmark failed")
			respondError(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
