package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkwell/internal/service"
)

type upvoteRequest struct {
	VisitorID string `json:"visitor_id" binding:"required"`
}

// ToggleUpvote 切换匿名访客对文章的点赞。重复请求回到原始状态。
func (a *API) ToggleUpvote(c *gin.Context) {
	var req upvoteRequest
	if !bindJSON(c, &req, "visitor_id is required") {
		return
	}

	post, err := a.posts.Resolve(c.Param("post"))
	if err != nil {
		a.respondPostLookup(c, err)
		return
	}

	status, err := a.upvotes.Toggle(post.PublicID, req.VisitorID)
	if err != nil {
		a.logger.Error().Err(err).Msg("toggle upvote failed")
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, status)
}

// UpvoteStatus 返回访客点赞状态与文章点赞总数。
func (a *API) UpvoteStatus(c *gin.Context) {
	post, err := a.posts.Resolve(c.Param("post"))
	if err != nil {
		a.respondPostLookup(c, err)
		return
	}

	status, err := a.upvotes.Status(post.PublicID, c.Query("visitor_id"))
	if err != nil {
		a.logger.Error().Err(err).Msg("upvote status failed")
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, status)
}

// respondPostLookup 统一文章寻址失败的响应。
func (a *API) respondPostLookup(c *gin.Context, err error) {
	if errors.Is(err, service.ErrPostNotFound) {
		respondError(c, http.StatusNotFound, "Post not found")
		return
	}
	a.logger.Error().Err(err).Msg("post lookup failed")
	respondError(c, http.StatusInternalServerError, "Internal server error")
}
