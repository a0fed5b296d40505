package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkwell/internal/service"
)

type commentRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type moderateRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListPostComments 返回文章下已通过审核的评论。邮箱永远不对外暴露。
func (a *API) ListPostComments(c *gin.Context) {
	post, err := a.posts.Resolve(c.Param("post"))
	if err != nil {
		a.respondPostLookup(c, err)
		return
	}

	comments, err := a.comments.ListApproved(post.PublicID)
	if err != nil {
		a.logger.Error().Err(err).Msg("list comments failed")
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]gin.H, 0, len(comments))
	for _, comment := range comments {
		response = append(response, gin.H{
			"id":         comment.PublicID,
			"post_id":    comment.PostID,
			"name":       comment.Name,
			"content":    comment.Content,
			"created_at": comment.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, response)
}

// SubmitComment 受理访客评论，落库为 pending，等待后台审核。
func (a *API) SubmitComment(c *gin.Context) {
	var req commentRequest
	if !bindJSON(c, &req, "name, email and content are required") {
		return
	}

	post, err := a.posts.Resolve(c.Param("post"))
	if err != nil {
		a.respondPostLookup(c, err)
		return
	}

	comment, err := a.comments.SubmitForPost(post.PublicID, service.CommentInput{
		Name:    req.Name,
		Email:   req.Email,
		Content: req.Content,
	})
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid comment")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         comment.PublicID,
		"post_id":    comment.PostID,
		"name":       comment.Name,
		"content":    comment.Content,
		"status":     comment.Status,
		"created_at": comment.CreatedAt,
	})
}

// AdminListComments 返回后台评论列表，可按状态过滤（仅管理员）。
func (a *API) AdminListComments(c *gin.Context) {
	comments, err := a.comments.ListForAdmin(c.Query("status"))
	if err != nil {
		a.logger.Error().Err(err).Msg("admin list comments failed")
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, comments)
}

// ModerateComment 变更评论审核状态（仅管理员）。
func (a *API) ModerateComment(c *gin.Context) {
	var req moderateRequest
	if !bindJSON(c, &req, "status is required") {
		return
	}

	comment, err := a.comments.Moderate(c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCommentNotFound):
			respondError(c, http.StatusNotFound, "Comment not found")
		case errors.Is(err, service.ErrInvalidCommentStatus):
			respondError(c, http.StatusBadRequest, "Invalid status")
		default:
			a.logger.Error().Err(err).Msg("moderate comment failed")
			respondError(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, comment)
}

// DeleteComment 删除单条评论（仅管理员）。
func (a *API) DeleteComment(c *gin.Context) {
	if err := a.comments.Delete(c.Param("id")); err != nil {
		switch {
		case errors.Is(err, service.ErrCommentNotFound):
			respondError(c, http.StatusNotFound, "Comment not found")
		default:
			a.logger.Error().Err(err).Msg("delete comment failed")
			respondError(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
