package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkwell/internal/db"
	"github.com/inkwell/internal/service"
)

type postRequest struct {
	Title    string   `json:"title"`
	Slug     string   `json:"slug"`
	Content  string   `json:"content"`
	Format   string   `json:"format"`
	Excerpt  string   `json:"excerpt"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	Status   string   `json:"status"`
}

func (r postRequest) toInput() service.PostInput {
	return service.PostInput{
		Title:    r.Title,
		Slug:     r.Slug,
		Content:  r.Content,
		Format:   r.Format,
		Excerpt:  r.Excerpt,
		Category: r.Category,
		Tags:     r.Tags,
		Status:   r.Status,
	}
}

// ListPosts 返回分页文章列表。默认只含 published，all=true 时不过滤状态。
func (a *API) ListPosts(c *gin.Context) {
	filter := service.PostFilter{
		Category: c.Query("category"),
		Status:   c.Query("status"),
		All:      c.Query("all") == "true",
		Limit:    parseIntQuery(c, "limit", 10),
		Skip:     parseIntQuery(c, "skip", 0),
	}

	result, err := a.posts.List(filter)
	if err != nil {
		a.logger.Error().Err(err).Msg("list posts failed")
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"posts": result.Posts,
		"total": result.Total,
		"limit": result.Limit,
		"skip":  result.Skip,
	})
}

// GetPost 按 slug 返回单篇文章并递增浏览计数。
// GET 因此并非幂等，这是刻意保留的产品行为。
func (a *API) GetPost(c *gin.Context) {
	slug := c.Param("post")

	if err := a.posts.IncrementViews(slug); err != nil {
		a.logger.Error().Err(err).Str("slug", slug).Msg("increment views failed")
	}

	post, err := a.posts.GetBySlug(slug)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPostNotFound):
			respondError(c, http.StatusNotFound, "Post not found")
		default:
			a.logger.Error().Err(err).Str("slug", slug).Msg("get post failed")
			respondError(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, post)
}

// CreatePost 创建文章（仅管理员）。以 published 状态创建会触发订阅者扇出。
func (a *API) CreatePost(c *gin.Context) {
	var req postRequest
	if !bindJSON(c, &req, "invalid post payload") {
		return
	}

	post, err := a.posts.Create(req.toInput(), currentUser(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSlugTaken):
			respondError(c, http.StatusBadRequest, "Slug already in use")
		default:
			respondError(c, http.StatusBadRequest, "Failed to create post")
		}
		return
	}

	if post.Published() {
		a.announcePublished(post)
	}

	c.JSON(http.StatusOK, post)
}

// UpdatePost 按公开 ID 更新文章（仅管理员）。
// draft→published 的转换触发订阅者扇出。
func (a *API) UpdatePost(c *gin.Context) {
	var req postRequest
	if !bindJSON(c, &req, "invalid post payload") {
		return
	}

	post, becamePublished, err := a.posts.Update(c.Param("post"), req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPostNotFound):
			respondError(c, http.StatusNotFound, "Post not found")
		case errors.Is(err, service.ErrSlugTaken):
			respondError(c, http.StatusBadRequest, "Slug already in use")
		default:
			a.logger.Error().Err(err).Msg("update post failed")
			respondError(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	if becamePublished {
		a.announcePublished(post)
	}

	c.JSON(http.StatusOK, post)
}

// DeletePost 删除文章并级联清除评论与点赞（仅管理员）。
func (a *API) DeletePost(c *gin.Context) {
	if err := a.posts.Delete(c.Param("post")); err != nil {
		switch {
		case errors.Is(err, service.ErrPostNotFound):
			respondError(c, http.StatusNotFound, "Post not found")
		default:
			a.logger.Error().Err(err).Msg("delete post failed")
			respondError(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// announcePublished 在后台完成发布副作用：邮件扇出与站内通知。
// HTTP 响应不等待投递，失败只记日志。
func (a *API) announcePublished(post *db.Post) {
	snapshot := *post
	go func() {
		a.newsletter.FanOut(&snapshot)
		if err := a.notifications.AnnouncePost(&snapshot); err != nil {
			a.logger.Error().Err(err).Str("post", snapshot.Slug).Msg("announce post failed")
		}
	}()
}
