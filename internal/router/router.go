package router

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/inkwell/internal/handler"
)

// Setup 配置 Gin 引擎和路由表。
// 路由在启动时一次性声明完毕，没有运行期的路径字符串匹配。
func Setup(api *handler.API, corsOrigins string, logger zerolog.Logger) *gin.Engine {
	r := gin.New()

	r.Use(handler.RequestLogger(logger))
	// panic 恢复：内部细节只进日志，客户端得到通用 500。
	r.Use(gin.CustomRecovery(func(c *gin.Context, err any) {
		logger.Error().Interface("panic", err).Str("path", c.Request.URL.Path).Msg("handler panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}))
	r.Use(handler.CORS(corsOrigins))
	r.Use(handler.Identify(api.Auth()))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Blog API Ready"})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/register", api.Register)
		auth.POST("/login", api.Login)
		auth.GET("/me", api.Me)
	}

	posts := r.Group("/posts")
	{
		posts.GET("", api.ListPosts)
		posts.GET("/:post", api.GetPost)
		posts.GET("/:post/comments", api.ListPostComments)
		posts.POST("/:post/comments", api.SubmitComment)
		posts.GET("/:post/upvote", api.UpvoteStatus)
		posts.POST("/:post/upvote", api.ToggleUpvote)

		admin := posts.Group("")
		admin.Use(handler.AdminRequired())
		{
			admin.POST("", api.CreatePost)
			admin.PUT("/:post", api.UpdatePost)
			admin.DELETE("/:post", api.DeletePost)
		}
	}

	adminComments := r.Group("/admin/comments")
	adminComments.Use(handler.AdminRequired())
	{
		adminComments.GET("", api.AdminListComments)
		adminComments.PUT("/:id", api.ModerateComment)
		adminComments.DELETE("/:id", api.DeleteComment)
	}

	subscribers := r.Group("/subscribers")
	{
		subscribers.POST("", api.Subscribe)
		subscribers.POST("/unsubscribe", api.Unsubscribe)
		subscribers.GET("", handler.AdminRequired(), api.ListSubscribers)
	}

	r.GET("/categories", api.GetCategories)
	r.POST("/categories", handler.AdminRequired(), api.CreateCategory)
	r.GET("/tags", api.GetTags)
	r.POST("/tags", handler.AdminRequired(), api.CreateTag)

	bookmarks := r.Group("/bookmarks")
	bookmarks.Use(handler.AuthRequired())
	{
		bookmarks.GET("", api.ListBookmarks)
		bookmarks.POST("", api.AddBookmark)
		bookmarks.DELETE("/:post_id", api.RemoveBookmark)
	}

	highlights := r.Group("/highlights")
	{
		// 阅读页按文章拉取高亮时允许匿名，返回空列表。
		highlights.GET("/post/:post_id", api.ListPostHighlights)

		auth := highlights.Group("")
		auth.Use(handler.AuthRequired())
		{
			auth.GET("", api.ListHighlights)
			auth.POST("", api.AddHighlight)
			auth.DELETE("/:id", api.RemoveHighlight)
		}
	}

	notifications := r.Group("/notifications")
	notifications.Use(handler.AuthRequired())
	{
		notifications.GET("", api.ListNotifications)
		notifications.PUT("/:id/read", api.MarkNotificationRead)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": fmt.Sprintf("Route %s not found", c.Request.URL.Path),
		})
	})

	return r
}
