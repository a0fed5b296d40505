package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/inkwell/internal/db"
	"github.com/inkwell/internal/service"
)

const currentUserContextKey = "__current_user"

// CORS 在所有响应上附加跨域头，包括错误与 404；预检请求直接返回 200。
func CORS(allowOrigins string) gin.HandlerFunc {
	if strings.TrimSpace(allowOrigins) == "" {
		allowOrigins = "*"
	}

	return func(c *gin.Context) {
		header := c.Writer.Header()
		header.Set("Access-Control-Allow-Origin", allowOrigins)
		header.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		header.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		header.Set("Access-Control-Allow-Credentials", "true")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}

// RequestLogger 输出结构化的请求日志。
func RequestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	}
}

// Identify 解析 Authorization 头里的 Bearer 令牌并把用户放入请求上下文。
// 令牌缺失或无效不是错误：由各个路由决定是否放行匿名访问。
func Identify(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if strings.HasPrefix(header, "Bearer ") {
			token := strings.TrimSpace(header[len("Bearer "):])
			user, err := auth.ResolveToken(token)
			if err != nil {
				c.Error(err)
			} else if user != nil {
				c.Set(currentUserContextKey, user)
			}
		}

		c.Next()
	}
}

// AuthRequired 拒绝未携带有效令牌的请求。
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if currentUser(c) == nil {
			respondError(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}
		c.Next()
	}
}

// AdminRequired 只放行管理员。未认证与权限不足统一返回 401。
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user == nil || !user.IsAdmin() {
			respondError(c, http.StatusUnauthorized, "Unauthorized - Admin only")
			c.Abort()
			return
		}
		c.Next()
	}
}

// currentUser 取出 Identify 放入上下文的用户，可能为 nil。
func currentUser(c *gin.Context) *db.User {
	value, exists := c.Get(currentUserContextKey)
	if !exists {
		return nil
	}
	user, ok := value.(*db.User)
	if !ok {
		return nil
	}
	return user
}
