package middleware

import (
	"net/http"
	"strings"

	"github.com/anoixa/label-bed/api/common"
	"github.com/anoixa/label-bed/internal/auth"
	"github.com/gin-gonic/gin"
)

const (
	ContextUserIDKey   = "user_id"
	ContextUsernameKey = "username"
)

// JWTAuth Bearer 令牌认证中间件
// 令牌缺失、格式错误、过期或用户不存在时一律 401，不做部分认证
func JWTAuth(jwtService *auth.JWTService, loginService *auth.LoginService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			common.RespondErrorAbort(c, http.StatusUnauthorized, "No Authorization request header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			common.RespondErrorAbort(c, http.StatusUnauthorized, "Authorization field format error")
			return
		}

		claims, err := jwtService.ParseToken(parts[1])
		if err != nil {
			common.RespondErrorAbort(c, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		user, err := loginService.ResolveUser(claims)
		if err != nil {
			common.RespondErrorAbort(c, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		c.Set(ContextUserIDKey, user.ID)
		c.Set(ContextUsernameKey, user.Username)
		c.Next()
	}
}
