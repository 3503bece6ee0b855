package auth

import (
	"net/http"

	"github.com/anoixa/label-bed/api/common"
	"github.com/anoixa/label-bed/api/middleware"
	svcAuth "github.com/anoixa/label-bed/internal/auth"
	"github.com/gin-gonic/gin"
)

// CurrentUserHandler 返回当前令牌对应的用户
func (h *Handler) CurrentUserHandler(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserIDKey)

	user, err := h.loginService.ResolveUser(&svcAuth.TokenClaims{UserID: userID})
	if err != nil {
		common.RespondError(c, http.StatusUnauthorized, "invalid or expired token")
		return
	}

	common.RespondSuccess(c, gin.H{"user": toUserPayload(user)})
}
