package auth

import (
	"time"

	"github.com/anoixa/label-bed/database/models"
	svcAuth "github.com/anoixa/label-bed/internal/auth"
)

// Handler 认证处理器
type Handler struct {
	loginService *svcAuth.LoginService
}

// NewHandler 创建认证处理器
func NewHandler(loginService *svcAuth.LoginService) *Handler {
	return &Handler{loginService: loginService}
}

// userPayload 对外的用户信息
type userPayload struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserPayload(user *models.User) userPayload {
	return userPayload{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
