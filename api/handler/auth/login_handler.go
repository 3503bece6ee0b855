package auth

import (
	"net/http"

	"github.com/anoixa/label-bed/api/common"
	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginHandler 通过邮箱和密码登录
func (h *Handler) LoginHandler(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.loginService.Login(req.Email, req.Password)
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	common.RespondSuccessMessage(c, "Login successful", gin.H{
		"user":  toUserPayload(result.User),
		"token": result.AccessToken,
	})
}
