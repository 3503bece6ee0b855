package auth

import (
	"net/http"

	"github.com/anoixa/label-bed/api/common"
	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Username string `json:"username" binding:"required,max=64"`
	Email    string `json:"email" binding:"required,email,max=120"`
	Password string `json:"password" binding:"required,min=8"`
}

// RegisterHandler 注册新用户并返回令牌
func (h *Handler) RegisterHandler(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.loginService.Register(req.Username, req.Email, req.Password)
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	common.RespondSuccessMessage(c, "User registered successfully", gin.H{
		"user":  toUserPayload(result.User),
		"token": result.AccessToken,
	})
}
