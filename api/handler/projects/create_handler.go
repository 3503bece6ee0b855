package projects

import (
	"net/http"

	"github.com/anoixa/label-bed/api/common"
	"github.com/anoixa/label-bed/api/middleware"
	"github.com/gin-gonic/gin"
)

type createProjectRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"required,max=255"`
	Type        string `json:"type" binding:"max=64"`
}

// CreateProjectHandler 创建项目
func (h *Handler) CreateProjectHandler(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserIDKey)

	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	project, err := h.svc.Create(userID, req.Name, req.Description, req.Type)
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	common.RespondSuccessMessage(c, "Added successfully", toProjectPayload(project))
}
