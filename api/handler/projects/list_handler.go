package projects

import (
	"github.com/anoixa/label-bed/api/common"
	"github.com/anoixa/label-bed/api/middleware"
	"github.com/gin-gonic/gin"
)

// ListProjectsHandler 列出当前用户的全部项目
func (h *Handler) ListProjectsHandler(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserIDKey)

	projects, err := h.svc.List(userID)
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	payloads := make([]projectPayload, 0, len(projects))
	for _, project := range projects {
		payloads = append(payloads, toProjectPayload(project))
	}

	common.RespondSuccess(c, payloads)
}
