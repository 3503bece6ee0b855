package projects

import (
	"github.com/anoixa/label-bed/api/common"
	"github.com/anoixa/label-bed/api/middleware"
	"github.com/gin-gonic/gin"
)

// ProjectDetailHandler 获取单个项目
func (h *Handler) ProjectDetailHandler(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserIDKey)
	identifier := c.Param("identifier")

	project, err := h.svc.Get(identifier, userID)
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	common.RespondSuccess(c, toProjectPayload(project))
}
