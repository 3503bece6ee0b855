package projects

import (
	"github.com/anoixa/label-bed/api/common"
	"github.com/anoixa/label-bed/api/middleware"
	"github.com/gin-gonic/gin"
)

// DeleteProjectHandler 删除项目及其全部图片、标签和标注
func (h *Handler) DeleteProjectHandler(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserIDKey)
	identifier := c.Param("identifier")

	if err := h.svc.Delete(c.Request.Context(), identifier, userID); err != nil {
		common.RespondAppError(c, err)
		return
	}

	common.RespondSuccessMessage(c, "Project deleted", nil)
}
