package images

import (
	"github.com/anoixa/label-bed/api/common"
	"github.com/anoixa/label-bed/api/middleware"
	"github.com/gin-gonic/gin"
)

// DeleteHandler 删除单张图片及其磁盘文件
func (h *Handler) DeleteHandler(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserIDKey)
	identifier := c.Param("identifier")

	if err := h.deleteService.DeleteSingle(c.Request.Context(), identifier, userID); err != nil {
		common.RespondAppError(c, err)
		return
	}

	common.RespondSuccessMessage(c, "Image deleted", nil)
}
