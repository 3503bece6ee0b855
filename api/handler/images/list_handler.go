package images

import (
	"github.com/anoixa/label-bed/api/common"
	"github.com/anoixa/label-bed/api/middleware"
	"github.com/gin-gonic/gin"
)

// ListHandler 列出项目的全部图片
func (h *Handler) ListHandler(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserIDKey)
	projectIdentifier := c.Param("identifier")

	imageList, err := h.queryService.ListProjectImages(projectIdentifier, userID)
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	payloads := make([]imagePayload, 0, len(imageList))
	for _, img := range imageList {
		payloads = append(payloads, toImagePayload(img))
	}

	common.RespondSuccess(c, payloads)
}
