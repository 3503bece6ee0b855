package images

import (
	"net/http"

	"github.com/anoixa/label-bed/api/common"
	"github.com/anoixa/label-bed/api/middleware"
	"github.com/gin-gonic/gin"
)

// UploadHandler 向项目上传一或多张图片
// multipart 表单字段名为 "images"
func (h *Handler) UploadHandler(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserIDKey)
	projectIdentifier := c.Param("identifier")

	form, err := c.MultipartForm()
	if err != nil {
		common.RespondError(c, http.StatusBadRequest, "invalid multipart form: "+err.Error())
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		common.RespondError(c, http.StatusBadRequest, "no files in 'images' field")
		return
	}

	results, err := h.uploadService.UploadBatch(c.Request.Context(), projectIdentifier, userID, files)
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	payloads := make([]gin.H, 0, len(results))
	for _, result := range results {
		entry := gin.H{
			"file_name": result.FileName,
			"file_size": result.FileSize,
		}
		if result.Error != "" {
			entry["error"] = result.Error
		} else {
			entry["image"] = toImagePayload(result.Image)
		}
		payloads = append(payloads, entry)
	}

	common.RespondSuccessMessage(c, "Upload completed", payloads)
}
