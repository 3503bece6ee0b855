package projects

import (
	"net/http"
	"path/filepath"

	"github.com/anoixa/label-bed/api/common"
	"github.com/anoixa/label-bed/api/middleware"
	"github.com/anoixa/label-bed/config"
	svcExport "github.com/anoixa/label-bed/internal/services/export"
	"github.com/gin-gonic/gin"
)

type exportRequest struct {
	IncludeUnannotated *bool `json:"include_unannotated"`
}

// ExportProjectHandler 运行数据集导出批处理任务
// 导出是阻塞式的离线作业，单个文件失败不会中止，失败清单随结果返回
func (h *Handler) ExportProjectHandler(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserIDKey)
	identifier := c.Param("identifier")

	cfg := config.Get()

	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		common.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	includeUnannotated := cfg.ExportIncludeUnannotated
	if req.IncludeUnannotated != nil {
		includeUnannotated = *req.IncludeUnannotated
	}

	opts := svcExport.Options{
		ExportDir:          filepath.Join(cfg.ExportDir, identifier),
		IncludeUnannotated: includeUnannotated,
	}

	result, err := h.exporter.Export(c.Request.Context(), identifier, userID, opts)
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	fileErrors := make([]gin.H, 0, len(result.FileErrors))
	for _, fe := range result.FileErrors {
		fileErrors = append(fileErrors, gin.H{"path": fe.Path, "error": fe.Err})
	}

	common.RespondSuccess(c, gin.H{
		"manifest":    result.ManifestPath,
		"train_count": result.TrainCount,
		"val_count":   result.ValCount,
		"test_count":  result.TestCount,
		"class_count": result.ClassCount,
		"file_errors": fileErrors,
	})
}
