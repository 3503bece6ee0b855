package images

import (
	"time"

	"github.com/anoixa/label-bed/database/models"
	svcImage "github.com/anoixa/label-bed/internal/services/image"
)

// Handler 图片处理器
type Handler struct {
	uploadService *svcImage.UploadService
	deleteService *svcImage.DeleteService
	queryService  *svcImage.QueryService
}

// NewHandler 创建图片处理器
func NewHandler(
	uploadService *svcImage.UploadService,
	deleteService *svcImage.DeleteService,
	queryService *svcImage.QueryService,
) *Handler {
	return &Handler{
		uploadService: uploadService,
		deleteService: deleteService,
		queryService:  queryService,
	}
}

// imagePayload 对外的图片信息
type imagePayload struct {
	ID           uint      `json:"id"`
	UUID         string    `json:"uuid"`
	OriginalName string    `json:"original_name"`
	FilePath     string    `json:"file_path"`
	FileSize     int64     `json:"file_size"`
	UploadedAt   time.Time `json:"uploaded_at"`
	ProjectID    uint      `json:"project_id"`
	UserID       uint      `json:"user_id"`
}

func toImagePayload(img *models.Image) imagePayload {
	return imagePayload{
		ID:           img.ID,
		UUID:         img.Identifier,
		OriginalName: img.OriginalName,
		FilePath:     img.FilePath,
		FileSize:     img.FileSize,
		UploadedAt:   img.CreatedAt,
		ProjectID:    img.ProjectID,
		UserID:       img.UserID,
	}
}
