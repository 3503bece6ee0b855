package projects

import (
	"time"

	"github.com/anoixa/label-bed/database/models"
	svcExport "github.com/anoixa/label-bed/internal/services/export"
	svcProject "github.com/anoixa/label-bed/internal/services/project"
)

// Handler 项目处理器
type Handler struct {
	svc      *svcProject.Service
	exporter *svcExport.Exporter
}

// NewHandler 创建项目处理器
func NewHandler(svc *svcProject.Service, exporter *svcExport.Exporter) *Handler {
	return &Handler{svc: svc, exporter: exporter}
}

// projectPayload 对外的项目信息，内部数字 ID 不参与寻址但保留在载荷中
type projectPayload struct {
	ID          uint      `json:"id"`
	UUID        string    `json:"uuid"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Resources   int64     `json:"resources"`
	DateUpdated time.Time `json:"date_updated"`
	UserID      uint      `json:"user_id"`
}

func toProjectPayload(project *models.Project) projectPayload {
	return projectPayload{
		ID:          project.ID,
		UUID:        project.Identifier,
		Name:        project.Name,
		Description: project.Description,
		Type:        project.Type,
		Resources:   project.Resources,
		DateUpdated: project.DateUpdated,
		UserID:      project.UserID,
	}
}
