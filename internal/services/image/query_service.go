package image

import (
	"github.com/anoixa/label-bed/database/models"
	"github.com/anoixa/label-bed/database/repo/images"
	"github.com/anoixa/label-bed/database/repo/projects"
)

// QueryService 图片查询服务
type QueryService struct {
	repo         *images.Repository
	projectsRepo *projects.Repository
}

// NewQueryService 创建查询服务
func NewQueryService(repo *images.Repository, projectsRepo *projects.Repository) *QueryService {
	return &QueryService{repo: repo, projectsRepo: projectsRepo}
}

// ListProjectImages 列出项目的全部图片
func (s *QueryService) ListProjectImages(projectIdentifier string, userID uint) ([]*models.Image, error) {
	project, err := s.projectsRepo.GetProjectByIdentifier(projectIdentifier, userID)
	if err != nil {
		return nil, err
	}
	return s.repo.GetProjectImages(project.ID)
}

// GetImage 获取用户的单张图片
func (s *QueryService) GetImage(identifier string, userID uint) (*models.Image, error) {
	return s.repo.GetImageByIdentifier(identifier, userID)
}
