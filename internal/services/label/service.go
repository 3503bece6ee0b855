package label

import (
	"strings"

	"github.com/anoixa/label-bed/database/models"
	"github.com/anoixa/label-bed/database/repo/labels"
	"github.com/anoixa/label-bed/database/repo/projects"
	"github.com/anoixa/label-bed/internal/apperrors"
)

// Service 标签服务
type Service struct {
	repo         *labels.Repository
	projectsRepo *projects.Repository
}

// NewService 创建标签服务
func NewService(repo *labels.Repository, projectsRepo *projects.Repository) *Service {
	return &Service{repo: repo, projectsRepo: projectsRepo}
}

// Add 向项目添加标签，项目内名称重复时返回冲突错误
func (s *Service) Add(projectIdentifier string, userID uint, name string) (*models.Label, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.Validationf("label name is required")
	}

	project, err := s.projectsRepo.GetProjectByIdentifier(projectIdentifier, userID)
	if err != nil {
		return nil, err
	}

	label := &models.Label{
		Name:      name,
		ProjectID: project.ID,
	}
	if err := s.repo.CreateLabel(label); err != nil {
		return nil, err
	}
	return label, nil
}

// List 列出项目的全部标签
func (s *Service) List(projectIdentifier string, userID uint) ([]*models.Label, error) {
	project, err := s.projectsRepo.GetProjectByIdentifier(projectIdentifier, userID)
	if err != nil {
		return nil, err
	}
	return s.repo.GetProjectLabels(project.ID)
}

// Delete 删除项目下的标签并级联删除其全部标注
func (s *Service) Delete(projectIdentifier string, userID uint, labelID uint) error {
	project, err := s.projectsRepo.GetProjectByIdentifier(projectIdentifier, userID)
	if err != nil {
		return err
	}
	return s.repo.DeleteLabelCascade(labelID, project.ID)
}
