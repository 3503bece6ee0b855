package project

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anoixa/label-bed/database/models"
	"github.com/anoixa/label-bed/database/repo/projects"
	"github.com/anoixa/label-bed/internal/apperrors"
	"github.com/anoixa/label-bed/storage/local"
	"github.com/anoixa/label-bed/utils"
)

// Service 项目服务 - 组合项目仓库与文件存储
type Service struct {
	repo    *projects.Repository
	storage *local.Storage
}

// NewService 创建项目服务
func NewService(repo *projects.Repository, storage *local.Storage) *Service {
	return &Service{repo: repo, storage: storage}
}

// Create 创建项目，name 和 description 为必填
func (s *Service) Create(userID uint, name, description, projectType string) (*models.Project, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	if name == "" || description == "" {
		return nil, apperrors.Validationf("name and description are required")
	}
	if projectType == "" {
		projectType = models.ProjectTypeObjectDetection
	}

	project := &models.Project{
		Identifier:  utils.NewIdentifier(),
		Name:        name,
		Description: description,
		Type:        projectType,
		Resources:   0,
		DateUpdated: time.Now(),
		UserID:      userID,
	}
	if err := s.repo.CreateProject(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return project, nil
}

// List 列出用户的全部项目
func (s *Service) List(userID uint) ([]*models.Project, error) {
	return s.repo.GetUserProjects(userID)
}

// Get 获取用户的单个项目
func (s *Service) Get(identifier string, userID uint) (*models.Project, error) {
	return s.repo.GetProjectByIdentifier(identifier, userID)
}

// Delete 删除项目及其全部图片、标签、标注和上传目录
// 先删文件树后删数据库行：文件删除失败时中止，数据库保持原样，
// 避免数据库删掉后留下无主文件
func (s *Service) Delete(ctx context.Context, identifier string, userID uint) error {
	project, err := s.repo.GetProjectByIdentifier(identifier, userID)
	if err != nil {
		return err
	}

	if err := s.storage.RemoveDir(ctx, project.Identifier); err != nil {
		return apperrors.IOf("failed to remove project files: %v", err)
	}

	return s.repo.DeleteProjectCascade(project.ID)
}
