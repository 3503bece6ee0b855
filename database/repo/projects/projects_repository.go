package projects

import (
	"context"
	"errors"
	"time"

	"github.com/anoixa/label-bed/database/models"
	"github.com/anoixa/label-bed/internal/apperrors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository 项目仓库 - 封装所有项目相关的数据库操作
type Repository struct {
	db *gorm.DB
}

// NewRepository 创建新的项目仓库
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateProject 创建项目
func (r *Repository) CreateProject(project *models.Project) error {
	return r.db.Create(project).Error
}

// GetUserProjects 获取用户的全部项目，按插入顺序返回
func (r *Repository) GetUserProjects(userID uint) ([]*models.Project, error) {
	var projects []*models.Project
	if err := r.db.Where("user_id = ?", userID).Order("id asc").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// GetProjectByIdentifier 通过对外标识符获取项目
// userID 为 0 时不做所有权过滤
func (r *Repository) GetProjectByIdentifier(identifier string, userID uint) (*models.Project, error) {
	var project models.Project
	db := r.db.Where("identifier = ?", identifier)
	if userID != 0 {
		db = db.Where("user_id = ?", userID)
	}
	if err := db.First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("project %s", identifier)
		}
		return nil, err
	}
	return &project, nil
}

// DeleteProjectCascade 级联删除项目及其全部图片、标签和标注
// 文件系统清理由服务层在调用本方法之前完成
func (r *Repository) DeleteProjectCascade(projectID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var project models.Project
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&project, projectID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFoundf("project %d", projectID)
			}
			return err
		}

		// 标注依赖图片和标签，先删
		if err := tx.Unscoped().Where("image_id IN (?)",
			tx.Model(&models.Image{}).Select("id").Where("project_id = ?", projectID),
		).Delete(&models.Annotation{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("label_id IN (?)",
			tx.Model(&models.Label{}).Select("id").Where("project_id = ?", projectID),
		).Delete(&models.Annotation{}).Error; err != nil {
			return err
		}

		if err := tx.Unscoped().Where("project_id = ?", projectID).Delete(&models.Image{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("project_id = ?", projectID).Delete(&models.Label{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&project).Error
	})
}

// TouchDateUpdated 刷新项目的最后修改时间
func (r *Repository) TouchDateUpdated(tx *gorm.DB, projectID uint) error {
	return tx.Model(&models.Project{}).Where("id = ?", projectID).
		Update("date_updated", time.Now()).Error
}

// RecountResources 以 images 表的真实数量为准重算 resources 计数
// 与调用方的事务共用同一个 tx，保证与行变更一起提交
func (r *Repository) RecountResources(tx *gorm.DB, projectID uint) error {
	return tx.Model(&models.Project{}).Where("id = ?", projectID).
		Updates(map[string]interface{}{
			"resources": tx.Model(&models.Image{}).
				Select("COUNT(*)").Where("project_id = ?", projectID),
			"date_updated": time.Now(),
		}).Error
}

// WithContext 返回带上下文的仓库
func (r *Repository) WithContext(ctx context.Context) *Repository {
	return &Repository{db: r.db.WithContext(ctx)}
}
