package labels

import (
	"context"
	"errors"

	"github.com/anoixa/label-bed/database/models"
	"github.com/anoixa/label-bed/internal/apperrors"
	"gorm.io/gorm"
)

// Repository 标签仓库 - 封装所有标签相关的数据库操作
type Repository struct {
	db *gorm.DB
}

// NewRepository 创建新的标签仓库
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateLabel 创建标签，同项目内名称重复时返回 apperrors.ErrConflict
// 唯一性由 idx_label_project_name 约束保证，并发重复插入由约束错误兜底
func (r *Repository) CreateLabel(label *models.Label) error {
	if err := r.db.Create(label).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Conflictf("label %q already exists in project", label.Name)
		}
		return err
	}
	return nil
}

// GetProjectLabels 获取项目的全部标签，按 ID 升序保证导出索引的稳定性
func (r *Repository) GetProjectLabels(projectID uint) ([]*models.Label, error) {
	var labels []*models.Label
	if err := r.db.Where("project_id = ?", projectID).Order("id asc").Find(&labels).Error; err != nil {
		return nil, err
	}
	return labels, nil
}

// GetLabelByID 获取项目内的单个标签
func (r *Repository) GetLabelByID(labelID uint, projectID uint) (*models.Label, error) {
	var label models.Label
	err := r.db.Where("id = ? AND project_id = ?", labelID, projectID).First(&label).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("label %d", labelID)
		}
		return nil, err
	}
	return &label, nil
}

// DeleteLabelCascade 删除标签并级联删除引用它的全部标注
func (r *Repository) DeleteLabelCascade(labelID uint, projectID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var label models.Label
		if err := tx.Where("id = ? AND project_id = ?", labelID, projectID).First(&label).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFoundf("label %d", labelID)
			}
			return err
		}

		if err := tx.Unscoped().Where("label_id = ?", labelID).Delete(&models.Annotation{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&label).Error
	})
}

// WithContext 返回带上下文的仓库
func (r *Repository) WithContext(ctx context.Context) *Repository {
	return &Repository{db: r.db.WithContext(ctx)}
}
