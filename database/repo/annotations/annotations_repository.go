package annotations

import (
	"context"

	"github.com/anoixa/label-bed/database/models"
	"github.com/anoixa/label-bed/internal/apperrors"
	"gorm.io/gorm"
)

// Repository 标注仓库 - 封装所有标注相关的数据库操作
type Repository struct {
	db *gorm.DB
}

// NewRepository 创建新的标注仓库
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateAnnotation 创建标注
func (r *Repository) CreateAnnotation(annotation *models.Annotation) error {
	return r.db.Create(annotation).Error
}

// GetImageAnnotations 获取图片的全部标注，按 ID 升序
func (r *Repository) GetImageAnnotations(imageID uint) ([]*models.Annotation, error) {
	var annotations []*models.Annotation
	if err := r.db.Where("image_id = ?", imageID).Order("id asc").Find(&annotations).Error; err != nil {
		return nil, err
	}
	return annotations, nil
}

// DeleteAnnotation 删除图片下的单个标注
// 标注不存在或不属于该图片时返回 apperrors.ErrNotFound
func (r *Repository) DeleteAnnotation(annotationID uint, imageID uint) error {
	result := r.db.Unscoped().Where("id = ? AND image_id = ?", annotationID, imageID).Delete(&models.Annotation{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFoundf("annotation %d", annotationID)
	}
	return nil
}

// CountImageAnnotations 统计图片的标注数量
func (r *Repository) CountImageAnnotations(imageID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Annotation{}).Where("image_id = ?", imageID).Count(&count).Error
	return count, err
}

// WithContext 返回带上下文的仓库
func (r *Repository) WithContext(ctx context.Context) *Repository {
	return &Repository{db: r.db.WithContext(ctx)}
}
