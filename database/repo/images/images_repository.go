package images

import (
	"context"
	"errors"
	"time"

	"github.com/anoixa/label-bed/database/models"
	"github.com/anoixa/label-bed/internal/apperrors"
	"gorm.io/gorm"
)

// Repository 图片仓库 - 封装所有图片相关的数据库操作
type Repository struct {
	db *gorm.DB
}

// NewRepository 创建新的图片仓库
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateImage 插入图片行并在同一事务内原子递增项目的 resources 计数
// 使用 SQL 级别的 resources + 1，并发上传不会丢失更新
func (r *Repository) CreateImage(image *models.Image) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(image).Error; err != nil {
			return err
		}
		return tx.Model(&models.Project{}).Where("id = ?", image.ProjectID).
			Updates(map[string]interface{}{
				"resources":    gorm.Expr("resources + 1"),
				"date_updated": time.Now(),
			}).Error
	})
}

// GetImageByIdentifier 通过对外标识符获取图片
// userID 为 0 时不做所有权过滤，否则通过所属项目校验所有权
func (r *Repository) GetImageByIdentifier(identifier string, userID uint) (*models.Image, error) {
	var image models.Image
	db := r.db.Where("identifier = ?", identifier)
	if userID != 0 {
		db = db.Where("user_id = ?", userID)
	}
	if err := db.First(&image).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("image %s", identifier)
		}
		return nil, err
	}
	return &image, nil
}

// GetProjectImages 获取项目的全部图片，按 ID 升序保证导出时的确定性顺序
func (r *Repository) GetProjectImages(projectID uint) ([]*models.Image, error) {
	var images []*models.Image
	if err := r.db.Where("project_id = ?", projectID).Order("id asc").Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

// DeleteImage 删除图片行，并在同一事务内以真实数量重算 resources
// 使用重算而不是盲目递减，防止与并发变更叠加后计数漂移
func (r *Repository) DeleteImage(imageID uint, projectID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// 标注不能比所属图片活得更久
		if err := tx.Unscoped().Where("image_id = ?", imageID).Delete(&models.Annotation{}).Error; err != nil {
			return err
		}

		result := tx.Unscoped().Where("id = ? AND project_id = ?", imageID, projectID).Delete(&models.Image{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.NotFoundf("image %d", imageID)
		}

		return tx.Model(&models.Project{}).Where("id = ?", projectID).
			Updates(map[string]interface{}{
				"resources": tx.Model(&models.Image{}).
					Select("COUNT(*)").Where("project_id = ?", projectID),
				"date_updated": time.Now(),
			}).Error
	})
}

// CountProjectImages 统计项目的图片数量
func (r *Repository) CountProjectImages(projectID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Image{}).Where("project_id = ?", projectID).Count(&count).Error
	return count, err
}

// WithContext 返回带上下文的仓库
func (r *Repository) WithContext(ctx context.Context) *Repository {
	return &Repository{db: r.db.WithContext(ctx)}
}
