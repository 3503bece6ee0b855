package accounts

import (
	"context"
	"errors"

	"github.com/anoixa/label-bed/database/models"
	"github.com/anoixa/label-bed/internal/apperrors"
	"gorm.io/gorm"
)

// Repository 用户仓库 - 封装所有用户相关的数据库操作
type Repository struct {
	db *gorm.DB
}

// NewRepository 创建新的用户仓库
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateUser 创建新用户，用户名或邮箱重复时返回 apperrors.ErrConflict
// 唯一性由 username 和 email 的唯一索引保证，并发重复插入由约束错误兜底
func (r *Repository) CreateUser(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Conflictf("username or email already exists")
		}
		return err
	}
	return nil
}

// GetUserByEmail 通过邮箱获取用户，不存在时返回 (nil, nil)
func (r *Repository) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByUsername 通过用户名获取用户，不存在时返回 (nil, nil)
func (r *Repository) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByID 通过 ID 获取用户
func (r *Repository) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("user %d", id)
		}
		return nil, err
	}
	return &user, nil
}

// WithContext 返回带上下文的仓库
func (r *Repository) WithContext(ctx context.Context) *Repository {
	return &Repository{db: r.db.WithContext(ctx)}
}
