package image

import (
	"context"
	"log"
	"os"

	"github.com/anoixa/label-bed/database/repo/images"
	"github.com/anoixa/label-bed/storage/local"
)

// DeleteService 图片删除服务
type DeleteService struct {
	repo    *images.Repository
	storage *local.Storage
}

// NewDeleteService 创建删除服务
func NewDeleteService(repo *images.Repository, storage *local.Storage) *DeleteService {
	return &DeleteService{repo: repo, storage: storage}
}

// DeleteSingle 删除单张图片
// 先删磁盘文件后删数据库行；文件已经不存在时记录日志并继续，
// 元数据删除照常进行，resources 计数在行删除的同一事务内重算
func (s *DeleteService) DeleteSingle(ctx context.Context, identifier string, userID uint) error {
	img, err := s.repo.GetImageByIdentifier(identifier, userID)
	if err != nil {
		return err
	}

	if err := s.storage.DeleteWithContext(ctx, img.FilePath); err != nil {
		if os.IsNotExist(err) {
			log.Printf("File already missing for image %s (%s), proceeding with metadata deletion", identifier, img.FilePath)
		} else {
			return err
		}
	}

	return s.repo.DeleteImage(img.ID, img.ProjectID)
}
