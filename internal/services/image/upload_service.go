package image

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"path"
	"sync"

	"github.com/anoixa/label-bed/database/models"
	"github.com/anoixa/label-bed/database/repo/images"
	"github.com/anoixa/label-bed/database/repo/projects"
	"github.com/anoixa/label-bed/internal/apperrors"
	"github.com/anoixa/label-bed/storage/local"
	"github.com/anoixa/label-bed/utils"
	"github.com/anoixa/label-bed/utils/validator"
	"golang.org/x/sync/errgroup"
)

// UploadResult 单个文件的上传结果
type UploadResult struct {
	Image    *models.Image
	FileName string
	FileSize int64
	Error    string
}

// UploadService 图片上传服务
type UploadService struct {
	repo          *images.Repository
	projectsRepo  *projects.Repository
	storage       *local.Storage
	maxTotalBytes int64
}

// NewUploadService 创建上传服务
func NewUploadService(
	repo *images.Repository,
	projectsRepo *projects.Repository,
	storage *local.Storage,
	maxTotalBytes int64,
) *UploadService {
	return &UploadService{
		repo:          repo,
		projectsRepo:  projectsRepo,
		storage:       storage,
		maxTotalBytes: maxTotalBytes,
	}
}

// UploadBatch 向项目批量上传图片
// 项目必须存在且属于调用者；所有文件合计大小不得超过配置上限
func (s *UploadService) UploadBatch(
	ctx context.Context,
	projectIdentifier string,
	userID uint,
	files []*multipart.FileHeader,
) ([]*UploadResult, error) {
	if len(files) == 0 {
		return nil, apperrors.Validationf("no files provided")
	}

	project, err := s.projectsRepo.GetProjectByIdentifier(projectIdentifier, userID)
	if err != nil {
		return nil, err
	}

	var totalSize int64
	for _, fileHeader := range files {
		if !validator.IsAllowedImageExtension(fileHeader.Filename) {
			return nil, apperrors.Validationf("file type not allowed: %s", fileHeader.Filename)
		}
		totalSize += fileHeader.Size
	}
	if totalSize > s.maxTotalBytes {
		return nil, apperrors.Validationf("combined upload size %d exceeds limit of %d bytes", totalSize, s.maxTotalBytes)
	}

	results := make([]*UploadResult, len(files))
	var resultsMutex sync.Mutex

	g, ctx := errgroup.WithContext(ctx)

	for i, fileHeader := range files {
		i, fileHeader := i, fileHeader
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				img, err := s.processAndSaveImage(ctx, project, userID, fileHeader)
				result := &UploadResult{
					FileName: fileHeader.Filename,
					FileSize: fileHeader.Size,
				}
				if err != nil {
					result.Error = err.Error()
				} else {
					result.Image = img
				}
				resultsMutex.Lock()
				results[i] = result
				resultsMutex.Unlock()
				return nil
			}
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// processAndSaveImage 保存单个文件并写入数据库
// 先写文件后写行；行写入失败时删除已写文件，避免产生无主文件
func (s *UploadService) processAndSaveImage(
	ctx context.Context,
	project *models.Project,
	userID uint,
	fileHeader *multipart.FileHeader,
) (*models.Image, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return nil, apperrors.IOf("failed to open uploaded file: %v", err)
	}
	defer src.Close()

	storedName := utils.GenerateStoredFilename(fileHeader.Filename)
	relPath := path.Join(project.Identifier, storedName)

	if err := s.storage.SaveWithContext(ctx, relPath, src); err != nil {
		return nil, apperrors.IOf("failed to store file: %v", err)
	}

	img := &models.Image{
		Identifier:   utils.NewIdentifier(),
		OriginalName: fileHeader.Filename,
		FilePath:     relPath,
		FileSize:     fileHeader.Size,
		ProjectID:    project.ID,
		UserID:       userID,
	}

	if err := s.repo.CreateImage(img); err != nil {
		if cleanupErr := s.storage.DeleteWithContext(ctx, relPath); cleanupErr != nil {
			log.Printf("Failed to clean up orphaned file %s: %v", relPath, cleanupErr)
		}
		return nil, fmt.Errorf("failed to create image record: %w", err)
	}

	return img, nil
}
