package annotation

import (
	"github.com/anoixa/label-bed/database/models"
	"github.com/anoixa/label-bed/database/repo/annotations"
	"github.com/anoixa/label-bed/database/repo/images"
	"github.com/anoixa/label-bed/database/repo/labels"
	"github.com/anoixa/label-bed/internal/apperrors"
)

// Service 标注服务
type Service struct {
	repo       *annotations.Repository
	imagesRepo *images.Repository
	labelsRepo *labels.Repository
}

// NewService 创建标注服务
func NewService(
	repo *annotations.Repository,
	imagesRepo *images.Repository,
	labelsRepo *labels.Repository,
) *Service {
	return &Service{
		repo:       repo,
		imagesRepo: imagesRepo,
		labelsRepo: labelsRepo,
	}
}

// Add 在图片上创建标注框
// 标签必须属于图片所在的项目；坐标收敛到 [0,1]，宽高必须为正
func (s *Service) Add(imageIdentifier string, userID uint, labelID uint, x, y, width, height float64) (*models.Annotation, error) {
	if width <= 0 || height <= 0 {
		return nil, apperrors.Validationf("annotation width and height must be positive")
	}

	img, err := s.imagesRepo.GetImageByIdentifier(imageIdentifier, userID)
	if err != nil {
		return nil, err
	}

	// 跨项目引用检查：标签查询限定在图片所属项目内
	label, err := s.labelsRepo.GetLabelByID(labelID, img.ProjectID)
	if err != nil {
		return nil, err
	}

	x, y, width, height = clampBox(x, y, width, height)
	if width <= 0 || height <= 0 {
		return nil, apperrors.Validationf("annotation box lies outside the image")
	}

	ann := &models.Annotation{
		X:       x,
		Y:       y,
		Width:   width,
		Height:  height,
		ImageID: img.ID,
		LabelID: label.ID,
	}
	if err := s.repo.CreateAnnotation(ann); err != nil {
		return nil, err
	}
	return ann, nil
}

// List 列出图片的全部标注
func (s *Service) List(imageIdentifier string, userID uint) ([]*models.Annotation, error) {
	img, err := s.imagesRepo.GetImageByIdentifier(imageIdentifier, userID)
	if err != nil {
		return nil, err
	}
	return s.repo.GetImageAnnotations(img.ID)
}

// Delete 删除图片下的单个标注
func (s *Service) Delete(imageIdentifier string, userID uint, annotationID uint) error {
	img, err := s.imagesRepo.GetImageByIdentifier(imageIdentifier, userID)
	if err != nil {
		return err
	}
	return s.repo.DeleteAnnotation(annotationID, img.ID)
}

// clampBox 将标注框收敛到归一化图片范围内
func clampBox(x, y, width, height float64) (float64, float64, float64, float64) {
	if x < 0 {
		width += x
		x = 0
	}
	if y < 0 {
		height += y
		y = 0
	}
	if x > 1 {
		x = 1
	}
	if y > 1 {
		y = 1
	}
	if x+width > 1 {
		width = 1 - x
	}
	if y+height > 1 {
		height = 1 - y
	}
	return x, y, width, height
}
