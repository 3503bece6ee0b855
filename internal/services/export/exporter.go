package export

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/anoixa/label-bed/database/models"
	"github.com/anoixa/label-bed/database/repo/annotations"
	"github.com/anoixa/label-bed/database/repo/images"
	"github.com/anoixa/label-bed/database/repo/labels"
	"github.com/anoixa/label-bed/database/repo/projects"
	"github.com/anoixa/label-bed/storage/local"
	"gopkg.in/yaml.v3"
)

// 数据集划分比例：70% 训练 / 20% 验证 / 10% 测试
const (
	trainRatio = 0.7
	valRatio   = 0.2
)

// Options 导出选项
type Options struct {
	// ExportDir 导出目标目录
	ExportDir string

	// IncludeUnannotated 为 true 时无标注图片写出空标签文件并参与划分，
	// 为 false 时完全排除在导出之外
	IncludeUnannotated bool
}

// Manifest dataset.yaml 的内容
type Manifest struct {
	Path  string         `yaml:"path"`
	Train []string       `yaml:"train"`
	Val   []string       `yaml:"val"`
	Test  []string       `yaml:"test"`
	Names map[int]string `yaml:"names"`
	NC    int            `yaml:"nc"`
}

// FileError 导出期间单个文件的失败记录
type FileError struct {
	Path string
	Err  string
}

// Result 导出结果
type Result struct {
	ManifestPath string
	TrainCount   int
	ValCount     int
	TestCount    int
	ClassCount   int
	FileErrors   []FileError
}

// Exporter 数据集导出器
// 将一个项目的关系图（图片、标签、标注）摊平为 YOLO 风格的训练数据集：
// images/ 下的图片副本、labels/ 下每图一个归一化坐标文件、dataset.yaml 清单
type Exporter struct {
	projectsRepo    *projects.Repository
	imagesRepo      *images.Repository
	labelsRepo      *labels.Repository
	annotationsRepo *annotations.Repository
	storage         *local.Storage
}

// NewExporter 创建导出器
func NewExporter(
	projectsRepo *projects.Repository,
	imagesRepo *images.Repository,
	labelsRepo *labels.Repository,
	annotationsRepo *annotations.Repository,
	storage *local.Storage,
) *Exporter {
	return &Exporter{
		projectsRepo:    projectsRepo,
		imagesRepo:      imagesRepo,
		labelsRepo:      labelsRepo,
		annotationsRepo: annotationsRepo,
		storage:         storage,
	}
}

// Export 导出一个项目的完整数据集
// 项目不存在时立即失败；单个源文件缺失只记录错误并继续（尽力而为）
func (e *Exporter) Export(ctx context.Context, projectIdentifier string, userID uint, opts Options) (*Result, error) {
	project, err := e.projectsRepo.GetProjectByIdentifier(projectIdentifier, userID)
	if err != nil {
		return nil, err
	}

	projectLabels, err := e.labelsRepo.GetProjectLabels(project.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load labels: %w", err)
	}

	// 标签索引按 ID 升序枚举，保证重复导出时索引稳定
	labelIndex := make(map[uint]int, len(projectLabels))
	names := make(map[int]string, len(projectLabels))
	for idx, label := range projectLabels {
		labelIndex[label.ID] = idx
		names[idx] = label.Name
	}

	projectImages, err := e.imagesRepo.GetProjectImages(project.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load images: %w", err)
	}

	type imageWithAnnotations struct {
		image       *models.Image
		annotations []*models.Annotation
	}

	kept := make([]imageWithAnnotations, 0, len(projectImages))
	for _, img := range projectImages {
		anns, err := e.annotationsRepo.GetImageAnnotations(img.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load annotations for image %s: %w", img.Identifier, err)
		}
		if len(anns) == 0 && !opts.IncludeUnannotated {
			continue
		}
		kept = append(kept, imageWithAnnotations{image: img, annotations: anns})
	}

	imageDir := filepath.Join(opts.ExportDir, "images")
	labelDir := filepath.Join(opts.ExportDir, "labels")
	for _, dir := range []string{imageDir, labelDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create export directory '%s': %w", dir, err)
		}
	}

	result := &Result{ClassCount: len(projectLabels)}

	// 确定性划分：按加载顺序（ID 升序）取前 70% 训练、再 20% 验证，余下测试
	total := len(kept)
	trainCount := int(float64(total) * trainRatio)
	valCount := int(float64(total) * valRatio)

	manifest := &Manifest{
		Path:  opts.ExportDir,
		Train: make([]string, 0, trainCount),
		Val:   make([]string, 0, valCount),
		Test:  make([]string, 0, total-trainCount-valCount),
		Names: names,
		NC:    len(projectLabels),
	}

	for idx, entry := range kept {
		img := entry.image
		storedName := filepath.Base(img.FilePath)
		destImagePath := filepath.Join(imageDir, storedName)

		if err := e.copyImage(ctx, img.FilePath, destImagePath); err != nil {
			result.FileErrors = append(result.FileErrors, FileError{
				Path: img.FilePath,
				Err:  err.Error(),
			})
			continue
		}

		if err := e.writeLabelFile(labelDir, storedName, entry.annotations, labelIndex); err != nil {
			result.FileErrors = append(result.FileErrors, FileError{
				Path: img.FilePath,
				Err:  err.Error(),
			})
			continue
		}

		switch {
		case idx < trainCount:
			manifest.Train = append(manifest.Train, destImagePath)
		case idx < trainCount+valCount:
			manifest.Val = append(manifest.Val, destImagePath)
		default:
			manifest.Test = append(manifest.Test, destImagePath)
		}
	}

	result.TrainCount = len(manifest.Train)
	result.ValCount = len(manifest.Val)
	result.TestCount = len(manifest.Test)

	manifestPath, err := e.writeManifest(opts.ExportDir, manifest)
	if err != nil {
		return nil, err
	}
	result.ManifestPath = manifestPath

	return result, nil
}

// copyImage 从存储拷贝一张图片到导出目录
func (e *Exporter) copyImage(ctx context.Context, relPath, destPath string) error {
	src, err := e.storage.GetWithContext(ctx, relPath)
	if err != nil {
		return fmt.Errorf("source image unavailable: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create export image '%s': %w", destPath, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(destPath)
		return fmt.Errorf("failed to copy image to '%s': %w", destPath, err)
	}
	return nil
}

// writeLabelFile 写出一张图片的 YOLO 标签文件
// 每条标注一行：<label-index> <x_center> <y_center> <width> <height>
// 存储格式是左上角 + 宽高，导出格式是中心点 + 宽高
func (e *Exporter) writeLabelFile(labelDir, storedName string, anns []*models.Annotation, labelIndex map[uint]int) error {
	base := storedName[:len(storedName)-len(filepath.Ext(storedName))]
	labelPath := filepath.Join(labelDir, base+".txt")

	f, err := os.Create(labelPath)
	if err != nil {
		return fmt.Errorf("failed to create label file '%s': %w", labelPath, err)
	}
	defer f.Close()

	for _, ann := range anns {
		idx, ok := labelIndex[ann.LabelID]
		if !ok {
			// 标注引用了项目外的标签，跳过该条而不是中止
			continue
		}
		line := fmt.Sprintf("%d %.6f %.6f %.6f %.6f\n",
			idx, ann.CenterX(), ann.CenterY(), ann.Width, ann.Height)
		if _, err := f.WriteString(line); err != nil {
			return fmt.Errorf("failed to write label file '%s': %w", labelPath, err)
		}
	}
	return nil
}

// writeManifest 序列化 dataset.yaml
func (e *Exporter) writeManifest(exportDir string, manifest *Manifest) (string, error) {
	data, err := yaml.Marshal(manifest)
	if err != nil {
		return "", fmt.Errorf("failed to marshal dataset manifest: %w", err)
	}

	manifestPath := filepath.Join(exportDir, "dataset.yaml")
	if err := os.WriteFile(manifestPath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write dataset manifest: %w", err)
	}
	return manifestPath, nil
}
