package images

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/anoixa/label-bed/database/models"
	"github.com/anoixa/label-bed/internal/apperrors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB 创建测试数据库
func setupTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	assert.NoError(t, err)

	err = db.AutoMigrate(&models.User{}, &models.Project{}, &models.Image{}, &models.Label{}, &models.Annotation{})
	assert.NoError(t, err)

	return db
}

func createFixtures(t *testing.T, db *gorm.DB) (*models.User, *models.Project) {
	user := &models.User{Username: "testuser", Email: "test@example.com", Password: "hash"}
	assert.NoError(t, db.Create(user).Error)

	project := &models.Project{
		Identifier:  uuid.New().String(),
		Name:        "Test Project",
		Description: "Test Description",
		DateUpdated: time.Now(),
		UserID:      user.ID,
	}
	assert.NoError(t, db.Create(project).Error)
	return user, project
}

func newTestImage(user *models.User, project *models.Project) *models.Image {
	return &models.Image{
		Identifier:   uuid.New().String(),
		OriginalName: "photo.png",
		FilePath:     project.Identifier + "/" + uuid.New().String() + ".png",
		FileSize:     123,
		ProjectID:    project.ID,
		UserID:       user.ID,
	}
}

// --- 测试 CreateImage 与 resources 计数 ---

func TestRepository_CreateImage_IncrementsResources(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	user, project := createFixtures(t, db)

	const n = 5
	for i := 0; i < n; i++ {
		assert.NoError(t, repo.CreateImage(newTestImage(user, project)))
	}

	var reloaded models.Project
	assert.NoError(t, db.First(&reloaded, project.ID).Error)
	assert.Equal(t, int64(n), reloaded.Resources)
	assert.True(t, reloaded.DateUpdated.After(project.DateUpdated))
}

func TestRepository_CreateImage_ConcurrentUploads(t *testing.T) {
	db := setupTestDB(t)
	// 单连接串行化写入，避免 SQLite 内存库的写锁冲突干扰断言
	sqlDB, err := db.DB()
	assert.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	repo := NewRepository(db)
	user, project := createFixtures(t, db)

	// 并发上传不丢失计数更新
	const n = 10
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = repo.CreateImage(newTestImage(user, project))
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}

	var reloaded models.Project
	assert.NoError(t, db.First(&reloaded, project.ID).Error)
	assert.Equal(t, int64(n), reloaded.Resources)
}

// --- 测试 GetImageByIdentifier ---

func TestRepository_GetImageByIdentifier(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	user, project := createFixtures(t, db)

	img := newTestImage(user, project)
	assert.NoError(t, repo.CreateImage(img))

	found, err := repo.GetImageByIdentifier(img.Identifier, user.ID)
	assert.NoError(t, err)
	assert.Equal(t, img.ID, found.ID)
	assert.Equal(t, "photo.png", found.OriginalName)

	_, err = repo.GetImageByIdentifier(img.Identifier, user.ID+100)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))

	_, err = repo.GetImageByIdentifier("missing", 0)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

// --- 测试 DeleteImage ---

func TestRepository_DeleteImage_RecountsResources(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	user, project := createFixtures(t, db)

	const n = 3
	imgs := make([]*models.Image, n)
	for i := 0; i < n; i++ {
		imgs[i] = newTestImage(user, project)
		assert.NoError(t, repo.CreateImage(imgs[i]))
	}

	assert.NoError(t, repo.DeleteImage(imgs[0].ID, project.ID))

	var reloaded models.Project
	assert.NoError(t, db.First(&reloaded, project.ID).Error)
	assert.Equal(t, int64(n-1), reloaded.Resources)

	// 删除不存在的图片不影响计数
	err := repo.DeleteImage(99999, project.ID)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))

	assert.NoError(t, db.First(&reloaded, project.ID).Error)
	assert.Equal(t, int64(n-1), reloaded.Resources)
}

func TestRepository_DeleteImage_CascadesAnnotations(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	user, project := createFixtures(t, db)

	img := newTestImage(user, project)
	assert.NoError(t, repo.CreateImage(img))

	label := &models.Label{Name: "dog", ProjectID: project.ID}
	assert.NoError(t, db.Create(label).Error)
	ann := &models.Annotation{X: 0.1, Y: 0.1, Width: 0.2, Height: 0.2, ImageID: img.ID, LabelID: label.ID}
	assert.NoError(t, db.Create(ann).Error)

	assert.NoError(t, repo.DeleteImage(img.ID, project.ID))

	var count int64
	db.Model(&models.Annotation{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

// --- 测试 GetProjectImages 顺序 ---

func TestRepository_GetProjectImages_OrderedByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	user, project := createFixtures(t, db)

	for i := 0; i < 4; i++ {
		assert.NoError(t, repo.CreateImage(newTestImage(user, project)))
	}

	images, err := repo.GetProjectImages(project.ID)
	assert.NoError(t, err)
	assert.Len(t, images, 4)
	for i := 1; i < len(images); i++ {
		assert.Greater(t, images[i].ID, images[i-1].ID)
	}
}
