package projects

import (
	"errors"
	"fmt"
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

func createTestUser(t *testing.T, db *gorm.DB) *models.User {
	user := &models.User{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "hash",
	}
	assert.NoError(t, db.Create(user).Error)
	return user
}

func newTestProject(userID uint, name string) *models.Project {
	return &models.Project{
		Identifier:  uuid.New().String(),
		Name:        name,
		Description: "Test Description",
		Type:        models.ProjectTypeObjectDetection,
		DateUpdated: time.Now(),
		UserID:      userID,
	}
}

// --- 测试 CreateProject / GetUserProjects ---

func TestRepository_CreateProject(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	user := createTestUser(t, db)

	project := newTestProject(user.ID, "Test Project")
	assert.NoError(t, repo.CreateProject(project))
	assert.NotZero(t, project.ID)

	projects, err := repo.GetUserProjects(user.ID)
	assert.NoError(t, err)
	assert.Len(t, projects, 1)
	assert.Equal(t, "Test Project", projects[0].Name)
	assert.Equal(t, int64(0), projects[0].Resources)
}

func TestRepository_GetUserProjects_OnlyOwn(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	user := createTestUser(t, db)

	other := &models.User{Username: "other", Email: "other@example.com", Password: "hash"}
	assert.NoError(t, db.Create(other).Error)

	assert.NoError(t, repo.CreateProject(newTestProject(user.ID, "mine")))
	assert.NoError(t, repo.CreateProject(newTestProject(other.ID, "theirs")))

	projects, err := repo.GetUserProjects(user.ID)
	assert.NoError(t, err)
	assert.Len(t, projects, 1)
	assert.Equal(t, "mine", projects[0].Name)
}

// --- 测试 GetProjectByIdentifier ---

func TestRepository_GetProjectByIdentifier(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	user := createTestUser(t, db)

	project := newTestProject(user.ID, "Test Project")
	assert.NoError(t, repo.CreateProject(project))

	found, err := repo.GetProjectByIdentifier(project.Identifier, user.ID)
	assert.NoError(t, err)
	assert.Equal(t, project.ID, found.ID)

	// 其他用户访问时按不存在处理
	_, err = repo.GetProjectByIdentifier(project.Identifier, user.ID+100)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))

	// 不带所有权过滤时可以读取
	found, err = repo.GetProjectByIdentifier(project.Identifier, 0)
	assert.NoError(t, err)
	assert.Equal(t, project.ID, found.ID)

	_, err = repo.GetProjectByIdentifier("does-not-exist", 0)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

// --- 测试 DeleteProjectCascade ---

func TestRepository_DeleteProjectCascade(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	user := createTestUser(t, db)

	project := newTestProject(user.ID, "Test Project")
	assert.NoError(t, repo.CreateProject(project))

	img := &models.Image{
		Identifier:   uuid.New().String(),
		OriginalName: "a.png",
		FilePath:     project.Identifier + "/a.png",
		FileSize:     10,
		ProjectID:    project.ID,
		UserID:       user.ID,
	}
	assert.NoError(t, db.Create(img).Error)

	label := &models.Label{Name: "cat", ProjectID: project.ID}
	assert.NoError(t, db.Create(label).Error)

	ann := &models.Annotation{X: 0.1, Y: 0.1, Width: 0.2, Height: 0.2, ImageID: img.ID, LabelID: label.ID}
	assert.NoError(t, db.Create(ann).Error)

	assert.NoError(t, repo.DeleteProjectCascade(project.ID))

	var count int64
	db.Model(&models.Project{}).Count(&count)
	assert.Equal(t, int64(0), count)
	db.Model(&models.Image{}).Count(&count)
	assert.Equal(t, int64(0), count)
	db.Model(&models.Label{}).Count(&count)
	assert.Equal(t, int64(0), count)
	db.Model(&models.Annotation{}).Count(&count)
	assert.Equal(t, int64(0), count)

	// 再删一次返回未找到
	err := repo.DeleteProjectCascade(project.ID)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

// --- 测试 RecountResources ---

func TestRepository_RecountResources(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	user := createTestUser(t, db)

	project := newTestProject(user.ID, "Test Project")
	assert.NoError(t, repo.CreateProject(project))

	for i := 0; i < 3; i++ {
		img := &models.Image{
			Identifier:   uuid.New().String(),
			OriginalName: "a.png",
			FilePath:     "p/a.png",
			FileSize:     10,
			ProjectID:    project.ID,
			UserID:       user.ID,
		}
		assert.NoError(t, db.Create(img).Error)
	}

	assert.NoError(t, repo.RecountResources(db, project.ID))

	var reloaded models.Project
	assert.NoError(t, db.First(&reloaded, project.ID).Error)
	assert.Equal(t, int64(3), reloaded.Resources)
}
