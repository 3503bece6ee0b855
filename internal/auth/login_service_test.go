package auth

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/anoixa/label-bed/database/models"
	"github.com/anoixa/label-bed/database/repo/accounts"
	"github.com/anoixa/label-bed/internal/apperrors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB 创建测试数据库
func setupTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.User{})
	require.NoError(t, err)

	return db
}

func setupLoginService(t *testing.T) (*LoginService, *gorm.DB) {
	db := setupTestDB(t)

	jwtService, err := NewJWTService(testSecret, time.Hour)
	require.NoError(t, err)

	return NewLoginService(accounts.NewRepository(db), jwtService), db
}

// --- 测试注册 ---

func TestLoginService_Register(t *testing.T) {
	service, _ := setupLoginService(t)

	result, err := service.Register("testuser", "test@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.Equal(t, "testuser", result.User.Username)
	// 密码只落库散列
	assert.NotEqual(t, "password123", result.User.Password)
}

func TestLoginService_Register_Duplicate(t *testing.T) {
	service, _ := setupLoginService(t)

	_, err := service.Register("testuser", "test@example.com", "password123")
	require.NoError(t, err)

	_, err = service.Register("testuser", "other@example.com", "password123")
	assert.True(t, errors.Is(err, apperrors.ErrConflict))

	_, err = service.Register("other", "test@example.com", "password123")
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
}

func TestLoginService_Register_MissingFields(t *testing.T) {
	service, _ := setupLoginService(t)

	_, err := service.Register("", "test@example.com", "password123")
	assert.True(t, errors.Is(err, apperrors.ErrValidation))

	_, err = service.Register("testuser", "test@example.com", "")
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

// --- 测试登录 ---

func TestLoginService_Login(t *testing.T) {
	service, _ := setupLoginService(t)

	_, err := service.Register("testuser", "test@example.com", "password123")
	require.NoError(t, err)

	result, err := service.Login("test@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.Equal(t, "testuser", result.User.Username)
}

func TestLoginService_Login_WrongPassword(t *testing.T) {
	service, _ := setupLoginService(t)

	_, err := service.Register("testuser", "test@example.com", "password123")
	require.NoError(t, err)

	_, err = service.Login("test@example.com", "wrong-password")
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
}

func TestLoginService_Login_UnknownEmail(t *testing.T) {
	service, _ := setupLoginService(t)

	_, err := service.Login("nobody@example.com", "password123")
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
}

// --- 测试令牌到用户的解算 ---

func TestLoginService_ResolveUser(t *testing.T) {
	service, db := setupLoginService(t)

	result, err := service.Register("testuser", "test@example.com", "password123")
	require.NoError(t, err)

	user, err := service.ResolveUser(&TokenClaims{UserID: result.User.ID})
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, user.ID)

	// 令牌有效但用户已删除时按未授权处理
	require.NoError(t, db.Unscoped().Delete(&models.User{}, result.User.ID).Error)
	_, err = service.ResolveUser(&TokenClaims{UserID: result.User.ID})
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
}
