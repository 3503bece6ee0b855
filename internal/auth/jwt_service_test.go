package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/anoixa/label-bed/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

// --- 测试令牌签发与解析 ---

func TestJWTService_GenerateAndParse(t *testing.T) {
	service, err := NewJWTService(testSecret, time.Hour)
	require.NoError(t, err)

	token, expiry, err := service.GenerateToken(42, "testuser")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, expiry.After(time.Now()))

	claims, err := service.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "testuser", claims.Username)
	assert.Equal(t, expiry.Unix(), claims.Exp)
}

func TestJWTService_RejectsShortSecret(t *testing.T) {
	_, err := NewJWTService("too-short", time.Hour)
	assert.Error(t, err)
}

// --- 测试解析失败时闭合 ---

func TestJWTService_ExpiredToken(t *testing.T) {
	service, err := NewJWTService(testSecret, -time.Hour)
	require.NoError(t, err)
	// 非正的过期时间退回默认值，手动构造一个已过期的服务
	service.expiresIn = -time.Hour

	token, _, err := service.GenerateToken(1, "testuser")
	require.NoError(t, err)

	_, err = service.ParseToken(token)
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
}

func TestJWTService_MalformedToken(t *testing.T) {
	service, err := NewJWTService(testSecret, time.Hour)
	require.NoError(t, err)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := service.ParseToken(token)
		assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
	}
}

func TestJWTService_WrongSecret(t *testing.T) {
	service, err := NewJWTService(testSecret, time.Hour)
	require.NoError(t, err)
	other, err := NewJWTService(strings.Repeat("x", 32), time.Hour)
	require.NoError(t, err)

	token, _, err := service.GenerateToken(1, "testuser")
	require.NoError(t, err)

	_, err = other.ParseToken(token)
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
}
