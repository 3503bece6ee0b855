package auth

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/anoixa/label-bed/api/middleware"
	"github.com/anoixa/label-bed/database/models"
	"github.com/anoixa/label-bed/database/repo/accounts"
	svcAuth "github.com/anoixa/label-bed/internal/auth"
	"github.com/gin-gonic/gin"
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

func setupRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	db := setupTestDB(t)

	jwtService, err := svcAuth.NewJWTService("0123456789abcdef0123456789abcdef", time.Hour)
	require.NoError(t, err)
	loginService := svcAuth.NewLoginService(accounts.NewRepository(db), jwtService)
	handler := NewHandler(loginService)

	router := gin.New()
	router.POST("/api/auth/register", handler.RegisterHandler)
	router.POST("/api/auth/login", handler.LoginHandler)
	router.GET("/api/auth/user",
		middleware.JWTAuth(jwtService, loginService),
		handler.CurrentUserHandler)

	return router
}

func doJSON(router *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Status string                 `json:"status"`
	Msg    string                 `json:"msg"`
	Data   map[string]interface{} `json:"data"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// --- 测试注册与登录 ---

func TestRegisterHandler(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(router, http.MethodPost, "/api/auth/register", gin.H{
		"username": "testuser",
		"email":    "test@example.com",
		"password": "password123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode(t, w)
	assert.Equal(t, "success", resp.Status)
	assert.NotEmpty(t, resp.Data["token"])

	// 重复注册返回 409
	w = doJSON(router, http.MethodPost, "/api/auth/register", gin.H{
		"username": "testuser",
		"email":    "other@example.com",
		"password": "password123",
	}, "")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegisterHandler_ShortPassword(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(router, http.MethodPost, "/api/auth/register", gin.H{
		"username": "testuser",
		"email":    "test@example.com",
		"password": "short",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginHandler(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(router, http.MethodPost, "/api/auth/register", gin.H{
		"username": "testuser",
		"email":    "test@example.com",
		"password": "password123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodPost, "/api/auth/login", gin.H{
		"email":    "test@example.com",
		"password": "password123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.NotEmpty(t, resp.Data["token"])

	w = doJSON(router, http.MethodPost, "/api/auth/login", gin.H{
		"email":    "test@example.com",
		"password": "wrong-password",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// --- 测试受保护路由 ---

func TestCurrentUserHandler(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(router, http.MethodPost, "/api/auth/register", gin.H{
		"username": "testuser",
		"email":    "test@example.com",
		"password": "password123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	token, _ := decode(t, w).Data["token"].(string)
	require.NotEmpty(t, token)

	w = doJSON(router, http.MethodGet, "/api/auth/user", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/api/auth/user", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(router, http.MethodGet, "/api/auth/user", nil, "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
