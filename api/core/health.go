package core

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var startTime = time.Now()

// HealthHandler 健康检查处理器
type HealthHandler struct {
	db *gorm.DB
}

// NewHealthHandler 创建健康检查处理器
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Handle 返回服务与数据库的健康状态
func (h *HealthHandler) Handle(c *gin.Context) {
	dbStatus := checkDatabaseHealth(h.db)

	httpStatus := http.StatusOK
	if dbStatus != "ok" {
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, gin.H{
		"status": "ok",
		"uptime": time.Since(startTime).Round(time.Second).String(),
		"checks": gin.H{
			"database": dbStatus,
		},
	})
}

func checkDatabaseHealth(db *gorm.DB) string {
	if db == nil {
		return "not initialized"
	}
	sqlDB, err := db.DB()
	if err != nil {
		return "error: " + err.Error()
	}
	if err := sqlDB.Ping(); err != nil {
		return "unavailable: " + err.Error()
	}
	return "ok"
}
