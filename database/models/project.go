package models

import (
	"time"

	"gorm.io/gorm"
)

// ProjectTypeObjectDetection 默认项目类型
const ProjectTypeObjectDetection = "object-detection"

// Project 标注项目 - 一个用户拥有的数据集容器
type Project struct {
	gorm.Model
	Identifier  string `gorm:"uniqueIndex:idx_project_identifier;not null"`
	Name        string `gorm:"type:varchar(100);not null"`
	Description string `gorm:"type:varchar(255);not null"`
	Type        string `gorm:"default:object-detection;not null"`

	// Resources 冗余的图片计数，必须与 images 表中的实际数量保持一致
	Resources   int64     `gorm:"default:0;not null"`
	DateUpdated time.Time `gorm:"not null"`

	UserID uint `gorm:"not null;index"`
	User   User `gorm:"foreignKey:UserID"`

	Images []*Image `gorm:"foreignKey:ProjectID"`
	Labels []*Label `gorm:"foreignKey:ProjectID"`
}
