package models

import "gorm.io/gorm"

// Image 项目下的一张已上传图片
type Image struct {
	gorm.Model
	Identifier   string `gorm:"uniqueIndex:idx_image_identifier;not null"`
	OriginalName string `gorm:"not null"`

	// FilePath 相对于上传根目录的存储路径，例如 <project-identifier>/<random>.png
	FilePath string `gorm:"not null"`
	FileSize int64  `gorm:"not null"`

	ProjectID uint    `gorm:"not null;index"`
	Project   Project `gorm:"foreignKey:ProjectID"`

	UserID uint `gorm:"not null;index"`
	User   User `gorm:"foreignKey:UserID"`

	Annotations []*Annotation `gorm:"foreignKey:ImageID"`
}
