package models

import "gorm.io/gorm"

// Annotation 一张图片上的矩形标注框
// 坐标为归一化 [0,1] 区间，原点在图片左上角，存储为左上角 + 宽高
type Annotation struct {
	gorm.Model
	X      float64 `gorm:"not null"`
	Y      float64 `gorm:"not null"`
	Width  float64 `gorm:"not null"`
	Height float64 `gorm:"not null"`

	ImageID uint  `gorm:"not null;index"`
	Image   Image `gorm:"foreignKey:ImageID"`

	LabelID uint  `gorm:"not null;index"`
	Label   Label `gorm:"foreignKey:LabelID"`
}

// CenterX 返回框中心点的 X 坐标（YOLO 导出格式使用中心点 + 宽高）
func (a *Annotation) CenterX() float64 {
	return a.X + a.Width/2
}

// CenterY 返回框中心点的 Y 坐标
func (a *Annotation) CenterY() float64 {
	return a.Y + a.Height/2
}
