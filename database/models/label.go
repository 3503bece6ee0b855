package models

import "gorm.io/gorm"

// Label 项目内的目标类别，名称在项目内唯一
type Label struct {
	gorm.Model
	Name string `gorm:"type:varchar(100);not null;uniqueIndex:idx_label_project_name,priority:2"`

	ProjectID uint    `gorm:"not null;uniqueIndex:idx_label_project_name,priority:1"`
	Project   Project `gorm:"foreignKey:ProjectID"`

	Annotations []*Annotation `gorm:"foreignKey:LabelID"`
}
