package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username  string `gorm:"uniqueIndex;size:64;not null" json:"username"`
	Email     string `gorm:"uniqueIndex;size:120;not null" json:"email"`
	Password  string `json:"-"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Projects []*Project `gorm:"foreignKey:UserID" json:"-"`
}
