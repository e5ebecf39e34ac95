package model

import (
	"time"

	"gorm.io/gorm"
)

// 活动评价
type Review struct {
	ID        uint   `gorm:"primarykey"`
	StudentID uint   `gorm:"index"`
	EventID   uint   `gorm:"index"`
	Rating    int    // 1-5
	Comment   string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
