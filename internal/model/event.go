package model

import (
	"time"

	"gorm.io/gorm"
)

// 活动
type Event struct {
	ID                  uint      `gorm:"primarykey"`
	Title               string    `gorm:"size:128"`
	Description         string    `gorm:"type:text"`
	Date                time.Time `gorm:"index"` // 活动举办日期
	RegistrationEndDate time.Time // 报名截止时间
	Mode                string    `gorm:"size:16"`  // online, offline, hybrid
	Link                string    `gorm:"size:255"` // 线上活动链接
	Host                string    `gorm:"size:128"` // 主办方名称（院系/社团）
	Banner              string    `gorm:"size:255"` // 海报图片URL
	Category            string    `gorm:"size:64"`  // 活动类别，如 workshop, seminar
	AdditionalDetails   string    `gorm:"type:text"`
	CreatedBy           uint      `gorm:"index"` // 主持人用户ID
	QRExpiry            time.Time // 当前签到二维码的参考过期时间，仅用于刷新调度
	CreatedAt           time.Time
	UpdatedAt           time.Time
	DeletedAt           gorm.DeletedAt `gorm:"index"`
}
