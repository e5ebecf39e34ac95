package model

import (
	"time"

	"gorm.io/gorm"
)

// 参与证书
type Certificate struct {
	ID             uint   `gorm:"primarykey"`
	StudentID      uint   `gorm:"index"`
	EventID        uint   `gorm:"index"`
	CertificateURL string `gorm:"size:255"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}
