package model

import "time"

// 报名记录
// 不使用软删除：被软删除的行仍会占用唯一索引
type Registration struct {
	ID        uint `gorm:"primarykey"`
	StudentID uint `gorm:"uniqueIndex:idx_registration_student_event"`
	EventID   uint `gorm:"uniqueIndex:idx_registration_student_event"`
	CreatedAt time.Time
}
