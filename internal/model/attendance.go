package model

import "time"

// 签到记录
// (student_id, event_id) 上的唯一索引是"只签到一次"的最终保障，
// 并发扫码时靠它拦截重复插入，应用层检查只是为了更友好的报错
type Attendance struct {
	ID             uint `gorm:"primarykey"`
	StudentID      uint `gorm:"uniqueIndex:idx_attendance_student_event"`
	EventID        uint `gorm:"uniqueIndex:idx_attendance_student_event"`
	AttendanceTime time.Time
	CreatedAt      time.Time
}
