package model

import (
	"time"

	"gorm.io/gorm"
)

// 用户角色
const (
	RoleStudent = "student"
	RoleHost    = "host"
)

type User struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"size:64"`
	USN       string `gorm:"size:32;index"` // 学号，仅学生有
	Email     string `gorm:"size:128;uniqueIndex"`
	Password  string `gorm:"size:128"` // bcrypt散列
	Role      string `gorm:"size:16"`  // student, host
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
