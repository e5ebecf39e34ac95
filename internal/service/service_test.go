package service

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/GanaviDGowda/MCE-Clashpoint/internal/model"
	"github.com/GanaviDGowda/MCE-Clashpoint/internal/pkg/database"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// setupTestDB 为单个测试创建独立的sqlite数据库并替换全局连接
// 写连接限制为1，sqlite单写者，这样并发写入会排队而不是直接报锁冲突
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("打开测试数据库失败: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("获取底层连接失败: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("迁移测试数据库失败: %v", err)
	}

	prev := database.DB
	database.DB = db
	t.Cleanup(func() {
		database.DB = prev
		sqlDB.Close()
	})

	return db
}

// createTestUser 插入用户
func createTestUser(t *testing.T, name, role string) *model.User {
	t.Helper()

	user := &model.User{
		Name:     name,
		Email:    name + "@test.local",
		Password: "not-a-real-hash",
		Role:     role,
	}
	if role == model.RoleStudent {
		user.USN = "1MC" + name
	}
	if err := database.DB.Create(user).Error; err != nil {
		t.Fatalf("创建测试用户失败: %v", err)
	}
	return user
}

// createTestEvent 插入一个今天举办、报名未截止的活动
func createTestEvent(t *testing.T, hostID uint, title string) *model.Event {
	t.Helper()

	now := time.Now()
	event := &model.Event{
		Title:               title,
		Date:                now,
		RegistrationEndDate: now.Add(24 * time.Hour),
		Mode:                "offline",
		Host:                "测试社团",
		CreatedBy:           hostID,
		QRExpiry:            now,
	}
	if err := database.DB.Create(event).Error; err != nil {
		t.Fatalf("创建测试活动失败: %v", err)
	}
	return event
}

// registerStudent 为学生插入报名记录
func registerStudent(t *testing.T, studentID, eventID uint) {
	t.Helper()

	registration := &model.Registration{StudentID: studentID, EventID: eventID}
	if err := database.DB.Create(registration).Error; err != nil {
		t.Fatalf("创建测试报名记录失败: %v", err)
	}
}
