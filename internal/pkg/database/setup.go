package database

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/GanaviDGowda/MCE-Clashpoint/internal/config"
	"github.com/GanaviDGowda/MCE-Clashpoint/internal/model"
)

// DB 全局数据库连接
var DB *gorm.DB

// Setup 初始化数据库连接和迁移
func Setup() error {
	var err error

	// 获取配置
	cfg := config.GlobalConfig.Database

	// 构建DSN
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.Username,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
	)

	// 连接数据库
	// TranslateError: 唯一索引冲突统一翻译为 gorm.ErrDuplicatedKey，
	// 签到去重依赖这一点
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return fmt.Errorf("failed to connect database: %v", err)
	}

	// 自动迁移
	if err := Migrate(DB); err != nil {
		return fmt.Errorf("failed to migrate database: %v", err)
	}

	return nil
}

// Migrate 迁移所有业务表
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Event{},
		&model.Registration{},
		&model.Attendance{},
		&model.Review{},
		&model.Certificate{},
	)
}

// GetDB 获取数据库连接
func GetDB() *gorm.DB {
	return DB
}
