package service

import (
	"fmt"
	"time"

	"github.com/GanaviDGowda/MCE-Clashpoint/internal/config"
)

// Setup 根据全局配置初始化依赖配置的服务
// 无状态服务在各自文件中以包级变量直接创建
func Setup() error {
	cfg := config.GlobalConfig
	if cfg == nil {
		return fmt.Errorf("配置未初始化")
	}

	QRToken = NewQRTokenService(cfg.QR.Secret, cfg.QR.DriftSeconds)
	Attendance = NewAttendanceService(QRToken, cfg.QR.LeaseSeconds)
	Cron = NewCronService(QRToken,
		time.Duration(cfg.QR.RotateInterval)*time.Second,
		cfg.QR.LeaseSeconds)

	return nil
}
