package service

import (
	"fmt"
	"time"

	"github.com/GanaviDGowda/MCE-Clashpoint/internal/model"
	"github.com/GanaviDGowda/MCE-Clashpoint/internal/pkg/database"
	"github.com/GanaviDGowda/MCE-Clashpoint/internal/pkg/logger"
)

// Cron 全局定时任务服务，Setup时初始化
var Cron *CronService

// CronService 定时任务服务
// 周期性为当天的活动刷新签到二维码租约，展示端仍会按需重新签发，
// 这里只是兜底的预热，单个活动失败不影响其他活动
type CronService struct {
	qr           *QRTokenService
	interval     time.Duration
	leaseSeconds int
	stopChan     chan struct{}
}

func NewCronService(qr *QRTokenService, interval time.Duration, leaseSeconds int) *CronService {
	return &CronService{
		qr:           qr,
		interval:     interval,
		leaseSeconds: leaseSeconds,
		stopChan:     make(chan struct{}),
	}
}

// Start 启动定时任务
func (s *CronService) Start() {
	go s.rotateQRCodes()
}

// Stop 停止定时任务
func (s *CronService) Stop() {
	close(s.stopChan)
}

// rotateQRCodes 定时轮换签到二维码
func (s *CronService) rotateQRCodes() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.RotateOnce(time.Now())
		case <-s.stopChan:
			return
		}
	}
}

// RotateOnce 执行一次轮换：只处理当天举办的活动，避免扫全表
func (s *CronService) RotateOnce(now time.Time) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	tomorrow := today.AddDate(0, 0, 1)

	var events []model.Event
	if err := database.DB.
		Where("date >= ? AND date < ?", today, tomorrow).
		Find(&events).Error; err != nil {
		logger.Errorf("查询当天活动失败: %v", err)
		return
	}

	if len(events) == 0 {
		return
	}

	logger.Infof("开始刷新 %d 个当天活动的签到二维码", len(events))
	s.refreshEvents(events, now)
}

// refreshEvents 逐个刷新，单个活动失败只记录，继续处理后面的活动
func (s *CronService) refreshEvents(events []model.Event, now time.Time) {
	for _, event := range events {
		if err := s.RefreshEvent(event.ID, now); err != nil {
			logger.Errorf("刷新活动 %d 的二维码失败: %v", event.ID, err)
			continue
		}
		logger.Debugf("活动 %d 的二维码已刷新", event.ID)
	}
}

// RefreshEvent 为单个活动重新签发令牌并更新租约
func (s *CronService) RefreshEvent(eventID uint, now time.Time) error {
	// 重新签发，令牌本身无状态，签发即生效
	s.qr.Mint(eventID, now.Unix())

	expiry := now.Add(time.Duration(s.leaseSeconds) * time.Second)
	result := database.DB.Model(&model.Event{}).
		Where("id = ?", eventID).
		Update("qr_expiry", expiry)
	if result.Error != nil {
		return fmt.Errorf("更新二维码过期时间失败: %v", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("活动不存在: %d", eventID)
	}

	return nil
}
