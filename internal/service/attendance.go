package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/GanaviDGowda/MCE-Clashpoint/internal/model"
	"github.com/GanaviDGowda/MCE-Clashpoint/internal/pkg/database"

	"gorm.io/gorm"
)

// Attendance 全局签到服务，Setup时初始化
var Attendance *AttendanceService

// 签到失败的固定错误，api层据此映射HTTP状态码
var (
	ErrMissingToken  = errors.New("缺少签到码")
	ErrInvalidToken  = errors.New("签到码无效或已过期")
	ErrNotRegistered = errors.New("未报名该活动")
	ErrAlreadyMarked = errors.New("已签到，请勿重复操作")
	ErrEventNotFound = errors.New("活动不存在")
	ErrNotEventHost  = errors.New("无权操作该活动")
)

// AttendanceService 签到服务：签发展示令牌、核销签到
type AttendanceService struct {
	qr           *QRTokenService
	leaseSeconds int
}

func NewAttendanceService(qr *QRTokenService, leaseSeconds int) *AttendanceService {
	return &AttendanceService{
		qr:           qr,
		leaseSeconds: leaseSeconds,
	}
}

// GetEventQR 为主持人签发当前有效的签到令牌
// 每次调用都重新签发，同一活动可能同时存在多个有效令牌，
// 窗口很短，这是有意的设计而非缺陷
func (s *AttendanceService) GetEventQR(eventID uint, callerID uint) (string, time.Time, error) {
	var event model.Event
	if err := database.DB.First(&event, eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", time.Time{}, ErrEventNotFound
		}
		return "", time.Time{}, fmt.Errorf("查询活动失败: %v", err)
	}

	// 仅活动创建者可以拿到令牌，校验在签发之前
	if event.CreatedBy != callerID {
		return "", time.Time{}, ErrNotEventHost
	}

	now := time.Now()
	token := s.qr.Mint(event.ID, now.Unix())

	// 更新参考过期时间，仅用于展示端的刷新调度，不参与令牌校验
	expiry := now.Add(time.Duration(s.leaseSeconds) * time.Second)
	if err := database.DB.Model(&model.Event{}).
		Where("id = ?", event.ID).
		Update("qr_expiry", expiry).Error; err != nil {
		return "", time.Time{}, fmt.Errorf("更新二维码过期时间失败: %v", err)
	}

	return token, expiry, nil
}

// Mark 学生扫码签到，核心的"只签到一次"流程
// 各步骤依次硬性把关：令牌非空 -> 签名与时间有效 -> 已报名 -> 插入签到记录
func (s *AttendanceService) Mark(studentID uint, token string) (*model.Attendance, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	// 伪造、过期、格式错误统一返回同一个错误
	eventID, ok := s.qr.Verify(token, time.Now().Unix())
	if !ok {
		return nil, ErrInvalidToken
	}

	// 签到以报名为前提，拿到有效签到码不代表有资格签到
	var count int64
	if err := database.DB.Model(&model.Registration{}).
		Where("student_id = ? AND event_id = ?", studentID, eventID).
		Count(&count).Error; err != nil {
		return nil, fmt.Errorf("查询报名记录失败: %v", err)
	}
	if count == 0 {
		return nil, ErrNotRegistered
	}

	// 直接插入，由唯一索引拦截重复签到
	// 先查再插在并发下会漏判，这里不做前置存在性检查
	attendance := &model.Attendance{
		StudentID:      studentID,
		EventID:        eventID,
		AttendanceTime: time.Now(),
	}
	if err := database.DB.Create(attendance).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyMarked
		}
		return nil, fmt.Errorf("写入签到记录失败: %v", err)
	}

	return attendance, nil
}

// Check 查询某学生在某活动的签到记录
func (s *AttendanceService) Check(eventID, studentID uint) (*model.Attendance, error) {
	var attendance model.Attendance
	err := database.DB.
		Where("student_id = ? AND event_id = ?", studentID, eventID).
		First(&attendance).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("该学生没有签到记录")
		}
		return nil, fmt.Errorf("查询签到记录失败: %v", err)
	}
	return &attendance, nil
}

// ListByEvent 主持人查看活动的签到名单
func (s *AttendanceService) ListByEvent(eventID uint, callerID uint) ([]model.Attendance, error) {
	var event model.Event
	if err := database.DB.First(&event, eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("查询活动失败: %v", err)
	}
	if event.CreatedBy != callerID {
		return nil, ErrNotEventHost
	}

	var records []model.Attendance
	if err := database.DB.
		Where("event_id = ?", eventID).
		Order("attendance_time asc").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("查询签到名单失败: %v", err)
	}
	return records, nil
}
