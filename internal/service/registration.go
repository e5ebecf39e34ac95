package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/GanaviDGowda/MCE-Clashpoint/internal/model"
	"github.com/GanaviDGowda/MCE-Clashpoint/internal/pkg/database"

	"gorm.io/gorm"
)

var Registration = new(RegistrationService)

var (
	ErrAlreadyRegistered  = errors.New("已报名该活动")
	ErrRegistrationClosed = errors.New("报名已截止")
)

type RegistrationService struct{}

// Register 学生报名活动
func (s *RegistrationService) Register(studentID, eventID uint) (*model.Registration, error) {
	event, err := Event.Get(eventID)
	if err != nil {
		return nil, err
	}

	// 截止时间之后不再接受报名
	if time.Now().After(event.RegistrationEndDate) {
		return nil, ErrRegistrationClosed
	}

	// 与签到一样，依赖唯一索引拦截重复报名
	registration := &model.Registration{
		StudentID: studentID,
		EventID:   eventID,
	}
	if err := database.DB.Create(registration).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyRegistered
		}
		return nil, fmt.Errorf("创建报名记录失败: %v", err)
	}

	return registration, nil
}

// ListByStudent 查询学生自己的报名记录
func (s *RegistrationService) ListByStudent(studentID uint) ([]model.Registration, error) {
	var registrations []model.Registration
	if err := database.DB.
		Where("student_id = ?", studentID).
		Order("created_at desc").
		Find(&registrations).Error; err != nil {
		return nil, fmt.Errorf("查询报名记录失败: %v", err)
	}
	return registrations, nil
}

// ListByEvent 主持人查看活动的报名名单
func (s *RegistrationService) ListByEvent(eventID, callerID uint) ([]model.Registration, error) {
	event, err := Event.Get(eventID)
	if err != nil {
		return nil, err
	}
	if event.CreatedBy != callerID {
		return nil, ErrNotEventHost
	}

	var registrations []model.Registration
	if err := database.DB.
		Where("event_id = ?", eventID).
		Order("created_at asc").
		Find(&registrations).Error; err != nil {
		return nil, fmt.Errorf("查询报名名单失败: %v", err)
	}
	return registrations, nil
}
