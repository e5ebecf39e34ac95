package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/GanaviDGowda/MCE-Clashpoint/internal/model"
	"github.com/GanaviDGowda/MCE-Clashpoint/internal/pkg/database"

	"gorm.io/gorm"
)

var Event = new(EventService)

type EventService struct{}

// EventInput 创建/更新活动的输入
type EventInput struct {
	Title               string
	Description         string
	Date                time.Time
	RegistrationEndDate time.Time
	Mode                string
	Link                string
	Host                string
	Banner              string
	Category            string
	AdditionalDetails   string
}

// Create 创建活动
func (s *EventService) Create(hostID uint, input EventInput) (*model.Event, error) {
	if input.Title == "" {
		return nil, errors.New("活动标题不能为空")
	}
	if input.Mode != "online" && input.Mode != "offline" && input.Mode != "hybrid" {
		return nil, errors.New("活动形式无效")
	}

	event := &model.Event{
		Title:               input.Title,
		Description:         input.Description,
		Date:                input.Date,
		RegistrationEndDate: input.RegistrationEndDate,
		Mode:                input.Mode,
		Link:                input.Link,
		Host:                input.Host,
		Banner:              input.Banner,
		Category:            input.Category,
		AdditionalDetails:   input.AdditionalDetails,
		CreatedBy:           hostID,
		QRExpiry:            time.Now(),
	}

	if err := database.DB.Create(event).Error; err != nil {
		return nil, fmt.Errorf("创建活动失败: %v", err)
	}

	return event, nil
}

// Get 查询单个活动
func (s *EventService) Get(eventID uint) (*model.Event, error) {
	var event model.Event
	if err := database.DB.First(&event, eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("查询活动失败: %v", err)
	}
	return &event, nil
}

// List 查询全部活动
func (s *EventService) List() ([]model.Event, error) {
	var events []model.Event
	if err := database.DB.Order("date desc").Find(&events).Error; err != nil {
		return nil, fmt.Errorf("查询活动列表失败: %v", err)
	}
	return events, nil
}

// ListByHost 查询主持人创建的活动
func (s *EventService) ListByHost(hostID uint) ([]model.Event, error) {
	var events []model.Event
	if err := database.DB.
		Where("created_by = ?", hostID).
		Order("date desc").
		Find(&events).Error; err != nil {
		return nil, fmt.Errorf("查询活动列表失败: %v", err)
	}
	return events, nil
}

// ListByStudent 查询学生报名过的活动
func (s *EventService) ListByStudent(studentID uint) ([]model.Event, error) {
	var events []model.Event
	if err := database.DB.
		Joins("JOIN registrations ON registrations.event_id = events.id").
		Where("registrations.student_id = ?", studentID).
		Order("events.date desc").
		Find(&events).Error; err != nil {
		return nil, fmt.Errorf("查询报名活动失败: %v", err)
	}
	return events, nil
}

// Update 更新活动，仅创建者可操作
func (s *EventService) Update(eventID, callerID uint, input EventInput) (*model.Event, error) {
	event, err := s.Get(eventID)
	if err != nil {
		return nil, err
	}
	if event.CreatedBy != callerID {
		return nil, ErrNotEventHost
	}

	event.Title = input.Title
	event.Description = input.Description
	event.Date = input.Date
	event.RegistrationEndDate = input.RegistrationEndDate
	event.Mode = input.Mode
	event.Link = input.Link
	event.Host = input.Host
	event.Banner = input.Banner
	event.Category = input.Category
	event.AdditionalDetails = input.AdditionalDetails

	if err := database.DB.Save(event).Error; err != nil {
		return nil, fmt.Errorf("更新活动失败: %v", err)
	}
	return event, nil
}

// Delete 删除活动并清理其报名、签到和评价记录
func (s *EventService) Delete(eventID, callerID uint) error {
	event, err := s.Get(eventID)
	if err != nil {
		return err
	}
	if event.CreatedBy != callerID {
		return ErrNotEventHost
	}

	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", eventID).Delete(&model.Registration{}).Error; err != nil {
			return fmt.Errorf("清理报名记录失败: %v", err)
		}
		if err := tx.Where("event_id = ?", eventID).Delete(&model.Attendance{}).Error; err != nil {
			return fmt.Errorf("清理签到记录失败: %v", err)
		}
		if err := tx.Where("event_id = ?", eventID).Delete(&model.Review{}).Error; err != nil {
			return fmt.Errorf("清理评价记录失败: %v", err)
		}
		if err := tx.Delete(&model.Event{}, eventID).Error; err != nil {
			return fmt.Errorf("删除活动失败: %v", err)
		}
		return nil
	})
}
