package service

import (
	"errors"
	"fmt"

	"github.com/GanaviDGowda/MCE-Clashpoint/internal/model"
	"github.com/GanaviDGowda/MCE-Clashpoint/internal/pkg/database"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var Certificate = new(CertificateService)

type CertificateService struct{}

// Issue 主持人为已签到的学生签发参与证书
func (s *CertificateService) Issue(callerID, studentID, eventID uint) (*model.Certificate, error) {
	event, err := Event.Get(eventID)
	if err != nil {
		return nil, err
	}
	if event.CreatedBy != callerID {
		return nil, ErrNotEventHost
	}

	// 证书以实际到场为前提
	var count int64
	if err := database.DB.Model(&model.Attendance{}).
		Where("student_id = ? AND event_id = ?", studentID, eventID).
		Count(&count).Error; err != nil {
		return nil, fmt.Errorf("查询签到记录失败: %v", err)
	}
	if count == 0 {
		return nil, errors.New("该学生没有签到记录，无法签发证书")
	}

	// 已签发过则直接返回已有证书
	var existing model.Certificate
	err = database.DB.
		Where("student_id = ? AND event_id = ?", studentID, eventID).
		First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("查询证书失败: %v", err)
	}

	certificate := &model.Certificate{
		StudentID:      studentID,
		EventID:        eventID,
		CertificateURL: fmt.Sprintf("/certificates/%s.pdf", uuid.New().String()),
	}
	if err := database.DB.Create(certificate).Error; err != nil {
		return nil, fmt.Errorf("签发证书失败: %v", err)
	}

	return certificate, nil
}

// Get 学生查询自己在某活动的证书
func (s *CertificateService) Get(studentID, eventID uint) (*model.Certificate, error) {
	var certificate model.Certificate
	err := database.DB.
		Where("student_id = ? AND event_id = ?", studentID, eventID).
		First(&certificate).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("证书不存在")
		}
		return nil, fmt.Errorf("查询证书失败: %v", err)
	}
	return &certificate, nil
}
