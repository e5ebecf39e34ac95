package service

import (
	"errors"
	"testing"
	"time"

	"github.com/GanaviDGowda/MCE-Clashpoint/internal/model"
	"github.com/GanaviDGowda/MCE-Clashpoint/internal/pkg/database"
)

func TestRegisterAndList(t *testing.T) {
	setupTestDB(t)

	host := createTestUser(t, "host1", model.RoleHost)
	student := createTestUser(t, "stu1", model.RoleStudent)
	event := createTestEvent(t, host.ID, "迎新晚会")

	if _, err := Registration.Register(student.ID, event.ID); err != nil {
		t.Fatalf("报名失败: %v", err)
	}

	registrations, err := Registration.ListByStudent(student.ID)
	if err != nil {
		t.Fatalf("查询报名记录失败: %v", err)
	}
	if len(registrations) != 1 || registrations[0].EventID != event.ID {
		t.Fatalf("报名记录异常: %+v", registrations)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	setupTestDB(t)

	host := createTestUser(t, "host1", model.RoleHost)
	student := createTestUser(t, "stu1", model.RoleStudent)
	event := createTestEvent(t, host.ID, "迎新晚会")

	if _, err := Registration.Register(student.ID, event.ID); err != nil {
		t.Fatalf("首次报名失败: %v", err)
	}
	if _, err := Registration.Register(student.ID, event.ID); !errors.Is(err, ErrAlreadyRegistered) {
		t.Fatalf("重复报名期望 ErrAlreadyRegistered, got %v", err)
	}
}

func TestRegisterAfterDeadline(t *testing.T) {
	setupTestDB(t)

	host := createTestUser(t, "host1", model.RoleHost)
	student := createTestUser(t, "stu1", model.RoleStudent)
	event := createTestEvent(t, host.ID, "迎新晚会")

	// 报名截止时间改到一小时前
	database.DB.Model(&model.Event{}).
		Where("id = ?", event.ID).
		Update("registration_end_date", time.Now().Add(-time.Hour))

	if _, err := Registration.Register(student.ID, event.ID); !errors.Is(err, ErrRegistrationClosed) {
		t.Fatalf("截止后报名期望 ErrRegistrationClosed, got %v", err)
	}
}

func TestRegisterUnknownEvent(t *testing.T) {
	setupTestDB(t)

	student := createTestUser(t, "stu1", model.RoleStudent)
	if _, err := Registration.Register(student.ID, 99999); !errors.Is(err, ErrEventNotFound) {
		t.Fatalf("期望 ErrEventNotFound, got %v", err)
	}
}
