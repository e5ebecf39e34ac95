package service

import (
	"testing"
	"time"

	"github.com/GanaviDGowda/MCE-Clashpoint/internal/model"
	"github.com/GanaviDGowda/MCE-Clashpoint/internal/pkg/database"
)

func newTestCronService() *CronService {
	qr := NewQRTokenService("test-secret", 60)
	return NewCronService(qr, time.Minute, 60)
}

func TestRotateOnceRefreshesTodaysEvents(t *testing.T) {
	setupTestDB(t)
	svc := newTestCronService()

	host := createTestUser(t, "host1", model.RoleHost)
	now := time.Now()

	today := createTestEvent(t, host.ID, "今天的活动")
	nextWeek := createTestEvent(t, host.ID, "下周的活动")
	database.DB.Model(&model.Event{}).
		Where("id = ?", nextWeek.ID).
		Updates(map[string]interface{}{
			"date":      now.AddDate(0, 0, 7),
			"qr_expiry": now.Add(-time.Hour),
		})
	database.DB.Model(&model.Event{}).
		Where("id = ?", today.ID).
		Update("qr_expiry", now.Add(-time.Hour))

	svc.RotateOnce(now)

	var refreshed model.Event
	database.DB.First(&refreshed, today.ID)
	if !refreshed.QRExpiry.After(now) {
		t.Fatalf("当天活动的 qr_expiry 应被刷新: %v", refreshed.QRExpiry)
	}

	var untouched model.Event
	database.DB.First(&untouched, nextWeek.ID)
	if untouched.QRExpiry.After(now) {
		t.Fatalf("非当天活动不应被刷新: %v", untouched.QRExpiry)
	}
}

func TestRefreshEventsIsolatesFailures(t *testing.T) {
	setupTestDB(t)
	svc := newTestCronService()

	host := createTestUser(t, "host1", model.RoleHost)
	now := time.Now()

	first := createTestEvent(t, host.ID, "活动一")
	third := createTestEvent(t, host.ID, "活动三")
	database.DB.Model(&model.Event{}).
		Where("id IN ?", []uint{first.ID, third.ID}).
		Update("qr_expiry", now.Add(-time.Hour))

	// 中间的活动不存在，刷新它会失败，但不应影响前后两个
	events := []model.Event{
		{ID: first.ID},
		{ID: 99999},
		{ID: third.ID},
	}
	svc.refreshEvents(events, now)

	for _, id := range []uint{first.ID, third.ID} {
		var event model.Event
		database.DB.First(&event, id)
		if !event.QRExpiry.After(now) {
			t.Fatalf("活动 %d 的 qr_expiry 应被刷新: %v", id, event.QRExpiry)
		}
	}
}

func TestRefreshEventMissingEvent(t *testing.T) {
	setupTestDB(t)
	svc := newTestCronService()

	if err := svc.RefreshEvent(99999, time.Now()); err == nil {
		t.Fatal("刷新不存在的活动应返回错误")
	}
}

func TestCronStartStop(t *testing.T) {
	setupTestDB(t)

	qr := NewQRTokenService("test-secret", 60)
	svc := NewCronService(qr, 10*time.Millisecond, 60)

	svc.Start()
	// 留出几个tick的时间，空表轮换也不应panic
	time.Sleep(50 * time.Millisecond)
	svc.Stop()
}
