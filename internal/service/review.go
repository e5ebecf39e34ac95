package service

import (
	"errors"
	"fmt"

	"github.com/GanaviDGowda/MCE-Clashpoint/internal/model"
	"github.com/GanaviDGowda/MCE-Clashpoint/internal/pkg/database"
)

var Review = new(ReviewService)

type ReviewService struct{}

// Submit 学生提交活动评价
func (s *ReviewService) Submit(studentID, eventID uint, rating int, comment string) (*model.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, errors.New("评分必须在1到5之间")
	}

	if _, err := Event.Get(eventID); err != nil {
		return nil, err
	}

	review := &model.Review{
		StudentID: studentID,
		EventID:   eventID,
		Rating:    rating,
		Comment:   comment,
	}
	if err := database.DB.Create(review).Error; err != nil {
		return nil, fmt.Errorf("提交评价失败: %v", err)
	}

	return review, nil
}

// ListByEvent 查询活动的全部评价
func (s *ReviewService) ListByEvent(eventID uint) ([]model.Review, error) {
	var reviews []model.Review
	if err := database.DB.
		Where("event_id = ?", eventID).
		Order("created_at desc").
		Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("查询评价失败: %v", err)
	}
	return reviews, nil
}
