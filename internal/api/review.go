package api

import (
	"errors"
	"net/http"

	"github.com/GanaviDGowda/MCE-Clashpoint/internal/service"
	"github.com/GanaviDGowda/MCE-Clashpoint/internal/types"

	"github.com/gin-gonic/gin"
)

// SubmitReview 学生提交活动评价
func SubmitReview(c *gin.Context) {
	var req types.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code": 400,
			"msg":  "参数错误",
		})
		return
	}

	userId := c.GetUint("userId")
	review, err := service.Review.Submit(userId, req.EventID, req.Rating, req.Comment)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"code": 404,
				"msg":  err.Error(),
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"code": 400,
			"msg":  err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"code": 201,
		"msg":  "评价已提交",
		"data": review,
	})
}

// GetEventReviews 查询活动评价列表
func GetEventReviews(c *gin.Context) {
	eventID, err := parseIDParam(c, "event_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code": 400,
			"msg":  "活动ID无效",
		})
		return
	}

	reviews, err := service.Review.ListByEvent(eventID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"code": 500,
			"msg":  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code": 200,
		"data": reviews,
	})
}
