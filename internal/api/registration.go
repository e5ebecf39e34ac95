package api

import (
	"errors"
	"net/http"

	"github.com/GanaviDGowda/MCE-Clashpoint/internal/service"

	"github.com/gin-gonic/gin"
)

// RegisterForEvent 学生报名活动
func RegisterForEvent(c *gin.Context) {
	eventID, err := parseIDParam(c, "event_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code": 400,
			"msg":  "活动ID无效",
		})
		return
	}

	userId := c.GetUint("userId")
	_, err = service.Registration.Register(userId, eventID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAlreadyRegistered), errors.Is(err, service.ErrRegistrationClosed):
			c.JSON(http.StatusBadRequest, gin.H{
				"code": 400,
				"msg":  err.Error(),
			})
		case errors.Is(err, service.ErrEventNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"code": 404,
				"msg":  err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"code": 500,
				"msg":  err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"code": 201,
		"msg":  "报名成功",
	})
}

// GetMyRegistrations 学生查询自己的报名记录
func GetMyRegistrations(c *gin.Context) {
	userId := c.GetUint("userId")
	registrations, err := service.Registration.ListByStudent(userId)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"code": 500,
			"msg":  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code": 200,
		"data": registrations,
	})
}
