package api

import (
	"errors"
	"net/http"

	"github.com/GanaviDGowda/MCE-Clashpoint/internal/service"
	"github.com/GanaviDGowda/MCE-Clashpoint/internal/types"

	"github.com/gin-gonic/gin"
)

// CreateEvent 主持人创建活动
func CreateEvent(c *gin.Context) {
	var req types.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code": 400,
			"msg":  "参数错误",
		})
		return
	}

	userId := c.GetUint("userId")
	event, err := service.Event.Create(userId, eventInputFromRequest(req))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code": 400,
			"msg":  err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"code": 201,
		"msg":  "创建成功",
		"data": event,
	})
}

// GetEvents 查询全部活动
func GetEvents(c *gin.Context) {
	events, err := service.Event.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"code": 500,
			"msg":  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code": 200,
		"data": events,
	})
}

// GetEvent 查询单个活动
func GetEvent(c *gin.Context) {
	eventID, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code": 400,
			"msg":  "活动ID无效",
		})
		return
	}

	event, err := service.Event.Get(eventID)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"code": 404,
				"msg":  err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"code": 500,
			"msg":  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code": 200,
		"data": event,
	})
}

// UpdateEvent 主持人更新活动
func UpdateEvent(c *gin.Context) {
	eventID, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code": 400,
			"msg":  "活动ID无效",
		})
		return
	}

	var req types.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code": 400,
			"msg":  "参数错误",
		})
		return
	}

	userId := c.GetUint("userId")
	event, err := service.Event.Update(eventID, userId, eventInputFromRequest(req))
	if err != nil {
		status := attendanceErrorStatus(err)
		c.JSON(status, gin.H{
			"code": status,
			"msg":  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code": 200,
		"msg":  "更新成功",
		"data": event,
	})
}

// DeleteEvent 主持人删除活动
func DeleteEvent(c *gin.Context) {
	eventID, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code": 400,
			"msg":  "活动ID无效",
		})
		return
	}

	userId := c.GetUint("userId")
	if err := service.Event.Delete(eventID, userId); err != nil {
		status := attendanceErrorStatus(err)
		c.JSON(status, gin.H{
			"code": status,
			"msg":  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code": 200,
		"msg":  "删除成功",
	})
}

// GetHostEvents 主持人查询自己创建的活动
func GetHostEvents(c *gin.Context) {
	userId := c.GetUint("userId")
	events, err := service.Event.ListByHost(userId)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"code": 500,
			"msg":  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code": 200,
		"data": events,
	})
}

// GetStudentEvents 学生查询自己报名的活动
func GetStudentEvents(c *gin.Context) {
	userId := c.GetUint("userId")
	events, err := service.Event.ListByStudent(userId)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"code": 500,
			"msg":  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code": 200,
		"data": events,
	})
}

// GetEventRegistrations 主持人查看活动报名名单
func GetEventRegistrations(c *gin.Context) {
	eventID, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code": 400,
			"msg":  "活动ID无效",
		})
		return
	}

	userId := c.GetUint("userId")
	registrations, err := service.Registration.ListByEvent(eventID, userId)
	if err != nil {
		status := attendanceErrorStatus(err)
		c.JSON(status, gin.H{
			"code": status,
			"msg":  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code": 200,
		"data": registrations,
	})
}

func eventInputFromRequest(req types.EventRequest) service.EventInput {
	return service.EventInput{
		Title:               req.Title,
		Description:         req.Description,
		Date:                req.Date,
		RegistrationEndDate: req.RegistrationEndDate,
		Mode:                req.Mode,
		Link:                req.Link,
		Host:                req.Host,
		Banner:              req.Banner,
		Category:            req.Category,
		AdditionalDetails:   req.AdditionalDetails,
	}
}
