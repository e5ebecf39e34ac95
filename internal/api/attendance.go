package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/GanaviDGowda/MCE-Clashpoint/internal/service"
	"github.com/GanaviDGowda/MCE-Clashpoint/internal/types"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
)

// GetEventQR 主持人获取当前签到二维码令牌
func GetEventQR(c *gin.Context) {
	eventID, err := parseIDParam(c, "event_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code": 400,
			"msg":  "活动ID无效",
		})
		return
	}

	userId := c.GetUint("userId")
	token, expiry, err := service.Attendance.GetEventQR(eventID, userId)
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
		"data": gin.H{
			"qrToken":  token,
			"qrExpiry": expiry,
		},
	})
}

// GetEventQRImage 主持人获取签到二维码的PNG图片
func GetEventQRImage(c *gin.Context) {
	eventID, err := parseIDParam(c, "event_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code": 400,
			"msg":  "活动ID无效",
		})
		return
	}

	userId := c.GetUint("userId")
	token, _, err := service.Attendance.GetEventQR(eventID, userId)
	if err != nil {
		status := attendanceErrorStatus(err)
		c.JSON(status, gin.H{
			"code": status,
			"msg":  err.Error(),
		})
		return
	}

	png, err := qrcode.Encode(token, qrcode.Medium, 256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"code": 500,
			"msg":  "生成二维码图片失败",
		})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

// MarkAttendance 学生扫码签到
func MarkAttendance(c *gin.Context) {
	var req types.MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code": 400,
			"msg":  service.ErrMissingToken.Error(),
		})
		return
	}

	userId := c.GetUint("userId")
	attendance, err := service.Attendance.Mark(userId, req.QRToken)
	if err != nil {
		status := attendanceErrorStatus(err)
		c.JSON(status, gin.H{
			"code": status,
			"msg":  err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"code": 201,
		"msg":  "签到成功",
		"data": gin.H{
			"eventId":        attendance.EventID,
			"attendanceTime": attendance.AttendanceTime,
		},
	})
}

// CheckAttendance 查询某学生在某活动的签到情况
func CheckAttendance(c *gin.Context) {
	eventID, err := parseIDParam(c, "event_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code": 400,
			"msg":  "活动ID无效",
		})
		return
	}
	studentID, err := parseIDParam(c, "student_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code": 400,
			"msg":  "学生ID无效",
		})
		return
	}

	attendance, err := service.Attendance.Check(eventID, studentID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"code": 404,
			"msg":  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code": 200,
		"data": gin.H{
			"attendanceTime": attendance.AttendanceTime,
		},
	})
}

// ListEventAttendance 主持人查看活动签到名单
func ListEventAttendance(c *gin.Context) {
	eventID, err := parseIDParam(c, "event_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code": 400,
			"msg":  "活动ID无效",
		})
		return
	}

	userId := c.GetUint("userId")
	records, err := service.Attendance.ListByEvent(eventID, userId)
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
		"data": records,
	})
}

// attendanceErrorStatus 把签到相关错误映射为HTTP状态码
func attendanceErrorStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrMissingToken), errors.Is(err, service.ErrInvalidToken):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNotRegistered), errors.Is(err, service.ErrNotEventHost):
		return http.StatusForbidden
	case errors.Is(err, service.ErrAlreadyMarked):
		return http.StatusConflict
	case errors.Is(err, service.ErrEventNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// parseIDParam 解析路径中的数字ID
func parseIDParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
