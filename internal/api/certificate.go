package api

import (
	"errors"
	"net/http"

	"github.com/GanaviDGowda/MCE-Clashpoint/internal/service"
	"github.com/GanaviDGowda/MCE-Clashpoint/internal/types"

	"github.com/gin-gonic/gin"
)

// IssueCertificate 主持人为学生签发参与证书
func IssueCertificate(c *gin.Context) {
	var req types.CertificateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code": 400,
			"msg":  "参数错误",
		})
		return
	}

	userId := c.GetUint("userId")
	certificate, err := service.Certificate.Issue(userId, req.StudentID, req.EventID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotEventHost):
			c.JSON(http.StatusForbidden, gin.H{
				"code": 403,
				"msg":  err.Error(),
			})
		case errors.Is(err, service.ErrEventNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"code": 404,
				"msg":  err.Error(),
			})
		default:
			c.JSON(http.StatusBadRequest, gin.H{
				"code": 400,
				"msg":  err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"code": 201,
		"msg":  "证书已签发",
		"data": certificate,
	})
}

// GetMyCertificate 学生查询自己在某活动的证书
func GetMyCertificate(c *gin.Context) {
	eventID, err := parseIDParam(c, "event_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code": 400,
			"msg":  "活动ID无效",
		})
		return
	}

	userId := c.GetUint("userId")
	certificate, err := service.Certificate.Get(userId, eventID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"code": 404,
			"msg":  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code": 200,
		"data": certificate,
	})
}
