package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// SimpleHealthCheck 健康检查
func SimpleHealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"code": 200,
		"data": gin.H{
			"status": "ok",
			"time":   time.Now().Format("2006-01-02 15:04:05"),
		},
	})
}
