package middleware

import (
	"net/http"

	"github.com/GanaviDGowda/MCE-Clashpoint/internal/model"

	"github.com/gin-gonic/gin"
)

// HostOnly 主持人权限中间件，必须在JWT中间件之后使用
func HostOnly() gin.HandlerFunc {
	return requireRole(model.RoleHost, "仅主持人可访问")
}

// StudentOnly 学生权限中间件，必须在JWT中间件之后使用
func StudentOnly() gin.HandlerFunc {
	return requireRole(model.RoleStudent, "仅学生可访问")
}

func requireRole(role string, msg string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// JWT中间件已验证token并写入上下文
		userRole, exists := c.Get("userRole")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code": 401,
				"msg":  "未登录",
			})
			c.Abort()
			return
		}

		if userRole != role {
			c.JSON(http.StatusForbidden, gin.H{
				"code": 403,
				"msg":  msg,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
