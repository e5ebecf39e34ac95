package router

import (
	"github.com/GanaviDGowda/MCE-Clashpoint/internal/api"
	"github.com/GanaviDGowda/MCE-Clashpoint/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRoutes 配置所有路由
func SetupRoutes(r *gin.Engine) {
	// 健康检查接口（不需要任何中间件）
	r.GET("/api/v1/health", api.SimpleHealthCheck)

	// API路由
	apiGroup := r.Group("/api/v1")
	apiGroup.Use(middleware.Logger())
	apiGroup.Use(middleware.Recovery())
	apiGroup.Use(middleware.Cors())

	// 认证相关
	auth := apiGroup.Group("/auth")
	{
		auth.POST("/register", api.Register)
		auth.POST("/login", api.Login)
	}

	// 需要认证的路由
	authorized := apiGroup.Group("/")
	authorized.Use(middleware.JWT())
	{
		// 用户相关
		user := authorized.Group("/user")
		{
			user.GET("/profile", api.GetUserProfile)
		}

		// 活动相关
		events := authorized.Group("/events")
		{
			events.GET("", api.GetEvents)
			events.GET("/host", middleware.HostOnly(), api.GetHostEvents)          // 主持人创建的活动
			events.GET("/student", middleware.StudentOnly(), api.GetStudentEvents) // 学生报名的活动
			events.GET("/:id", api.GetEvent)
			events.POST("", middleware.HostOnly(), api.CreateEvent)
			events.PUT("/:id", middleware.HostOnly(), api.UpdateEvent)
			events.DELETE("/:id", middleware.HostOnly(), api.DeleteEvent)
			events.GET("/:id/registrations", middleware.HostOnly(), api.GetEventRegistrations)
		}

		// 报名相关
		registrations := authorized.Group("/registrations")
		{
			registrations.POST("/:event_id", middleware.StudentOnly(), api.RegisterForEvent)
			registrations.GET("", middleware.StudentOnly(), api.GetMyRegistrations)
		}

		// 签到相关
		attendance := authorized.Group("/attendance")
		{
			attendance.GET("/qr/:event_id", middleware.HostOnly(), api.GetEventQR)             // 获取签到令牌
			attendance.GET("/qr/:event_id/image", middleware.HostOnly(), api.GetEventQRImage)  // 获取二维码图片
			attendance.POST("/mark", middleware.StudentOnly(), api.MarkAttendance)             // 扫码签到
			attendance.GET("/event/:event_id", middleware.HostOnly(), api.ListEventAttendance) // 签到名单
			attendance.GET("/check/:event_id/:student_id", api.CheckAttendance)                // 查询签到情况
		}

		// 评价相关
		reviews := authorized.Group("/reviews")
		{
			reviews.POST("", middleware.StudentOnly(), api.SubmitReview)
			reviews.GET("/event/:event_id", api.GetEventReviews)
		}

		// 证书相关
		certificates := authorized.Group("/certificates")
		{
			certificates.POST("", middleware.HostOnly(), api.IssueCertificate)
			certificates.GET("/:event_id", middleware.StudentOnly(), api.GetMyCertificate)
		}
	}
}
