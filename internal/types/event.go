package types

import "time"

// EventRequest 创建/更新活动的请求体
type EventRequest struct {
	Title               string    `json:"title" binding:"required"`
	Description         string    `json:"description"`
	Date                time.Time `json:"date" binding:"required"`
	RegistrationEndDate time.Time `json:"registrationEndDate" binding:"required"`
	Mode                string    `json:"mode" binding:"required"`
	Link                string    `json:"link"`
	Host                string    `json:"host"`
	Banner              string    `json:"banner"`
	Category            string    `json:"category"`
	AdditionalDetails   string    `json:"additionalDetails"`
}

// MarkAttendanceRequest 扫码签到请求体
type MarkAttendanceRequest struct {
	QRToken string `json:"qrToken"`
}

// ReviewRequest 提交评价请求体
type ReviewRequest struct {
	EventID uint   `json:"eventId" binding:"required"`
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

// CertificateRequest 签发证书请求体
type CertificateRequest struct {
	StudentID uint `json:"studentId" binding:"required"`
	EventID   uint `json:"eventId" binding:"required"`
}
