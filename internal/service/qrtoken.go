package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// QRToken 全局令牌服务，Setup时根据配置初始化
var QRToken *QRTokenService

// QRTokenService 签到令牌的签发与校验
// 密钥通过构造函数注入，方便测试时使用固定密钥
type QRTokenService struct {
	secret []byte
	drift  int64
}

func NewQRTokenService(secret string, driftSeconds int) *QRTokenService {
	return &QRTokenService{
		secret: []byte(secret),
		drift:  int64(driftSeconds),
	}
}

// DriftSeconds 返回漂移窗口，签发接口用它告知前端刷新节奏
func (s *QRTokenService) DriftSeconds() int64 {
	return s.drift
}

// Mint 签发令牌，格式: {eventId}.{issuedAt}.{hex签名}
// 无随机因素，相同输入永远得到相同令牌
func (s *QRTokenService) Mint(eventID uint, issuedAt int64) string {
	signature := s.sign(eventID, issuedAt)
	return fmt.Sprintf("%d.%d.%s", eventID, issuedAt, signature)
}

// Verify 校验令牌并返回其中的活动ID
// 结构错误、签名不符、超出漂移窗口一律返回 false，
// 不区分具体原因，避免给伪造者提供判断依据
func (s *QRTokenService) Verify(token string, now int64) (uint, bool) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return 0, false
	}

	eventID, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil {
		return 0, false
	}

	issuedAt, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, false
	}

	// 恒定时间比较签名
	expected := s.sign(uint(eventID), issuedAt)
	if !hmac.Equal([]byte(parts[2]), []byte(expected)) {
		return 0, false
	}

	// 校验时间窗口，过期和来自未来的令牌同样拒绝
	delta := now - issuedAt
	if delta < 0 {
		delta = -delta
	}
	if delta > s.drift {
		return 0, false
	}

	return uint(eventID), true
}

// sign 对 "{eventId}:{issuedAt}" 做 HMAC-SHA256
func (s *QRTokenService) sign(eventID uint, issuedAt int64) string {
	mac := hmac.New(sha256.New, s.secret)
	fmt.Fprintf(mac, "%d:%d", eventID, issuedAt)
	return hex.EncodeToString(mac.Sum(nil))
}
