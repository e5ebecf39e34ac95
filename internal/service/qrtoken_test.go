package service

import (
	"fmt"
	"strings"
	"testing"
)

func TestMintDeterministic(t *testing.T) {
	svc := NewQRTokenService("test-secret", 60)

	a := svc.Mint(42, 1700000000)
	b := svc.Mint(42, 1700000000)
	if a != b {
		t.Fatalf("相同输入应产生相同令牌: %q vs %q", a, b)
	}

	want := "42.1700000000."
	if !strings.HasPrefix(a, want) {
		t.Fatalf("令牌前缀应为 %q, got %q", want, a)
	}
	if len(strings.Split(a, ".")) != 3 {
		t.Fatalf("令牌应为三段: %q", a)
	}
}

func TestVerifyRoundTrip(t *testing.T) {
	svc := NewQRTokenService("test-secret", 60)

	now := int64(1700000000)
	token := svc.Mint(42, now)

	eventID, ok := svc.Verify(token, now)
	if !ok {
		t.Fatal("刚签发的令牌应通过校验")
	}
	if eventID != 42 {
		t.Fatalf("期望活动ID 42, got %d", eventID)
	}
}

func TestVerifyTamperedToken(t *testing.T) {
	svc := NewQRTokenService("test-secret", 60)
	now := int64(1700000000)
	token := svc.Mint(42, now)

	// 逐个位置翻转一个字符，签名、活动ID、时间戳改动都必须被拒绝
	for i := 0; i < len(token); i++ {
		if token[i] == '.' {
			continue
		}
		mutated := []byte(token)
		if mutated[i] == '0' {
			mutated[i] = '1'
		} else {
			mutated[i] = '0'
		}
		if _, ok := svc.Verify(string(mutated), now); ok {
			t.Fatalf("篡改位置 %d 后仍通过校验: %q", i, string(mutated))
		}
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	minter := NewQRTokenService("secret-a", 60)
	verifier := NewQRTokenService("secret-b", 60)

	now := int64(1700000000)
	token := minter.Mint(42, now)

	if _, ok := verifier.Verify(token, now); ok {
		t.Fatal("其他密钥签发的令牌不应通过校验")
	}
}

func TestVerifyDriftWindow(t *testing.T) {
	const drift = 60
	svc := NewQRTokenService("test-secret", drift)
	now := int64(1700000000)

	cases := []struct {
		name     string
		issuedAt int64
		want     bool
	}{
		{"当前时刻", now, true},
		{"窗口内过去", now - (drift - 1), true},
		{"恰好窗口边界(过去)", now - drift, true},
		{"超出窗口(过去)", now - (drift + 1), false},
		{"窗口内未来", now + (drift - 1), true},
		{"恰好窗口边界(未来)", now + drift, true},
		{"超出窗口(未来)", now + (drift + 1), false},
	}

	for _, tc := range cases {
		token := svc.Mint(42, tc.issuedAt)
		_, ok := svc.Verify(token, now)
		if ok != tc.want {
			t.Errorf("%s: issuedAt=%d want %v got %v", tc.name, tc.issuedAt, tc.want, ok)
		}
	}
}

func TestVerifyMalformedTokens(t *testing.T) {
	svc := NewQRTokenService("test-secret", 60)
	now := int64(1700000000)

	// 正确签名但时间戳非数字的令牌
	valid := svc.Mint(42, now)
	signature := strings.Split(valid, ".")[2]

	malformed := []string{
		"",
		"42",
		"42.1700000000",
		"42.1700000000.aaa.bbb",
		"abc.1700000000." + signature,
		fmt.Sprintf("42.notanumber.%s", signature),
		"...",
		"42..",
	}

	for _, token := range malformed {
		if _, ok := svc.Verify(token, now); ok {
			t.Errorf("畸形令牌不应通过校验: %q", token)
		}
	}
}
