// Package scanner 实现扫码端的取景循环：轮询相机帧、识别二维码、
// 识别成功后立刻停止采集并只提交一次。相机和解码算法都通过接口注入，
// 方便在没有真实硬件的环境下测试。
package scanner

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// Frame 一帧原始图像数据
type Frame []byte

// FrameSource 相机能力抽象
type FrameSource interface {
	// Open 申请相机，失败时扫描不会开始
	Open() error
	// ReadFrame 读取一帧，由扫描循环轮询调用
	ReadFrame() (Frame, error)
	// Close 释放相机，保证不泄漏设备句柄
	Close() error
}

// DecodeFunc 从一帧中识别二维码内容，ok为false表示这一帧没有识别到
type DecodeFunc func(frame Frame) (code string, ok bool)

// SubmitFunc 提交识别到的签到码，每次成功识别只会被调用一次
type SubmitFunc func(code string) error

var ErrAlreadyRunning = errors.New("扫描已在进行中")

// Scanner 扫码器
// 一次Start对应一次采集会话：识别成功或Stop都会结束会话并释放相机，
// 提交失败后由调用方决定是否重新Start重试
type Scanner struct {
	source   FrameSource
	decode   DecodeFunc
	submit   SubmitFunc
	interval time.Duration

	mu      sync.Mutex
	session *session
}

type session struct {
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

func New(source FrameSource, decode DecodeFunc, submit SubmitFunc, interval time.Duration) *Scanner {
	return &Scanner{
		source:   source,
		decode:   decode,
		submit:   submit,
		interval: interval,
	}
}

// Start 申请相机并启动取景循环
// 相机打开失败时返回错误且不会开始采集
func (s *Scanner) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session != nil {
		select {
		case <-s.session.done:
			// 上一次会话已结束，可以重新开始
		default:
			return ErrAlreadyRunning
		}
	}

	if err := s.source.Open(); err != nil {
		return fmt.Errorf("无法打开相机: %v", err)
	}

	sess := &session{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	s.session = sess
	go s.loop(sess)

	return nil
}

// Stop 停止采集并等待循环退出，可重复调用
func (s *Scanner) Stop() {
	s.mu.Lock()
	sess := s.session
	s.mu.Unlock()

	if sess == nil {
		return
	}

	sess.stopOnce.Do(func() {
		close(sess.stop)
	})
	<-sess.done
}

// Running 返回当前是否在采集
func (s *Scanner) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return false
	}
	select {
	case <-s.session.done:
		return false
	default:
		return true
	}
}

// loop 取景循环，单协程轮询
// 相机的释放只发生在这里，每个会话恰好一次
func (s *Scanner) loop(sess *session) {
	defer close(sess.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-sess.stop:
			s.source.Close()
			return
		case <-ticker.C:
			frame, err := s.source.ReadFrame()
			if err != nil {
				// 单帧读取失败不算扫描失败，继续等下一帧
				continue
			}

			code, ok := s.decode(frame)
			if !ok {
				// 这一帧没有识别到，正常噪声
				continue
			}

			// 先停止采集再提交，避免下一帧把同一个码再提交一次
			s.source.Close()
			s.submit(code)
			return
		}
	}
}
