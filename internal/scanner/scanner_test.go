package scanner

import (
	"errors"
	"sync"
	"testing"
	"time"
)

// fakeSource 可编排的相机替身
type fakeSource struct {
	mu         sync.Mutex
	openErr    error
	frames     []Frame
	frameIndex int
	opened     int
	closed     int
}

func (f *fakeSource) Open() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.openErr != nil {
		return f.openErr
	}
	f.opened++
	return nil
}

func (f *fakeSource) ReadFrame() (Frame, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.frameIndex >= len(f.frames) {
		return nil, errors.New("no frame")
	}
	frame := f.frames[f.frameIndex]
	f.frameIndex++
	return frame, nil
}

func (f *fakeSource) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed++
	return nil
}

func (f *fakeSource) closeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

// decodeNonEmpty 把非空帧内容当作识别结果
func decodeNonEmpty(frame Frame) (string, bool) {
	if len(frame) == 0 {
		return "", false
	}
	return string(frame), true
}

func TestScanSubmitsExactlyOnce(t *testing.T) {
	// 前两帧是噪声，第三帧识别成功，之后还有一帧同样的码
	source := &fakeSource{
		frames: []Frame{{}, {}, Frame("42.1700000000.abc"), Frame("42.1700000000.abc")},
	}

	var mu sync.Mutex
	var submitted []string
	submit := func(code string) error {
		mu.Lock()
		defer mu.Unlock()
		submitted = append(submitted, code)
		return nil
	}

	s := New(source, decodeNonEmpty, submit, time.Millisecond)
	if err := s.Start(); err != nil {
		t.Fatalf("启动失败: %v", err)
	}

	waitStopped(t, s)

	mu.Lock()
	defer mu.Unlock()
	if len(submitted) != 1 {
		t.Fatalf("期望恰好提交1次, got %d", len(submitted))
	}
	if submitted[0] != "42.1700000000.abc" {
		t.Fatalf("提交内容错误: %q", submitted[0])
	}
	if source.closeCount() != 1 {
		t.Fatalf("相机应被释放1次, got %d", source.closeCount())
	}
}

func TestScanCameraUnavailable(t *testing.T) {
	source := &fakeSource{openErr: errors.New("camera busy")}

	submitCalled := false
	s := New(source, decodeNonEmpty, func(string) error {
		submitCalled = true
		return nil
	}, time.Millisecond)

	if err := s.Start(); err == nil {
		t.Fatal("相机不可用时 Start 应返回错误")
	}
	if s.Running() {
		t.Fatal("相机不可用时不应开始采集")
	}
	if submitCalled {
		t.Fatal("未识别任何码，不应提交")
	}
}

func TestScanNoiseFramesAreSwallowed(t *testing.T) {
	// 全部是噪声帧，扫描应持续运行直到Stop
	source := &fakeSource{frames: []Frame{{}, {}, {}}}

	s := New(source, decodeNonEmpty, func(string) error {
		t.Error("噪声帧不应触发提交")
		return nil
	}, time.Millisecond)

	if err := s.Start(); err != nil {
		t.Fatalf("启动失败: %v", err)
	}

	time.Sleep(20 * time.Millisecond)
	if !s.Running() {
		t.Fatal("没有识别到码之前应持续采集")
	}

	s.Stop()
	if s.Running() {
		t.Fatal("Stop后不应仍在采集")
	}
	if source.closeCount() != 1 {
		t.Fatalf("相机应被释放1次, got %d", source.closeCount())
	}
}

func TestScanRestartAfterSubmitFailure(t *testing.T) {
	source := &fakeSource{
		frames: []Frame{Frame("token-a"), Frame("token-b")},
	}

	var mu sync.Mutex
	var attempts []string
	submit := func(code string) error {
		mu.Lock()
		defer mu.Unlock()
		attempts = append(attempts, code)
		if len(attempts) == 1 {
			return errors.New("network error")
		}
		return nil
	}

	s := New(source, decodeNonEmpty, submit, time.Millisecond)
	if err := s.Start(); err != nil {
		t.Fatalf("启动失败: %v", err)
	}
	waitStopped(t, s)

	// 提交失败后由调用方决定重试：重新启动采集
	if err := s.Start(); err != nil {
		t.Fatalf("重新启动失败: %v", err)
	}
	waitStopped(t, s)

	mu.Lock()
	defer mu.Unlock()
	if len(attempts) != 2 {
		t.Fatalf("期望2次提交尝试, got %d", len(attempts))
	}
	if attempts[0] != "token-a" || attempts[1] != "token-b" {
		t.Fatalf("提交顺序错误: %v", attempts)
	}
	if source.closeCount() != 2 {
		t.Fatalf("两个会话各释放一次相机, got %d", source.closeCount())
	}
}

func TestScanStartWhileRunning(t *testing.T) {
	source := &fakeSource{}

	s := New(source, decodeNonEmpty, func(string) error { return nil }, time.Millisecond)
	if err := s.Start(); err != nil {
		t.Fatalf("启动失败: %v", err)
	}
	if err := s.Start(); !errors.Is(err, ErrAlreadyRunning) {
		t.Fatalf("重复启动期望 ErrAlreadyRunning, got %v", err)
	}
	s.Stop()
}

func TestScanStopIsIdempotent(t *testing.T) {
	source := &fakeSource{}

	s := New(source, decodeNonEmpty, func(string) error { return nil }, time.Millisecond)
	if err := s.Start(); err != nil {
		t.Fatalf("启动失败: %v", err)
	}

	s.Stop()
	s.Stop()

	if source.closeCount() != 1 {
		t.Fatalf("重复Stop不应重复释放相机, got %d", source.closeCount())
	}
}

// waitStopped 等待扫描会话自行结束
func waitStopped(t *testing.T, s *Scanner) {
	t.Helper()
	deadline := time.After(time.Second)
	for s.Running() {
		select {
		case <-deadline:
			t.Fatal("等待扫描结束超时")
		case <-time.After(time.Millisecond):
		}
	}
}
