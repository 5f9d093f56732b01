package vfx

import (
	"sync"
	"time"
)

// CancelFunc stops a scheduled recurring callback. Safe to call more
// than once; calls after the first are no-ops.
type CancelFunc func()

// FrameScheduler is the frame-scheduling collaborator: a host-provided
// "call me back once per display refresh" primitive. Schedule arranges
// for frame to be invoked recurrently and returns a handle that cancels
// the recurrence.
//
// Implementations must deliver frames sequentially: a frame callback
// never overlaps another invocation of itself.
type FrameScheduler interface {
	Schedule(frame func()) (CancelFunc, error)
}

// DefaultFrameInterval is the tick interval used when none is given,
// approximating a 60 Hz display.
const DefaultFrameInterval = time.Second / 60

// TickerScheduler delivers frames at a fixed interval from a dedicated
// goroutine. It is the default scheduler for hosts without their own
// refresh callback (headless runs, offscreen rendering).
type TickerScheduler struct {
	// Interval between frames. Zero or negative means
	// DefaultFrameInterval.
	Interval time.Duration
}

// NewTickerScheduler creates a TickerScheduler with the given interval.
func NewTickerScheduler(interval time.Duration) *TickerScheduler {
	return &TickerScheduler{Interval: interval}
}

// Schedule starts a goroutine that invokes frame once per interval
// until the returned CancelFunc is called. Cancel does not wait for an
// in-flight frame to finish.
func (s *TickerScheduler) Schedule(frame func()) (CancelFunc, error) {
	interval := s.Interval
	if interval <= 0 {
		interval = DefaultFrameInterval
	}

	ticker := time.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				frame()
			}
		}
	}()

	var once sync.Once
	cancel := func() {
		once.Do(func() { close(done) })
	}
	return cancel, nil
}

// ManualScheduler hands frame delivery to the caller. Tests and host
// integrations that own their tick (ebiten's Update, a GLFW poll loop)
// register the frame via Schedule and drive it with Step.
type ManualScheduler struct {
	mu    sync.Mutex
	frame func()
}

// Schedule stores the frame callback. Frames run only when Step is
// called. The returned CancelFunc drops the callback.
func (s *ManualScheduler) Schedule(frame func()) (CancelFunc, error) {
	s.mu.Lock()
	s.frame = frame
	s.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			s.frame = nil
			s.mu.Unlock()
		})
	}
	return cancel, nil
}

// Step invokes the scheduled frame n times. A nil or cancelled frame
// makes Step a no-op.
func (s *ManualScheduler) Step(n int) {
	s.mu.Lock()
	frame := s.frame
	s.mu.Unlock()
	if frame == nil {
		return
	}
	for i := 0; i < n; i++ {
		frame()
	}
}

var (
	_ FrameScheduler = (*TickerScheduler)(nil)
	_ FrameScheduler = (*ManualScheduler)(nil)
)
