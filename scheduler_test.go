package vfx

import (
	"testing"
	"time"
)

func TestManualSchedulerStep(t *testing.T) {
	s := &ManualScheduler{}

	// Step before Schedule is a no-op.
	s.Step(3)

	var frames int
	cancel, err := s.Schedule(func() { frames++ })
	if err != nil {
		t.Fatalf("Schedule() failed: %v", err)
	}

	s.Step(2)
	if frames != 2 {
		t.Errorf("frames = %d, want 2", frames)
	}

	cancel()
	s.Step(2)
	if frames != 2 {
		t.Errorf("frames = %d after cancel, want 2", frames)
	}

	// Cancel is safe to call again.
	cancel()
}

func TestTickerSchedulerDelivers(t *testing.T) {
	s := NewTickerScheduler(time.Millisecond)

	frames := make(chan struct{}, 16)
	cancel, err := s.Schedule(func() {
		select {
		case frames <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatalf("Schedule() failed: %v", err)
	}
	defer cancel()

	for i := 0; i < 2; i++ {
		select {
		case <-frames:
		case <-time.After(time.Second):
			t.Fatal("no frame delivered within 1s")
		}
	}
}

func TestTickerSchedulerCancelStops(t *testing.T) {
	s := NewTickerScheduler(time.Millisecond)

	frames := make(chan struct{}, 64)
	cancel, err := s.Schedule(func() {
		select {
		case frames <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatalf("Schedule() failed: %v", err)
	}

	select {
	case <-frames:
	case <-time.After(time.Second):
		t.Fatal("no frame delivered within 1s")
	}

	cancel()
	cancel() // idempotent

	// Give an in-flight tick time to drain, then verify silence.
	time.Sleep(10 * time.Millisecond)
	for len(frames) > 0 {
		<-frames
	}
	time.Sleep(20 * time.Millisecond)
	if n := len(frames); n != 0 {
		t.Errorf("%d frames delivered after cancel", n)
	}
}

func TestTickerSchedulerDefaultInterval(t *testing.T) {
	s := NewTickerScheduler(0)
	if s.Interval != 0 {
		t.Fatalf("Interval = %v, want 0 (resolved at Schedule time)", s.Interval)
	}

	frames := make(chan struct{}, 1)
	cancel, err := s.Schedule(func() {
		select {
		case frames <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatalf("Schedule() failed: %v", err)
	}
	defer cancel()

	// ~60 Hz: a frame should land well within a second.
	select {
	case <-frames:
	case <-time.After(time.Second):
		t.Fatal("no frame delivered at the default interval")
	}
}
