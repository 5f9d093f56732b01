package vfx

import "time"

// Default Monitor configuration.
const (
	// DefaultMinFPS is the smoothed-fps floor below which the low
	// performance signal fires.
	DefaultMinFPS = 24.0

	// DefaultWindow is the number of recent samples the smoothed
	// average covers.
	DefaultWindow = 48
)

// maxInstantFPS caps the instantaneous sample for degenerate (zero or
// negative) frame deltas. A finite cap keeps the running average free
// of Inf and NaN; the average self-corrects over subsequent samples.
const maxInstantFPS = 1e6

// MonitorOption configures a Monitor during creation.
type MonitorOption func(*Monitor)

// WithMinFPS sets the smoothed-fps floor. Values <= 0 keep the default.
func WithMinFPS(fps float64) MonitorOption {
	return func(m *Monitor) {
		if fps > 0 {
			m.minFPS = fps
		}
	}
}

// WithWindow sets the sample window size. Values <= 0 keep the default.
func WithWindow(n int) MonitorOption {
	return func(m *Monitor) {
		if n > 0 {
			m.size = n
		}
	}
}

// WithOnLow sets the callback invoked when the smoothed fps drops below
// the floor after the window has filled. The callback receives the
// smoothed fps at the moment of the drop.
func WithOnLow(fn func(fps float64)) MonitorOption {
	return func(m *Monitor) {
		m.onLow = fn
	}
}

// Monitor smooths noisy per-frame rates into a stable estimate and
// detects sustained underperformance.
//
// The estimate is an incrementally maintained moving average over a
// bounded window of instantaneous fps samples: O(1) per tick instead of
// re-summing the window. Once the window has filled at least once and
// the smoothed fps falls below the floor, the low-performance callback
// fires exactly once and the monitor resets. The signal is
// edge-triggered: it cannot fire again until the window refills and
// drops below the floor again, so stale samples from a frame-rate
// collapse do not re-trigger it.
//
// Monitor is not safe for concurrent use; Record is expected to be
// called from the single frame-scheduling goroutine.
type Monitor struct {
	minFPS float64
	size   int
	onLow  func(fps float64)

	window   []float64
	fps      float64
	complete bool
}

// NewMonitor creates a Monitor with the default floor (24 fps) and
// window (48 samples), customized by the given options.
func NewMonitor(opts ...MonitorOption) *Monitor {
	m := &Monitor{
		minFPS: DefaultMinFPS,
		size:   DefaultWindow,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.window = make([]float64, 0, m.size+1)
	return m
}

// Record folds one frame delta into the smoothed estimate and returns
// the updated smoothed fps.
//
// A delta <= 0 saturates to a large finite instantaneous sample rather
// than +Inf; no error is raised and the average stays finite.
//
// When the recorded sample pushes the smoothed fps below the floor on a
// full window, the low callback fires, the monitor resets, and Record
// returns 0. The triggering sample is discarded with the wiped window.
func (m *Monitor) Record(dt time.Duration) float64 {
	ms := float64(dt) / float64(time.Millisecond)
	sample := maxInstantFPS
	if ms > 0 {
		sample = 1000 / ms
		if sample > maxInstantFPS {
			sample = maxInstantFPS
		}
	}

	m.window = append(m.window, sample)
	if len(m.window) > m.size {
		removed := m.window[0]
		copy(m.window, m.window[1:])
		m.window = m.window[:m.size]
		m.fps -= (removed - m.fps) / float64(len(m.window))
		m.complete = true
	}

	if m.complete && m.fps < m.minFPS {
		low := m.fps
		if m.onLow != nil {
			m.onLow(low)
		}
		Logger().Warn("vfx: performance below floor", "fps", low, "min", m.minFPS)
		m.Reset()
		return m.fps
	}

	m.fps += (sample - m.fps) / float64(len(m.window))
	return m.fps
}

// FPS returns the current smoothed fps estimate.
func (m *Monitor) FPS() float64 { return m.fps }

// Complete reports whether the sample window has filled at least once
// since construction or the last reset.
func (m *Monitor) Complete() bool { return m.complete }

// Len returns the number of samples currently in the window.
func (m *Monitor) Len() int { return len(m.window) }

// Reset discards all sampling history: the window empties, the smoothed
// fps drops to 0 and the window is no longer considered complete. The
// Pipeline resets the monitor after every resize, since a new
// resolution invalidates the stable frame cost the history describes.
func (m *Monitor) Reset() {
	m.window = m.window[:0]
	m.fps = 0
	m.complete = false
}
