package vfx

import "errors"

// Common errors returned by Pipeline operations.
var (
	// ErrNilProvider is returned when a nil DeviceHandle is passed to New.
	// A pipeline cannot proceed without a drawable surface.
	ErrNilProvider = errors.New("vfx: nil device provider")

	// ErrNilViewport is returned when a nil Viewport is passed to New.
	ErrNilViewport = errors.New("vfx: nil viewport")

	// ErrInvalidDimensions is returned when the viewport reports a
	// non-positive width or height.
	ErrInvalidDimensions = errors.New("vfx: invalid viewport dimensions")

	// ErrAlreadyStarted is returned when Start is called on a pipeline
	// that has already left the idle state.
	ErrAlreadyStarted = errors.New("vfx: pipeline already started")

	// ErrStopped is returned when operations are attempted on a stopped
	// pipeline.
	ErrStopped = errors.New("vfx: pipeline is stopped")

	// ErrNilScheduler is returned when a nil FrameScheduler is injected.
	ErrNilScheduler = errors.New("vfx: nil frame scheduler")
)
