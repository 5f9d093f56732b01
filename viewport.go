package vfx

// Viewport reports the current drawable dimensions in pixels. The host
// injects a Viewport instead of vfx reading an implicit global window,
// so headless runs and tests can supply fixed dimensions.
type Viewport interface {
	Width() int
	Height() int
}

// FixedViewport is a Viewport with constant dimensions.
type FixedViewport struct {
	W, H int
}

// Width returns the fixed width.
func (v FixedViewport) Width() int { return v.W }

// Height returns the fixed height.
func (v FixedViewport) Height() int { return v.H }

var _ Viewport = FixedViewport{}
