package vfx

import (
	"time"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// DeviceHandle provides GPU device access from the host application.
//
// This interface is the surface-acquisition collaborator: the host
// (gogpu.App, backend/wgpu.Provider, a test mock) owns the drawable
// surface and hands vfx a provider for it. vfx RECEIVES the device, it
// does NOT create one.
//
// DeviceHandle is an alias for gpucontext.DeviceProvider, providing a
// vfx-specific name for the interface while maintaining full
// compatibility with the gpucontext ecosystem.
type DeviceHandle = gpucontext.DeviceProvider

// NullDeviceHandle is a DeviceHandle that provides nil implementations.
// Used for headless runs and tests where no GPU is available.
type NullDeviceHandle struct{}

// Device returns nil for the null device.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil for the null device.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null device.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// AdapterInfo returns empty adapter information for the null device.
func (NullDeviceHandle) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{}
}

// SurfaceFormat returns undefined format for the null device.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

// Ensure NullDeviceHandle implements DeviceHandle.
var _ DeviceHandle = NullDeviceHandle{}

// RenderContext is the shared per-frame state passed to every effect
// hook. The Pipeline writes it once per frame before effect dispatch;
// effects are read-only consumers. Mutating the shared fields (Width,
// Height, FPS, Delta) from an effect is a contract violation the
// Pipeline cannot prevent.
//
// The same RenderContext value lives for the lifetime of its Pipeline.
type RenderContext struct {
	// Provider is the surface handle shared by all effects.
	Provider DeviceHandle

	// Format is the surface texture format reported by the provider.
	Format gputypes.TextureFormat

	// Width and Height are the current rendering dimensions in pixels.
	// They start at the viewport size and are halved on degraded
	// performance.
	Width  int
	Height int

	// Aspect is Width / Height.
	Aspect float64

	// Elapsed is the time since the pipeline started.
	Elapsed time.Duration

	// Delta is the duration of the last frame.
	Delta time.Duration

	// FPS is the smoothed frame rate estimate for the last frame.
	FPS float64
}

// setSize updates the dimensions and recomputes the aspect ratio.
func (ctx *RenderContext) setSize(width, height int) {
	ctx.Width = width
	ctx.Height = height
	if height > 0 {
		ctx.Aspect = float64(width) / float64(height)
	} else {
		ctx.Aspect = 0
	}
}
