package wgpu

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/core"

	"github.com/gogpu/vfx"
)

// ErrNoGPU is returned when no compatible GPU adapter is available.
var ErrNoGPU = errors.New("wgpu: no compatible GPU adapter available")

// ProviderOption configures a Provider during creation.
type ProviderOption func(*Provider)

// WithSurfaceFormat sets the texture format the provider reports for
// its surface. Defaults to BGRA8Unorm, the most widely supported
// swapchain format.
func WithSurfaceFormat(format gputypes.TextureFormat) ProviderOption {
	return func(p *Provider) {
		p.format = format
	}
}

// Provider implements vfx.DeviceHandle on top of gogpu/wgpu.
//
// Provider is safe for concurrent use: the accessors only read state
// written during construction, and Close is guarded by a mutex.
type Provider struct {
	mu sync.Mutex

	instance *core.Instance
	adapter  core.AdapterID
	device   core.DeviceID
	queue    core.QueueID

	format      gputypes.TextureFormat
	adapterInfo gputypes.AdapterInfo
	gpuInfo     *GPUInfo

	closed bool
}

// New acquires a GPU instance, adapter, device and queue.
//
// Returns ErrNoGPU (wrapped) when no adapter is available. On partial
// failure all acquired resources are released before returning.
func New(opts ...ProviderOption) (*Provider, error) {
	p := &Provider{
		format: gputypes.TextureFormatBGRA8Unorm,
	}
	for _, opt := range opts {
		opt(p)
	}

	desc := &gputypes.InstanceDescriptor{
		Backends: gputypes.BackendsPrimary,
		Flags:    0,
	}
	p.instance = core.NewInstance(desc)

	adapterID, err := p.instance.RequestAdapter(&gputypes.RequestAdapterOptions{
		PowerPreference: gputypes.PowerPreferenceHighPerformance,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoGPU, err)
	}
	p.adapter = adapterID

	if info, err := getAdapterInfo(adapterID); err == nil {
		p.adapterInfo = info
		p.gpuInfo = newGPUInfo(info)
		logGPUInfo(p.gpuInfo)
	}

	deviceID, err := createDevice(adapterID, "vfx-wgpu-device")
	if err != nil {
		_ = releaseAdapter(adapterID)
		return nil, fmt.Errorf("wgpu: device creation failed: %w", err)
	}
	p.device = deviceID

	queueID, err := getDeviceQueue(deviceID)
	if err != nil {
		_ = releaseDevice(deviceID)
		_ = releaseAdapter(adapterID)
		return nil, fmt.Errorf("wgpu: queue retrieval failed: %w", err)
	}
	p.queue = queueID

	vfx.Logger().Info("wgpu: provider initialized", "format", p.format)
	return p, nil
}

// Device returns the logical device handle. The Provider owns the
// device lifecycle: the handle's Destroy is a no-op, release resources
// through Close.
func (p *Provider) Device() gpucontext.Device {
	return deviceHandle{id: p.device}
}

// Queue returns the command queue handle.
func (p *Provider) Queue() gpucontext.Queue {
	return p.queue
}

// Adapter returns the GPU adapter handle.
func (p *Provider) Adapter() gpucontext.Adapter {
	return p.adapter
}

// SurfaceFormat returns the configured surface texture format.
func (p *Provider) SurfaceFormat() gputypes.TextureFormat {
	return p.format
}

// AdapterInfo returns information about the GPU adapter. The zero
// value is returned when adapter introspection failed.
func (p *Provider) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{
		Name: p.adapterInfo.Name,
		Type: adapterType(p.adapterInfo.DeviceType),
	}
}

// adapterType maps a gputypes device type onto the gpucontext adapter
// type enumeration.
func adapterType(d gputypes.DeviceType) gpucontext.AdapterType {
	switch d {
	case gputypes.DeviceTypeDiscreteGPU:
		return gpucontext.AdapterTypeDiscrete
	case gputypes.DeviceTypeIntegratedGPU:
		return gpucontext.AdapterTypeIntegrated
	case gputypes.DeviceTypeCPU:
		return gpucontext.AdapterTypeSoftware
	default:
		return gpucontext.AdapterTypeUnknown
	}
}

// Info returns information about the selected GPU, or nil when adapter
// introspection failed.
func (p *Provider) Info() *GPUInfo {
	return p.gpuInfo
}

// Close releases the device and adapter in reverse order of
// acquisition. Close is idempotent; the provider must not be used
// after Close.
func (p *Provider) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}

	// Queue is released when the device is dropped.
	if !p.device.IsZero() {
		if err := releaseDevice(p.device); err != nil {
			vfx.Logger().Warn("wgpu: error releasing device", "err", err)
		}
		p.device = core.DeviceID{}
	}
	if !p.adapter.IsZero() {
		if err := releaseAdapter(p.adapter); err != nil {
			vfx.Logger().Warn("wgpu: error releasing adapter", "err", err)
		}
		p.adapter = core.AdapterID{}
	}

	// Instance needs no explicit cleanup in the current implementation.
	p.instance = nil
	p.queue = core.QueueID{}
	p.gpuInfo = nil
	p.closed = true
}

// Ensure Provider implements the vfx surface collaborator.
var _ vfx.DeviceHandle = (*Provider)(nil)

// deviceHandle adapts a core.DeviceID to gpucontext.Device. The
// Provider owns the underlying device; both methods are no-ops.
type deviceHandle struct {
	id core.DeviceID
}

func (deviceHandle) Poll(wait bool) {}
func (deviceHandle) Destroy()       {}
