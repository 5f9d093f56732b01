package wgpu

import (
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/vfx"
)

func TestNewProvider(t *testing.T) {
	p, err := New()
	if err != nil {
		t.Skipf("No GPU available: %v", err)
	}
	defer p.Close()

	if p.SurfaceFormat() != gputypes.TextureFormatBGRA8Unorm {
		t.Errorf("SurfaceFormat() = %v, want BGRA8Unorm default", p.SurfaceFormat())
	}
	if p.Device() == nil {
		t.Error("Device() = nil")
	}
	if info := p.Info(); info != nil {
		if got := p.AdapterInfo(); got.Name != info.Name {
			t.Errorf("AdapterInfo().Name = %q, want %q", got.Name, info.Name)
		}
	}

	// The provider must plug straight into a pipeline.
	pipe, err := vfx.New(p, vfx.FixedViewport{W: 64, H: 64})
	if err != nil {
		t.Fatalf("vfx.New() with wgpu provider failed: %v", err)
	}
	if pipe.Context().Format != p.SurfaceFormat() {
		t.Errorf("context format = %v, want %v", pipe.Context().Format, p.SurfaceFormat())
	}
}

func TestProviderSurfaceFormatOption(t *testing.T) {
	p, err := New(WithSurfaceFormat(gputypes.TextureFormatRGBA8Unorm))
	if err != nil {
		t.Skipf("No GPU available: %v", err)
	}
	defer p.Close()

	if p.SurfaceFormat() != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("SurfaceFormat() = %v, want RGBA8Unorm", p.SurfaceFormat())
	}
}

func TestProviderCloseIdempotent(t *testing.T) {
	p, err := New()
	if err != nil {
		t.Skipf("No GPU available: %v", err)
	}
	p.Close()
	p.Close()
}
