// Package vfx provides a render-loop orchestrator for GPU-accelerated
// visual effects.
//
// # Overview
//
// vfx owns a drawing-surface context, runs a fixed-tick animation loop,
// dispatches per-frame updates to a priority-ordered stack of pluggable
// effect units, and adaptively halves the rendering resolution when
// frame performance drops below a configured floor.
//
// # Quick Start
//
//	import "github.com/gogpu/vfx"
//
//	// Acquire a device provider (backend/wgpu, gogpu.App, or
//	// vfx.NullDeviceHandle{} for headless use).
//	p, err := vfx.New(vfx.NullDeviceHandle{}, vfx.FixedViewport{W: 800, H: 600})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	p.AddEffect(myEffect)
//
//	if err := p.Start(); err != nil {
//	    log.Fatal(err)
//	}
//	defer p.Stop()
//
// # Architecture
//
// The library is organized into:
//   - Public API: Pipeline, Effect, RenderContext, Monitor, Clock
//   - Collaborators: DeviceHandle (surface), Viewport, FrameScheduler
//   - Backends: backend/wgpu (device acquisition via gogpu/wgpu)
//   - Integrations: integration/ebitenloop (ebiten as the frame host)
//
// Each frame the Pipeline fires the update event, ticks the Clock,
// feeds the delta to the performance Monitor, refreshes the shared
// RenderContext, and calls Update on every registered effect in
// priority order. When the smoothed fps stays below the floor after
// the sampling window has filled, the Pipeline halves the context
// dimensions and renotifies effects through their Resize hooks.
//
// # Concurrency
//
// A Pipeline is NOT safe for concurrent use. Frames are delivered
// sequentially by a single FrameScheduler goroutine; call Resize and
// Stop from that same goroutine or provide external synchronization.
package vfx
