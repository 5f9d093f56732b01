// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ebitenloop

import (
	"errors"
	"testing"

	"github.com/gogpu/vfx"
)

// countingEffect counts lifecycle invocations.
type countingEffect struct {
	vfx.BaseEffect
	inits   int
	updates int
	resizes int
}

func (e *countingEffect) Init(*vfx.RenderContext) error {
	e.inits++
	return nil
}

func (e *countingEffect) Update(*vfx.RenderContext) { e.updates++ }
func (e *countingEffect) Resize(*vfx.RenderContext) { e.resizes++ }

func TestNewGameValidation(t *testing.T) {
	if _, err := NewGame(vfx.NullDeviceHandle{}, 0, 100); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("NewGame(0 width) = %v, want ErrInvalidDimensions", err)
	}
	if _, err := NewGame(nil, 100, 100); !errors.Is(err, vfx.ErrNilProvider) {
		t.Errorf("NewGame(nil provider) = %v, want vfx.ErrNilProvider", err)
	}
}

func TestGameUpdateStartsAndSteps(t *testing.T) {
	g, err := NewGame(vfx.NullDeviceHandle{}, 320, 240)
	if err != nil {
		t.Fatalf("NewGame() failed: %v", err)
	}

	e := &countingEffect{}
	g.Pipeline().AddEffect(e)

	if err := g.Update(); err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	if g.Pipeline().State() != vfx.StateRunning {
		t.Errorf("State() = %v after first Update, want running", g.Pipeline().State())
	}
	if e.inits != 1 || e.updates != 1 {
		t.Errorf("inits/updates = %d/%d after first tick, want 1/1", e.inits, e.updates)
	}

	if err := g.Update(); err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	if e.inits != 1 || e.updates != 2 {
		t.Errorf("inits/updates = %d/%d after second tick, want 1/2", e.inits, e.updates)
	}
}

func TestGameUpdateSurfacesInitError(t *testing.T) {
	g, err := NewGame(vfx.NullDeviceHandle{}, 100, 100)
	if err != nil {
		t.Fatalf("NewGame() failed: %v", err)
	}

	initErr := errors.New("shader compile failed")
	g.Pipeline().AddEffect(&failInitEffect{err: initErr})

	if err := g.Update(); !errors.Is(err, initErr) {
		t.Errorf("Update() = %v, want wrapped init error", err)
	}
}

type failInitEffect struct {
	vfx.BaseEffect
	err error
}

func (e *failInitEffect) Init(*vfx.RenderContext) error { return e.err }

func TestGameLayoutReportsPipelineSize(t *testing.T) {
	g, err := NewGame(vfx.NullDeviceHandle{}, 320, 240)
	if err != nil {
		t.Fatalf("NewGame() failed: %v", err)
	}

	w, h := g.Layout(320, 240)
	if w != 320 || h != 240 {
		t.Errorf("Layout() = %dx%d, want 320x240", w, h)
	}
}

func TestGameLayoutResizesRunningPipeline(t *testing.T) {
	g, err := NewGame(vfx.NullDeviceHandle{}, 320, 240)
	if err != nil {
		t.Fatalf("NewGame() failed: %v", err)
	}

	e := &countingEffect{}
	g.Pipeline().AddEffect(e)

	if err := g.Update(); err != nil {
		t.Fatalf("Update() failed: %v", err)
	}

	w, h := g.Layout(640, 480)
	if w != 640 || h != 480 {
		t.Errorf("Layout() = %dx%d after window resize, want 640x480", w, h)
	}
	if e.resizes != 1 {
		t.Errorf("resizes = %d, want 1", e.resizes)
	}

	// Degenerate dimensions (minimized window) are ignored.
	w, h = g.Layout(0, 0)
	if w != 640 || h != 480 {
		t.Errorf("Layout(0, 0) = %dx%d, want unchanged 640x480", w, h)
	}
	if e.resizes != 1 {
		t.Errorf("resizes = %d after degenerate layout, want 1", e.resizes)
	}
}

func TestGameLayoutBeforeStartDefersResize(t *testing.T) {
	g, err := NewGame(vfx.NullDeviceHandle{}, 320, 240)
	if err != nil {
		t.Fatalf("NewGame() failed: %v", err)
	}

	// Ebiten calls Layout before the first Update.
	g.Layout(800, 600)
	if err := g.Update(); err != nil {
		t.Fatalf("Update() failed: %v", err)
	}

	ctx := g.Pipeline().Context()
	if ctx.Width != 800 || ctx.Height != 600 {
		t.Errorf("context = %dx%d after deferred resize, want 800x600", ctx.Width, ctx.Height)
	}
}

func TestGameStop(t *testing.T) {
	g, err := NewGame(vfx.NullDeviceHandle{}, 100, 100)
	if err != nil {
		t.Fatalf("NewGame() failed: %v", err)
	}
	if err := g.Update(); err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	g.Stop()
	if g.Pipeline().State() != vfx.StateStopped {
		t.Errorf("State() = %v after Stop, want stopped", g.Pipeline().State())
	}
}
