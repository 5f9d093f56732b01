// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ebitenloop

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/vfx"
)

// Common errors returned by Game operations.
var (
	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = errors.New("ebitenloop: invalid dimensions")
)

// DrawFunc presents a frame. It receives ebiten's screen image and the
// pipeline's RenderContext for the frame just updated.
type DrawFunc func(screen *ebiten.Image, ctx *vfx.RenderContext)

// GameOption configures a Game during creation.
type GameOption func(*Game)

// WithDraw sets the presentation callback invoked from ebiten's Draw.
// Without it the game updates effects but draws nothing.
func WithDraw(fn DrawFunc) GameOption {
	return func(g *Game) {
		g.draw = fn
	}
}

// WithPipelineOptions forwards options to the underlying vfx.Pipeline.
// A vfx.WithScheduler passed here is overridden: ebiten drives the
// frames.
func WithPipelineOptions(opts ...vfx.PipelineOption) GameOption {
	return func(g *Game) {
		g.pipelineOpts = append(g.pipelineOpts, opts...)
	}
}

// hostViewport tracks the dimensions ebiten reports through Layout.
type hostViewport struct {
	w, h int
}

func (v *hostViewport) Width() int  { return v.w }
func (v *hostViewport) Height() int { return v.h }

// Game adapts a vfx.Pipeline to ebiten's Game interface. Create it
// with NewGame and hand it to ebiten.RunGame.
//
// Game is driven entirely by ebiten's single game goroutine, matching
// the pipeline's single-scheduler concurrency model.
type Game struct {
	pipeline     *vfx.Pipeline
	sched        *vfx.ManualScheduler
	viewport     *hostViewport
	draw         DrawFunc
	pipelineOpts []vfx.PipelineOption
	started      bool

	// pendingResize records a Layout change seen before the pipeline
	// started; it is applied right after Start.
	pendingResize bool
}

// NewGame creates a Game running a pipeline on the given surface
// provider at the initial dimensions.
func NewGame(provider vfx.DeviceHandle, width, height int, opts ...GameOption) (*Game, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}

	g := &Game{
		sched:    &vfx.ManualScheduler{},
		viewport: &hostViewport{w: width, h: height},
	}
	for _, opt := range opts {
		opt(g)
	}

	pipelineOpts := append(g.pipelineOpts, vfx.WithScheduler(g.sched))
	p, err := vfx.New(provider, g.viewport, pipelineOpts...)
	if err != nil {
		return nil, err
	}
	g.pipeline = p
	return g, nil
}

// Pipeline returns the underlying pipeline. Register effects and event
// listeners on it before the game loop starts.
func (g *Game) Pipeline() *vfx.Pipeline {
	return g.pipeline
}

// Update starts the pipeline on the first tick and steps one frame per
// ebiten tick. An effect Init failure surfaces here and ends the game
// loop.
func (g *Game) Update() error {
	if !g.started {
		if err := g.pipeline.Start(); err != nil {
			return err
		}
		g.started = true
		if g.pendingResize {
			g.pendingResize = false
			g.pipeline.Resize()
		}
	}
	g.sched.Step(1)
	return nil
}

// Draw invokes the presentation callback, if any.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.draw != nil {
		g.draw(screen, g.pipeline.Context())
	}
}

// Layout reports the pipeline's current rendering dimensions and feeds
// window size changes back into the pipeline as resizes. Degenerate
// outside dimensions (a minimized window) are ignored.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 &&
		(outsideWidth != g.viewport.w || outsideHeight != g.viewport.h) {
		g.viewport.w = outsideWidth
		g.viewport.h = outsideHeight
		if g.started {
			g.pipeline.Resize()
		} else {
			g.pendingResize = true
		}
	}

	ctx := g.pipeline.Context()
	return ctx.Width, ctx.Height
}

// Stop stops the underlying pipeline. Call it when the game loop ends.
func (g *Game) Stop() {
	g.pipeline.Stop()
}

var _ ebiten.Game = (*Game)(nil)
