package vfx

import (
	"fmt"
)

// State is the lifecycle state of a Pipeline.
type State int

const (
	// StateIdle is the state before Start.
	StateIdle State = iota

	// StateInitializing covers the effect Init pass during Start.
	StateInitializing

	// StateRunning means frames are being scheduled.
	StateRunning

	// StateStopped is terminal: the schedule is cancelled and the
	// pipeline cannot be restarted.
	StateStopped
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateInitializing:
		return "initializing"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Pipeline drives the render loop: it owns the effect stack, the Clock,
// the performance Monitor and the shared RenderContext, and ties them
// together once per scheduled frame.
//
// Pipeline is NOT safe for concurrent use. All methods are expected to
// run on the frame-scheduling goroutine; see the package documentation.
type Pipeline struct {
	ctx      RenderContext
	viewport Viewport

	effects   []Effect
	listeners map[EventKind][]EventListener

	clock       *Clock
	monitor     *Monitor
	monitorOpts []MonitorOption
	scheduler   FrameScheduler

	state  State
	cancel CancelFunc
}

// New creates a Pipeline rendering to the given surface provider at the
// viewport's current dimensions.
//
// A nil provider is fatal (ErrNilProvider): the pipeline cannot proceed
// without a drawable surface. Degenerate viewport dimensions fail with
// ErrInvalidDimensions.
func New(provider DeviceHandle, viewport Viewport, opts ...PipelineOption) (*Pipeline, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	if viewport == nil {
		return nil, ErrNilViewport
	}
	width, height := viewport.Width(), viewport.Height()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}

	p := &Pipeline{
		viewport:  viewport,
		scheduler: NewTickerScheduler(0),
	}
	p.ctx.Provider = provider
	p.ctx.Format = provider.SurfaceFormat()
	p.ctx.setSize(width, height)

	for _, opt := range opts {
		opt(p)
	}
	if p.scheduler == nil {
		return nil, ErrNilScheduler
	}
	return p, nil
}

// AddEffect appends an effect to the stack. There is no removal and no
// duplicate detection; the effect's hooks are not validated until they
// are invoked. Effects added after Start run on subsequent frames but
// are not re-sorted and their Init hook is never called.
func (p *Pipeline) AddEffect(e Effect) {
	p.effects = append(p.effects, e)
}

// Context returns the pipeline's shared RenderContext. Hosts may read
// it between frames; the shared fields belong to the pipeline.
func (p *Pipeline) Context() *RenderContext {
	return &p.ctx
}

// State returns the current lifecycle state.
func (p *Pipeline) State() State {
	return p.state
}

// Monitor returns the performance monitor, or nil before Start.
func (p *Pipeline) Monitor() *Monitor {
	return p.monitor
}

// Start sorts the effect stack by priority, runs every effect's Init
// hook in order, and hands the frame body to the scheduler.
//
// An Init error aborts the start sequence and leaves the pipeline
// stopped; effects initialized before the failure are not rolled back.
// Start cannot be called twice.
func (p *Pipeline) Start() error {
	switch p.state {
	case StateIdle:
	case StateStopped:
		return ErrStopped
	default:
		return ErrAlreadyStarted
	}
	p.state = StateInitializing

	// Sorted exactly once; later AddEffect calls append unsorted.
	sortEffects(p.effects)

	for _, e := range p.effects {
		if err := e.Init(&p.ctx); err != nil {
			p.state = StateStopped
			return fmt.Errorf("vfx: effect init failed: %w", err)
		}
	}

	p.clock = NewClock()
	p.monitor = NewMonitor(append(p.monitorOpts, WithOnLow(p.degrade))...)

	Logger().Info("vfx: pipeline started",
		"effects", len(p.effects),
		"width", p.ctx.Width,
		"height", p.ctx.Height,
		"format", p.ctx.Format,
	)

	// The running state must be visible before the scheduler's first
	// frame callback, which may fire on another goroutine.
	p.state = StateRunning
	cancel, err := p.scheduler.Schedule(p.frame)
	if err != nil {
		p.state = StateStopped
		return fmt.Errorf("vfx: frame scheduling failed: %w", err)
	}
	p.cancel = cancel
	return nil
}

// frame is the per-frame body handed to the scheduler. Within one frame
// the update event, the clock tick, the performance record and the
// effect updates run strictly in that order, synchronously.
func (p *Pipeline) frame() {
	if p.state != StateRunning {
		return
	}

	p.Trigger(EventUpdate)

	dt := p.clock.Tick()
	fps := p.monitor.Record(dt)

	p.ctx.Delta = dt
	p.ctx.Elapsed += dt
	p.ctx.FPS = fps

	for _, e := range p.effects {
		e.Update(&p.ctx)
	}
}

// Resize re-reads the viewport, updates the context dimensions and
// aspect ratio, and propagates the change to every effect's Resize hook
// in order. The monitor history is discarded: the stable frame cost at
// the new resolution is unknown.
//
// Hosts call Resize as their resize-notification handler. It runs
// between frames on the single scheduling goroutine.
func (p *Pipeline) Resize() {
	if p.state == StateStopped {
		return
	}
	width, height := p.viewport.Width(), p.viewport.Height()
	if width <= 0 || height <= 0 {
		Logger().Warn("vfx: ignoring degenerate resize", "width", width, "height", height)
		return
	}
	p.ctx.setSize(width, height)
	p.propagateResize()
	p.Trigger(EventResize)
	Logger().Debug("vfx: resized", "width", width, "height", height)
}

// degrade is the monitor's low-fps callback: it halves the rendering
// dimensions and renotifies effects through their Resize hooks, so
// size-dependent resources are rebuilt at the reduced resolution. The
// monitor resets itself right after this callback returns.
func (p *Pipeline) degrade(fps float64) {
	width := p.ctx.Width / 2
	height := p.ctx.Height / 2
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	Logger().Warn("vfx: halving resolution",
		"fps", fps,
		"width", width,
		"height", height,
	)
	p.ctx.setSize(width, height)
	p.propagateResize()
	p.Trigger(EventLowFPS)
}

// propagateResize runs every effect's Resize hook in priority order and
// wipes the monitor's sampling history.
func (p *Pipeline) propagateResize() {
	for _, e := range p.effects {
		e.Resize(&p.ctx)
	}
	if p.monitor != nil {
		p.monitor.Reset()
	}
}

// Stop cancels the frame schedule and moves the pipeline to its
// terminal state. Stop is idempotent; a stopped pipeline cannot be
// restarted.
//
// With a goroutine-backed scheduler such as TickerScheduler, call Stop
// from the frame goroutine (an effect Update or event listener) or
// provide external synchronization.
func (p *Pipeline) Stop() {
	if p.state != StateRunning {
		p.state = StateStopped
		return
	}
	p.cancel()
	p.cancel = nil
	p.state = StateStopped
	Logger().Info("vfx: pipeline stopped", "elapsed", p.ctx.Elapsed)
}
