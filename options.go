package vfx

// PipelineOption configures a Pipeline during creation.
// Use functional options to customize Pipeline behavior.
//
// Example:
//
//	// Default: ticker scheduler at ~60 Hz, monitor defaults
//	p, err := vfx.New(provider, viewport)
//
//	// Host-driven frames and a stricter floor
//	p, err := vfx.New(provider, viewport,
//	    vfx.WithScheduler(sched),
//	    vfx.WithMonitorOptions(vfx.WithMinFPS(30)),
//	)
type PipelineOption func(*Pipeline)

// WithScheduler sets the frame-scheduling collaborator. Use this to
// drive frames from the host's refresh callback instead of the default
// ticker. Passing nil makes New fail with ErrNilScheduler.
func WithScheduler(s FrameScheduler) PipelineOption {
	return func(p *Pipeline) {
		p.scheduler = s
	}
}

// WithMonitorOptions forwards options to the performance Monitor the
// pipeline constructs on Start. The pipeline always wires the monitor's
// low-fps callback to its own degradation handler; a WithOnLow passed
// here is overridden.
func WithMonitorOptions(opts ...MonitorOption) PipelineOption {
	return func(p *Pipeline) {
		p.monitorOpts = append(p.monitorOpts, opts...)
	}
}
