package vfx

// EventKind identifies a pipeline event. Listener dispatch is keyed by
// kind rather than by name, so a typo cannot silently register a
// listener nothing will ever trigger.
type EventKind int

const (
	// EventUpdate fires once per frame, before the clock tick and the
	// effect updates.
	EventUpdate EventKind = iota

	// EventResize fires after a resize has propagated to all effects.
	EventResize

	// EventLowFPS fires after a degraded-performance resolution
	// halving has propagated to all effects.
	EventLowFPS
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventUpdate:
		return "update"
	case EventResize:
		return "resize"
	case EventLowFPS:
		return "lowfps"
	default:
		return "unknown"
	}
}

// EventListener receives the pipeline's shared RenderContext when an
// event fires. Listeners run synchronously on the frame goroutine and
// must not block.
type EventListener func(ctx *RenderContext)

// On registers a listener for the given event kind. Listeners for the
// same kind run in registration order. There is no removal.
func (p *Pipeline) On(kind EventKind, fn EventListener) {
	if fn == nil {
		return
	}
	if p.listeners == nil {
		p.listeners = make(map[EventKind][]EventListener)
	}
	p.listeners[kind] = append(p.listeners[kind], fn)
}

// Trigger invokes all listeners registered for the kind, synchronously,
// passing the current RenderContext. The pipeline triggers EventUpdate,
// EventResize and EventLowFPS itself; hosts may trigger kinds of their
// own from the frame goroutine.
func (p *Pipeline) Trigger(kind EventKind) {
	for _, fn := range p.listeners[kind] {
		fn(&p.ctx)
	}
}
