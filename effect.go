package vfx

import "sort"

// Effect is a pluggable per-frame visual behavior with three lifecycle
// hooks. Any type implementing the hooks qualifies; there is no base
// class and no shared state.
//
//   - Init runs once when the pipeline starts, in priority order. An
//     error aborts the whole start sequence.
//   - Update runs once per frame, in priority order.
//   - Resize runs after every dimension change (host resize or
//     degradation halving), in priority order.
//
// All hooks receive the pipeline's shared RenderContext and must treat
// it as read-only.
type Effect interface {
	Init(ctx *RenderContext) error
	Update(ctx *RenderContext)
	Resize(ctx *RenderContext)
}

// Prioritized is optionally implemented by effects that want a
// non-default position in the dispatch order. Lower priorities run
// first; effects without a priority run as priority 0. Ties keep
// registration order.
type Prioritized interface {
	Priority() int
}

// BaseEffect provides no-op lifecycle hooks. Embed it to implement only
// the hooks an effect needs:
//
//	type fade struct {
//	    vfx.BaseEffect
//	}
//
//	func (f *fade) Update(ctx *vfx.RenderContext) { ... }
type BaseEffect struct{}

// Init is a no-op.
func (BaseEffect) Init(*RenderContext) error { return nil }

// Update is a no-op.
func (BaseEffect) Update(*RenderContext) {}

// Resize is a no-op.
func (BaseEffect) Resize(*RenderContext) {}

var _ Effect = BaseEffect{}

// effectPriority returns the effect's priority, or 0 when the effect
// does not implement Prioritized.
func effectPriority(e Effect) int {
	if p, ok := e.(Prioritized); ok {
		return p.Priority()
	}
	return 0
}

// sortEffects orders effects by ascending priority, preserving
// registration order for ties. Called exactly once, immediately before
// the first Init pass.
func sortEffects(effects []Effect) {
	sort.SliceStable(effects, func(i, j int) bool {
		return effectPriority(effects[i]) < effectPriority(effects[j])
	})
}
