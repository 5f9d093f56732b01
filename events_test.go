package vfx

import "testing"

func TestEventListenersRunInOrder(t *testing.T) {
	p, _ := newTestPipeline(t, FixedViewport{W: 10, H: 10})

	var got []int
	p.On(EventUpdate, func(*RenderContext) { got = append(got, 1) })
	p.On(EventUpdate, func(*RenderContext) { got = append(got, 2) })
	p.On(EventResize, func(*RenderContext) { got = append(got, 99) })

	p.Trigger(EventUpdate)

	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("listener order = %v, want [1 2]", got)
	}
}

func TestEventListenerReceivesContext(t *testing.T) {
	p, _ := newTestPipeline(t, FixedViewport{W: 320, H: 240})

	var seen *RenderContext
	p.On(EventUpdate, func(ctx *RenderContext) { seen = ctx })
	p.Trigger(EventUpdate)

	if seen != p.Context() {
		t.Error("listener did not receive the pipeline's RenderContext")
	}
}

func TestOnNilListenerIgnored(t *testing.T) {
	p, _ := newTestPipeline(t, FixedViewport{W: 10, H: 10})
	p.On(EventUpdate, nil)
	// Must not panic.
	p.Trigger(EventUpdate)
}

func TestTriggerWithoutListeners(t *testing.T) {
	p, _ := newTestPipeline(t, FixedViewport{W: 10, H: 10})
	p.Trigger(EventLowFPS)
}

func TestEventKindString(t *testing.T) {
	cases := map[EventKind]string{
		EventUpdate:   "update",
		EventResize:   "resize",
		EventLowFPS:   "lowfps",
		EventKind(42): "unknown",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("EventKind(%d).String() = %q, want %q", int(kind), got, want)
		}
	}
}
