package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/vista/engine/input"
)

// one sample payload per kind, in ordinal order
func samples() []Event {
	return []Event{
		WindowClose{},
		WindowResize{Width: 1280, Height: 720},
		KeyPressed{Key: input.KeyW, Repeated: true, Mods: input.ModShift},
		KeyReleased{Key: input.KeyW},
		MouseMoved{X: 10.5, Y: 20.25},
		MouseScrolled{Offset: -1},
		MouseButtonPressed{Button: input.MouseButtonLeft, X: 3, Y: 4},
		MouseButtonReleased{Button: input.MouseButtonRight, X: 5, Y: 6},
	}
}

// listenRecorder registers a recording handler for the kind of proto.
func listenRecorder(d *Dispatcher, proto Event, got *[]Event) {
	record := func(ev Event) { *got = append(*got, ev) }
	switch proto.(type) {
	case WindowClose:
		Listen(d, func(e WindowClose) { record(e) })
	case WindowResize:
		Listen(d, func(e WindowResize) { record(e) })
	case KeyPressed:
		Listen(d, func(e KeyPressed) { record(e) })
	case KeyReleased:
		Listen(d, func(e KeyReleased) { record(e) })
	case MouseMoved:
		Listen(d, func(e MouseMoved) { record(e) })
	case MouseScrolled:
		Listen(d, func(e MouseScrolled) { record(e) })
	case MouseButtonPressed:
		Listen(d, func(e MouseButtonPressed) { record(e) })
	case MouseButtonReleased:
		Listen(d, func(e MouseButtonReleased) { record(e) })
	}
}

func TestKind_Ordinals(t *testing.T) {
	for i, ev := range samples() {
		assert.Equal(t, Kind(i), ev.Kind(), "%T", ev)
	}
	assert.Equal(t, 8, int(kindCount))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "WindowClose", KindWindowClose.String())
	assert.Equal(t, "MouseButtonReleased", KindMouseButtonReleased.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
}

func TestDispatch_InvokesOnlyMatchingHandler(t *testing.T) {
	all := samples()
	for _, proto := range all {
		t.Run(proto.Kind().String(), func(t *testing.T) {
			d := NewDispatcher()
			var got []Event
			listenRecorder(d, proto, &got)

			for _, ev := range all {
				d.Dispatch(ev)
			}

			require.Len(t, got, 1)
			assert.Equal(t, proto, got[0])
		})
	}
}

func TestListen_ReplacesPreviousHandler(t *testing.T) {
	d := NewDispatcher()
	first, second := 0, 0

	Listen(d, func(KeyPressed) { first++ })
	Listen(d, func(KeyPressed) { second++ })

	d.Dispatch(KeyPressed{Key: input.KeyA})
	d.Dispatch(KeyPressed{Key: input.KeyB})

	assert.Equal(t, 0, first)
	assert.Equal(t, 2, second)
}

func TestDispatch_NoHandlerIsNoop(t *testing.T) {
	d := NewDispatcher()
	assert.NotPanics(t, func() {
		for _, ev := range samples() {
			d.Dispatch(ev)
		}
		d.Dispatch(nil)
	})

	var zero Dispatcher
	assert.NotPanics(t, func() { zero.Dispatch(WindowClose{}) })
}

type bogus struct{}

func (bogus) Kind() Kind { return kindCount + 3 }

func TestDispatch_UnknownKindIgnored(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	Listen(d, func(WindowClose) { calls++ })

	assert.NotPanics(t, func() { d.Dispatch(bogus{}) })
	assert.Equal(t, 0, calls)
	assert.False(t, d.Has(bogus{}.Kind()))
}

func TestListen_UnknownKindIgnored(t *testing.T) {
	d := NewDispatcher()

	assert.NotPanics(t, func() { Listen(d, func(bogus) {}) })
	assert.NotPanics(t, func() { Listen[bogus](d, nil) })
	for k := Kind(0); k < kindCount; k++ {
		assert.False(t, d.Has(k), k.String())
	}
}

func TestPointerPayloadsAreNotRouted(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	Listen(d, func(KeyPressed) { calls++ })

	assert.NotPanics(t, func() { Listen(d, func(*KeyPressed) { calls += 10 }) })
	assert.NotPanics(t, func() { Listen[*WindowResize](d, nil) })
	assert.False(t, d.Has(KindWindowResize))

	assert.NotPanics(t, func() { d.Dispatch((*KeyPressed)(nil)) })
	d.Dispatch(&KeyPressed{Key: input.KeyW})
	assert.Equal(t, 0, calls)

	// the value handler survived the pointer registration
	d.Dispatch(KeyPressed{Key: input.KeyW})
	assert.Equal(t, 1, calls)
}

func TestDispatch_PayloadIsACopy(t *testing.T) {
	d := NewDispatcher()
	Listen(d, func(e WindowResize) { e.Width = 1 })

	ev := WindowResize{Width: 800, Height: 600}
	d.Dispatch(ev)

	assert.Equal(t, 800, ev.Width)
}

func TestListen_NilClearsSlot(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	Listen(d, func(MouseMoved) { calls++ })
	require.True(t, d.Has(KindMouseMoved))

	Listen[MouseMoved](d, nil)

	assert.False(t, d.Has(KindMouseMoved))
	d.Dispatch(MouseMoved{})
	assert.Equal(t, 0, calls)
}

func TestDispatcher_RemoveAndReset(t *testing.T) {
	d := NewDispatcher()
	Listen(d, func(WindowClose) {})
	Listen(d, func(WindowResize) {})

	d.Remove(KindWindowClose)
	assert.False(t, d.Has(KindWindowClose))
	assert.True(t, d.Has(KindWindowResize))

	d.Reset()
	for k := Kind(0); k < kindCount; k++ {
		assert.False(t, d.Has(k), k.String())
	}
}

func TestDispatch_DoesNotAllocate(t *testing.T) {
	d := NewDispatcher()
	var sum float64
	Listen(d, func(e MouseMoved) { sum += e.X })
	var ev Event = MouseMoved{X: 1, Y: 2}

	allocs := testing.AllocsPerRun(100, func() { d.Dispatch(ev) })

	assert.Zero(t, allocs)
	assert.Positive(t, sum)
}
