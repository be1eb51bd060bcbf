package event

// Dispatcher routes each event kind to at most one handler. The table has
// one slot per Kind; registering a handler replaces whatever was there.
// Callers that need several reactions to one kind compose them in a single
// handler.
//
// A Dispatcher is not safe for concurrent use. The zero value is ready.
type Dispatcher struct {
	slots [kindCount]func(Event)
}

func NewDispatcher() *Dispatcher { return &Dispatcher{} }

// Listen installs fn as the handler for E's kind, replacing any previous
// registration. A nil fn clears the slot. Types with an unknown kind and
// pointers to payload types are not routable and are ignored.
func Listen[E Event](d *Dispatcher, fn func(E)) {
	var zero E
	k, ok := kindOf(zero)
	if !ok {
		return
	}
	if fn == nil {
		d.slots[k] = nil
		return
	}
	d.slots[k] = func(ev Event) {
		// The slot is indexed by kind, so this only fails if some other
		// type reports the same kind.
		if e, ok := ev.(E); ok {
			fn(e)
		}
	}
}

// Dispatch calls the handler registered for ev's kind. Events with no
// handler, nil events, pointer payloads and unknown kinds are ignored.
func (d *Dispatcher) Dispatch(ev Event) {
	k, ok := kindOf(ev)
	if !ok {
		return
	}
	if h := d.slots[k]; h != nil {
		h(ev)
	}
}

// kindOf returns ev's routing slot. Payloads are routed by value only: a
// pointer to a payload also satisfies Event through the value-receiver
// Kind, and a nil one would panic when asked for its kind.
func kindOf(ev Event) (Kind, bool) {
	switch ev.(type) {
	case nil, *WindowClose, *WindowResize, *KeyPressed, *KeyReleased,
		*MouseMoved, *MouseScrolled, *MouseButtonPressed, *MouseButtonReleased:
		return 0, false
	}
	k := ev.Kind()
	return k, k < kindCount
}

func (d *Dispatcher) Has(k Kind) bool { return k < kindCount && d.slots[k] != nil }

func (d *Dispatcher) Remove(k Kind) {
	if k < kindCount {
		d.slots[k] = nil
	}
}

// Reset clears every slot.
func (d *Dispatcher) Reset() { d.slots = [kindCount]func(Event){} }
