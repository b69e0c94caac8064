package page

import "gallery/hal"

type listener struct {
	id   uint64
	kind hal.EventKind
	fn   func(hal.Event)
}

// Dispatcher fans input events out to listeners registered per event kind.
// It is used from the host's step goroutine only.
type Dispatcher struct {
	last      uint64
	listeners []listener
}

// NewDispatcher returns a dispatcher with no listeners.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Listen registers fn for events of kind and returns a function that removes
// it. Calling the remover more than once is a no-op.
func (d *Dispatcher) Listen(kind hal.EventKind, fn func(hal.Event)) (remove func()) {
	d.last++
	id := d.last
	d.listeners = append(d.listeners, listener{id: id, kind: kind, fn: fn})
	return func() { d.remove(id) }
}

// Dispatch calls every listener for ev.Kind in registration order. A listener
// removed by an earlier one during the same dispatch is not called.
func (d *Dispatcher) Dispatch(ev hal.Event) int {
	var batch []listener
	for _, l := range d.listeners {
		if l.kind == ev.Kind {
			batch = append(batch, l)
		}
	}
	n := 0
	for _, l := range batch {
		if !d.has(l.id) {
			continue
		}
		l.fn(ev)
		n++
	}
	return n
}

// Len returns the number of registered listeners.
func (d *Dispatcher) Len() int {
	return len(d.listeners)
}

func (d *Dispatcher) has(id uint64) bool {
	for _, l := range d.listeners {
		if l.id == id {
			return true
		}
	}
	return false
}

func (d *Dispatcher) remove(id uint64) {
	for i, l := range d.listeners {
		if l.id == id {
			d.listeners = append(d.listeners[:i], d.listeners[i+1:]...)
			return
		}
	}
}
