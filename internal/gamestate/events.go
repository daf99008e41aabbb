package gamestate

import "fmt"

// EventKind classifies a Container notification.
type EventKind int

const (
	EventNext    EventKind = iota // ordinary progress
	EventPaused                   // pause flag set
	EventResumed                  // pause flag cleared
	EventOver                     // first transition into Over
)

// AllEvents lists every event kind in declaration order.
var AllEvents = []EventKind{EventNext, EventPaused, EventResumed, EventOver}

// String returns the event name used in logs.
func (k EventKind) String() string {
	switch k {
	case EventNext:
		return "next"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventOver:
		return "over"
	default:
		return fmt.Sprintf("event(%d)", int(k))
	}
}

// Handler receives the snapshot that was current when the event fired.
type Handler func(Snapshot)

// HandlerID identifies one subscription for exact removal.
type HandlerID uint64

type subscription struct {
	id      HandlerID
	handler Handler
}

// emitter is a registry of event kind -> ordered handlers.
// Delivery is synchronous and iterates a copy of the list taken at emit
// time, so handlers may subscribe, unsubscribe or trigger nested emissions.
type emitter struct {
	nextID   HandlerID
	handlers map[EventKind][]subscription
}

func newEmitter() *emitter {
	return &emitter{handlers: make(map[EventKind][]subscription)}
}

func (e *emitter) on(kind EventKind, h Handler) HandlerID {
	e.nextID++
	e.handlers[kind] = append(e.handlers[kind], subscription{id: e.nextID, handler: h})
	return e.nextID
}

func (e *emitter) off(kind EventKind, id HandlerID) bool {
	subs := e.handlers[kind]
	for i, s := range subs {
		if s.id != id {
			continue
		}
		// Copy-on-write keeps in-flight emissions iterating the old slice.
		next := make([]subscription, 0, len(subs)-1)
		next = append(next, subs[:i]...)
		next = append(next, subs[i+1:]...)
		e.handlers[kind] = next
		return true
	}
	return false
}

func (e *emitter) emit(kind EventKind, snap Snapshot) {
	subs := e.handlers[kind]
	if len(subs) == 0 {
		return
	}
	stable := append([]subscription(nil), subs...)
	for _, s := range stable {
		s.handler(snap)
	}
}

func (e *emitter) count(kind EventKind) int {
	return len(e.handlers[kind])
}
