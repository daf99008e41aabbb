package gamestate

import "iter"

// Container owns the single current Snapshot and notifies subscribers when
// it is replaced. It is not safe for concurrent use: all calls are expected
// from one event loop.
type Container struct {
	current Snapshot
	events  *emitter
}

// NewContainer creates a container holding EmptySnapshot.
func NewContainer() *Container {
	return &Container{
		current: EmptySnapshot(),
		events:  newEmitter(),
	}
}

// Snapshot returns the current snapshot.
func (c *Container) Snapshot() Snapshot {
	return c.current
}

// UpdateGameState replaces board and status with next, keeping the pause
// flag. The first transition into Over emits EventOver and nothing else;
// every other call emits EventNext.
func (c *Container) UpdateGameState(next Base) {
	prev := c.current
	isOver := prev.Status != Over && next.Status == Over

	snap := Snapshot{
		Base: Base{
			Blocks: next.Blocks.Clone(),
			Status: next.Status,
		},
		Paused: prev.Paused,
	}
	if snap.Status == Over {
		snap.Paused = false
	}
	c.current = snap

	if isOver {
		c.events.emit(EventOver, snap)
		return
	}
	c.events.emit(EventNext, snap)
}

// Reset replaces the snapshot with a fresh session built from next: the
// pause flag is cleared and EventNext is emitted, even after Over.
func (c *Container) Reset(next Base) {
	snap := Snapshot{
		Base: Base{
			Blocks: next.Blocks.Clone(),
			Status: next.Status,
		},
	}
	c.current = snap
	c.events.emit(EventNext, snap)
}

// UpdatePaused sets the pause flag and emits EventPaused or EventResumed.
// Repeated calls with the same value emit again. Once the game is Over the
// flag is frozen and the call does nothing.
func (c *Container) UpdatePaused(paused bool) {
	if c.current.Status == Over {
		return
	}
	snap := c.current
	snap.Paused = paused
	c.current = snap

	if paused {
		c.events.emit(EventPaused, snap)
		return
	}
	c.events.emit(EventResumed, snap)
}

// Subscribe registers h for kind. Handlers of one kind run in subscription
// order.
func (c *Container) Subscribe(kind EventKind, h Handler) HandlerID {
	return c.events.on(kind, h)
}

// Unsubscribe removes the handler registered under id. It reports whether a
// handler was removed.
func (c *Container) Unsubscribe(kind EventKind, id HandlerID) bool {
	return c.events.off(kind, id)
}

// Subscribers returns the number of handlers registered for kind.
func (c *Container) Subscribers(kind EventKind) int {
	return c.events.count(kind)
}

// BlocksIndexes yields every (row, col) of the board that is current when
// iteration begins, in row-major order. The sequence can be ranged over
// any number of times.
func (c *Container) BlocksIndexes() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for r, col := range traverse(c.current.Blocks) {
			if !yield(r, col) {
				return
			}
		}
	}
}
