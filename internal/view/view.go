// Package view aggregates render components and forwards user intents to
// whichever presenter is currently attached.
package view

import (
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/gamestate"
)

// Intents is the set of commands a view can issue. Start and Restart
// report engine failures; everything else is fire and forget.
type Intents interface {
	Rotate()
	MoveLeft()
	MoveRight()
	MoveDown()
	Start() error
	Pause()
	Resume()
	Restart() error
}

// Component renders one projection of a snapshot.
type Component interface {
	Render(snap gamestate.Snapshot)
}

// Control is a component with its own affordances. Activate reports the
// intent bound to code, if the matching affordance is currently usable.
type Control interface {
	Component
	Activate(code string) (core.Intent, bool)
}

// GameView forwards snapshots to its components in registration order.
// It holds a non-owning reference to one presenter at a time.
type GameView struct {
	components []Component
	keymap     Keymap
	target     Intents
	listening  bool
}

// New creates a view with the given movement keymap and components.
func New(keymap Keymap, components ...Component) *GameView {
	return &GameView{
		components: components,
		keymap:     keymap,
	}
}

// Add appends a component. It renders after every existing one.
func (v *GameView) Add(c Component) {
	v.components = append(v.components, c)
}

// Keymap returns the movement bindings.
func (v *GameView) Keymap() Keymap {
	return v.keymap
}

// Render forwards snap to every component.
func (v *GameView) Render(snap gamestate.Snapshot) {
	for _, c := range v.components {
		c.Render(snap)
	}
}

// Attach makes t the target of every future intent, replacing the
// previous one.
func (v *GameView) Attach(t Intents) {
	v.target = t
}

// Detach drops the current target. Intents become no-ops.
func (v *GameView) Detach() {
	v.target = nil
}

// Attached reports whether a target is set.
func (v *GameView) Attached() bool {
	return v.target != nil
}

// AddListeners enables translation of movement keys. Calling it twice is
// the same as calling it once.
func (v *GameView) AddListeners() {
	v.listening = true
}

// RemoveListeners disables translation of movement keys. Safe to call
// when not listening.
func (v *GameView) RemoveListeners() {
	v.listening = false
}

// Listening reports whether movement keys are translated.
func (v *GameView) Listening() bool {
	return v.listening
}

// HandleKey translates a raw key code into an intent and dispatches it.
// Movement keys only count while listening; control components are asked
// in registration order. It reports whether the key was used.
func (v *GameView) HandleKey(code string) (bool, error) {
	if v.listening {
		if intent, ok := v.keymap.Lookup(code); ok {
			return true, v.Dispatch(intent)
		}
	}

	for _, c := range v.components {
		ctl, ok := c.(Control)
		if !ok {
			continue
		}
		if intent, ok := ctl.Activate(code); ok {
			return true, v.Dispatch(intent)
		}
	}
	return false, nil
}

// Dispatch forwards intent to the attached target.
func (v *GameView) Dispatch(intent core.Intent) error {
	t := v.target
	if t == nil {
		return nil
	}

	switch intent {
	case core.IntentRotate:
		t.Rotate()
	case core.IntentMoveLeft:
		t.MoveLeft()
	case core.IntentMoveRight:
		t.MoveRight()
	case core.IntentMoveDown:
		t.MoveDown()
	case core.IntentStart:
		return t.Start()
	case core.IntentPause:
		t.Pause()
	case core.IntentResume:
		t.Resume()
	case core.IntentRestart:
		return t.Restart()
	}
	return nil
}
