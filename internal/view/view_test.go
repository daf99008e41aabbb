package view

import (
	"errors"
	"testing"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/gamestate"
)

type recorder struct {
	intents []core.Intent
	err     error
}

func (r *recorder) Rotate()    { r.intents = append(r.intents, core.IntentRotate) }
func (r *recorder) MoveLeft()  { r.intents = append(r.intents, core.IntentMoveLeft) }
func (r *recorder) MoveRight() { r.intents = append(r.intents, core.IntentMoveRight) }
func (r *recorder) MoveDown()  { r.intents = append(r.intents, core.IntentMoveDown) }
func (r *recorder) Pause()     { r.intents = append(r.intents, core.IntentPause) }
func (r *recorder) Resume()    { r.intents = append(r.intents, core.IntentResume) }

func (r *recorder) Start() error {
	r.intents = append(r.intents, core.IntentStart)
	return r.err
}

func (r *recorder) Restart() error {
	r.intents = append(r.intents, core.IntentRestart)
	return r.err
}

type logComponent struct {
	name string
	log  *[]string
}

func (c logComponent) Render(gamestate.Snapshot) {
	*c.log = append(*c.log, c.name)
}

// startButton is usable only while the game is pending.
type startButton struct {
	visible bool
}

func (b *startButton) Render(snap gamestate.Snapshot) {
	b.visible = snap.Status == gamestate.Pending
}

func (b *startButton) Activate(code string) (core.Intent, bool) {
	if code == "s" && b.visible {
		return core.IntentStart, true
	}
	return core.IntentNone, false
}

func TestRenderOrder(t *testing.T) {
	var log []string
	v := New(DefaultKeymap(), logComponent{"board", &log}, logComponent{"overlay", &log})
	v.Add(logComponent{"controls", &log})

	v.Render(gamestate.EmptySnapshot())

	want := []string{"board", "overlay", "controls"}
	if len(log) != len(want) {
		t.Fatalf("render order = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("render order = %v, want %v", log, want)
			break
		}
	}
}

func TestDispatchForwardsEveryIntent(t *testing.T) {
	r := &recorder{}
	v := New(DefaultKeymap())
	v.Attach(r)

	all := append(append([]core.Intent{}, core.MovementIntents...), core.ControlIntents...)
	for _, intent := range all {
		if err := v.Dispatch(intent); err != nil {
			t.Fatalf("Dispatch(%v) error: %v", intent, err)
		}
	}

	if len(r.intents) != len(all) {
		t.Fatalf("forwarded %v, want %v", r.intents, all)
	}
	for i := range all {
		if r.intents[i] != all[i] {
			t.Errorf("intent %d = %v, want %v", i, r.intents[i], all[i])
		}
	}
}

func TestDispatchReturnsStartError(t *testing.T) {
	boom := errors.New("boom")
	v := New(DefaultKeymap())
	v.Attach(&recorder{err: boom})

	if err := v.Dispatch(core.IntentStart); !errors.Is(err, boom) {
		t.Errorf("Dispatch(start) = %v, want %v", err, boom)
	}
	if err := v.Dispatch(core.IntentRestart); !errors.Is(err, boom) {
		t.Errorf("Dispatch(restart) = %v, want %v", err, boom)
	}
}

func TestDetachedViewIsInert(t *testing.T) {
	r := &recorder{}
	v := New(DefaultKeymap())
	v.Attach(r)
	v.Detach()

	if v.Attached() {
		t.Error("Attached() should be false after Detach")
	}
	if err := v.Dispatch(core.IntentRotate); err != nil {
		t.Errorf("Dispatch on detached view returned %v", err)
	}
	if len(r.intents) != 0 {
		t.Errorf("detached view forwarded %v", r.intents)
	}
}

func TestAttachReplacesTarget(t *testing.T) {
	first, second := &recorder{}, &recorder{}
	v := New(DefaultKeymap())
	v.Attach(first)
	v.Attach(second)

	v.Dispatch(core.IntentMoveDown)

	if len(first.intents) != 0 {
		t.Errorf("old target received %v", first.intents)
	}
	if len(second.intents) != 1 {
		t.Errorf("new target received %v, want one intent", second.intents)
	}
}

func TestMovementKeysNeedListeners(t *testing.T) {
	r := &recorder{}
	v := New(DefaultKeymap())
	v.Attach(r)

	if used, _ := v.HandleKey("left"); used {
		t.Error("movement key used before AddListeners")
	}

	v.AddListeners()
	v.AddListeners()
	if used, _ := v.HandleKey("left"); !used {
		t.Error("movement key ignored while listening")
	}

	v.RemoveListeners()
	v.RemoveListeners()
	if used, _ := v.HandleKey("up"); used {
		t.Error("movement key used after RemoveListeners")
	}

	if len(r.intents) != 1 || r.intents[0] != core.IntentMoveLeft {
		t.Errorf("forwarded %v, want [move_left]", r.intents)
	}
}

func TestControlComponentsIgnoreListeners(t *testing.T) {
	r := &recorder{}
	btn := &startButton{}
	v := New(DefaultKeymap(), btn)
	v.Attach(r)

	v.Render(gamestate.EmptySnapshot())
	if used, err := v.HandleKey("s"); !used || err != nil {
		t.Fatalf("HandleKey(s) = %v, %v; want true, nil", used, err)
	}

	v.Render(gamestate.Snapshot{Base: gamestate.Base{Status: gamestate.InProgress}})
	if used, _ := v.HandleKey("s"); used {
		t.Error("hidden control should be inert")
	}

	if len(r.intents) != 1 || r.intents[0] != core.IntentStart {
		t.Errorf("forwarded %v, want [start]", r.intents)
	}
}

func TestKeymap(t *testing.T) {
	tests := []struct {
		name   string
		keys   map[core.Intent][]string
		code   string
		want   core.Intent
		wantOK bool
	}{
		{"default up", nil, "up", core.IntentRotate, true},
		{"default down", nil, "down", core.IntentMoveDown, true},
		{"unbound", nil, "x", core.IntentNone, false},
		{"custom rotate", map[core.Intent][]string{core.IntentRotate: {"w", "k"}}, "k", core.IntentRotate, true},
		{"custom replaces default", map[core.Intent][]string{core.IntentRotate: {"w"}}, "up", core.IntentNone, false},
		{"others keep default", map[core.Intent][]string{core.IntentRotate: {"w"}}, "left", core.IntentMoveLeft, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NewKeymap(tt.keys).Lookup(tt.code)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Lookup(%q) = %v, %v; want %v, %v", tt.code, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
