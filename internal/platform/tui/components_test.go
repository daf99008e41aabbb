package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/gamestate"
)

func snapshot(status gamestate.GameStatus, paused bool) gamestate.Snapshot {
	return gamestate.Snapshot{
		Base:   gamestate.Base{Blocks: gamestate.NewBoard(2, 2), Status: status},
		Paused: paused,
	}
}

func testStyles() Styles {
	return NewStyles(config.DefaultConfig().Theme)
}

func TestControlsVisibility(t *testing.T) {
	controls, err := NewControls(config.DefaultConfig().Controls, testStyles())
	if err != nil {
		t.Fatalf("NewControls failed: %v", err)
	}

	tests := []struct {
		name string
		snap gamestate.Snapshot
		want core.Intent
	}{
		{"pending", snapshot(gamestate.Pending, false), core.IntentStart},
		{"running", snapshot(gamestate.InProgress, false), core.IntentPause},
		{"paused", snapshot(gamestate.InProgress, true), core.IntentResume},
		{"over", snapshot(gamestate.Over, false), core.IntentRestart},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controls.Render(tt.snap)
			got := controls.Visible()
			if len(got) != 1 || got[0] != tt.want {
				t.Errorf("Visible() = %v, want [%v]", got, tt.want)
			}
		})
	}
}

func TestControlsActivate(t *testing.T) {
	controls, err := NewControls(config.DefaultConfig().Controls, testStyles())
	if err != nil {
		t.Fatalf("NewControls failed: %v", err)
	}

	controls.Render(snapshot(gamestate.InProgress, false))
	if intent, ok := controls.Activate("p"); !ok || intent != core.IntentPause {
		t.Errorf("Activate(p) while running = %v, %v; want pause", intent, ok)
	}
	if _, ok := controls.Activate("s"); ok {
		t.Error("hidden start button should be inert")
	}

	controls.Render(snapshot(gamestate.InProgress, true))
	if intent, ok := controls.Activate("p"); !ok || intent != core.IntentResume {
		t.Errorf("Activate(p) while paused = %v, %v; want resume", intent, ok)
	}

	controls.Render(snapshot(gamestate.Over, false))
	if intent, ok := controls.Activate("enter"); !ok || intent != core.IntentRestart {
		t.Errorf("Activate(enter) after game over = %v, %v; want restart", intent, ok)
	}

	if controls.Key(core.IntentStart) != "s" {
		t.Errorf("Key(start) = %q, want s", controls.Key(core.IntentStart))
	}
	if !strings.Contains(controls.View(), "Restart") {
		t.Errorf("View() = %q, want the restart label", controls.View())
	}
}

func TestControlsMissingButton(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.ControlsConfig)
		want   string
	}{
		{"no pause", func(c *config.ControlsConfig) { c.Pause = nil }, "pause"},
		{"no restart keys", func(c *config.ControlsConfig) { c.Restart = &config.ButtonConfig{Label: "Again"} }, "restart"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig().Controls
			tt.mutate(&cfg)

			_, err := NewControls(cfg, testStyles())
			var missing *ElementMissingError
			if !errors.As(err, &missing) {
				t.Fatalf("NewControls error = %v, want *ElementMissingError", err)
			}
			if missing.Name != tt.want {
				t.Errorf("missing element = %q, want %q", missing.Name, tt.want)
			}
		})
	}
}

func TestOverlayMessages(t *testing.T) {
	tests := []struct {
		name string
		snap gamestate.Snapshot
		want string
	}{
		{"pending", snapshot(gamestate.Pending, false), `Press "Start"`},
		{"running", snapshot(gamestate.InProgress, false), ""},
		{"paused", snapshot(gamestate.InProgress, true), "Game paused"},
		{"over", snapshot(gamestate.Over, false), "Game over"},
	}

	o := NewOverlay("s", testStyles())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o.Render(tt.snap)
			if o.Title() != tt.want {
				t.Errorf("Title() = %q, want %q", o.Title(), tt.want)
			}
		})
	}
}

func TestOverlayError(t *testing.T) {
	o := NewOverlay("s", testStyles())
	o.Render(snapshot(gamestate.InProgress, false))
	o.SetError(errors.New("engine: tick: boom"))

	if !strings.Contains(o.View(), "boom") {
		t.Errorf("View() = %q, want the tick error", o.View())
	}

	o.Render(snapshot(gamestate.Pending, false))
	if strings.Contains(o.View(), "boom") {
		t.Error("a new game should clear the tick error")
	}
	if !strings.Contains(o.View(), "hit s") {
		t.Errorf("View() = %q, want the start key hint", o.View())
	}
}

func TestBoardRender(t *testing.T) {
	b := NewBoard(2, 3, testStyles())

	board := gamestate.NewBoard(2, 3)
	board[1][2] = gamestate.Filled
	b.Render(gamestate.Snapshot{Base: gamestate.Base{Blocks: board, Status: gamestate.InProgress}})

	c := b.Canvas()
	want := []string{
		"┌──────┐",
		"│ · · ·│",
		"│ · ·██│",
		"└──────┘",
	}
	for y, row := range want {
		if got := c.Row(y); got != row {
			t.Errorf("row %d = %q, want %q", y, got, row)
		}
	}
}

func TestBoardEmptySnapshotKeepsSize(t *testing.T) {
	b := NewBoard(3, 4, testStyles())
	b.Render(gamestate.EmptySnapshot())

	c := b.Canvas()
	if c.Width() != 10 || c.Height() != 5 {
		t.Errorf("canvas = %dx%d, want 10x5", c.Width(), c.Height())
	}
	if got := c.Row(1); got != "│ · · · ·│" {
		t.Errorf("row 1 = %q", got)
	}
}

func TestBoardFollowsSnapshotSize(t *testing.T) {
	b := NewBoard(3, 4, testStyles())
	b.Render(snapshot(gamestate.InProgress, false))

	c := b.Canvas()
	if c.Width() != 6 || c.Height() != 4 {
		t.Errorf("canvas = %dx%d, want 6x4", c.Width(), c.Height())
	}
}
