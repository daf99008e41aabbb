package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/blockfall/internal/core"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(defaultYAML)
	if err != nil {
		t.Fatalf("Parse(defaultYAML) failed: %v", err)
	}
	def := DefaultConfig()

	if cfg.Engine != def.Engine || cfg.Tick != def.Tick {
		t.Errorf("engine/tick = %s/%s, want %s/%s", cfg.Engine, cfg.Tick, def.Engine, def.Tick)
	}
	if cfg.Board != def.Board {
		t.Errorf("board = %+v, want %+v", cfg.Board, def.Board)
	}
	if cfg.Theme != def.Theme {
		t.Errorf("theme = %+v, want %+v", cfg.Theme, def.Theme)
	}
	for _, intent := range core.ControlIntents {
		got, want := cfg.Controls.Button(intent), def.Controls.Button(intent)
		if got == nil {
			t.Fatalf("embedded default has no %s button", intent)
		}
		if got.Label != want.Label || strings.Join(got.Keys, ",") != strings.Join(want.Keys, ",") {
			t.Errorf("%s button = %+v, want %+v", intent, got, want)
		}
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("embedded default is invalid: %v", err)
	}
}

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
tick: 250ms
board:
  width: 6
keys:
  rotate: [w, k]
controls:
  pause: ~
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Tick != 250*time.Millisecond {
		t.Errorf("Tick = %s, want 250ms", cfg.Tick)
	}
	if cfg.Board.Width != 6 || cfg.Board.Height != 18 {
		t.Errorf("Board = %+v, want 6x18", cfg.Board)
	}
	if got := cfg.MovementKeys()[core.IntentRotate]; len(got) != 2 || got[1] != "k" {
		t.Errorf("rotate keys = %v, want [w k]", got)
	}
	if got := cfg.Keys.MoveLeft; len(got) != 1 || got[0] != "left" {
		t.Errorf("move_left keys = %v, want default [left]", got)
	}
	if cfg.Controls.Pause != nil {
		t.Error("null pause button should be missing")
	}
	if cfg.Controls.Start == nil {
		t.Error("start button should keep its default")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"default", func(*Config) {}, ""},
		{"no engine", func(c *Config) { c.Engine = "" }, "engine"},
		{"zero tick", func(c *Config) { c.Tick = 0 }, "tick"},
		{"narrow board", func(c *Config) { c.Board.Width = 3 }, "board"},
		{"short board", func(c *Config) { c.Board.Height = 2 }, "board"},
		{"minimum board", func(c *Config) { c.Board = BoardConfig{Width: 4, Height: 4} }, ""},
		{"unbound move", func(c *Config) { c.Keys.MoveDown = nil }, "move_down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error mentioning %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("engine: other\nseed: 42\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Engine != "other" || cfg.Seed != 42 {
		t.Errorf("Load = %s/%d, want other/42", cfg.Engine, cfg.Seed)
	}

	rc := cfg.RuntimeConfig()
	if rc.Seed != 42 || rc.BoardW != 10 || rc.BoardH != 18 || rc.Tick != 800*time.Millisecond {
		t.Errorf("RuntimeConfig() = %+v", rc)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load of a missing custom path should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("tick: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load of malformed YAML should fail")
	}
}
