// Package config provides YAML-based configuration loading for blockfall.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/blockfall/internal/core"
)

// MinBoardSize is the smallest accepted board width and height.
const MinBoardSize = 4

// Config contains all user-tunable settings.
type Config struct {
	Engine   string         `yaml:"engine"`
	Tick     time.Duration  `yaml:"tick"`
	Seed     int64          `yaml:"seed"`
	Board    BoardConfig    `yaml:"board"`
	Keys     KeysConfig     `yaml:"keys"`
	Controls ControlsConfig `yaml:"controls"`
	Theme    ThemeConfig    `yaml:"theme"`
	History  HistoryConfig  `yaml:"history"`
}

// BoardConfig defines the board size in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// KeysConfig lists the key names bound to each movement intent.
type KeysConfig struct {
	Rotate    []string `yaml:"rotate"`
	MoveLeft  []string `yaml:"move_left"`
	MoveRight []string `yaml:"move_right"`
	MoveDown  []string `yaml:"move_down"`
}

// ButtonConfig describes one control button.
type ButtonConfig struct {
	Keys  []string `yaml:"keys"`
	Label string   `yaml:"label"`
}

// ControlsConfig holds the four control buttons. A nil button is missing.
type ControlsConfig struct {
	Start   *ButtonConfig `yaml:"start"`
	Pause   *ButtonConfig `yaml:"pause"`
	Resume  *ButtonConfig `yaml:"resume"`
	Restart *ButtonConfig `yaml:"restart"`
}

// ThemeConfig holds lipgloss colour strings.
type ThemeConfig struct {
	Filled string `yaml:"filled"`
	Empty  string `yaml:"empty"`
	Border string `yaml:"border"`
	Text   string `yaml:"text"`
}

// HistoryConfig controls the session log.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Engine == "" {
		return errors.New("config: engine is required")
	}
	if c.Tick <= 0 {
		return fmt.Errorf("config: tick must be positive, got %s", c.Tick)
	}
	if c.Board.Width < MinBoardSize || c.Board.Height < MinBoardSize {
		return fmt.Errorf("config: board must be at least %dx%d, got %dx%d",
			MinBoardSize, MinBoardSize, c.Board.Width, c.Board.Height)
	}
	for intent, keys := range c.MovementKeys() {
		if len(keys) == 0 {
			return fmt.Errorf("config: keys.%s has no keys", intent)
		}
	}
	return nil
}

// RuntimeConfig returns the settings handed to engine factories.
func (c Config) RuntimeConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		BoardW: c.Board.Width,
		BoardH: c.Board.Height,
		Tick:   c.Tick,
		Seed:   c.Seed,
	}
}

// MovementKeys maps each movement intent to its key names.
func (c Config) MovementKeys() map[core.Intent][]string {
	return map[core.Intent][]string{
		core.IntentRotate:    c.Keys.Rotate,
		core.IntentMoveLeft:  c.Keys.MoveLeft,
		core.IntentMoveRight: c.Keys.MoveRight,
		core.IntentMoveDown:  c.Keys.MoveDown,
	}
}

// Button returns the button configured for a control intent, or nil.
func (c ControlsConfig) Button(intent core.Intent) *ButtonConfig {
	switch intent {
	case core.IntentStart:
		return c.Start
	case core.IntentPause:
		return c.Pause
	case core.IntentResume:
		return c.Resume
	case core.IntentRestart:
		return c.Restart
	}
	return nil
}
