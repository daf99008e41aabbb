package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/blockfall.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Engine: "classic",
		Tick:   800 * time.Millisecond,
		Board: BoardConfig{
			Width:  10,
			Height: 18,
		},
		Keys: KeysConfig{
			Rotate:    []string{"up"},
			MoveLeft:  []string{"left"},
			MoveRight: []string{"right"},
			MoveDown:  []string{"down"},
		},
		Controls: ControlsConfig{
			Start:   &ButtonConfig{Keys: []string{"s", "enter"}, Label: "Start"},
			Pause:   &ButtonConfig{Keys: []string{"p", " "}, Label: "Pause"},
			Resume:  &ButtonConfig{Keys: []string{"p", " "}, Label: "Resume"},
			Restart: &ButtonConfig{Keys: []string{"r", "enter"}, Label: "Restart"},
		},
		Theme: ThemeConfig{
			Filled: "#7D56F4",
			Empty:  "#3C3C3C",
			Border: "#626262",
			Text:   "#FAFAFA",
		},
		History: HistoryConfig{
			Enabled: true,
			Path:    "~/.blockfall/history.db",
		},
	}
}
