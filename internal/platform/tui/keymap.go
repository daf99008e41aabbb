package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// quitKeys ends the program. Quitting is not a game intent.
var quitKeys = key.NewBinding(
	key.WithKeys("q", "ctrl+c"),
	key.WithHelp("q", "quit"),
)

// keyName lets a raw key code be matched against bindings.
type keyName string

func (k keyName) String() string { return string(k) }

// displayKey returns a printable name for a key code.
func displayKey(code string) string {
	switch code {
	case " ":
		return "space"
	case "":
		return "?"
	}
	return code
}
