package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/gamestate"
)

// Overlay shows a short status message above the controls.
type Overlay struct {
	startKey string
	styles   Styles
	title    string
	hint     string
	err      error
}

// NewOverlay creates an overlay. startKey is shown in the pending hint.
func NewOverlay(startKey string, styles Styles) *Overlay {
	return &Overlay{startKey: startKey, styles: styles}
}

// Render implements view.Component.
func (o *Overlay) Render(snap gamestate.Snapshot) {
	o.title, o.hint = "", ""
	switch {
	case snap.Status == gamestate.Pending:
		o.title = `Press "Start"`
		o.hint = fmt.Sprintf("or hit %s", displayKey(o.startKey))
		o.err = nil
	case snap.Status == gamestate.Over:
		o.title = "Game over"
	case snap.Paused:
		o.title = "Game paused"
	}
}

// SetError records a tick failure to show until the next game is created.
func (o *Overlay) SetError(err error) {
	o.err = err
}

// Title returns the current message, empty while the game runs.
func (o *Overlay) Title() string {
	return o.title
}

// View returns the styled overlay lines.
func (o *Overlay) View() string {
	var lines []string
	if o.title != "" {
		lines = append(lines, o.styles.Style(core.ColorText).Render(o.title))
	}
	if o.hint != "" {
		lines = append(lines, o.styles.Style(core.ColorMuted).Render(o.hint))
	}
	if o.err != nil {
		lines = append(lines, o.styles.Style(core.ColorError).Render(o.err.Error()))
	}
	return strings.Join(lines, "\n")
}
