package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/gamestate"
)

// ElementMissingError reports a render element absent from the setup.
type ElementMissingError struct {
	Name string
}

func (e *ElementMissingError) Error() string {
	return fmt.Sprintf("tui: missing element %q", e.Name)
}

type button struct {
	intent  core.Intent
	label   string
	binding key.Binding
	visible bool
}

// Controls shows the start, pause, resume and restart buttons. Only
// buttons that apply to the current snapshot are visible and usable.
type Controls struct {
	buttons []*button
	styles  Styles
}

// NewControls builds the four buttons. A missing button is an
// *ElementMissingError.
func NewControls(cfg config.ControlsConfig, styles Styles) (*Controls, error) {
	c := &Controls{styles: styles}
	for _, intent := range core.ControlIntents {
		bc := cfg.Button(intent)
		if bc == nil || len(bc.Keys) == 0 {
			return nil, &ElementMissingError{Name: intent.String()}
		}
		label := bc.Label
		if label == "" {
			label = intent.String()
		}
		c.buttons = append(c.buttons, &button{
			intent:  intent,
			label:   label,
			binding: key.NewBinding(key.WithKeys(bc.Keys...), key.WithHelp(displayKey(bc.Keys[0]), label)),
		})
	}
	return c, nil
}

// Render implements view.Component.
func (c *Controls) Render(snap gamestate.Snapshot) {
	for _, b := range c.buttons {
		b.visible = actionable(b.intent, snap)
	}
}

// Activate implements view.Control.
func (c *Controls) Activate(code string) (core.Intent, bool) {
	for _, b := range c.buttons {
		if b.visible && key.Matches(keyName(code), b.binding) {
			return b.intent, true
		}
	}
	return core.IntentNone, false
}

// Visible returns the intents of the visible buttons in order.
func (c *Controls) Visible() []core.Intent {
	var out []core.Intent
	for _, b := range c.buttons {
		if b.visible {
			out = append(out, b.intent)
		}
	}
	return out
}

// Key returns the first key bound to a control intent.
func (c *Controls) Key(intent core.Intent) string {
	for _, b := range c.buttons {
		if b.intent == intent {
			if keys := b.binding.Keys(); len(keys) > 0 {
				return keys[0]
			}
		}
	}
	return ""
}

// View returns the visible buttons.
func (c *Controls) View() string {
	var parts []string
	for _, b := range c.buttons {
		if !b.visible {
			continue
		}
		parts = append(parts, c.styles.Style(core.ColorAccent).Render(" "+b.label+" ")+
			c.styles.Style(core.ColorMuted).Render(" "+b.binding.Help().Key))
	}
	return strings.Join(parts, "  ")
}

func actionable(intent core.Intent, snap gamestate.Snapshot) bool {
	switch intent {
	case core.IntentStart:
		return snap.Status == gamestate.Pending
	case core.IntentPause:
		return snap.Status == gamestate.InProgress && !snap.Paused
	case core.IntentResume:
		return snap.Status == gamestate.InProgress && snap.Paused
	case core.IntentRestart:
		return snap.Status == gamestate.Over
	}
	return false
}
