package tui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mark3labs/rigwizard/internal/tui/theme"
)

// ButtonState represents the visual state of a button.
type ButtonState int

const (
	ButtonNormal   ButtonState = iota // Normal state (enabled)
	ButtonDisabled                    // Disabled state (grayed out)
	ButtonFocused                     // Focused/highlighted state
)

// Button represents a single button in the button bar.
type Button struct {
	Label string
	State ButtonState
}

// ButtonBar manages a set of buttons with consistent styling.
type ButtonBar struct {
	buttons []Button
	focus   int
	width   int
}

// NewButtonBar creates a new button bar with the first enabled button
// focused.
func NewButtonBar(labels ...string) *ButtonBar {
	b := &ButtonBar{width: 60}
	for _, l := range labels {
		b.buttons = append(b.buttons, Button{Label: l})
	}
	b.setFocus(0)
	return b
}

// SetWidth updates the width for the button bar.
func (b *ButtonBar) SetWidth(width int) {
	b.width = width
}

// SetDisabled enables or disables the button at i.
func (b *ButtonBar) SetDisabled(i int, disabled bool) {
	if i < 0 || i >= len(b.buttons) {
		return
	}
	switch {
	case disabled:
		b.buttons[i].State = ButtonDisabled
		if b.focus == i {
			b.Next()
		}
	case b.buttons[i].State == ButtonDisabled:
		b.buttons[i].State = ButtonNormal
		b.setFocus(b.focus)
	}
}

// Focused returns the index of the focused button, or -1 when every button
// is disabled.
func (b *ButtonBar) Focused() int {
	if b.focus < 0 || b.focus >= len(b.buttons) || b.buttons[b.focus].State != ButtonFocused {
		return -1
	}
	return b.focus
}

// Next moves focus to the next enabled button, wrapping around.
func (b *ButtonBar) Next() {
	b.move(1)
}

// Prev moves focus to the previous enabled button, wrapping around.
func (b *ButtonBar) Prev() {
	b.move(-1)
}

func (b *ButtonBar) move(delta int) {
	n := len(b.buttons)
	for step := 1; step <= n; step++ {
		i := ((b.focus+delta*step)%n + n) % n
		if b.buttons[i].State != ButtonDisabled {
			b.setFocus(i)
			return
		}
	}
}

func (b *ButtonBar) setFocus(i int) {
	for j := range b.buttons {
		if b.buttons[j].State == ButtonFocused {
			b.buttons[j].State = ButtonNormal
		}
	}
	if i < 0 || i >= len(b.buttons) {
		return
	}
	b.focus = i
	if b.buttons[i].State == ButtonNormal {
		b.buttons[i].State = ButtonFocused
	}
}

// Render renders the button bar centered within its width.
func (b *ButtonBar) Render() string {
	if len(b.buttons) == 0 {
		return ""
	}

	s := theme.Current().S()
	rendered := make([]string, 0, len(b.buttons))
	for _, btn := range b.buttons {
		switch btn.State {
		case ButtonDisabled:
			rendered = append(rendered, s.ButtonDisabled.Render(btn.Label))
		case ButtonFocused:
			rendered = append(rendered, s.ButtonFocused.Render(btn.Label))
		default:
			rendered = append(rendered, s.ButtonNormal.Render(btn.Label))
		}
	}

	return lipgloss.Place(b.width, 1, lipgloss.Center, lipgloss.Center, strings.Join(rendered, ""))
}
