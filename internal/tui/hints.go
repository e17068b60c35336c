package tui

import (
	"github.com/mark3labs/rigwizard/internal/tui/theme"
)

// Standard key representations for consistent hints across the app.
const (
	KeyUpDown   = "↑/↓"
	KeyLeftRt   = "←/→"
	KeyEnter    = "enter"
	KeySpace    = "space"
	KeyEsc      = "esc"
	KeyTab      = "tab"
	KeyCtrlC    = "ctrl+c"
	KeyCtrlN    = "ctrl+n" // Next step
	KeyCtrlB    = "ctrl+b" // Previous step
	KeyCtrlS    = "ctrl+s" // Submit
	KeyCtrlR    = "ctrl+r" // Start over
	KeyCtrlE    = "ctrl+e" // Edit in $EDITOR
	KeyPgUpDown = "pgup/pgdn"
)

// RenderHint renders a single key-description pair.
// Example: RenderHint("enter", "select") -> "enter select"
func RenderHint(key, desc string) string {
	s := theme.Current().S()
	return s.HintKey.Render(key) + " " + s.HintDesc.Render(desc)
}

// RenderHintBar renders a hint bar with multiple key-description pairs.
// Pairs are separated by " . ".
// Example: RenderHintBar("up/down", "scroll", "esc", "back")
// Returns: "up/down scroll . esc back"
func RenderHintBar(pairs ...string) string {
	if len(pairs) == 0 || len(pairs)%2 != 0 {
		return ""
	}

	s := theme.Current().S()
	var result string

	for i := 0; i < len(pairs); i += 2 {
		if i > 0 {
			result += " " + s.HintSeparator.Render(".") + " "
		}
		result += s.HintKey.Render(pairs[i]) + " " + s.HintDesc.Render(pairs[i+1])
	}

	return result
}

// HintForm returns the hints shown while filling in a step.
func HintForm(step, total int) string {
	pairs := []string{KeyUpDown, "field", KeyLeftRt + "/" + KeySpace, "change"}
	if step > 1 {
		pairs = append(pairs, KeyCtrlB, "back")
	}
	if step < total {
		pairs = append(pairs, KeyCtrlN, "next")
	} else {
		pairs = append(pairs, KeyCtrlS, "submit")
	}
	pairs = append(pairs, KeyCtrlR, "start over", KeyCtrlC, "quit")
	return RenderHintBar(pairs...)
}

// HintCompletion returns the hints shown on the completion screen.
func HintCompletion() string {
	return RenderHintBar(KeyTab+"/"+KeyLeftRt, "navigate", KeyEnter, "select")
}
