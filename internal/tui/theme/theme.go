// Package theme holds the TUI color palette and the styles built from it.
package theme

import (
	"sync"

	"charm.land/lipgloss/v2"
)

// Theme defines the color palette for the TUI.
type Theme struct {
	Name   string
	IsDark bool

	// Semantic colors
	Primary   string // lipgloss.Color is a string type
	Secondary string
	Tertiary  string

	// Background hierarchy (dark→light)
	BgBase     string
	BgMantle   string
	BgGutter   string
	BgSurface0 string
	BgSurface1 string
	BgSurface2 string
	BgOverlay  string

	// Foreground hierarchy (dim→bright)
	FgMuted  string
	FgSubtle string
	FgBase   string
	FgBright string

	// Status colors
	Success string
	Warning string
	Error   string
	Info    string

	// Lazy-built styles
	styles     *Styles
	stylesOnce sync.Once
}

var current = NewCatppuccinMocha()

// Current returns the active theme.
func Current() *Theme {
	return current
}

// S returns the pre-built styles for this theme.
// Styles are lazily initialized on first call.
func (t *Theme) S() *Styles {
	t.stylesOnce.Do(func() {
		t.styles = t.buildStyles()
	})
	return t.styles
}

// buildStyles constructs the pre-built styles from theme colors.
func (t *Theme) buildStyles() *Styles {
	c := lipgloss.Color
	return &Styles{
		HeaderTitle: lipgloss.NewStyle().
			Foreground(c(t.Primary)).
			Bold(true),
		HeaderMeta: lipgloss.NewStyle().
			Foreground(c(t.FgSubtle)),

		StepActive: lipgloss.NewStyle().
			Foreground(c(t.Primary)).
			Bold(true),
		StepCompleted: lipgloss.NewStyle().
			Foreground(c(t.Success)),
		StepPending: lipgloss.NewStyle().
			Foreground(c(t.FgMuted)),
		StepConnector: lipgloss.NewStyle().
			Foreground(c(t.BgSurface1)),

		StepTitle: lipgloss.NewStyle().
			Foreground(c(t.FgBright)).
			Bold(true),
		StepDescription: lipgloss.NewStyle().
			Foreground(c(t.FgSubtle)).
			Italic(true),

		FieldLabel: lipgloss.NewStyle().
			Foreground(c(t.FgBase)).
			Bold(true),
		FieldLabelFocused: lipgloss.NewStyle().
			Foreground(c(t.Primary)).
			Bold(true),
		FieldValue: lipgloss.NewStyle().
			Foreground(c(t.FgBase)),
		FieldMuted: lipgloss.NewStyle().
			Foreground(c(t.FgMuted)),
		FieldCursor: lipgloss.NewStyle().
			Foreground(c(t.Tertiary)).
			Bold(true),
		FieldSelected: lipgloss.NewStyle().
			Foreground(c(t.Success)),
		FieldError: lipgloss.NewStyle().
			Foreground(c(t.Error)),

		HintKey: lipgloss.NewStyle().
			Foreground(c(t.FgSubtle)),
		HintDesc: lipgloss.NewStyle().
			Foreground(c(t.FgMuted)),
		HintSeparator: lipgloss.NewStyle().
			Foreground(c(t.BgSurface2)),

		ToastInfo: lipgloss.NewStyle().
			Foreground(c(t.BgBase)).
			Background(c(t.Info)).
			Padding(0, 1).
			Bold(true),
		ToastError: lipgloss.NewStyle().
			Foreground(c(t.BgBase)).
			Background(c(t.Error)).
			Padding(0, 1).
			Bold(true),

		ButtonNormal: lipgloss.NewStyle().
			Foreground(c(t.FgBase)).
			Background(c(t.BgSurface0)).
			Padding(0, 2).
			MarginLeft(1).
			MarginRight(1),
		ButtonDisabled: lipgloss.NewStyle().
			Foreground(c(t.FgMuted)).
			Background(c(t.BgMantle)).
			Padding(0, 2).
			MarginLeft(1).
			MarginRight(1),
		ButtonFocused: lipgloss.NewStyle().
			Foreground(c(t.BgBase)).
			Background(c(t.Tertiary)).
			Bold(true).
			Padding(0, 2).
			MarginLeft(1).
			MarginRight(1),

		Success: lipgloss.NewStyle().
			Foreground(c(t.Success)).
			Bold(true),
	}
}
