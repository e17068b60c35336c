package tui

import (
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/rigwizard/internal/tui/theme"
)

// Spinner wraps bubbles spinner with convenience methods
type Spinner struct {
	model spinner.Model
}

// NewSpinner creates a new spinner with the given style
func NewSpinner(style spinner.Spinner) Spinner {
	t := theme.Current()
	s := spinner.New(
		spinner.WithSpinner(style),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(t.Primary))),
	)
	return Spinner{model: s}
}

// Update handles spinner tick messages
func (s *Spinner) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.model, cmd = s.model.Update(msg)
	return cmd
}

// View renders the current spinner frame
func (s *Spinner) View() string {
	return s.model.View()
}

// Tick returns the tick command to start animation
func (s *Spinner) Tick() tea.Cmd {
	return s.model.Tick
}

// ProgressBar renders a bar width cells wide, filled to percent (0-100)
// with a gradient between the theme's primary and secondary colors.
func ProgressBar(percent float64, width int) string {
	if width <= 0 {
		return ""
	}
	t := theme.Current()
	filled := int(percent / 100 * float64(width))
	filled = clamp(filled, 0, width)

	var bar string
	for i := 0; i < width; i++ {
		if i >= filled {
			bar += lipgloss.NewStyle().Foreground(lipgloss.Color(t.BgSurface1)).Render("━")
			continue
		}
		pos := 0.0
		if width > 1 {
			pos = float64(i) / float64(width-1)
		}
		colorHex := theme.InterpolateColor(t.Primary, t.Secondary, pos)
		bar += lipgloss.NewStyle().Foreground(lipgloss.Color(colorHex)).Render("━")
	}
	return bar
}
