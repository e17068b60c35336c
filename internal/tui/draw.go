package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/rigwizard/internal/tui/theme"
)

// DrawText renders plain text at a position
func DrawText(scr uv.Screen, area uv.Rectangle, text string) {
	uv.NewStyledString(text).Draw(scr, area)
}

// DrawStyled renders lipgloss-styled content at a position
func DrawStyled(scr uv.Screen, area uv.Rectangle, style lipgloss.Style, text string) {
	content := style.Width(area.Dx()).Height(area.Dy()).Render(text)
	uv.NewStyledString(content).Draw(scr, area)
}

// DrawPanel renders a panel with a title header and returns the inner content area.
// The header shows "Title ────────" with a trailing rule line.
func DrawPanel(scr uv.Screen, area uv.Rectangle, title string) uv.Rectangle {
	if title == "" || area.Dy() == 0 {
		return area
	}

	s := theme.Current().S()
	styledTitle := s.StepTitle.Render(title)
	ruleWidth := max(0, area.Dx()-lipgloss.Width(styledTitle)-1)
	headerText := styledTitle + " " + s.StepConnector.Render(strings.Repeat("─", ruleWidth))

	titleArea := uv.Rectangle{
		Min: uv.Position{X: area.Min.X, Y: area.Min.Y},
		Max: uv.Position{X: area.Max.X, Y: area.Min.Y + 1},
	}
	uv.NewStyledString(headerText).Draw(scr, titleArea)

	return uv.Rectangle{
		Min: uv.Position{X: area.Min.X, Y: area.Min.Y + 1},
		Max: area.Max,
	}
}

// DrawScrollIndicator renders a scroll position indicator
func DrawScrollIndicator(scr uv.Screen, area uv.Rectangle, percent float64) {
	if area.Dy() == 0 {
		return
	}
	indicator := fmt.Sprintf(" %d%% ", int(percent*100))

	// Position at bottom-right of area
	indicatorArea := uv.Rectangle{
		Min: uv.Position{X: area.Max.X - len(indicator), Y: area.Max.Y - 1},
		Max: uv.Position{X: area.Max.X, Y: area.Max.Y},
	}

	DrawStyled(scr, indicatorArea, theme.Current().S().FieldMuted, indicator)
}

// DrawVerticalDivider renders a vertical dividing line
func DrawVerticalDivider(scr uv.Screen, area uv.Rectangle, style lipgloss.Style) {
	for i := 0; i < area.Dy(); i++ {
		lineArea := uv.Rectangle{
			Min: uv.Position{X: area.Min.X, Y: area.Min.Y + i},
			Max: uv.Position{X: area.Min.X + 1, Y: area.Min.Y + i + 1},
		}
		uv.NewStyledString(style.Render("│")).Draw(scr, lineArea)
	}
}
