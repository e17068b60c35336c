package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/rigwizard/internal/tui/theme"
	"github.com/mark3labs/rigwizard/internal/wizard"
)

// StepIndicator shows every step with its state and a progress bar.
type StepIndicator struct {
	steps    []wizard.Step
	progress float64
	compact  bool
}

// NewStepIndicator creates an empty indicator.
func NewStepIndicator() *StepIndicator {
	return &StepIndicator{}
}

// SetSteps replaces the derived steps and the progress percentage.
func (i *StepIndicator) SetSteps(steps []wizard.Step, progress float64) {
	i.steps = steps
	i.progress = progress
}

// SetCompact switches between listing every step and only the active one.
func (i *StepIndicator) SetCompact(compact bool) {
	i.compact = compact
}

// View renders the indicator within width.
func (i *StepIndicator) View(width int) string {
	if len(i.steps) == 0 {
		return ""
	}
	s := theme.Current().S()

	var line string
	if i.compact {
		for _, st := range i.steps {
			if st.IsActive {
				line = s.StepActive.Render(fmt.Sprintf("● %d. %s", st.ID, st.Title))
			}
		}
	} else {
		parts := make([]string, len(i.steps))
		for n, st := range i.steps {
			switch {
			case st.IsCompleted:
				parts[n] = s.StepCompleted.Render("✓ " + st.Title)
			case st.IsActive:
				parts[n] = s.StepActive.Render("● " + st.Title)
			default:
				parts[n] = s.StepPending.Render("○ " + st.Title)
			}
		}
		line = strings.Join(parts, s.StepConnector.Render(" ── "))
	}

	pct := fmt.Sprintf(" %3.0f%%", i.progress)
	bar := ProgressBar(i.progress, max(0, width-lipgloss.Width(pct)-2))
	return " " + line + "\n " + bar + s.HeaderMeta.Render(pct)
}

// Draw renders the indicator to the screen at the given area.
func (i *StepIndicator) Draw(scr uv.Screen, area uv.Rectangle) {
	if area.Dy() < 1 {
		return
	}
	DrawText(scr, area, i.View(area.Dx()))
}
