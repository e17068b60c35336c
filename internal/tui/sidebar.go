package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/rigwizard/internal/buildform"
	"github.com/mark3labs/rigwizard/internal/tui/theme"
)

// Sidebar shows a running digest of the answers given so far.
type Sidebar struct {
	draft buildform.Draft
}

// NewSidebar creates a new Sidebar component.
func NewSidebar() *Sidebar {
	return &Sidebar{}
}

// SetDraft replaces the answers shown.
func (s *Sidebar) SetDraft(d buildform.Draft) {
	s.draft = d
}

// Draw renders the sidebar to the screen at the given area.
func (s *Sidebar) Draw(scr uv.Screen, area uv.Rectangle) {
	if area.Dx() < 4 || area.Dy() < 2 {
		return
	}
	st := theme.Current().S()

	DrawVerticalDivider(scr, uv.Rectangle{
		Min: area.Min,
		Max: uv.Position{X: area.Min.X + 1, Y: area.Max.Y},
	}, st.StepConnector)

	inner := area
	inner.Min.X += 2
	content := DrawPanel(scr, inner, "Your Build")

	lines := s.lines(inner.Dx())
	if len(lines) > content.Dy() {
		lines = lines[:content.Dy()]
	}
	DrawText(scr, content, strings.Join(lines, "\n"))
}

func (s *Sidebar) lines(width int) []string {
	st := theme.Current().S()
	d := s.draft

	row := func(label, value string) string {
		if value == "" {
			value = st.FieldMuted.Render("-")
		} else {
			value = st.FieldValue.Render(value)
		}
		return lipgloss.NewStyle().MaxWidth(width).Render(st.FieldLabel.Render(label+": ") + value)
	}

	uses := make([]string, len(d.PrimaryUse))
	for i, tag := range d.PrimaryUse {
		uses[i] = buildform.UseCaseLabel(tag)
	}

	budget := ""
	if d.Budget != nil {
		budget = d.BudgetRange()
	}

	out := []string{
		row("Budget", budget),
		row("Uses", strings.Join(uses, ", ")),
	}
	if gp := d.GamingPerformance; gp != nil {
		out = append(out, row("Target", fmt.Sprintf("%s @ %s", gp.FPSLabel(), buildform.Label(buildform.ResolutionOptions, string(gp.Resolution)))))
	}
	if wr := d.WorkloadRequirements; wr != nil && len(wr.Software) > 0 {
		out = append(out, row("Software", strings.Join(wr.Software, ", ")))
	}
	out = append(out,
		row("Form factor", buildform.Label(buildform.FormFactorOptions, buildform.Text(d.FormFactor))),
		row("Noise", buildform.Label(buildform.NoiseLevelOptions, buildform.Text(d.NoiseLevel))),
		row("RGB", buildform.Label(buildform.RGBOptions, buildform.Text(d.RGBLighting))),
	)

	peripherals := d.PeripheralNeeds.SelectedPeripherals()
	for i, id := range peripherals {
		peripherals[i] = buildform.PeripheralLabel(id)
	}
	out = append(out,
		row("Peripherals", strings.Join(peripherals, ", ")),
		row("Email", buildform.Text(d.Email)),
	)
	return out
}
