package tui

import (
	"fmt"

	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/rigwizard/internal/tui/theme"
)

// Header renders the top header bar with the profile and wizard position.
type Header struct {
	profile    string
	step       int
	total      int
	layoutMode LayoutMode
}

// NewHeader creates a new Header component.
func NewHeader(profile string) *Header {
	return &Header{profile: profile}
}

// Draw renders the header to the screen at the given area.
func (h *Header) Draw(scr uv.Screen, area uv.Rectangle) {
	if area.Dy() < 1 {
		return
	}

	var left, right string
	if h.layoutMode == LayoutCompact {
		left = h.buildCompactLeft()
	} else {
		left = h.buildDesktopLeft()
	}
	if h.total > 0 {
		right = theme.Current().S().HeaderMeta.Render(fmt.Sprintf("Step %d of %d", h.step, h.total))
	}

	DrawText(scr, area, h.buildHeader(left, right, area.Dx()))
}

// buildHeader combines left and right content with spacing.
func (h *Header) buildHeader(left, right string, totalWidth int) string {
	padding := max(1, totalWidth-lipgloss.Width(left)-lipgloss.Width(right)-2)
	return " " + left + lipgloss.NewStyle().Width(padding).Render("") + right
}

// buildDesktopLeft builds the full left side for desktop mode.
func (h *Header) buildDesktopLeft() string {
	s := theme.Current().S()
	title := s.HeaderTitle.Render("rigwizard")
	sep := s.HeaderMeta.Render(" | ")
	return title + sep + s.HeaderMeta.Render("PC Build Intake") + sep + s.HeaderMeta.Render(h.profile)
}

// buildCompactLeft builds the condensed left side for compact mode.
func (h *Header) buildCompactLeft() string {
	s := theme.Current().S()
	profile := h.profile
	if len(profile) > 15 {
		profile = profile[:12] + "..."
	}
	return s.HeaderTitle.Render("rigwizard") + s.HeaderMeta.Render(" | "+profile)
}

// SetStep updates the wizard position shown on the right.
func (h *Header) SetStep(step, total int) {
	h.step = step
	h.total = total
}

// SetLayoutMode updates the layout mode (desktop/compact).
func (h *Header) SetLayoutMode(mode LayoutMode) {
	h.layoutMode = mode
}
