package tui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/rigwizard/internal/tui/theme"
)

// Dialog is a modal confirmation overlay. Enter or y confirms, esc or n
// cancels.
type Dialog struct {
	title     string
	message   string
	visible   bool
	buttons   *ButtonBar
	onConfirm func() tea.Cmd
}

// NewDialog creates a new dialog
func NewDialog() *Dialog {
	return &Dialog{}
}

// Show displays the dialog with the given title and message. onConfirm runs
// when the user accepts.
func (d *Dialog) Show(title, message string, onConfirm func() tea.Cmd) {
	d.title = title
	d.message = message
	d.visible = true
	d.onConfirm = onConfirm
	d.buttons = NewButtonBar("Cancel", "Confirm")
}

// Hide closes the dialog
func (d *Dialog) Hide() {
	d.visible = false
}

// IsVisible returns whether the dialog is visible
func (d *Dialog) IsVisible() bool {
	return d.visible
}

// Update handles dialog input
func (d *Dialog) Update(msg tea.Msg) tea.Cmd {
	if !d.visible {
		return nil
	}

	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "tab", "right", "shift+tab", "left":
		d.buttons.Next()
	case "y":
		return d.confirm()
	case "n", "esc":
		d.Hide()
	case "enter", "space":
		if d.buttons.Focused() == 1 {
			return d.confirm()
		}
		d.Hide()
	}
	return nil
}

func (d *Dialog) confirm() tea.Cmd {
	d.Hide()
	if d.onConfirm != nil {
		return d.onConfirm()
	}
	return nil
}

// Draw renders the dialog centered on screen
func (d *Dialog) Draw(scr uv.Screen, area uv.Rectangle) {
	if !d.visible {
		return
	}

	contentWidth := max(lipgloss.Width(d.message), lipgloss.Width(d.title), 24)

	t := theme.Current()
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.Primary)).
		Bold(true).
		Width(contentWidth).
		Align(lipgloss.Center)

	messageStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.FgBase)).
		Width(contentWidth).
		Align(lipgloss.Center)

	d.buttons.SetWidth(contentWidth)
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		titleStyle.Render(d.title),
		"",
		messageStyle.Render(d.message),
		"",
		d.buttons.Render(),
	)

	dialog := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.Primary)).
		Padding(1, 3).
		Render(content)

	dialogWidth := lipgloss.Width(dialog)
	dialogHeight := lipgloss.Height(dialog)
	x := max(0, (area.Dx()-dialogWidth)/2)
	y := max(0, (area.Dy()-dialogHeight)/2)

	uv.NewStyledString(dialog).Draw(scr, uv.Rectangle{
		Min: uv.Position{X: area.Min.X + x, Y: area.Min.Y + y},
		Max: uv.Position{X: area.Min.X + x + dialogWidth, Y: area.Min.Y + y + dialogHeight},
	})
}
