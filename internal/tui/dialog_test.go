package tui

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/rigwizard/internal/testfixtures"
	"github.com/stretchr/testify/require"
)

func TestDialog_ConfirmAndCancel(t *testing.T) {
	d := NewDialog()
	require.Nil(t, d.Update(tea.KeyPressMsg{Text: "y"}), "hidden dialog ignores keys")

	confirmed := 0
	onConfirm := func() tea.Cmd {
		confirmed++
		return nil
	}

	d.Show("Start Over?", "Discard answers", onConfirm)
	require.True(t, d.IsVisible())

	d.Update(tea.KeyPressMsg{Text: "esc"})
	require.False(t, d.IsVisible())
	require.Zero(t, confirmed)

	d.Show("Start Over?", "Discard answers", onConfirm)
	d.Update(tea.KeyPressMsg{Text: "y"})
	require.False(t, d.IsVisible())
	require.Equal(t, 1, confirmed)

	d.Show("Start Over?", "Discard answers", onConfirm)
	d.Update(tea.KeyPressMsg{Text: "tab"})
	d.Update(tea.KeyPressMsg{Text: "enter"})
	require.Equal(t, 2, confirmed)
}

func TestDialog_Draw(t *testing.T) {
	d := NewDialog()
	canvas := uv.NewScreenBuffer(80, 20)

	d.Draw(canvas, canvas.Bounds())
	require.NotContains(t, testfixtures.Plain(canvas.Render()), "Start Over?")

	d.Show("Start Over?", "Discard answers", nil)
	d.Draw(canvas, canvas.Bounds())
	out := testfixtures.Plain(canvas.Render())
	require.Contains(t, out, "Start Over?")
	require.Contains(t, out, "Cancel")
	require.Contains(t, out, "Confirm")
}
