package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestButtonBar_FocusCycles(t *testing.T) {
	b := NewButtonBar("Start New Build", "Exit")
	require.Equal(t, 0, b.Focused())

	b.Next()
	require.Equal(t, 1, b.Focused())
	b.Next()
	require.Equal(t, 0, b.Focused())
	b.Prev()
	require.Equal(t, 1, b.Focused())
}

func TestButtonBar_SkipsDisabled(t *testing.T) {
	b := NewButtonBar("← Back", "Next →")
	b.SetDisabled(0, true)
	require.Equal(t, 1, b.Focused())

	b.Next()
	require.Equal(t, 1, b.Focused())

	b.SetDisabled(0, false)
	b.Prev()
	require.Equal(t, 0, b.Focused())

	b.SetDisabled(0, true)
	b.SetDisabled(1, true)
	require.Equal(t, -1, b.Focused())
}

func TestButtonBar_Render(t *testing.T) {
	b := NewButtonBar("← Back", "Submit")
	b.SetWidth(40)

	out := b.Render()
	require.True(t, strings.Contains(out, "← Back"))
	require.True(t, strings.Contains(out, "Submit"))
	require.Empty(t, NewButtonBar().Render())
}
