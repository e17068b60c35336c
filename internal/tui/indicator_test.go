package tui

import (
	"testing"

	"github.com/mark3labs/rigwizard/internal/testfixtures"
	"github.com/mark3labs/rigwizard/internal/wizard"
	"github.com/stretchr/testify/require"
)

func TestStepIndicator_States(t *testing.T) {
	ind := NewStepIndicator()
	require.Empty(t, ind.View(80))

	ind.SetSteps(wizard.DeriveSteps(wizard.DefaultSteps, 3), wizard.ProgressPercent(3, 5))
	out := testfixtures.RenderContent(ind.View(testfixtures.TestTermWidth))

	require.Contains(t, out, "✓ Budget & Use")
	require.Contains(t, out, "✓ Performance")
	require.Contains(t, out, "● Preferences")
	require.Contains(t, out, "○ Peripherals")
	require.Contains(t, out, "○ Summary")
	require.Contains(t, out, "60%")
}

func TestStepIndicator_Compact(t *testing.T) {
	ind := NewStepIndicator()
	ind.SetCompact(true)
	ind.SetSteps(wizard.DeriveSteps(wizard.DefaultSteps, 5), wizard.ProgressPercent(5, 5))

	out := testfixtures.RenderContent(ind.View(60))
	require.Contains(t, out, "● 5. Summary")
	require.NotContains(t, out, "Budget & Use")
	require.Contains(t, out, "100%")
}

func TestProgressBar(t *testing.T) {
	require.Empty(t, ProgressBar(50, 0))

	bar := testfixtures.Plain(ProgressBar(40, 10))
	require.Equal(t, "━━━━━━━━━━", bar)
}
