package wizard

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeriveSteps(t *testing.T) {
	t.Parallel()

	steps := DeriveSteps(DefaultSteps, 3)
	require.Len(t, steps, TotalSteps)

	for _, s := range steps {
		require.Equal(t, s.ID < 3, s.IsCompleted, "step %d completed", s.ID)
		require.Equal(t, s.ID == 3, s.IsActive, "step %d active", s.ID)
	}
	require.Equal(t, "Preferences", steps[2].Title)
}

func TestDeriveSteps_Edges(t *testing.T) {
	t.Parallel()

	first := DeriveSteps(DefaultSteps, 1)
	require.True(t, first[0].IsActive)
	for _, s := range first {
		require.False(t, s.IsCompleted)
	}

	last := DeriveSteps(DefaultSteps, TotalSteps)
	require.True(t, last[TotalSteps-1].IsActive)
	require.False(t, last[TotalSteps-1].IsCompleted)
	for _, s := range last[:TotalSteps-1] {
		require.True(t, s.IsCompleted)
		require.False(t, s.IsActive)
	}
}

func TestProgressPercent(t *testing.T) {
	t.Parallel()

	require.InDelta(t, 20.0, ProgressPercent(1, 5), 0.001)
	require.InDelta(t, 100.0, ProgressPercent(5, 5), 0.001)
	require.Zero(t, ProgressPercent(1, 0))
}

func TestDefaultSteps(t *testing.T) {
	t.Parallel()

	require.Len(t, DefaultSteps, TotalSteps)
	for i, s := range DefaultSteps {
		require.Equal(t, i+1, s.ID)
		require.NotEmpty(t, s.Title)
		require.NotEmpty(t, s.Description)
	}
}
