package submit

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mark3labs/rigwizard/internal/buildform"
	"github.com/mark3labs/rigwizard/internal/hooks"
	"github.com/mark3labs/rigwizard/internal/nats"
	"github.com/stretchr/testify/require"
)

func sampleBuild() buildform.Build {
	return buildform.Build{
		Budget:          &buildform.Budget{Min: 1000, Max: 2000},
		PrimaryUse:      []string{buildform.UseGaming},
		Email:           buildform.Ptr("gamer@example.com"),
		ExperienceLevel: buildform.Ptr(buildform.ExperienceIntermediate),
	}
}

func TestSimulated(t *testing.T) {
	t.Parallel()

	start := time.Now()
	require.NoError(t, (&Simulated{Delay: 20 * time.Millisecond}).Submit(context.Background(), sampleBuild()))
	require.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)

	require.NoError(t, (&Simulated{}).Submit(context.Background(), sampleBuild()))
}

func TestSimulated_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := (&Simulated{Delay: time.Hour}).Submit(ctx, sampleBuild())
	require.ErrorIs(t, err, context.Canceled)
}

func TestHookEndpoint_PipesSubmission(t *testing.T) {
	t.Parallel()

	workDir := t.TempDir()
	e := &HookEndpoint{
		Hooks:   []*hooks.HookConfig{{Command: "cat > submission-{{profile}}.json", Timeout: 5}},
		WorkDir: workDir,
		Profile: "office",
	}

	require.NoError(t, e.Submit(context.Background(), sampleBuild()))

	data, err := os.ReadFile(filepath.Join(workDir, "submission-office.json"))
	require.NoError(t, err)

	var sub Submission
	require.NoError(t, json.Unmarshal(data, &sub))
	require.Equal(t, "office", sub.Profile)
	require.NotEmpty(t, sub.ID)
	require.Equal(t, "gamer@example.com", *sub.Build.Email)
}

func TestHookEndpoint_FailureFailsSubmission(t *testing.T) {
	t.Parallel()

	e := &HookEndpoint{
		Hooks:   []*hooks.HookConfig{{Command: "exit 7", Timeout: 5}},
		WorkDir: t.TempDir(),
	}
	require.Error(t, e.Submit(context.Background(), sampleBuild()))
}

func TestCompletionHooks(t *testing.T) {
	t.Parallel()

	require.Nil(t, CompletionHooks(nil, "", "default"))
	require.Nil(t, CompletionHooks(&hooks.Config{}, "", "default"))

	workDir := t.TempDir()
	cfg := &hooks.Config{Hooks: hooks.HooksConfig{
		OnComplete: []*hooks.HookConfig{{Command: "echo {{email}} > done.txt", Timeout: 5}},
	}}

	fn := CompletionHooks(cfg, workDir, "default")
	require.NotNil(t, fn)
	fn(sampleBuild())

	data, err := os.ReadFile(filepath.Join(workDir, "done.txt"))
	require.NoError(t, err)
	require.Equal(t, "gamer@example.com\n", string(data))
}

func TestJetStreamEndpoint(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	e, err := nats.Start(t.TempDir())
	require.NoError(t, err)
	defer func() { _ = e.Close() }()

	home, err := NewJetStreamEndpoint(ctx, e.JS, "home")
	require.NoError(t, err)
	office, err := NewJetStreamEndpoint(ctx, e.JS, "office")
	require.NoError(t, err)

	require.NoError(t, home.Submit(ctx, sampleBuild()))
	require.NoError(t, office.Submit(ctx, sampleBuild()))
	require.NoError(t, home.Submit(ctx, sampleBuild()))

	history, err := home.History(ctx)
	require.NoError(t, err)
	require.Len(t, history, 2)
	for _, sub := range history {
		require.Equal(t, "home", sub.Profile)
		require.Equal(t, &buildform.Budget{Min: 1000, Max: 2000}, sub.Build.Budget)
	}
	require.NotEqual(t, history[0].ID, history[1].ID)
}

func TestOpen(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ep, err := Open(ctx, Options{Delay: time.Second})
	require.NoError(t, err)
	require.Equal(t, &Simulated{Delay: time.Second}, ep)

	_, err = Open(ctx, Options{Kind: KindHook})
	require.Error(t, err)

	_, err = Open(ctx, Options{Kind: KindNATS})
	require.Error(t, err)

	_, err = Open(ctx, Options{Kind: "smtp"})
	require.ErrorContains(t, err, `unknown endpoint "smtp"`)

	ep, err = Open(ctx, Options{
		Kind:  KindHook,
		Hooks: &hooks.Config{Hooks: hooks.HooksConfig{OnSubmit: []*hooks.HookConfig{{Command: "true"}}}},
	})
	require.NoError(t, err)
	require.IsType(t, &HookEndpoint{}, ep)
}
