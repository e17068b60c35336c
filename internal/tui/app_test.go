package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/rigwizard/internal/buildform"
	"github.com/mark3labs/rigwizard/internal/notify"
	"github.com/mark3labs/rigwizard/internal/state"
	"github.com/mark3labs/rigwizard/internal/testfixtures"
	"github.com/mark3labs/rigwizard/internal/wizard"
	"github.com/stretchr/testify/require"
)

type appHarness struct {
	app   *App
	ctrl  *wizard.Controller
	store *testfixtures.MockStore
	ep    *testfixtures.MockEndpoint
}

func newTestApp(t *testing.T, prepare ...func(*testfixtures.MockStore)) *appHarness {
	t.Helper()

	h := &appHarness{
		store: testfixtures.NewMockStore(),
		ep:    testfixtures.NewMockEndpoint(),
	}
	for _, fn := range prepare {
		fn(h.store)
	}

	notes := &notify.Recorder{}
	h.ctrl = wizard.New(wizard.Options{
		Store:       h.store,
		Notifier:    notes,
		Endpoint:    h.ep,
		OnScrollTop: func() { h.app.ScrollTop() },
	})
	h.ctrl.Initialize(context.Background())

	h.app = NewApp(context.Background(), h.ctrl, notes, testfixtures.FixedProfile)
	h.app.Update(tea.WindowSizeMsg{Width: testfixtures.TestTermWidth, Height: testfixtures.TestTermHeight})
	h.app.Init()
	return h
}

func (h *appHarness) press(keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = h.app.Update(tea.KeyPressMsg{Text: k})
	}
	return cmd
}

func (h *appHarness) render() string {
	canvas := uv.NewScreenBuffer(testfixtures.TestTermWidth, testfixtures.TestTermHeight)
	h.app.Draw(canvas, canvas.Bounds())
	return testfixtures.Plain(canvas.Render())
}

// walkTo loads d and advances until step is shown.
func (h *appHarness) walkTo(t *testing.T, d buildform.Draft, step int) {
	t.Helper()
	h.ctrl.UpdateDraft(d)
	for h.ctrl.CurrentStep() < step {
		h.press("ctrl+n")
		require.Empty(t, h.ctrl.Errors())
	}
	require.Equal(t, step, h.ctrl.CurrentStep())
}

// findMsg runs cmd, expanding batches, until a message of type T arrives.
func findMsg[T tea.Msg](t *testing.T, cmd tea.Cmd) T {
	t.Helper()

	out := make(chan tea.Msg, 32)
	var run func(tea.Cmd)
	run = func(c tea.Cmd) {
		if c == nil {
			return
		}
		go func() {
			msg := c()
			if batch, ok := msg.(tea.BatchMsg); ok {
				for _, child := range batch {
					run(child)
				}
				return
			}
			select {
			case out <- msg:
			default:
			}
		}()
	}
	run(cmd)

	var zero T
	timeout := time.After(testfixtures.DefaultWaitDuration)
	for {
		select {
		case msg := <-out:
			if m, ok := msg.(T); ok {
				return m
			}
		case <-timeout:
			t.Fatalf("no %T produced within %s", zero, testfixtures.DefaultWaitDuration)
			return zero
		}
	}
}

func TestApp_InitAppliesStepDefaults(t *testing.T) {
	h := newTestApp(t)

	d := h.ctrl.Snapshot()
	require.Equal(t, &buildform.Budget{Min: buildform.DefaultBudgetMin, Max: buildform.DefaultBudgetMax}, d.Budget)
	require.NotNil(t, d.PrimaryUse)
	require.Empty(t, d.PrimaryUse)

	out := h.render()
	require.Contains(t, out, "rigwizard")
	require.Contains(t, out, testfixtures.FixedProfile)
	require.Contains(t, out, "Step 1 of 5")
	require.Contains(t, out, "● Budget & Use")
	require.Contains(t, out, "○ Summary")
	require.Contains(t, out, "Minimum Budget")
	require.Contains(t, out, "$1000")
	require.Contains(t, out, "Primary Use Cases")
}

func TestApp_AdvanceShowsValidationErrors(t *testing.T) {
	h := newTestApp(t)

	h.press("ctrl+n")

	require.Equal(t, 1, h.ctrl.CurrentStep())
	require.True(t, h.app.toast.IsVisible())
	require.Equal(t, "Validation Error", h.app.toast.Current().Title)

	out := h.render()
	require.Contains(t, out, "Please select at least one primary use case")
	require.Contains(t, out, "Validation Error")
}

func TestApp_SelectUseAndAdvance(t *testing.T) {
	h := newTestApp(t)

	// preset, min, max, primary uses
	h.press("tab", "tab", "tab", "space")
	require.Equal(t, []string{buildform.UseGaming}, h.ctrl.Snapshot().PrimaryUse)

	h.press("ctrl+n")
	require.Equal(t, 2, h.ctrl.CurrentStep())
	require.Equal(t, 0, h.app.focus)

	gp := h.ctrl.Snapshot().GamingPerformance
	require.NotNil(t, gp)
	require.Equal(t, buildform.DefaultTargetFPS, gp.FPS())

	out := h.render()
	require.Contains(t, out, "✓ Budget & Use")
	require.Contains(t, out, "● Performance")
	require.Contains(t, out, "Target FPS")
	require.Contains(t, out, "60 FPS")

	h.press("right")
	require.Equal(t, 75, *h.ctrl.Snapshot().GamingPerformance.TargetFPS)
}

func TestApp_PerformanceWithoutQuestions(t *testing.T) {
	h := newTestApp(t)
	h.walkTo(t, testfixtures.OfficeDraft(), 2)

	require.Empty(t, h.app.fields)
	require.Contains(t, h.render(), "No specific performance questions")

	h.press("ctrl+n")
	require.Equal(t, 3, h.ctrl.CurrentStep())
}

func TestApp_PerformanceFieldsFollowUses(t *testing.T) {
	h := newTestApp(t)
	h.walkTo(t, testfixtures.OfficeDraft(), 2)
	require.Empty(t, h.app.fields)

	h.ctrl.UpdateDraft(buildform.Draft{PrimaryUse: []string{buildform.UseProgramming}})
	h.press("f5")

	require.Len(t, h.app.fields, 3)
	require.Contains(t, h.render(), "Software You Use")
}

func TestApp_RetreatAndReset(t *testing.T) {
	h := newTestApp(t)
	h.walkTo(t, testfixtures.GamingDraft(), 3)

	h.press("ctrl+b")
	require.Equal(t, 2, h.ctrl.CurrentStep())

	h.press("ctrl+r")
	require.True(t, h.app.dialog.IsVisible())
	require.Contains(t, h.render(), "Start Over?")
	require.Equal(t, 2, h.ctrl.CurrentStep(), "nothing happens before confirming")

	h.press("y")
	require.False(t, h.app.dialog.IsVisible())
	require.Equal(t, 1, h.ctrl.CurrentStep())

	d := h.ctrl.Snapshot()
	require.Empty(t, d.PrimaryUse)
	require.Nil(t, d.GamingPerformance)
	require.Equal(t, buildform.DefaultBudgetMin, d.Budget.Min)
}

func TestApp_StartOverCancelled(t *testing.T) {
	h := newTestApp(t)
	h.walkTo(t, testfixtures.GamingDraft(), 2)

	h.press("ctrl+r")
	h.press("ctrl+b")
	require.Equal(t, 2, h.ctrl.CurrentStep(), "dialog swallows keys")

	h.press("esc")
	require.False(t, h.app.dialog.IsVisible())
	require.Equal(t, 2, h.ctrl.CurrentStep())
	require.Equal(t, testfixtures.GamingDraft().PrimaryUse, h.ctrl.Snapshot().PrimaryUse)

	// Enter on the default Cancel button also keeps the answers
	h.press("ctrl+r", "enter")
	require.Equal(t, 2, h.ctrl.CurrentStep())

	h.press("ctrl+r", "tab", "enter")
	require.Equal(t, 1, h.ctrl.CurrentStep())
}

func TestApp_SubmitOnlyOnLastStep(t *testing.T) {
	h := newTestApp(t)
	h.ctrl.UpdateDraft(testfixtures.GamingDraft())

	h.press("ctrl+s")
	require.False(t, h.app.submitting)
	require.Zero(t, h.ep.Calls())
}

func TestApp_SubmitFlow(t *testing.T) {
	h := newTestApp(t)
	h.walkTo(t, testfixtures.GamingDraft(), 5)

	summary, _, _ := h.app.bodyContent(5, 80)
	require.Contains(t, testfixtures.Plain(summary), "Build Requirements Summary")
	require.Contains(t, h.render(), "Submit (ctrl+s)")

	cmd := h.press("ctrl+s")
	require.True(t, h.app.submitting)
	require.Contains(t, h.render(), "Submitting...")

	// Keys are ignored while the submission runs
	h.press("ctrl+b")
	require.Equal(t, 5, h.ctrl.CurrentStep())

	h.app.Update(findMsg[submitDoneMsg](t, cmd))
	require.False(t, h.app.submitting)
	require.True(t, h.app.completed)
	require.Equal(t, 1, h.ep.Calls())

	_, saved := h.store.Get(wizard.DefaultDraftKey)
	require.False(t, saved)

	out := h.render()
	require.Contains(t, out, "Build Submitted!")
	require.Contains(t, out, "Start New Build")
	require.Equal(t, "Success!", h.app.toast.Current().Title)

	h.press("enter")
	require.False(t, h.app.completed)
	require.Equal(t, 1, h.ctrl.CurrentStep())
	require.NotNil(t, h.ctrl.Snapshot().Budget)
	require.Contains(t, h.render(), "Minimum Budget")
}

func TestApp_CompletionExit(t *testing.T) {
	h := newTestApp(t)
	h.walkTo(t, testfixtures.OfficeDraft(), 5)

	h.app.Update(findMsg[submitDoneMsg](t, h.press("ctrl+s")))
	require.True(t, h.app.completed)

	h.press("tab")
	require.Equal(t, 1, h.app.buttons.Focused())

	cmd := h.press("enter")
	require.NotNil(t, cmd)
	require.True(t, h.app.quitting)
}

func TestApp_SubmitValidationError(t *testing.T) {
	h := newTestApp(t)
	h.walkTo(t, testfixtures.GamingDraft(), 5)
	h.ctrl.UpdateDraft(buildform.Draft{Email: buildform.Ptr("not-an-email")})

	h.app.Update(findMsg[submitDoneMsg](t, h.press("ctrl+s")))
	require.False(t, h.app.completed)
	require.Zero(t, h.ep.Calls())

	out := h.render()
	require.Contains(t, out, "Please enter a valid email address")
	require.Equal(t, "Validation Error", h.app.toast.Current().Title)
}

func TestApp_SubmitFailureKeepsDraft(t *testing.T) {
	h := newTestApp(t)
	h.ep.Err = errors.New("service down")
	h.walkTo(t, testfixtures.GamingDraft(), 5)

	h.app.Update(findMsg[submitDoneMsg](t, h.press("ctrl+s")))
	require.False(t, h.app.completed)
	require.Equal(t, 5, h.ctrl.CurrentStep())
	require.Equal(t, "Submission Failed", h.app.toast.Current().Title)
	require.Equal(t, testfixtures.GamingDraft().Budget, h.ctrl.Snapshot().Budget)
}

func TestApp_EmailField(t *testing.T) {
	h := newTestApp(t)
	d := testfixtures.GamingDraft()
	d.Email = nil
	h.walkTo(t, d, 5)

	for _, r := range "me@x.io" {
		h.press(string(r))
	}
	require.Equal(t, "me@x.io", buildform.Text(h.ctrl.Snapshot().Email))
}

func TestApp_NotesEdited(t *testing.T) {
	h := newTestApp(t)
	h.walkTo(t, testfixtures.GamingDraft(), 4)

	h.app.Update(NotesEditedMsg{Content: "<b>quiet</b>"})
	require.Equal(t, "bquiet/b", buildform.Text(h.ctrl.Snapshot().AdditionalNotes))

	h.app.Update(NotesEditedMsg{Err: errors.New("no editor")})
	require.True(t, h.app.toast.IsVisible())
	require.Equal(t, "Editor Error", h.app.toast.Current().Title)
	require.Equal(t, "bquiet/b", buildform.Text(h.ctrl.Snapshot().AdditionalNotes))
}

func TestApp_RestoredDraftToast(t *testing.T) {
	data, err := buildform.Marshal(testfixtures.GamingDraft())
	require.NoError(t, err)

	h := newTestApp(t, func(s *testfixtures.MockStore) {
		s.Put(wizard.DefaultDraftKey, data)
	})

	require.Equal(t, "Progress Restored", h.app.toast.Current().Title)
	require.Equal(t, testfixtures.GamingDraft().Budget, h.ctrl.Snapshot().Budget)
	require.Contains(t, h.render(), "$1500")
}

func TestApp_ScrollTopResetsFocus(t *testing.T) {
	h := newTestApp(t)
	h.press("tab", "tab")
	require.Equal(t, 2, h.app.focus)

	h.app.ScrollTop()
	h.press("f5")
	require.Equal(t, 0, h.app.focus)
}

func TestApp_QuitKey(t *testing.T) {
	h := newTestApp(t)
	require.NotNil(t, h.press("ctrl+c"))
	require.True(t, h.app.quitting)
	require.False(t, h.app.View().AltScreen)
}

func TestApp_CompactLayout(t *testing.T) {
	h := newTestApp(t)
	h.app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	canvas := uv.NewScreenBuffer(80, 24)
	h.app.Draw(canvas, canvas.Bounds())
	out := testfixtures.Plain(canvas.Render())

	require.Contains(t, out, "● 1. Budget & Use")
	require.NotContains(t, out, "○ Summary")
	require.NotContains(t, out, "Your Build")
}

func TestApp_ToggleSidebarSaved(t *testing.T) {
	dir := t.TempDir()
	h := newTestApp(t)
	h.app.LoadUIState(dir)
	require.Contains(t, h.render(), "Your Build")

	h.press("ctrl+t")
	require.NotContains(t, h.render(), "Your Build")
	require.False(t, state.Load(dir).Sidebar.Visible)

	// A fresh app picks the preference up
	again := newTestApp(t)
	again.app.LoadUIState(dir)
	again.app.Update(tea.WindowSizeMsg{Width: testfixtures.TestTermWidth, Height: testfixtures.TestTermHeight})
	require.NotContains(t, again.render(), "Your Build")

	h.press("ctrl+t")
	require.Contains(t, h.render(), "Your Build")
	require.True(t, state.Load(dir).Sidebar.Visible)
}
