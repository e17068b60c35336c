package tui

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/rigwizard/internal/buildform"
	"github.com/mark3labs/rigwizard/internal/logger"
	"github.com/mark3labs/rigwizard/internal/notify"
	"github.com/mark3labs/rigwizard/internal/state"
	"github.com/mark3labs/rigwizard/internal/tui/theme"
	"github.com/mark3labs/rigwizard/internal/validate"
	"github.com/mark3labs/rigwizard/internal/wizard"
)

// submitDoneMsg carries the result of a submission started by the App.
type submitDoneMsg struct {
	err error
}

// App is the main Bubbletea model. It renders the wizard.Controller it is
// given and turns key presses into controller operations.
type App struct {
	ctrl  *wizard.Controller
	notes *notify.Recorder

	// View components
	header    *Header
	indicator *StepIndicator
	sidebar   *Sidebar
	toast     *Toast
	dialog    *Dialog
	spinner   Spinner
	buttons   *ButtonBar
	body      viewport.Model

	// Layout management
	layout Layout
	ui     *state.UIState
	uiDir  string // where ui is saved, empty keeps it in memory

	// Form state
	form        *formState
	fields      []field
	focus       int
	step        int    // step the fields were built for, 0 forces a rebuild
	shape       string // answers the current fields depend on
	followFocus bool   // scroll the body to the focused field on next draw

	// State
	submitting bool
	completed  bool
	quitting   bool
	ctx        context.Context
	width      int
	height     int

	scrollPending atomic.Bool
}

// NewApp creates the TUI for ctrl. Notifications recorded by notes are shown
// as toasts after every controller operation.
func NewApp(ctx context.Context, ctrl *wizard.Controller, notes *notify.Recorder, profile string) *App {
	return &App{
		ctrl:      ctrl,
		notes:     notes,
		header:    NewHeader(profile),
		indicator: NewStepIndicator(),
		sidebar:   NewSidebar(),
		toast:     NewToast(),
		dialog:    NewDialog(),
		spinner:   NewSpinner(spinner.Dot),
		body:      viewport.New(),
		form:      newFormState(),
		ui:        state.Default(),
		ctx:       ctx,
	}
}

// LoadUIState restores the TUI preferences saved under dataDir and saves
// later changes there.
func (a *App) LoadUIState(dataDir string) {
	a.ui = state.Load(dataDir)
	a.uiDir = dataDir
}

// ScrollTop brings the current step back to its first field. It is safe to
// call from any goroutine and is meant for wizard.Options.OnScrollTop.
func (a *App) ScrollTop() {
	a.scrollPending.Store(true)
}

// Init initializes the application and returns any initial commands.
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.sync(), a.drainNotes())
}

// Update handles incoming messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		cmd = a.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.relayout()
		a.followFocus = true
		return a, nil

	case submitDoneMsg:
		a.handleSubmitDone(msg)

	case NotesEditedMsg:
		if msg.Err != nil {
			cmd = a.toast.Show(notify.Notification{
				Kind:    notify.KindError,
				Title:   "Editor Error",
				Message: msg.Err.Error(),
			})
			break
		}
		a.ctrl.UpdateDraft(buildform.Draft{AdditionalNotes: buildform.Ptr(msg.Content)})

	case ToastDismissMsg, ShowToastMsg:
		return a, a.toast.Update(msg)

	case spinner.TickMsg:
		if !a.submitting {
			return a, nil
		}
		return a, a.spinner.Update(msg)
	}

	if a.quitting {
		return a, cmd
	}
	return a, tea.Batch(cmd, a.sync(), a.drainNotes())
}

func (a *App) handleKeyPress(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()
	if key == "ctrl+c" {
		a.quitting = true
		return tea.Quit
	}
	if a.dialog.IsVisible() {
		return a.dialog.Update(msg)
	}
	if a.completed {
		return a.handleCompletionKey(key)
	}
	// Everything else waits for the submission to settle
	if a.submitting {
		return nil
	}

	switch key {
	case "ctrl+n":
		if err := a.ctrl.Advance(); err != nil {
			logger.Debug("Advance refused: %v", err)
		}
		return nil
	case "ctrl+b":
		if err := a.ctrl.Retreat(); err != nil {
			logger.Debug("Retreat refused: %v", err)
		}
		return nil
	case "ctrl+s":
		if a.ctrl.CurrentStep() < a.ctrl.TotalSteps() {
			return nil
		}
		return a.submit()
	case "ctrl+t":
		a.toggleSidebar()
		return nil
	case "ctrl+r":
		a.dialog.Show("Start Over?", "Every answer given so far will be discarded.", a.startOver)
		return nil
	case "tab", "down":
		a.moveFocus(1)
		return a.refocus()
	case "shift+tab", "up":
		a.moveFocus(-1)
		return a.refocus()
	case "pgdown":
		a.body.HalfPageDown()
		return nil
	case "pgup":
		a.body.HalfPageUp()
		return nil
	}

	if len(a.fields) == 0 {
		return nil
	}
	partial, cmd := a.fields[a.focus].Update(msg, a.ctrl.Snapshot())
	if partial != nil {
		a.ctrl.UpdateDraft(*partial)
	}
	return cmd
}

func (a *App) handleCompletionKey(key string) tea.Cmd {
	switch key {
	case "tab", "right", "l":
		a.buttons.Next()
	case "shift+tab", "left", "h":
		a.buttons.Prev()
	case "q", "esc":
		a.quitting = true
		return tea.Quit
	case "enter", "space":
		switch a.buttons.Focused() {
		case 0:
			a.completed = false
			a.buttons = nil
			a.step = 0
		case 1:
			a.quitting = true
			return tea.Quit
		}
	}
	return nil
}

func (a *App) startOver() tea.Cmd {
	if err := a.ctrl.Reset(a.ctx); err != nil {
		logger.Warn("Failed to start over: %v", err)
	}
	a.form = newFormState()
	a.step = 0
	return nil
}

// submit runs the controller's Submit off the update loop.
func (a *App) submit() tea.Cmd {
	a.submitting = true
	ctx, ctrl := a.ctx, a.ctrl
	return tea.Batch(a.spinner.Tick(), func() tea.Msg {
		return submitDoneMsg{err: ctrl.Submit(ctx)}
	})
}

func (a *App) handleSubmitDone(msg submitDoneMsg) {
	a.submitting = false

	var verrs validate.Errors
	switch {
	case msg.err == nil:
		a.completed = true
		a.buttons = NewButtonBar("Start New Build", "Exit")
		a.form = newFormState()
		a.step = 0
	case errors.As(msg.err, &verrs):
		a.followFocus = true
	default:
		logger.Debug("Submission not completed: %v", msg.err)
	}
}

func (a *App) moveFocus(delta int) {
	n := len(a.fields)
	if n == 0 {
		return
	}
	a.focus = ((a.focus+delta)%n + n) % n
	a.followFocus = true
}

// refocus gives widget focus to the focused field and takes it from the rest.
func (a *App) refocus() tea.Cmd {
	var cmd tea.Cmd
	for i, f := range a.fields {
		fc, ok := f.(focusable)
		if !ok {
			continue
		}
		if i == a.focus && !a.completed {
			cmd = fc.Focus()
		} else {
			fc.Blur()
		}
	}
	return cmd
}

// sync brings the fields in line with the controller: it applies the
// initial answers of a newly shown step and rebuilds the fields when the
// step or the answers they depend on changed.
func (a *App) sync() tea.Cmd {
	if a.completed {
		return nil
	}

	step := a.ctrl.CurrentStep()
	toTop := a.scrollPending.Swap(false) || step != a.step
	if toTop {
		a.focus = 0
		a.body.GotoTop()
	}

	if step != a.step {
		if defaults := buildform.StepDefaults(step, a.ctrl.Snapshot()); !defaults.IsEmpty() {
			a.ctrl.UpdateDraft(defaults)
		}
	}

	d := a.ctrl.Snapshot()
	shape := fieldShape(step, d)
	if step == a.step && shape == a.shape {
		if toTop {
			return a.refocus()
		}
		return nil
	}
	a.step, a.shape = step, shape
	a.fields = buildFields(step, d, a.form)
	a.focus = clamp(a.focus, 0, max(0, len(a.fields)-1))
	a.followFocus = true
	return a.refocus()
}

// fieldShape names the answers that decide which fields step shows.
func fieldShape(step int, d buildform.Draft) string {
	if step != validate.StepPerformance {
		return ""
	}
	var shape []string
	if d.NeedsGaming() {
		shape = append(shape, "gaming")
	}
	if d.NeedsWorkload() {
		shape = append(shape, "workload")
	}
	return strings.Join(shape, "+")
}

// drainNotes shows the newest pending notification. Older ones in the same
// batch would be replaced before they could be read.
func (a *App) drainNotes() tea.Cmd {
	if a.notes == nil {
		return nil
	}
	pending := a.notes.Drain()
	if len(pending) == 0 {
		return nil
	}
	return a.toast.Show(pending[len(pending)-1])
}

// View renders the current model state.
func (a *App) View() tea.View {
	var view tea.View
	view.AltScreen = true

	if a.quitting {
		// Leave the alt screen with an empty frame
		view.AltScreen = false
		view.Content = lipgloss.NewLayer("")
		return view
	}

	if a.layout.Area.Dx() != a.width || a.layout.Area.Dy() != a.height {
		a.relayout()
	}

	canvas := uv.NewScreenBuffer(a.width, a.height)
	a.Draw(canvas, canvas.Bounds())
	view.Content = lipgloss.NewLayer(canvas.Render())
	return view
}

func (a *App) relayout() {
	a.layout = CalculateLayout(a.width, a.height)
	if !a.ui.Sidebar.Visible {
		a.layout = a.layout.WithoutSidebar()
	}
}

// toggleSidebar flips the sidebar preference and saves it.
func (a *App) toggleSidebar() {
	a.ui.Sidebar.Visible = !a.ui.Sidebar.Visible
	a.relayout()
	a.followFocus = true
	if a.uiDir == "" {
		return
	}
	if err := state.Save(a.uiDir, a.ui); err != nil {
		logger.Warn("Failed to save TUI state: %v", err)
	}
}

// Draw renders all components to the screen buffer.
func (a *App) Draw(scr uv.Screen, area uv.Rectangle) {
	step, total := a.ctrl.CurrentStep(), a.ctrl.TotalSteps()

	a.header.SetLayoutMode(a.layout.Mode)
	a.header.SetStep(step, total)
	a.header.Draw(scr, a.layout.Header)

	if a.completed {
		a.drawCompletion(scr)
		DrawText(scr, a.layout.Footer, " "+HintCompletion())
		return
	}

	a.indicator.SetCompact(a.layout.IsCompact())
	a.indicator.SetSteps(a.ctrl.Steps(), a.ctrl.Progress())
	a.indicator.Draw(scr, a.layout.Indicator)

	a.drawBody(scr, a.layout.Body, step)

	if !a.layout.Sidebar.Empty() {
		a.sidebar.SetDraft(a.ctrl.Snapshot())
		a.sidebar.Draw(scr, a.layout.Sidebar)
	}

	DrawText(scr, a.layout.Buttons, a.navigation(step, total))
	DrawText(scr, a.layout.Footer, " "+HintForm(step, total))

	if a.toast.IsVisible() && a.layout.Body.Dy() > 0 {
		row := uv.Rectangle{
			Min: uv.Position{X: area.Min.X, Y: a.layout.Body.Max.Y - 1},
			Max: uv.Position{X: area.Max.X, Y: a.layout.Body.Max.Y},
		}
		DrawText(scr, row, a.toast.View(row.Dx()))
	}

	a.dialog.Draw(scr, area)
}

// drawBody renders the current step's title, fields and errors, scrolled so
// the focused field stays visible.
func (a *App) drawBody(scr uv.Screen, area uv.Rectangle, step int) {
	if area.Dy() < 2 {
		return
	}

	def := a.stepDef(step)
	inner := DrawPanel(scr, area, def.Title)
	inner.Min.X++

	content, focusStart, focusEnd := a.bodyContent(step, inner.Dx())
	a.body.SetWidth(inner.Dx())
	a.body.SetHeight(inner.Dy())
	a.body.SetContent(content)

	if a.followFocus {
		a.followFocus = false
		switch {
		case focusStart < a.body.YOffset():
			a.body.SetYOffset(focusStart)
		case focusEnd >= a.body.YOffset()+inner.Dy():
			a.body.SetYOffset(focusEnd - inner.Dy() + 1)
		}
	}

	DrawText(scr, inner, a.body.View())
	if a.body.TotalLineCount() > inner.Dy() {
		DrawScrollIndicator(scr, inner, a.body.ScrollPercent())
	}
}

// bodyContent returns the body text and the line range of the focused field.
func (a *App) bodyContent(step, width int) (string, int, int) {
	s := theme.Current().S()
	d := a.ctrl.Snapshot()
	errs := a.ctrl.Errors()

	var lines []string
	add := func(text string) {
		lines = append(lines, strings.Split(text, "\n")...)
	}

	add(s.StepDescription.Render(a.stepDef(step).Description))
	add("")

	if step == validate.StepSummary {
		add(renderMarkdown(buildform.Summary(d), width))
		add("")
	}

	if step == validate.StepPerformance && len(a.fields) == 0 {
		add(s.FieldMuted.Render("No specific performance questions for your selected use cases."))
		add(s.FieldMuted.Render("Press " + KeyCtrlN + " to continue."))
	}

	shown := make(map[string]bool, len(a.fields))
	focusStart, focusEnd := 0, 0
	for i, f := range a.fields {
		if i == a.focus {
			focusStart = len(lines)
		}
		add(f.View(d, i == a.focus, width))
		if msg, ok := errs.For(f.Key()); ok {
			add("    " + s.FieldError.Render("✗ "+msg))
		}
		if i == a.focus {
			focusEnd = len(lines) - 1
		}
		shown[f.Key()] = true
		add("")
	}

	// Errors for answers without a field of their own on this step
	for _, e := range errs {
		if !shown[e.Field] {
			add("  " + s.FieldError.Render("✗ "+e.Message))
		}
	}

	return strings.Join(lines, "\n"), focusStart, focusEnd
}

func (a *App) stepDef(step int) wizard.StepDef {
	for _, st := range a.ctrl.Steps() {
		if st.ID == step {
			return st.StepDef
		}
	}
	return wizard.StepDef{ID: step}
}

// navigation renders the back/next row or the submission progress.
func (a *App) navigation(step, total int) string {
	if a.submitting {
		return " " + a.spinner.View() + " " + theme.Current().S().FieldValue.Render("Submitting...")
	}

	next := "Next (" + KeyCtrlN + ")"
	if step == total {
		next = "Submit (" + KeyCtrlS + ")"
	}
	bar := NewButtonBar("Back ("+KeyCtrlB+")", next)
	bar.SetWidth(a.layout.Buttons.Dx())
	bar.SetDisabled(0, step <= 1)
	bar.setFocus(1)
	return bar.Render()
}

func (a *App) drawCompletion(scr uv.Screen) {
	s := theme.Current().S()
	area := uv.Rectangle{
		Min: a.layout.Indicator.Min,
		Max: uv.Position{X: a.layout.Area.Max.X, Y: a.layout.Buttons.Max.Y},
	}
	if area.Dy() < 1 {
		return
	}

	a.buttons.SetWidth(area.Dx())
	content := lipgloss.JoinVertical(lipgloss.Center,
		s.Success.Render("✓ Build Submitted!"),
		"",
		s.FieldValue.Render("Your PC build recommendations are being generated."),
		s.FieldMuted.Render("Check your email shortly!"),
		"",
		a.buttons.Render(),
	)
	DrawText(scr, area, lipgloss.Place(area.Dx(), area.Dy(), lipgloss.Center, lipgloss.Center, content))

	if a.toast.IsVisible() {
		row := uv.Rectangle{
			Min: uv.Position{X: area.Min.X, Y: area.Max.Y - 1},
			Max: area.Max,
		}
		DrawText(scr, row, a.toast.View(row.Dx()))
	}
}
