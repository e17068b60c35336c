package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/rigwizard/internal/notify"
	"github.com/mark3labs/rigwizard/internal/tui/theme"
)

// DefaultToastDuration applies to notifications without a duration.
const DefaultToastDuration = 4 * time.Second

// ToastDismissMsg is sent when the toast should be dismissed. Seq ties the
// message to the toast it was scheduled for.
type ToastDismissMsg struct {
	Seq int
}

// ShowToastMsg is sent to show a toast notification.
type ShowToastMsg struct {
	Notification notify.Notification
}

// Toast shows one notification in the bottom-right corner until it expires
// or a newer one replaces it.
type Toast struct {
	current notify.Notification
	visible bool
	seq     int
}

// NewToast creates a new Toast component.
func NewToast() *Toast {
	return &Toast{}
}

// Show displays n and schedules its dismissal.
func (t *Toast) Show(n notify.Notification) tea.Cmd {
	t.current = n
	t.visible = true
	t.seq++

	d := n.Duration
	if d <= 0 {
		d = DefaultToastDuration
	}
	seq := t.seq
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ToastDismissMsg{Seq: seq}
	})
}

// Update handles messages for the toast component.
func (t *Toast) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case ShowToastMsg:
		return t.Show(msg.Notification)
	case ToastDismissMsg:
		// A newer toast replaced the one this dismissal was scheduled for
		if msg.Seq != t.seq {
			return nil
		}
		t.visible = false
		t.current = notify.Notification{}
	}
	return nil
}

// View renders the toast right-aligned within width.
// Returns empty string if toast is not visible.
func (t *Toast) View(width int) string {
	if !t.visible {
		return ""
	}

	s := theme.Current().S()
	style := s.ToastInfo
	if t.current.Kind == notify.KindError {
		style = s.ToastError
	}

	text := t.current.Title
	if t.current.Message != "" {
		text += ": " + t.current.Message
	}

	content := style.Render(text)
	if lipgloss.Width(content) > width-2 && width > 4 {
		content = style.Width(width - 2).Render(text)
	}

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Right).
		PaddingRight(1).
		Render(content)
}

// IsVisible returns whether the toast is currently visible.
func (t *Toast) IsVisible() bool {
	return t.visible
}

// Current returns the notification on display.
func (t *Toast) Current() notify.Notification {
	return t.current
}
