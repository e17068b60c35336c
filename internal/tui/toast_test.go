package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/rigwizard/internal/notify"
)

func TestToast_ShowDisplaysMessage(t *testing.T) {
	toast := NewToast()

	cmd := toast.Show(notify.Notification{Kind: notify.KindInfo, Title: "Saved", Message: "all good"})

	if !toast.IsVisible() {
		t.Error("expected toast to be visible after Show()")
	}
	if toast.Current().Title != "Saved" {
		t.Errorf("expected title 'Saved', got %q", toast.Current().Title)
	}
	if cmd == nil {
		t.Error("expected Show() to return a command for dismissal")
	}
}

func TestToast_ViewReturnsEmptyWhenNotVisible(t *testing.T) {
	toast := NewToast()

	if view := toast.View(80); view != "" {
		t.Errorf("expected empty view when not visible, got %q", view)
	}
}

func TestToast_ViewRendersTitleAndMessage(t *testing.T) {
	toast := NewToast()
	toast.Show(notify.Notification{Kind: notify.KindError, Title: "Rate Limit Exceeded", Message: "Please wait before submitting again."})

	view := toast.View(120)
	if !strings.Contains(view, "Rate Limit Exceeded: Please wait before submitting again.") {
		t.Errorf("expected view to contain notification, got %q", view)
	}
}

func TestToast_DismissMsgHidesToast(t *testing.T) {
	toast := NewToast()
	toast.Show(notify.Notification{Title: "first"})

	toast.Update(ToastDismissMsg{Seq: 1})

	if toast.IsVisible() {
		t.Error("expected toast to be hidden after dismiss")
	}
}

func TestToast_StaleDismissIgnored(t *testing.T) {
	toast := NewToast()
	toast.Show(notify.Notification{Title: "first"})
	toast.Show(notify.Notification{Title: "second"})

	// The first toast's timer fires after the second replaced it
	toast.Update(ToastDismissMsg{Seq: 1})

	if !toast.IsVisible() || toast.Current().Title != "second" {
		t.Errorf("expected second toast to stay visible, got %+v", toast.Current())
	}
}

func TestToast_ShowToastMsg(t *testing.T) {
	toast := NewToast()

	cmd := toast.Update(ShowToastMsg{Notification: notify.Notification{Title: "Success!", Duration: time.Millisecond}})
	if cmd == nil {
		t.Fatal("expected dismissal command")
	}
	msg := cmd()
	toast.Update(msg)
	if toast.IsVisible() {
		t.Error("expected toast to be dismissed by its own timer")
	}
}
