package testfixtures

import (
	"strings"
	"testing"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
)

// Initialize test environment
func init() {
	// Ascii profile keeps rendered output free of escape sequences
	lipgloss.Writer.Profile = colorprofile.Ascii
}

// Canonical terminal size for all tests
const (
	TestTermWidth  = 120
	TestTermHeight = 40
)

// Conservative timeout for WaitFor (CI compatibility)
const (
	DefaultWaitDuration  = 5 * time.Second
	DefaultCheckInterval = 10 * time.Millisecond
)

// Contains checks if a string contains a substring.
func Contains(s, substr string) bool {
	return strings.Contains(s, substr)
}

// RenderContent draws content onto a canonical-size screen buffer and
// returns the rendered text with styling stripped.
func RenderContent(content string) string {
	canvas := uv.NewScreenBuffer(TestTermWidth, TestTermHeight)
	uv.NewStyledString(content).Draw(canvas, uv.Rectangle{
		Min: uv.Position{X: 0, Y: 0},
		Max: uv.Position{X: TestTermWidth, Y: TestTermHeight},
	})
	return ansi.Strip(canvas.Render())
}

// WaitFor polls cond until it holds or DefaultWaitDuration passes.
func WaitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(DefaultWaitDuration)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(DefaultCheckInterval)
	}
	t.Fatalf("condition not met within %s", DefaultWaitDuration)
}

// Plain strips styling from rendered output.
func Plain(s string) string {
	return ansi.Strip(s)
}
