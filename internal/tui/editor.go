package tui

import (
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/editor"
	"github.com/mark3labs/rigwizard/internal/logger"
)

// NotesEditedMsg is sent when the external editor returns.
type NotesEditedMsg struct {
	Content string
	Err     error
}

// editNotes opens the user's $EDITOR on the current notes.
func editNotes(content string) tea.Cmd {
	tmpfile, err := os.CreateTemp("", "rigwizard_notes_*.md")
	if err != nil {
		return editFailed(err)
	}
	path := tmpfile.Name()

	if _, err := tmpfile.WriteString(content); err != nil {
		_ = tmpfile.Close()
		_ = os.Remove(path)
		return editFailed(err)
	}
	_ = tmpfile.Close()

	cmd, err := editor.Command("rigwizard", path)
	if err != nil {
		_ = os.Remove(path)
		return editFailed(err)
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		defer func() { _ = os.Remove(path) }()
		if err != nil {
			return NotesEditedMsg{Err: fmt.Errorf("running editor: %w", err)}
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return NotesEditedMsg{Err: fmt.Errorf("reading notes: %w", err)}
		}
		return NotesEditedMsg{Content: strings.TrimSpace(string(data))}
	})
}

func editFailed(err error) tea.Cmd {
	logger.Warn("Cannot open editor: %v", err)
	return func() tea.Msg {
		return NotesEditedMsg{Err: err}
	}
}
