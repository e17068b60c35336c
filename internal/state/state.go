// Package state persists TUI preferences between runs. Preferences are
// shared by every profile using the same data directory.
package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mark3labs/rigwizard/internal/logger"
)

// FileName is the preferences file inside the data directory.
const FileName = "tui-state.json"

// UIState holds the preferences the TUI restores on start.
type UIState struct {
	Sidebar SidebarState `json:"sidebar"`
}

// SidebarState holds the answers sidebar preference. The sidebar is only
// ever drawn in desktop layout.
type SidebarState struct {
	Visible bool `json:"visible"`
}

// Default returns the preferences used when nothing is saved.
func Default() *UIState {
	return &UIState{Sidebar: SidebarState{Visible: true}}
}

// Path returns the preferences file for dataDir.
func Path(dataDir string) string {
	return filepath.Join(dataDir, FileName)
}

// Load reads the preferences saved under dataDir. A missing or unreadable
// file yields the defaults; keys missing from the file keep their default.
func Load(dataDir string) *UIState {
	s := Default()

	data, err := os.ReadFile(Path(dataDir))
	if errors.Is(err, os.ErrNotExist) {
		return s
	}
	if err != nil {
		logger.Warn("Failed to read TUI state: %v", err)
		return s
	}

	if err := json.Unmarshal(data, s); err != nil {
		logger.Warn("Failed to parse TUI state: %v", err)
		return Default()
	}
	return s
}

// Save writes s under dataDir, creating the directory if needed.
func Save(dataDir string, s *UIState) error {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling TUI state: %w", err)
	}

	path := Path(dataDir)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing TUI state: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replacing TUI state: %w", err)
	}

	logger.Debug("TUI state saved to %s", path)
	return nil
}
