package state

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Missing(t *testing.T) {
	s := Load(filepath.Join(t.TempDir(), "nope"))
	if s == nil {
		t.Fatal("Load returned nil for a missing file")
	}
	if !s.Sidebar.Visible {
		t.Error("Expected sidebar to be visible by default")
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()

	if err := Save(dir, &UIState{Sidebar: SidebarState{Visible: false}}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := os.Stat(Path(dir)); err != nil {
		t.Fatalf("State file was not created: %v", err)
	}
	if _, err := os.Stat(Path(dir) + ".tmp"); !os.IsNotExist(err) {
		t.Error("Temporary file should be renamed away")
	}

	if Load(dir).Sidebar.Visible {
		t.Error("Loaded state does not match saved state")
	}
}

func TestSave_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	if err := Save(dir, Default()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := os.Stat(Path(dir)); err != nil {
		t.Errorf("State file was not created: %v", err)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(Path(dir), []byte("invalid json {{{"), 0644); err != nil {
		t.Fatalf("Failed to write invalid JSON: %v", err)
	}

	if !Load(dir).Sidebar.Visible {
		t.Error("Expected defaults when the file is not valid JSON")
	}
}

func TestLoad_MissingKeysKeepDefaults(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(Path(dir), []byte(`{}`), 0644); err != nil {
		t.Fatalf("Failed to write state: %v", err)
	}

	if !Load(dir).Sidebar.Visible {
		t.Error("Expected the default to survive an empty document")
	}
}
