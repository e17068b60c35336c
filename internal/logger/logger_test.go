package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
		wantErr  bool
	}{
		{"debug", LevelDebug, false},
		{"DEBUG", LevelDebug, false},
		{"info", LevelInfo, false},
		{"", LevelInfo, false},
		{"warn", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{" ERROR ", LevelError, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr && err == nil {
				t.Errorf("expected error for input %q", tt.input)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error for input %q: %v", tt.input, err)
			}
			if !tt.wantErr && got != tt.expected {
				t.Errorf("expected %v, got %v for input %q", tt.expected, got, tt.input)
			}
		})
	}
}

func TestLogger_SetLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := New()
	l.SetOutput(&buf)
	l.SetLevel(LevelWarn)

	l.Debug("draft saved")
	l.Info("draft restored")
	l.Warn("store unavailable")
	l.Error("submission failed")

	output := buf.String()
	if strings.Contains(output, "draft saved") || strings.Contains(output, "draft restored") {
		t.Errorf("debug/info should be filtered at WARN, got %q", output)
	}
	if !strings.Contains(output, "[WARN] store unavailable") {
		t.Errorf("missing warn line in %q", output)
	}
	if !strings.Contains(output, "[ERROR] submission failed") {
		t.Errorf("missing error line in %q", output)
	}
}

func TestLogger_EnvVarLogLevel(t *testing.T) {
	t.Setenv("RIGWIZARD_LOG_LEVEL", "debug")

	l := New()
	if l.level != LevelDebug {
		t.Errorf("expected debug level from env var, got %v", l.level)
	}
}

func TestLogger_ConfigureWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rigwizard.log")

	l := New()
	if err := l.Configure("debug", path); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	l.Debug("step %d advanced", 2)
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(content), "[DEBUG] step 2 advanced") {
		t.Errorf("log file missing message, got %q", content)
	}
}

func TestLogger_ConfigureRejectsBadLevel(t *testing.T) {
	l := New()
	if err := l.Configure("verbose", ""); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestPackageLevelFunctions(t *testing.T) {
	var buf bytes.Buffer
	Default.SetOutput(&buf)
	Default.SetLevel(LevelDebug)
	defer Default.SetLevel(LevelInfo)

	Debug("debug %s", "test")
	Info("info %s", "test")
	Warn("warn %s", "test")
	Error("error %s", "test")

	output := buf.String()
	for _, want := range []string{"debug test", "info test", "warn test", "error test"} {
		if !strings.Contains(output, want) {
			t.Errorf("output should contain %q", want)
		}
	}
}
