package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// isolate points the global and project config locations at a temp dir and
// clears the env overrides.
func isolate(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))
	for _, key := range envKeys {
		env := "RIGWIZARD_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		t.Setenv(env, "")
		_ = os.Unsetenv(env)
	}
	return tmpDir
}

func TestGlobalPath(t *testing.T) {
	tests := []struct {
		name        string
		xdgConfig   string
		wantContain string
	}{
		{
			name:        "with XDG_CONFIG_HOME set",
			xdgConfig:   "/custom/config",
			wantContain: "/custom/config/rigwizard/rigwizard.yml",
		},
		{
			name:        "without XDG_CONFIG_HOME",
			xdgConfig:   "",
			wantContain: ".config/rigwizard/rigwizard.yml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("XDG_CONFIG_HOME", tt.xdgConfig)

			got := GlobalPath()
			if tt.xdgConfig != "" {
				if got != tt.wantContain {
					t.Errorf("GlobalPath() = %v, want %v", got, tt.wantContain)
				}
				return
			}
			if !filepath.IsAbs(got) {
				t.Errorf("GlobalPath() should return absolute path, got %v", got)
			}
			if !strings.HasSuffix(got, tt.wantContain) {
				t.Errorf("GlobalPath() = %v, want suffix %v", got, tt.wantContain)
			}
		})
	}
}

func TestProjectPath(t *testing.T) {
	if got := ProjectPath(); got != "rigwizard.yml" {
		t.Errorf("ProjectPath() = %v, want rigwizard.yml", got)
	}
}

func TestExists(t *testing.T) {
	isolate(t)

	if Exists() {
		t.Fatal("Exists() = true, want false when no config files exist")
	}

	if err := os.WriteFile(ProjectPath(), []byte("profile: home\n"), 0644); err != nil {
		t.Fatalf("Failed to write project config: %v", err)
	}
	if !Exists() {
		t.Error("Exists() = false, want true when project config exists")
	}
	_ = os.Remove(ProjectPath())

	if err := WriteGlobal(Default()); err != nil {
		t.Fatalf("WriteGlobal() error = %v", err)
	}
	if !Exists() {
		t.Error("Exists() = false, want true when global config exists")
	}
}

func TestLoad_NoConfig(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := Default()
	if *cfg != *want {
		t.Errorf("Load() = %+v, want defaults %+v", *cfg, *want)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoad_ProjectOverridesGlobal(t *testing.T) {
	isolate(t)

	global := Default()
	global.Profile = "home"
	global.LogLevel = "warn"
	global.RateLimit.Window = 2 * time.Minute
	if err := WriteGlobal(global); err != nil {
		t.Fatalf("WriteGlobal() error = %v", err)
	}

	project := []byte("profile: office\nstore: sqlite\n")
	if err := os.WriteFile(ProjectPath(), project, 0644); err != nil {
		t.Fatalf("Failed to write project config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Profile != "office" {
		t.Errorf("Load() Profile = %v, want office", cfg.Profile)
	}
	if cfg.Store != "sqlite" {
		t.Errorf("Load() Store = %v, want sqlite", cfg.Store)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("Load() LogLevel = %v, want warn from global", cfg.LogLevel)
	}
	if cfg.RateLimit.Window != 2*time.Minute {
		t.Errorf("Load() RateLimit.Window = %v, want 2m", cfg.RateLimit.Window)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)

	if err := WriteProject(Default()); err != nil {
		t.Fatalf("WriteProject() error = %v", err)
	}
	t.Setenv("RIGWIZARD_ENDPOINT", "hook")
	t.Setenv("RIGWIZARD_SUBMIT_DELAY", "250ms")
	t.Setenv("RIGWIZARD_RATE_LIMIT_MAX_REQUESTS", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Endpoint != "hook" {
		t.Errorf("Load() Endpoint = %v, want hook", cfg.Endpoint)
	}
	if cfg.SubmitDelay != 250*time.Millisecond {
		t.Errorf("Load() SubmitDelay = %v, want 250ms", cfg.SubmitDelay)
	}
	if cfg.RateLimit.MaxRequests != 5 {
		t.Errorf("Load() RateLimit.MaxRequests = %v, want 5", cfg.RateLimit.MaxRequests)
	}
}

func TestWriteProject(t *testing.T) {
	isolate(t)

	cfg := Default()
	cfg.Profile = "studio"
	if err := WriteProject(cfg); err != nil {
		t.Fatalf("WriteProject() error = %v", err)
	}

	data, err := os.ReadFile(ProjectPath())
	if err != nil {
		t.Fatalf("reading project config: %v", err)
	}
	for _, want := range []string{"profile: studio", "rate_limit:", "max_requests: 3", "window: 1m0s"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("project config missing %q:\n%s", want, data)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "empty profile", mutate: func(c *Config) { c.Profile = " " }, wantErr: "profile is required"},
		{name: "unknown store", mutate: func(c *Config) { c.Store = "redis" }, wantErr: `unknown store "redis"`},
		{name: "unknown endpoint", mutate: func(c *Config) { c.Endpoint = "smtp" }, wantErr: `unknown endpoint "smtp"`},
		{name: "zero max requests", mutate: func(c *Config) { c.RateLimit.MaxRequests = 0 }, wantErr: "max_requests"},
		{name: "zero window", mutate: func(c *Config) { c.RateLimit.Window = 0 }, wantErr: "window"},
		{name: "negative delay", mutate: func(c *Config) { c.SubmitDelay = -time.Second }, wantErr: "submit_delay"},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: "invalid log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestNeedsNATS(t *testing.T) {
	cfg := Default()
	if cfg.NeedsNATS() {
		t.Error("default config should not need NATS")
	}
	cfg.Store = "nats"
	if !cfg.NeedsNATS() {
		t.Error("nats store should need NATS")
	}
	cfg = Default()
	cfg.Endpoint = "nats"
	if !cfg.NeedsNATS() {
		t.Error("nats endpoint should need NATS")
	}
}
