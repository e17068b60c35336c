package hooks

// Config is the top-level configuration loaded from .rigwizard.hooks.yml.
type Config struct {
	Version int         `yaml:"version"`
	Hooks   HooksConfig `yaml:"hooks"`
}

// HooksConfig contains all hook configurations.
type HooksConfig struct {
	// OnSubmit commands receive the build as JSON on stdin. Any failure
	// fails the submission.
	OnSubmit []*HookConfig `yaml:"on_submit"`
	// OnComplete commands run after a successful submission. Failures are
	// only logged.
	OnComplete []*HookConfig `yaml:"on_complete"`
}

// HookConfig defines a single hook's configuration.
type HookConfig struct {
	Command string `yaml:"command"`
	Timeout int    `yaml:"timeout"` // seconds, default 30
}

// DefaultTimeout is the default timeout for hook execution in seconds.
const DefaultTimeout = 30
