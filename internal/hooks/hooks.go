package hooks

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/mark3labs/rigwizard/internal/logger"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the default name of the hooks configuration file.
const ConfigFileName = ".rigwizard.hooks.yml"

// ErrTimeout is returned when a hook runs past its timeout.
var ErrTimeout = errors.New("hook timed out")

// LoadConfig loads the hooks configuration from path. A relative path is
// resolved against workDir; an empty path means ConfigFileName.
// Returns nil if the file doesn't exist (hooks are optional).
func LoadConfig(workDir, path string) (*Config, error) {
	if path == "" {
		path = ConfigFileName
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(workDir, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug("No hooks config found at %s", path)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read hooks config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse hooks config: %w", err)
	}

	logger.Debug("Loaded hooks config from %s (version: %d)", path, cfg.Version)
	return &cfg, nil
}

// Variables holds values expanded into hook commands.
type Variables struct {
	Profile      string
	SubmissionID string
	Email        string
}

// Execute runs a hook command with stdin attached and returns its stdout.
// Template variables ({{profile}}, {{submission_id}}, {{email}}) are expanded
// before execution. A non-zero exit or a timeout is an error carrying stderr.
func Execute(ctx context.Context, hook *HookConfig, workDir string, vars Variables, stdin []byte) (string, error) {
	if hook == nil || hook.Command == "" {
		return "", nil
	}

	command := expandVariables(hook.Command, vars)
	logger.Debug("Executing hook command: %s", command)

	timeout := hook.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	execCtx, cancel := context.WithTimeout(ctx, time.Duration(timeout)*time.Second)
	defer cancel()

	cmd := exec.CommandContext(execCtx, "sh", "-c", command)
	cmd.Dir = workDir
	cmd.Stdin = bytes.NewReader(stdin)
	// Children of sh may keep the output pipes open after it is killed.
	cmd.WaitDelay = time.Second

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	if errors.Is(execCtx.Err(), context.DeadlineExceeded) {
		logger.Warn("Hook command timed out after %ds: %s", timeout, command)
		return stdout.String(), fmt.Errorf("%w after %ds: %s", ErrTimeout, timeout, command)
	}

	if err != nil {
		logger.Warn("Hook command failed: %v", err)
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return stdout.String(), fmt.Errorf("hook %q: %w", command, err)
		}
		return stdout.String(), fmt.Errorf("hook %q: %w: %s", command, err, msg)
	}

	if stderr.Len() > 0 {
		logger.Debug("Hook stderr: %s", stderr.String())
	}
	logger.Debug("Hook executed successfully, output length: %d bytes", stdout.Len())
	return stdout.String(), nil
}

// ExecuteAll runs hooks in order, each with the same stdin, and stops at the
// first failure. Outputs of successful hooks are joined with blank lines.
func ExecuteAll(ctx context.Context, hooks []*HookConfig, workDir string, vars Variables, stdin []byte) (string, error) {
	var outputs []string
	for _, hook := range hooks {
		out, err := Execute(ctx, hook, workDir, vars, stdin)
		if err != nil {
			return strings.Join(outputs, "\n"), err
		}
		if out != "" {
			outputs = append(outputs, out)
		}
	}
	return strings.Join(outputs, "\n"), nil
}

// expandVariables replaces {{variable}} placeholders in the command string.
func expandVariables(command string, vars Variables) string {
	return strings.NewReplacer(
		"{{profile}}", vars.Profile,
		"{{submission_id}}", vars.SubmissionID,
		"{{email}}", vars.Email,
	).Replace(command)
}
