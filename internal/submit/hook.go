package submit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/rigwizard/internal/buildform"
	"github.com/mark3labs/rigwizard/internal/hooks"
	"github.com/mark3labs/rigwizard/internal/logger"
)

// HookEndpoint pipes each build as JSON into the configured on_submit
// commands. A failing command fails the submission.
type HookEndpoint struct {
	Hooks   []*hooks.HookConfig
	WorkDir string
	Profile string
}

func (e *HookEndpoint) Submit(ctx context.Context, build buildform.Build) error {
	sub := NewSubmission(e.Profile, build)

	data, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("failed to marshal submission: %w", err)
	}

	out, err := hooks.ExecuteAll(ctx, e.Hooks, e.WorkDir, variables(sub), data)
	if err != nil {
		return fmt.Errorf("on_submit hook: %w", err)
	}
	if out != "" {
		logger.Debug("on_submit output: %s", out)
	}
	return nil
}

// CompletionHooks returns an OnComplete callback running the on_complete
// commands. Failures are logged and never reach the user.
func CompletionHooks(cfg *hooks.Config, workDir, profile string) func(buildform.Build) {
	if cfg == nil || len(cfg.Hooks.OnComplete) == 0 {
		return nil
	}
	return func(build buildform.Build) {
		sub := NewSubmission(profile, build)
		data, err := json.Marshal(sub)
		if err != nil {
			logger.Warn("Failed to marshal completed build: %v", err)
			return
		}
		if _, err := hooks.ExecuteAll(context.Background(), cfg.Hooks.OnComplete, workDir, variables(sub), data); err != nil {
			logger.Warn("on_complete hook failed: %v", err)
		}
	}
}

func variables(sub Submission) hooks.Variables {
	return hooks.Variables{
		Profile:      sub.Profile,
		SubmissionID: sub.ID,
		Email:        buildform.Text(sub.Build.Email),
	}
}
