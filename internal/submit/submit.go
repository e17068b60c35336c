// Package submit implements the endpoints a finished build is handed to.
package submit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/rigwizard/internal/buildform"
	"github.com/mark3labs/rigwizard/internal/hooks"
	"github.com/mark3labs/rigwizard/internal/wizard"
	"github.com/nats-io/nats.go/jetstream"
)

// Submission is the envelope a build travels in.
type Submission struct {
	ID        string          `json:"id"`
	Timestamp time.Time       `json:"timestamp"`
	Profile   string          `json:"profile"`
	Build     buildform.Build `json:"build"`
}

// NewSubmission stamps build with a fresh id and the current time.
func NewSubmission(profile string, build buildform.Build) Submission {
	return Submission{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Profile:   profile,
		Build:     build,
	}
}

// Kind names an endpoint.
type Kind string

const (
	KindNATS      Kind = "nats"
	KindHook      Kind = "hook"
	KindSimulated Kind = "simulated"
)

// Options selects and configures an endpoint.
type Options struct {
	Kind    Kind
	Profile string

	// JetStream is required by the nats endpoint.
	JetStream jetstream.JetStream

	// Hooks and WorkDir configure the hook endpoint.
	Hooks   *hooks.Config
	WorkDir string

	// Delay is how long the simulated endpoint takes.
	Delay time.Duration
}

// Open creates the endpoint named by opts.Kind. An empty kind is simulated.
func Open(ctx context.Context, opts Options) (wizard.Endpoint, error) {
	switch opts.Kind {
	case KindSimulated, "":
		return &Simulated{Delay: opts.Delay}, nil
	case KindHook:
		if opts.Hooks == nil || len(opts.Hooks.Hooks.OnSubmit) == 0 {
			return nil, fmt.Errorf("hook endpoint requires on_submit hooks in %s", hooks.ConfigFileName)
		}
		return &HookEndpoint{Hooks: opts.Hooks.Hooks.OnSubmit, WorkDir: opts.WorkDir, Profile: opts.Profile}, nil
	case KindNATS:
		if opts.JetStream == nil {
			return nil, fmt.Errorf("nats endpoint requires a JetStream connection")
		}
		return NewJetStreamEndpoint(ctx, opts.JetStream, opts.Profile)
	default:
		return nil, fmt.Errorf("unknown endpoint %q", opts.Kind)
	}
}
