package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gosimple/slug"
	"github.com/mark3labs/rigwizard/internal/config"
	rwerrors "github.com/mark3labs/rigwizard/internal/errors"
	"github.com/mark3labs/rigwizard/internal/hooks"
	"github.com/mark3labs/rigwizard/internal/logger"
	"github.com/mark3labs/rigwizard/internal/nats"
	"github.com/mark3labs/rigwizard/internal/notify"
	"github.com/mark3labs/rigwizard/internal/ratelimit"
	"github.com/mark3labs/rigwizard/internal/store"
	"github.com/mark3labs/rigwizard/internal/submit"
	"github.com/mark3labs/rigwizard/internal/wizard"
	"github.com/spf13/cobra"
)

// globalFlags override the loaded configuration when set.
var globalFlags struct {
	profile  string
	dataDir  string
	store    string
	endpoint string
}

// loadConfig loads the layered configuration, applies command-line
// overrides, validates the result and configures the logger.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	applyFlags(cmd, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		return nil, fmt.Errorf("configuring logger: %w", err)
	}
	return cfg, nil
}

// applyFlags copies the global flags the user set onto cfg.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("profile") {
		cfg.Profile = globalFlags.profile
	}
	if flags.Changed("data-dir") {
		cfg.DataDir = globalFlags.dataDir
	}
	if flags.Changed("store") {
		cfg.Store = globalFlags.store
	}
	if flags.Changed("endpoint") {
		cfg.Endpoint = globalFlags.endpoint
	}
}

// draftKey is the store key for a profile's draft. The default profile
// uses the bare key.
func draftKey(profile string) string {
	if profile == "" || profile == "default" {
		return wizard.DefaultDraftKey
	}
	return wizard.DefaultDraftKey + "." + slug.Make(profile)
}

// runtime holds the collaborators a controller is built from.
type runtime struct {
	cfg      *config.Config
	workDir  string
	nats     *nats.Embedded
	store    store.Store
	hooks    *hooks.Config
	endpoint wizard.Endpoint
}

// openRuntime starts NATS when the config needs it and opens the draft
// store, the hooks config and the submission endpoint.
func openRuntime(ctx context.Context, cfg *config.Config) (_ *runtime, err error) {
	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}
	rt := &runtime{cfg: cfg, workDir: workDir}
	defer func() {
		if err != nil {
			_ = rt.Close()
		}
	}()

	if cfg.NeedsNATS() {
		logger.Debug("Starting embedded NATS in %s", cfg.DataDir)
		if rt.nats, err = nats.Start(cfg.DataDir); err != nil {
			return nil, err
		}
	}

	opts := store.Options{Kind: store.Kind(cfg.Store), DataDir: cfg.DataDir}
	if rt.nats != nil {
		opts.JetStream = rt.nats.JS
	}
	if rt.store, err = store.Open(ctx, opts); err != nil {
		return nil, fmt.Errorf("opening %s store: %w", cfg.Store, err)
	}

	if rt.hooks, err = hooks.LoadConfig(workDir, cfg.HooksFile); err != nil {
		return nil, err
	}

	sopts := submit.Options{
		Kind:    submit.Kind(cfg.Endpoint),
		Profile: cfg.Profile,
		Hooks:   rt.hooks,
		WorkDir: workDir,
		Delay:   cfg.SubmitDelay,
	}
	if rt.nats != nil {
		sopts.JetStream = rt.nats.JS
	}
	if rt.endpoint, err = submit.Open(ctx, sopts); err != nil {
		return nil, fmt.Errorf("opening %s endpoint: %w", cfg.Endpoint, err)
	}

	logger.Info("Profile %s: store=%s endpoint=%s", cfg.Profile, cfg.Store, cfg.Endpoint)
	return rt, nil
}

// controller builds a wizard controller on top of the runtime.
func (rt *runtime) controller(sink notify.Sink, onScrollTop func()) *wizard.Controller {
	return wizard.New(wizard.Options{
		Store:       rt.store,
		Notifier:    sink,
		Endpoint:    rt.endpoint,
		Limiter:     ratelimit.New(rt.cfg.RateLimit.MaxRequests, rt.cfg.RateLimit.Window, ratelimit.SystemClock),
		OnComplete:  submit.CompletionHooks(rt.hooks, rt.workDir, rt.cfg.Profile),
		OnScrollTop: onScrollTop,
		DraftKey:    draftKey(rt.cfg.Profile),
	})
}

// Close releases the store and stops NATS.
func (rt *runtime) Close() error {
	var errs rwerrors.MultiError
	if rt.store != nil {
		if err := rt.store.Close(); err != nil {
			errs.Append(fmt.Errorf("closing store: %w", err))
		}
	}
	if rt.nats != nil {
		if err := rt.nats.Close(); err != nil {
			errs.Append(fmt.Errorf("stopping NATS: %w", err))
		}
	}
	return errs.ErrorOrNil()
}
