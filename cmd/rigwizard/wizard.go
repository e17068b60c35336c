package main

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	rwerrors "github.com/mark3labs/rigwizard/internal/errors"
	"github.com/mark3labs/rigwizard/internal/logger"
	"github.com/mark3labs/rigwizard/internal/notify"
	"github.com/mark3labs/rigwizard/internal/tui"
	"github.com/spf13/cobra"
)

func runWizard(cmd *cobra.Command, args []string) (err error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	rt, err := openRuntime(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		var errs rwerrors.MultiError
		errs.Append(err)
		errs.Append(rt.Close())
		err = errs.ErrorOrNil()
	}()

	notes := &notify.Recorder{}
	var app *tui.App
	ctrl := rt.controller(notify.Multi{notes, notify.LogSink{}}, func() {
		if app != nil {
			app.ScrollTop()
		}
	})
	app = tui.NewApp(ctx, ctrl, notes, cfg.Profile)
	app.LoadUIState(cfg.DataDir)
	ctrl.Initialize(ctx)

	logger.Debug("Starting TUI")
	if _, err := tea.NewProgram(app).Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
