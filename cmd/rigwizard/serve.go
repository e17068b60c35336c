package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	rwerrors "github.com/mark3labs/rigwizard/internal/errors"
	"github.com/mark3labs/rigwizard/internal/mcpserver"
	"github.com/mark3labs/rigwizard/internal/notify"
	"github.com/spf13/cobra"
)

var serveFlags struct {
	addr string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Expose the wizard as MCP tools over HTTP",
	Long: `Start an MCP server that lets an agent fill in and submit a build.

The server drives the same wizard the TUI does: the draft is restored from
and saved to the configured store, and submissions go to the configured
endpoint. Stop it with Ctrl+C.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveFlags.addr, "addr", "a", mcpserver.DefaultAddr, "Listen address")
}

func runServe(cmd *cobra.Command, args []string) (err error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rt, err := openRuntime(ctx, cfg)
	if err != nil {
		return err
	}

	notes := &notify.Recorder{}
	ctrl := rt.controller(notify.Multi{notes, notify.LogSink{}}, nil)
	ctrl.Initialize(ctx)

	srv := mcpserver.New(ctrl, notes, serveFlags.addr)
	if _, err := srv.Start(ctx); err != nil {
		_ = rt.Close()
		return fmt.Errorf("failed to start MCP server: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		var errs rwerrors.MultiError
		errs.Append(err)
		errs.Append(srv.Stop(shutdownCtx))
		errs.Append(rt.Close())
		err = errs.ErrorOrNil()
	}()

	fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on %s (profile %s)\n", srv.URL(), cfg.Profile)

	<-ctx.Done()
	fmt.Fprintln(cmd.OutOrStdout(), "\nShutting down gracefully...")
	return nil
}
