package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/aymanbagabas/go-udiff"
	"github.com/charmbracelet/colorprofile"
	"github.com/mark3labs/rigwizard/internal/buildform"
	"github.com/mark3labs/rigwizard/internal/notify"
	"github.com/mark3labs/rigwizard/internal/store"
	"github.com/mark3labs/rigwizard/internal/tui"
	"github.com/spf13/cobra"
)

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Inspect and edit the saved draft",
	Long: `Inspect and edit the draft the wizard saves between runs.

Each profile keeps its own draft in the configured store.`,
}

var draftShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved draft as JSON",
	Args:  cobra.NoArgs,
	RunE:  runDraftShow,
}

var draftClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the saved draft",
	Args:  cobra.NoArgs,
	RunE:  runDraftClear,
}

var draftApplyCmd = &cobra.Command{
	Use:   "apply <answers.yml>",
	Short: "Merge answers from a YAML or JSON file into the saved draft",
	Long: `Merge answers from a YAML or JSON file into the saved draft and print
what changed. Field names follow the draft JSON (budget, primaryUse,
gamingPerformance, ...). Use "-" to read from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runDraftApply,
}

func init() {
	draftCmd.AddCommand(draftShowCmd)
	draftCmd.AddCommand(draftClearCmd)
	draftCmd.AddCommand(draftApplyCmd)
}

// withRuntime loads the config, opens the runtime for fn and closes it after.
func withRuntime(cmd *cobra.Command, fn func(rt *runtime) error) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	rt, err := openRuntime(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	err = fn(rt)
	if cerr := rt.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

func runDraftShow(cmd *cobra.Command, args []string) error {
	return withRuntime(cmd, func(rt *runtime) error {
		data, err := rt.store.Load(cmd.Context(), draftKey(rt.cfg.Profile))
		if errors.Is(err, store.ErrNotFound) {
			fmt.Fprintf(cmd.ErrOrStderr(), "No saved draft for profile %s\n", rt.cfg.Profile)
			return nil
		}
		if err != nil {
			return fmt.Errorf("loading draft: %w", err)
		}

		d, err := buildform.Unmarshal(data)
		if err != nil {
			return err
		}
		out, err := prettyDraft(d)
		if err != nil {
			return err
		}

		if isColorTerminal(cmd) {
			out = tui.Highlight(out, "draft.json") + "\n"
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), out)
		return err
	})
}

func runDraftClear(cmd *cobra.Command, args []string) error {
	return withRuntime(cmd, func(rt *runtime) error {
		err := rt.store.Remove(cmd.Context(), draftKey(rt.cfg.Profile))
		if errors.Is(err, store.ErrNotFound) {
			fmt.Fprintf(cmd.OutOrStdout(), "No saved draft for profile %s\n", rt.cfg.Profile)
			return nil
		}
		if err != nil {
			return fmt.Errorf("clearing draft: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Cleared draft for profile %s\n", rt.cfg.Profile)
		return nil
	})
}

func runDraftApply(cmd *cobra.Command, args []string) error {
	partial, err := readAnswers(args[0], cmd.InOrStdin())
	if err != nil {
		return err
	}

	return withRuntime(cmd, func(rt *runtime) error {
		ctrl := rt.controller(notify.LogSink{}, nil)
		ctrl.Initialize(cmd.Context())

		before, err := prettyDraft(ctrl.Snapshot())
		if err != nil {
			return err
		}
		ctrl.UpdateDraft(partial)
		after, err := prettyDraft(ctrl.Snapshot())
		if err != nil {
			return err
		}

		if before == after {
			fmt.Fprintln(cmd.OutOrStdout(), "Draft unchanged")
			return nil
		}
		diff := udiff.Unified("saved", "applied", before, after)
		_, err = fmt.Fprint(cmd.OutOrStdout(), diff)
		return err
	})
}

// isColorTerminal reports whether stdout is a terminal that takes colors.
func isColorTerminal(cmd *cobra.Command) bool {
	if cmd.OutOrStdout() != os.Stdout {
		return false
	}
	p := colorprofile.Detect(os.Stdout, os.Environ())
	return p != colorprofile.NoTTY && p != colorprofile.Ascii
}
