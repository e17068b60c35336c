package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/mark3labs/rigwizard/internal/buildform"
	"github.com/mark3labs/rigwizard/internal/notify"
	"github.com/mark3labs/rigwizard/internal/validate"
	"github.com/mark3labs/rigwizard/internal/wizard"
	"github.com/spf13/cobra"
)

var submitFlags struct {
	answers    string
	noDefaults bool
}

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit a build without the TUI",
	Long: `Walk the wizard headlessly and submit the build.

Answers from --answers are merged into the saved draft, then every step is
validated in order exactly as the TUI would. Unanswered fields get the same
defaults the TUI offers unless --no-defaults is set.`,
	Args: cobra.NoArgs,
	RunE: runSubmit,
}

func init() {
	submitCmd.Flags().StringVarP(&submitFlags.answers, "answers", "a", "", "YAML or JSON answers file (- for stdin)")
	submitCmd.Flags().BoolVar(&submitFlags.noDefaults, "no-defaults", false, "Do not fill unanswered fields with step defaults")
}

func runSubmit(cmd *cobra.Command, args []string) error {
	var partial buildform.Draft
	if submitFlags.answers != "" {
		var err error
		if partial, err = readAnswers(submitFlags.answers, cmd.InOrStdin()); err != nil {
			return err
		}
	}

	return withRuntime(cmd, func(rt *runtime) error {
		ctx := cmd.Context()
		stderr := cmd.ErrOrStderr()
		sink := notify.Multi{notify.LogSink{}, notify.SinkFunc(func(n notify.Notification) {
			fmt.Fprintf(stderr, "%s: %s\n", n.Title, n.Message)
		})}

		ctrl := rt.controller(sink, nil)
		ctrl.Initialize(ctx)
		ctrl.UpdateDraft(partial)

		if err := walkSteps(ctrl, !submitFlags.noDefaults, stderr); err != nil {
			return err
		}

		if err := ctrl.Submit(ctx); err != nil {
			var verrs validate.Errors
			if errors.As(err, &verrs) {
				printErrors(stderr, ctrl.CurrentStep(), verrs)
				return fmt.Errorf("review step is incomplete")
			}
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Build submitted for profile %s\n", rt.cfg.Profile)
		return nil
	})
}

// walkSteps advances ctrl to the last step, filling step defaults first
// when withDefaults is set. The first step that fails validation stops the
// walk.
func walkSteps(ctrl *wizard.Controller, withDefaults bool, w io.Writer) error {
	for {
		step := ctrl.CurrentStep()
		if withDefaults {
			if d := buildform.StepDefaults(step, ctrl.Snapshot()); !d.IsEmpty() {
				ctrl.UpdateDraft(d)
			}
		}
		if step >= ctrl.TotalSteps() {
			return nil
		}

		if err := ctrl.Advance(); err != nil {
			var verrs validate.Errors
			if errors.As(err, &verrs) {
				printErrors(w, step, verrs)
				return fmt.Errorf("step %d is incomplete", step)
			}
			return err
		}
	}
}

func printErrors(w io.Writer, step int, errs validate.Errors) {
	for _, e := range errs {
		fmt.Fprintf(w, "  step %d, %s: %s\n", step, e.Field, e.Message)
	}
}
