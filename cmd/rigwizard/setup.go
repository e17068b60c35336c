package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/rigwizard/internal/config"
	"github.com/mark3labs/rigwizard/internal/hooks"
	"github.com/mark3labs/rigwizard/internal/submit"
	"github.com/spf13/cobra"
)

var setupFlags struct {
	project bool
	force   bool
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create rigwizard configuration file",
	Long: `Create a rigwizard configuration file with sensible defaults.

By default, creates a global config at ~/.config/rigwizard/rigwizard.yml.
Use --project to create a project-local config in the current directory.
Values given with --profile, --store, --endpoint and --data-dir are written
into the file.`,
	Args: cobra.NoArgs,
	RunE: runSetup,
}

func init() {
	setupCmd.Flags().BoolVar(&setupFlags.project, "project", false, "Create config in current directory instead of global location")
	setupCmd.Flags().BoolVarP(&setupFlags.force, "force", "f", false, "Overwrite existing config file")
}

func runSetup(cmd *cobra.Command, args []string) error {
	targetPath := config.GlobalPath()
	if setupFlags.project {
		targetPath = config.ProjectPath()
	}

	if !setupFlags.force && fileExists(targetPath) {
		return fmt.Errorf("config file already exists at %s\n\nUse --force to overwrite", targetPath)
	}

	cfg := config.Default()
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	var err error
	if setupFlags.project {
		err = config.WriteProject(cfg)
	} else {
		err = config.WriteGlobal(cfg)
	}
	if err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Config written to: %s\n\n", targetPath)
	if submit.Kind(cfg.Endpoint) == submit.KindHook {
		fmt.Fprintf(out, "Add on_submit commands to %s before submitting.\n", hooks.ConfigFileName)
	}
	fmt.Fprintln(out, "Run 'rigwizard' to get started.")
	return nil
}

// fileExists checks if a file exists (helper for setup command).
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
