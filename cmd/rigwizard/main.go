package main

import (
	"context"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/mark3labs/rigwizard/internal/logger"
	"github.com/mark3labs/rigwizard/internal/tui/theme"
	"github.com/spf13/cobra"
)

const (
	logoText1 = "█▀█ █ █▀▀ █ █ █ █ ▀█ ▄▀█ █▀█ █▀▄"
	logoText2 = "█▀▄ █ █▄█ ▀▄▀▄▀ █ █▄ █▀█ █▀▄ █▄▀"
)

// Version set via ldflags during build
var version = "dev"

func main() {
	// Ensure logger is closed on exit
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rigwizard",
	Short: "Guided intake wizard for custom PC builds",
	Args:  cobra.NoArgs,
	RunE:  runWizard,
}

// renderLogo creates the logo with gradient colors
func renderLogo() string {
	t := theme.NewCatppuccinMocha()
	line1 := theme.ApplyGradient(logoText1, t.Primary, t.Secondary)
	line2 := theme.ApplyGradient(logoText2, t.Primary, t.Secondary)
	return strings.Join([]string{line1, line2}, "\n")
}

func init() {
	rootCmd.Long = renderLogo() + `

rigwizard walks you through five short steps to describe the PC you want:
budget and use cases, performance targets, component preferences,
peripherals, and a final review. Answers are saved as you go, so you can
quit and pick up where you left off. The finished build is handed to the
configured submission endpoint.

Keys: ctrl+n next, ctrl+b back, ctrl+s submit, ctrl+r start over,
ctrl+t toggle the answers sidebar, ctrl+c quit.`

	rootCmd.PersistentFlags().StringVarP(&globalFlags.profile, "profile", "p", "", "Build profile; each profile keeps its own draft")
	rootCmd.PersistentFlags().StringVar(&globalFlags.dataDir, "data-dir", "", "Data directory for drafts and NATS storage")
	rootCmd.PersistentFlags().StringVar(&globalFlags.store, "store", "", "Draft store: file, sqlite, nats or memory")
	rootCmd.PersistentFlags().StringVar(&globalFlags.endpoint, "endpoint", "", "Submission endpoint: simulated, hook or nats")

	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(draftCmd)
	rootCmd.AddCommand(submissionsCmd)
}
