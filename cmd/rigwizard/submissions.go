package main

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/mark3labs/rigwizard/internal/buildform"
	"github.com/mark3labs/rigwizard/internal/nats"
	"github.com/mark3labs/rigwizard/internal/submit"
	"github.com/mark3labs/rigwizard/internal/tui/theme"
	"github.com/spf13/cobra"
)

var submissionsCmd = &cobra.Command{
	Use:   "submissions",
	Short: "List builds submitted to the NATS endpoint",
	Long: `List the builds this profile has submitted through the nats endpoint,
oldest first. Reads the JetStream store under the data directory.`,
	Args: cobra.NoArgs,
	RunE: runSubmissions,
}

func runSubmissions(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	e, err := nats.Start(cfg.DataDir)
	if err != nil {
		return err
	}
	defer func() { _ = e.Close() }()

	ep, err := submit.NewJetStreamEndpoint(ctx, e.JS, cfg.Profile)
	if err != nil {
		return err
	}
	history, err := ep.History(ctx)
	if err != nil {
		return err
	}

	if len(history) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No submissions for profile %s\n", cfg.Profile)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), submissionsTable(history))
	return nil
}

// submissionsTable renders one row per submission.
func submissionsTable(history []submit.Submission) string {
	t := theme.Current()
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Primary)).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	rows := make([][]string, 0, len(history))
	for _, sub := range history {
		d := buildform.Draft(sub.Build)
		email := buildform.Text(d.Email)
		if email == "" {
			email = "-"
		}
		rows = append(rows, []string{
			shortID(sub.ID),
			sub.Timestamp.Local().Format("2006-01-02 15:04"),
			d.BudgetRange(),
			strings.Join(d.PrimaryUse, ", "),
			email,
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("ID", "Submitted", "Budget", "Uses", "Email").
		Rows(rows...).
		String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
