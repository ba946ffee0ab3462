package cli

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/meridian-press/curata/internal/core/domain"
)

// Shared output styles.
var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
	boldStyle    = lipgloss.NewStyle().Bold(true)
)

// renderReport prints the batch report, as JSON when asked.
func renderReport(cmd *cobra.Command, report *domain.Report, asJSON bool) error {
	if asJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	for _, outcome := range report.Outcomes {
		cmd.Println(formatOutcome(outcome))
	}
	for _, line := range report.Logs {
		cmd.Println(mutedStyle.Render(line))
	}

	summary := fmt.Sprintf("%d found, %d processed, %d succeeded, %d failed",
		report.TotalFound, report.TotalProcessed(), report.Succeeded(), report.Errored())
	cmd.Println(boldStyle.Render(summary))
	return nil
}

// formatOutcome renders one item line: verdict, name, kind and detail.
func formatOutcome(o domain.ItemOutcome) string {
	if o.Succeeded {
		return fmt.Sprintf("%s %s %s  %s",
			successStyle.Render("✓"),
			o.Item,
			mutedStyle.Render("("+o.Kind.String()+")"),
			o.Message)
	}

	detail := o.Message
	if o.Err != "" {
		detail = fmt.Sprintf("%s: %s", detail, o.Err)
	}
	return fmt.Sprintf("%s %s %s  %s",
		errorStyle.Render("✗"),
		o.Item,
		mutedStyle.Render("("+string(o.Stage)+")"),
		errorStyle.Render(detail))
}
