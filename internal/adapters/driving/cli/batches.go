package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meridian-press/curata/internal/core/domain"
)

var batchesJSON bool

var batchesCmd = &cobra.Command{
	Use:   "batches",
	Short: "List past ingestion batches",
	RunE:  runBatches,
}

func init() {
	batchesCmd.Flags().BoolVar(&batchesJSON, "json", false, "output batches as JSON")
	rootCmd.AddCommand(batchesCmd)
}

func runBatches(cmd *cobra.Command, _ []string) error {
	summaries, err := batches.ListBatches(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing batches: %w", err)
	}

	if batchesJSON {
		data, err := json.MarshalIndent(summaries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal batches: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(summaries) == 0 {
		cmd.Println("No batches recorded.")
		return nil
	}

	for _, b := range summaries {
		cmd.Println(formatBatch(b))
	}
	return nil
}

// formatBatch renders one summary line with a status-coloured verdict.
func formatBatch(b domain.BatchSummary) string {
	verdict := successStyle.Render("ok")
	if b.Errored > 0 && b.Succeeded > 0 {
		verdict = warningStyle.Render("partial")
	} else if b.Succeeded == 0 && b.TotalProcessed > 0 {
		verdict = errorStyle.Render("failed")
	}

	return fmt.Sprintf("%s  %-8s %s  %d/%d succeeded  %s",
		b.StartedAt.Format("2006-01-02 15:04"),
		verdict,
		mutedStyle.Render(b.Source),
		b.Succeeded, b.TotalProcessed,
		mutedStyle.Render(b.ID))
}
