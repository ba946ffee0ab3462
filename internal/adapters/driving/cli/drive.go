package cli

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
)

var (
	driveCollection string
	driveUser       string
	driveCoAuthors  string
	driveTags       string
	driveKeywords   string
	driveJSON       bool
)

var driveCmd = &cobra.Command{
	Use:   "drive [folder]",
	Short: "Ingest a shared Google Drive folder",
	Long: `Ingests every item subfolder of a shared Google Drive folder.
The folder may be given by ID or by name. Each item subfolder contributes
one document plus its images; items without a document are reported as
failures without aborting the batch.`,
	Args: cobra.ExactArgs(1),
	RunE: runDrive,
}

func init() {
	driveCmd.Flags().StringVarP(&driveCollection, "collection", "c", "", "collection ID for listing entries")
	driveCmd.Flags().StringVarP(&driveUser, "user", "u", "", "CMS user the records are attributed to")
	driveCmd.Flags().StringVar(&driveCoAuthors, "co-authors", "", "article co-authors (comma-separated or JSON array)")
	driveCmd.Flags().StringVar(&driveTags, "tags", "", "article tags (comma-separated or JSON array)")
	driveCmd.Flags().StringVar(&driveKeywords, "keywords", "", "article keywords (comma-separated or JSON array)")
	driveCmd.Flags().BoolVar(&driveJSON, "json", false, "output the report as JSON")
	rootCmd.AddCommand(driveCmd)
}

func runDrive(cmd *cobra.Command, args []string) error {
	owner, err := ownerFromFlags(driveCollection, driveUser, driveCoAuthors, driveTags, driveKeywords)
	if err != nil {
		return err
	}

	report, err := ingestor.IngestDriveFolder(cmd.Context(), args[0], owner)
	if err != nil {
		return fmt.Errorf("drive ingestion failed: %w", err)
	}

	if err := renderReport(cmd, report, driveJSON); err != nil {
		return err
	}
	if report.HTTPStatus() == http.StatusBadRequest {
		return errors.New("no items were ingested")
	}
	return nil
}
