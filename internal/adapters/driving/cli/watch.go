package cli

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/meridian-press/curata/internal/connectors/hotfolder"
)

var (
	watchKind       string
	watchCollection string
	watchUser       string
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the uploads folder and ingest dropped documents",
	Long: `Watches the configured uploads directory and ingests every document
dropped into it. Files already present at startup are ingested first.
Runs until interrupted.`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchKind, "kind", "k", "listing", "item kind: listing or article")
	watchCmd.Flags().StringVarP(&watchCollection, "collection", "c", "", "collection ID for listing entries")
	watchCmd.Flags().StringVarP(&watchUser, "user", "u", "", "CMS user the records are attributed to")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	kind, err := parseKind(watchKind)
	if err != nil {
		return err
	}

	owner, err := ownerFromFlags(watchCollection, watchUser, "", "", "")
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd.Printf("Watching %s (ctrl-c to stop)\n", cfg.UploadsDir)

	err = hotfolder.New(ingestor, cfg.UploadsDir, owner, kind).Run(ctx)
	if errors.Is(err, context.Canceled) {
		cmd.Println("Stopped.")
		return nil
	}
	return err
}
