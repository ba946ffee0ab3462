// Package cli implements the curata command-line interface.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meridian-press/curata/internal/adapters/driven/config/file"
	"github.com/meridian-press/curata/internal/adapters/driven/images"
	"github.com/meridian-press/curata/internal/adapters/driven/storage/sqlite"
	"github.com/meridian-press/curata/internal/adapters/driven/syndication"
	"github.com/meridian-press/curata/internal/connectors/google"
	"github.com/meridian-press/curata/internal/connectors/google/drive"
	"github.com/meridian-press/curata/internal/core/ports/driven"
	"github.com/meridian-press/curata/internal/core/ports/driving"
	"github.com/meridian-press/curata/internal/core/services"
	"github.com/meridian-press/curata/internal/extract"
	"github.com/meridian-press/curata/internal/logger"
)

var version = "0.3.0"

var (
	verbose    bool
	configPath string
)

// Services wired by initServices and shared by the subcommands.
var (
	cfg      *file.Config
	catalog  *sqlite.Store
	ingestor driving.Ingestor
	batches  driven.BatchStore
)

var rootCmd = &cobra.Command{
	Use:   "curata",
	Short: "Bulk document ingestion for the catalog",
	Long: `Curata ingests author-submitted documents into the catalog.
Listings are parsed into ranked entries, articles into full posts with
processed images. Documents come from local files, the uploads hot folder
or a shared Google Drive folder.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.curata/config.toml)")
}

// Execute runs the root command.
func Execute() error {
	defer func() {
		if catalog != nil {
			catalog.Close()
		}
	}()
	return rootCmd.Execute()
}

// initServices loads the configuration and wires the pipeline. The version
// command stays standalone and never touches the catalog.
func initServices(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if cmd.Name() == "version" {
		return nil
	}

	path := configPath
	if path == "" {
		var err error
		if path, err = file.DefaultPath(); err != nil {
			return fmt.Errorf("locating config: %w", err)
		}
	}

	var err error
	if cfg, err = file.Load(path); err != nil {
		return err
	}

	if catalog, err = sqlite.NewStore(cfg.DataDir); err != nil {
		return err
	}
	logger.Debug("catalog database at %s", catalog.Path())

	processor, err := images.NewProcessor(cfg.MediaDir, cfg.MediaBaseURL)
	if err != nil {
		return err
	}

	remote, err := remoteSource(cmd.Context())
	if err != nil {
		return err
	}

	batches = catalog.BatchStore()
	ingestor = services.NewIngestOrchestrator(
		extract.New(),
		services.NewMaterialiser(catalog.EntryStore(), catalog.ArticleStore()),
		services.NewImageResolver(processor),
		remote,
		batches,
		syndication.NewMarkerRebuilder(cfg.DataDir),
	)
	return nil
}

// remoteSource builds the Drive source when an access token is configured,
// nil otherwise.
func remoteSource(ctx context.Context) (driven.RemoteSource, error) {
	if cfg.Drive.AccessToken == "" {
		return nil, nil
	}

	if ctx == nil {
		ctx = context.Background()
	}
	svc, err := google.NewDriveService(ctx, google.StaticTokenSource(cfg.Drive.AccessToken))
	if err != nil {
		return nil, fmt.Errorf("creating drive client: %w", err)
	}
	return drive.NewSource(svc, drive.Config{PageSize: int64(cfg.Drive.PageSize)}), nil
}
