// Package driving defines the inbound ports of the ingestion core.
package driving

import (
	"context"

	"github.com/meridian-press/curata/internal/core/domain"
)

// Ingestor drives document batches through the ingestion pipeline.
type Ingestor interface {
	// IngestItems processes locally staged items. Item and candidate
	// failures are swallowed into the report; the report is always valid,
	// including after cancellation between items.
	IngestItems(ctx context.Context, items []domain.Item, owner domain.Owner) *domain.Report

	// IngestDriveFolder discovers items in a remote folder and processes
	// them. The only error returned is batch-level source unavailability;
	// everything else lands in the report.
	IngestDriveFolder(ctx context.Context, folderRef string, owner domain.Owner) (*domain.Report, error)
}
