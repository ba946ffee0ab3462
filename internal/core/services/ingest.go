package services

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/meridian-press/curata/internal/core/domain"
	"github.com/meridian-press/curata/internal/core/ports/driven"
	"github.com/meridian-press/curata/internal/core/ports/driving"
	"github.com/meridian-press/curata/internal/logger"
	"github.com/meridian-press/curata/internal/parser"
)

// Ensure IngestOrchestrator implements the interface.
var _ driving.Ingestor = (*IngestOrchestrator)(nil)

// IngestOrchestrator drives each item through extraction, parsing, image
// resolution and materialisation, isolating per-item failure.
//
// Items within a batch are processed sequentially: slug-uniqueness retries
// must not interleave across items sharing a collection, and position-based
// ranks depend on processing order. Cancellation is checked between items;
// a cancelled run returns a valid partial report, not an error.
type IngestOrchestrator struct {
	extractor    driven.TextExtractor
	cascade      *parser.Cascade
	materialiser *Materialiser
	images       *ImageResolver
	remote       driven.RemoteSource
	batches      driven.BatchStore
	feed         driven.FeedRebuilder
}

// NewIngestOrchestrator creates the orchestrator. The remote source, batch
// store and feed rebuilder are optional; nil disables the Drive variant,
// batch history and the finalising feed rebuild respectively.
func NewIngestOrchestrator(
	extractor driven.TextExtractor,
	materialiser *Materialiser,
	images *ImageResolver,
	remote driven.RemoteSource,
	batches driven.BatchStore,
	feed driven.FeedRebuilder,
) *IngestOrchestrator {
	return &IngestOrchestrator{
		extractor:    extractor,
		cascade:      parser.NewCascade(),
		materialiser: materialiser,
		images:       images,
		remote:       remote,
		batches:      batches,
		feed:         feed,
	}
}

// IngestItems processes locally staged items and returns the batch report.
// All item and candidate failures are swallowed into the report.
func (o *IngestOrchestrator) IngestItems(
	ctx context.Context, items []domain.Item, owner domain.Owner,
) *domain.Report {
	started := time.Now().UTC()
	report := &domain.Report{TotalFound: len(items)}

	for i := range items {
		if ctx.Err() != nil {
			report.Logf("run cancelled after %d of %d items", report.TotalProcessed(), report.TotalFound)
			break
		}
		o.processItem(ctx, &items[i], owner, report)
	}

	o.finalise(ctx, "upload", started, report)
	return report
}

// IngestDriveFolder discovers items in the remote folder and processes them.
// Failure to resolve or list the top-level folder is the sole batch-level
// error: no items can be discovered at all.
func (o *IngestOrchestrator) IngestDriveFolder(
	ctx context.Context, folderRef string, owner domain.Owner,
) (*domain.Report, error) {
	if o.remote == nil {
		return nil, fmt.Errorf("remote source not configured")
	}

	started := time.Now().UTC()

	folderID, err := o.remote.ResolveFolder(ctx, folderRef)
	if err != nil {
		return nil, fmt.Errorf("resolve folder %q: %w", folderRef, err)
	}

	remoteItems, err := o.remote.ListItems(ctx, folderID)
	if err != nil {
		return nil, fmt.Errorf("list folder %q: %w", folderRef, err)
	}

	report := &domain.Report{TotalFound: len(remoteItems)}
	logger.Info("discovered %d items in folder %s", len(remoteItems), folderRef)

	for _, remoteItem := range remoteItems {
		if ctx.Err() != nil {
			report.Logf("run cancelled after %d of %d items", report.TotalProcessed(), report.TotalFound)
			break
		}
		o.processRemoteItem(ctx, remoteItem, owner, report)
	}

	o.finalise(ctx, "drive:"+folderRef, started, report)
	return report, nil
}

// processRemoteItem stages one discovered item locally, then processes it.
func (o *IngestOrchestrator) processRemoteItem(
	ctx context.Context, remoteItem driven.RemoteItem, owner domain.Owner, report *domain.Report,
) {
	if remoteItem.Document == nil {
		report.RecordFailure(remoteItem.Name, domain.ItemArticle, domain.StageListing,
			domain.ErrNoDocument, "item folder contains no document file")
		return
	}

	dir, err := os.MkdirTemp("", "curata-item-")
	if err != nil {
		report.RecordFailure(remoteItem.Name, domain.ItemArticle, domain.StageExtracting,
			err, "could not create scratch directory")
		return
	}

	item := domain.Item{
		ID:      uuid.New().String(),
		Name:    remoteItem.Name,
		Kind:    domain.ItemArticle,
		TempDir: dir,
	}

	docPath, err := o.remote.Fetch(ctx, *remoteItem.Document, dir)
	if err != nil {
		report.RecordFailure(item.Name, item.Kind, domain.StageExtracting,
			err, fmt.Sprintf("download of %s failed", remoteItem.Document.Name))
		o.cleanup(&item)
		return
	}
	item.Document = &domain.RawDocument{
		Name:     remoteItem.Document.Name,
		Path:     docPath,
		MIMEType: remoteItem.Document.MIMEType,
	}

	for _, image := range remoteItem.Images {
		imagePath, err := o.remote.Fetch(ctx, image, dir)
		if err != nil {
			report.RecordFailure(item.Name, item.Kind, domain.StageResolvingImages,
				err, fmt.Sprintf("download of image %s failed", image.Name))
			o.cleanup(&item)
			return
		}
		item.ImagePaths = append(item.ImagePaths, imagePath)
	}

	o.processItem(ctx, &item, owner, report)
}

// processItem runs the per-item pipeline. The item's files are removed on
// every exit path.
func (o *IngestOrchestrator) processItem(
	ctx context.Context, item *domain.Item, owner domain.Owner, report *domain.Report,
) {
	defer o.cleanup(item)

	if item.Document == nil {
		report.RecordFailure(item.Name, item.Kind, domain.StageListing,
			domain.ErrNoDocument, "item has no document")
		return
	}

	// Extracting.
	text, err := o.extractor.Extract(item.Document)
	if err != nil {
		report.RecordFailure(item.Name, item.Kind, domain.StageExtracting,
			err, "document could not be converted to text")
		return
	}

	switch item.Kind {
	case domain.ItemListing:
		o.processListing(ctx, item, text, owner, report)
	case domain.ItemArticle:
		o.processArticle(ctx, item, text, owner, report)
	}
}

func (o *IngestOrchestrator) processListing(
	ctx context.Context, item *domain.Item, text string, owner domain.Owner, report *domain.Report,
) {
	// Parsing.
	records, strategy := o.cascade.Parse(parser.Lines(text))
	if len(records) == 0 {
		report.RecordFailure(item.Name, item.Kind, domain.StageParsing,
			domain.ErrNoRecordsFound, "every parsing strategy produced zero records")
		return
	}
	logger.Debug("%s: %d candidates via %s", item.Name, len(records), strategy)

	// Materialising.
	ids, err := o.materialiser.MaterialiseEntries(ctx, records, owner)
	if err != nil {
		report.RecordFailure(item.Name, item.Kind, domain.StageMaterialising,
			err, fmt.Sprintf("%d candidates via %s, none persisted", len(records), strategy))
		return
	}

	report.RecordSuccess(item.Name, item.Kind, ids,
		fmt.Sprintf("persisted %d of %d candidates via %s", len(ids), len(records), strategy))
}

func (o *IngestOrchestrator) processArticle(
	ctx context.Context, item *domain.Item, text string, owner domain.Owner, report *domain.Report,
) {
	// Parsing.
	content := parser.ParseArticle(text)
	if content.Title == "" {
		report.RecordFailure(item.Name, item.Kind, domain.StageParsing,
			domain.ErrNoRecordsFound, "document has no usable title line")
		return
	}

	// Resolving images.
	images, err := o.images.Resolve(item)
	if err != nil {
		report.RecordFailure(item.Name, item.Kind, domain.StageResolvingImages,
			err, "image processing failed")
		return
	}

	// Materialising.
	id, err := o.materialiser.MaterialiseArticle(ctx, content, images, owner)
	if err != nil {
		report.RecordFailure(item.Name, item.Kind, domain.StageMaterialising,
			err, fmt.Sprintf("article %q not persisted", content.Title))
		return
	}

	report.RecordSuccess(item.Name, item.Kind, []string{id},
		fmt.Sprintf("article %q persisted", content.Title))
}

// finalise runs batch-level side effects. A side-effect failure is logged
// but never retroactively flips an already-succeeded item to failed.
func (o *IngestOrchestrator) finalise(
	ctx context.Context, source string, started time.Time, report *domain.Report,
) {
	if report.Succeeded() > 0 && o.feed != nil {
		if err := o.feed.Rebuild(ctx); err != nil {
			logger.Warn("feed rebuild failed: %v", err)
			report.Logf("syndication rebuild failed: %v", err)
		} else {
			report.Logf("syndication feeds rebuilt")
		}
	}

	if o.batches != nil {
		summary := domain.BatchSummary{
			ID:             uuid.New().String(),
			Source:         source,
			TotalFound:     report.TotalFound,
			TotalProcessed: report.TotalProcessed(),
			Succeeded:      report.Succeeded(),
			Errored:        report.Errored(),
			Status:         report.HTTPStatus(),
			StartedAt:      started,
			FinishedAt:     time.Now().UTC(),
		}
		if err := o.batches.SaveBatch(ctx, summary); err != nil {
			logger.Warn("batch summary not recorded: %v", err)
		}
	}
}

// cleanup removes the item's staged files. Deletion failure is logged and
// never overrides the item's primary outcome.
func (o *IngestOrchestrator) cleanup(item *domain.Item) {
	if item.TempDir != "" {
		if err := os.RemoveAll(item.TempDir); err != nil {
			logger.Warn("could not remove scratch directory %s: %v", item.TempDir, err)
		}
		return
	}

	paths := item.ImagePaths
	if item.Document != nil {
		paths = append([]string{item.Document.Path}, paths...)
	}
	for _, path := range paths {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			logger.Warn("could not remove %s: %v", path, err)
		}
	}
}
