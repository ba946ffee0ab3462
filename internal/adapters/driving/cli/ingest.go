package cli

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/meridian-press/curata/internal/core/domain"
)

var (
	ingestKind       string
	ingestCollection string
	ingestUser       string
	ingestCoAuthors  string
	ingestTags       string
	ingestKeywords   string
	ingestImages     []string
	ingestJSON       bool
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [files...]",
	Short: "Ingest local documents",
	Long: `Ingests one or more local documents into the catalog.
Listings become ranked collection entries; articles become posts with
processed images. Failures are reported per document and never abort
the rest of the batch.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().StringVarP(&ingestKind, "kind", "k", "listing", "item kind: listing or article")
	ingestCmd.Flags().StringVarP(&ingestCollection, "collection", "c", "", "collection ID for listing entries")
	ingestCmd.Flags().StringVarP(&ingestUser, "user", "u", "", "CMS user the records are attributed to")
	ingestCmd.Flags().StringVar(&ingestCoAuthors, "co-authors", "", "article co-authors (comma-separated or JSON array)")
	ingestCmd.Flags().StringVar(&ingestTags, "tags", "", "article tags (comma-separated or JSON array)")
	ingestCmd.Flags().StringVar(&ingestKeywords, "keywords", "", "article keywords (comma-separated or JSON array)")
	ingestCmd.Flags().StringSliceVar(&ingestImages, "image", nil, "image file to attach (repeatable, first becomes featured)")
	ingestCmd.Flags().BoolVar(&ingestJSON, "json", false, "output the report as JSON")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	kind, err := parseKind(ingestKind)
	if err != nil {
		return err
	}

	owner, err := ownerFromFlags(ingestCollection, ingestUser, ingestCoAuthors, ingestTags, ingestKeywords)
	if err != nil {
		return err
	}

	items := make([]domain.Item, 0, len(args))
	for i, path := range args {
		// Only the first item gets the attached images.
		var imagePaths []string
		if i == 0 {
			imagePaths = ingestImages
		}

		item, err := stageLocal(path, imagePaths, kind)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	report := ingestor.IngestItems(cmd.Context(), items, owner)

	if err := renderReport(cmd, report, ingestJSON); err != nil {
		return err
	}
	if report.HTTPStatus() == http.StatusBadRequest {
		return errors.New("no documents were ingested")
	}
	return nil
}

// parseKind maps the --kind flag to an item kind.
func parseKind(s string) (domain.ItemKind, error) {
	switch s {
	case "listing":
		return domain.ItemListing, nil
	case "article":
		return domain.ItemArticle, nil
	default:
		return 0, fmt.Errorf("unknown kind %q (expected listing or article)", s)
	}
}

// ownerFromFlags builds the ingestion context from the shared flags.
func ownerFromFlags(collection, user, coAuthors, tags, keywords string) (domain.Owner, error) {
	owner := domain.Owner{
		CollectionID: collection,
		CreatedBy:    user,
	}

	var err error
	if owner.CoAuthors, err = domain.ParseStringList(coAuthors); err != nil {
		return domain.Owner{}, fmt.Errorf("--co-authors: %w", err)
	}
	if owner.Tags, err = domain.ParseStringList(tags); err != nil {
		return domain.Owner{}, fmt.Errorf("--tags: %w", err)
	}
	if owner.Keywords, err = domain.ParseStringList(keywords); err != nil {
		return domain.Owner{}, fmt.Errorf("--keywords: %w", err)
	}
	return owner, nil
}

// stageLocal copies a document and its images into a scratch directory so
// the pipeline's cleanup never touches the caller's originals.
func stageLocal(docPath string, imagePaths []string, kind domain.ItemKind) (domain.Item, error) {
	dir, err := os.MkdirTemp("", "curata-ingest-")
	if err != nil {
		return domain.Item{}, fmt.Errorf("creating scratch directory: %w", err)
	}

	staged, err := copyInto(docPath, dir)
	if err != nil {
		os.RemoveAll(dir)
		return domain.Item{}, err
	}

	item := domain.Item{
		ID:      uuid.New().String(),
		Name:    filepath.Base(docPath),
		Kind:    kind,
		TempDir: dir,
		Document: &domain.RawDocument{
			Name: filepath.Base(docPath),
			Path: staged,
		},
	}

	for _, imagePath := range imagePaths {
		stagedImage, err := copyInto(imagePath, dir)
		if err != nil {
			os.RemoveAll(dir)
			return domain.Item{}, err
		}
		item.ImagePaths = append(item.ImagePaths, stagedImage)
	}
	return item, nil
}

func copyInto(src, dir string) (string, error) {
	in, err := os.Open(src)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	dst := filepath.Join(dir, filepath.Base(src))
	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("stage %s: %w", src, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return "", fmt.Errorf("stage %s: %w", src, err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("stage %s: %w", src, err)
	}
	return dst, nil
}
