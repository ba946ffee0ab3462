// Package images implements the image-processing port with local resizing
// and re-encoding.
package images

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"github.com/meridian-press/curata/internal/core/ports/driven"
)

// Ensure Processor implements the interface.
var _ driven.ImageProcessor = (*Processor)(nil)

// Processor resizes images into a media directory and serves them from a
// base URL. Processing is all-or-nothing: a failed save leaves no partial
// file behind.
type Processor struct {
	mediaDir string
	baseURL  string
}

// NewProcessor creates a processor writing into mediaDir. The directory is
// created if missing.
func NewProcessor(mediaDir, baseURL string) (*Processor, error) {
	if err := os.MkdirAll(mediaDir, 0750); err != nil {
		return nil, fmt.Errorf("creating media directory: %w", err)
	}
	return &Processor{
		mediaDir: mediaDir,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}, nil
}

// ProcessImage resizes and re-encodes the image at path and returns the
// stored filename.
func (p *Processor) ProcessImage(path string, opts driven.ImageOptions) (string, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("open image: %w", err)
	}

	switch {
	case opts.Width > 0 && opts.Height > 0:
		img = imaging.Fill(img, opts.Width, opts.Height, imaging.Center, imaging.Lanczos)
	case opts.Width > 0:
		img = imaging.Resize(img, opts.Width, 0, imaging.Lanczos)
	case opts.Height > 0:
		img = imaging.Resize(img, 0, opts.Height, imaging.Lanczos)
	}

	filename := uuid.New().String() + extension(opts.Format)
	outPath := filepath.Join(p.mediaDir, filename)

	if err := imaging.Save(img, outPath, imaging.JPEGQuality(quality(opts.Quality))); err != nil {
		os.Remove(outPath) // All-or-nothing: no partial output.
		return "", fmt.Errorf("save image: %w", err)
	}
	return filename, nil
}

// ImageURL returns the public URL for a stored filename.
func (p *Processor) ImageURL(filename string) string {
	return p.baseURL + "/media/" + filename
}

func extension(format string) string {
	switch strings.ToLower(format) {
	case "png":
		return ".png"
	case "gif":
		return ".gif"
	default:
		return ".jpg"
	}
}

func quality(q int) int {
	if q <= 0 || q > 100 {
		return 85
	}
	return q
}
