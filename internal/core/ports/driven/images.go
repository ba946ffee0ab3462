package driven

// ImageOptions control one processing pass over a source image.
type ImageOptions struct {
	// Width and Height bound the output. Zero means keep the source
	// dimension (aspect-preserving).
	Width  int
	Height int

	// Quality is the encoder quality, 1-100.
	Quality int

	// Format is the output encoding ("jpeg", "png").
	Format string
}

// ImageProcessor is the external image-processing collaborator. Processing
// is all-or-nothing: an error means nothing was stored.
type ImageProcessor interface {
	// ProcessImage resizes and re-encodes the image at path, stores the
	// result and returns the stored filename.
	ProcessImage(path string, opts ImageOptions) (string, error)

	// ImageURL returns the public URL for a stored filename.
	ImageURL(filename string) string
}
