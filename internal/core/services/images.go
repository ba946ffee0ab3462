package services

import (
	"fmt"

	"github.com/meridian-press/curata/internal/core/domain"
	"github.com/meridian-press/curata/internal/core/ports/driven"
)

// Processing presets for the two image roles.
var (
	// FeaturedImageOptions shape the lead image shown on listings and
	// social cards.
	FeaturedImageOptions = driven.ImageOptions{Width: 1200, Height: 630, Quality: 85, Format: "jpeg"}

	// GalleryImageOptions shape in-article gallery images.
	GalleryImageOptions = driven.ImageOptions{Width: 800, Quality: 80, Format: "jpeg"}
)

// ResolvedImages are the processed image URLs for one item.
type ResolvedImages struct {
	FeaturedURL string
	GalleryURLs []string
}

// ImageResolver selects and processes an item's images through the external
// image-processing collaborator. Processing is all-or-nothing: any failure
// fails the whole resolution and nothing is attached to the item.
type ImageResolver struct {
	processor driven.ImageProcessor
}

// NewImageResolver creates an image resolver.
func NewImageResolver(processor driven.ImageProcessor) *ImageResolver {
	return &ImageResolver{processor: processor}
}

// Resolve processes the item's images: the first image (name order) becomes
// the featured image, the rest the gallery. An item without images resolves
// to the zero value.
func (r *ImageResolver) Resolve(item *domain.Item) (ResolvedImages, error) {
	var resolved ResolvedImages
	if len(item.ImagePaths) == 0 {
		return resolved, nil
	}

	featured, err := r.processor.ProcessImage(item.ImagePaths[0], FeaturedImageOptions)
	if err != nil {
		return ResolvedImages{}, fmt.Errorf("process featured image: %w", err)
	}
	resolved.FeaturedURL = r.processor.ImageURL(featured)

	for _, path := range item.ImagePaths[1:] {
		filename, err := r.processor.ProcessImage(path, GalleryImageOptions)
		if err != nil {
			return ResolvedImages{}, fmt.Errorf("process gallery image: %w", err)
		}
		resolved.GalleryURLs = append(resolved.GalleryURLs, r.processor.ImageURL(filename))
	}

	return resolved, nil
}
