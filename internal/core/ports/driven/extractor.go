package driven

import "github.com/meridian-press/curata/internal/core/domain"

// TextExtractor converts a binary document into Unicode text.
// Implementations must either return the full text or an error wrapping
// domain.ErrDocumentUnreadable; partial output is never returned.
type TextExtractor interface {
	Extract(raw *domain.RawDocument) (string, error)
}
