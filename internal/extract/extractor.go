package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/meridian-press/curata/internal/core/domain"
	"github.com/meridian-press/curata/internal/logger"
)

// MIME types with a dedicated converter.
const (
	mimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimePDF  = "application/pdf"
)

// Extractor converts a document file into Unicode text.
type Extractor struct{}

// New creates a text extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract converts the document at raw.Path into text. The format converter
// runs first; if it fails for any reason (corrupt archive, wrong format) the
// same path is re-read as UTF-8 plain text. When the fallback also fails the
// item is unreadable and no partial output is returned.
func (e *Extractor) Extract(raw *domain.RawDocument) (string, error) {
	if raw == nil || raw.Path == "" {
		return "", domain.ErrInvalidInput
	}

	text, err := convert(raw)
	if err == nil {
		return text, nil
	}
	logger.Debug("converter failed for %s, trying plain-text fallback: %v", raw.Name, err)

	text, fallbackErr := readPlainText(raw.Path)
	if fallbackErr == nil {
		return text, nil
	}

	return "", fmt.Errorf("%w: %s: converter: %v; fallback: %v",
		domain.ErrDocumentUnreadable, raw.Name, err, fallbackErr)
}

// convert dispatches on MIME type, then file extension.
func convert(raw *domain.RawDocument) (string, error) {
	switch raw.MIMEType {
	case mimeDocx:
		return extractDocx(raw.Path)
	case mimePDF:
		return extractPDF(raw.Path)
	}

	switch strings.ToLower(filepath.Ext(raw.Path)) {
	case ".docx":
		return extractDocx(raw.Path)
	case ".pdf":
		return extractPDF(raw.Path)
	default:
		return "", fmt.Errorf("no converter for %q", filepath.Ext(raw.Path))
	}
}

// readPlainText reads the file as UTF-8 text. Bytes that are not valid UTF-8
// mean the file is genuinely binary, not a text export.
func readPlainText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("file is not valid UTF-8 text")
	}
	return string(data), nil
}
