// Package drive implements the remote source port over the Google Drive API.
//
// A shared folder holds one subfolder per article ("01 - Title", "Article -
// Title", ...); each subfolder bundles the article document with its images.
// Listing is paged with an explicit page-token loop and grouped into logical
// items before anything is downloaded.
package drive

import "regexp"

// DefaultPageSize is the files.list page size.
const DefaultPageSize = 100

// MaxFetchSize caps downloaded and exported file content (10MB). Authors
// occasionally drop raw photo exports into article folders; anything larger
// is not a CMS document.
const MaxFetchSize = 10 * 1024 * 1024

// defaultContainerPattern matches subfolder names that denote an item
// container: a leading ordinal ("01 - Title") or an "article"/"story"
// prefix.
var defaultContainerPattern = regexp.MustCompile(`(?i)^(?:\d+[\s._-]+|(?:article|story)[\s._-]+)\S`)

// Config holds Drive source configuration.
type Config struct {
	// PageSize is the listing page size.
	PageSize int64

	// ContainerPattern selects which subfolders are item containers.
	ContainerPattern *regexp.Regexp
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		PageSize:         DefaultPageSize,
		ContainerPattern: defaultContainerPattern,
	}
}

func (c *Config) defaults() {
	if c.PageSize <= 0 {
		c.PageSize = DefaultPageSize
	}
	if c.ContainerPattern == nil {
		c.ContainerPattern = defaultContainerPattern
	}
}
