package drive

import (
	"path/filepath"
	"sort"
	"strings"

	"google.golang.org/api/drive/v3"

	"github.com/meridian-press/curata/internal/core/ports/driven"
)

// MIME types the grouping logic cares about.
const (
	MimeTypeFolder    = "application/vnd.google-apps.folder"
	MimeTypeGoogleDoc = "application/vnd.google-apps.document"
	MimeTypeDocx      = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeTypePDF       = "application/pdf"
)

// Group assembles logical items from a folder listing: each container folder
// becomes one item, and every other entry whose parent ID matches a
// container becomes that item's file. The item's document is the first
// document-typed file in name order; remaining images keep name order.
// Items are returned in container name order.
func Group(containers []*drive.File, files []*drive.File) []driven.RemoteItem {
	byParent := make(map[string][]*drive.File)
	for _, f := range files {
		for _, parent := range f.Parents {
			byParent[parent] = append(byParent[parent], f)
		}
	}

	sorted := append([]*drive.File(nil), containers...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	items := make([]driven.RemoteItem, 0, len(sorted))
	for _, container := range sorted {
		children := append([]*drive.File(nil), byParent[container.Id]...)
		sort.Slice(children, func(i, j int) bool { return children[i].Name < children[j].Name })

		item := driven.RemoteItem{Name: container.Name}
		for _, child := range children {
			switch {
			case isDocumentFile(child):
				if item.Document == nil {
					item.Document = &driven.RemoteFile{
						ID:       child.Id,
						Name:     child.Name,
						MIMEType: child.MimeType,
					}
				}
			case isImageFile(child):
				item.Images = append(item.Images, driven.RemoteFile{
					ID:       child.Id,
					Name:     child.Name,
					MIMEType: child.MimeType,
				})
			}
		}
		items = append(items, item)
	}

	return items
}

func isDocumentFile(f *drive.File) bool {
	switch f.MimeType {
	case MimeTypeGoogleDoc, MimeTypeDocx, MimeTypePDF, "text/plain":
		return true
	}
	switch strings.ToLower(filepath.Ext(f.Name)) {
	case ".docx", ".pdf", ".txt":
		return true
	}
	return false
}

func isImageFile(f *drive.File) bool {
	return strings.HasPrefix(f.MimeType, "image/")
}
