// Package driven defines the outbound ports of the ingestion core: the
// collaborators (extraction, storage, remote source, image processing,
// syndication) that adapters implement.
package driven
