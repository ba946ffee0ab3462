// Package extract converts binary documents into Unicode text.
//
// Extraction is format-driven with a raw-bytes fallback: DOCX and PDF
// documents get a real converter, and anything that fails conversion is
// re-read as UTF-8 plain text. Only when the fallback also fails does the
// item fail as unreadable. Partial output is never returned.
package extract
