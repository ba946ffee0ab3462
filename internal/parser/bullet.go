package parser

import (
	"regexp"
	"strings"

	"github.com/meridian-press/curata/internal/core/domain"
)

// bulletMarkers match the supported line markers, each capturing the text
// after the marker: bullets, parenthesised numbers and letter markers.
var bulletMarkers = []*regexp.Regexp{
	regexp.MustCompile(`^[•●▪◦*-]\s+(.+)$`),
	regexp.MustCompile(`^\(\d+\)\s*(.+)$`),
	regexp.MustCompile(`^\d+\)\s*(.+)$`),
	regexp.MustCompile(`^\([A-Za-z]\)\s*(.+)$`),
	regexp.MustCompile(`^[A-Za-z][.)]\s+(.+)$`),
}

// Bullet parses marker-prefixed listings. The marker is stripped and the
// remainder of the line is the name; rank is the output position.
type Bullet struct{}

// Name identifies the strategy.
func (Bullet) Name() string { return "bullet" }

// Parse extracts one record per marked line.
func (Bullet) Parse(lines []string) []domain.CandidateRecord {
	var records []domain.CandidateRecord

	for _, line := range lines {
		trimmedLine := strings.TrimSpace(line)
		name, ok := stripMarker(trimmedLine)
		if !ok {
			continue
		}

		record := domain.CandidateRecord{
			Rank: len(records) + 1,
			Name: name,
		}
		if emittable(record) {
			records = append(records, record)
		}
	}

	return records
}

func stripMarker(line string) (string, bool) {
	for _, marker := range bulletMarkers {
		if m := marker.FindStringSubmatch(line); m != nil {
			return strings.TrimSpace(m[1]), true
		}
	}
	return "", false
}
