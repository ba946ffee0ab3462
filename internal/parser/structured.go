package parser

import (
	"strconv"
	"strings"

	"github.com/meridian-press/curata/internal/core/domain"
)

// StructuredLabel parses numbered entries with labelled detail lines:
//
//	1. Jane Doe
//	Designation: CEO
//	Company: Acme Corp
//
// A leading-integer line starts a record; interior lines are classified by
// keyword until the next leading-integer line or a blank line.
type StructuredLabel struct{}

// Name identifies the strategy.
func (StructuredLabel) Name() string { return "structured-label" }

// Parse extracts one record per leading-integer line.
func (StructuredLabel) Parse(lines []string) []domain.CandidateRecord {
	var records []domain.CandidateRecord
	var current *domain.CandidateRecord

	flush := func() {
		if current != nil && emittable(*current) {
			records = append(records, *current)
		}
		current = nil
	}

	for _, line := range lines {
		trimmedLine := strings.TrimSpace(line)
		if trimmedLine == "" {
			// Blank line ends the current record's scan window.
			flush()
			continue
		}

		if m := rankedLine.FindStringSubmatch(trimmedLine); m != nil {
			flush()
			rank, _ := strconv.Atoi(m[1])
			current = &domain.CandidateRecord{
				Rank: rank,
				Name: strings.TrimSpace(m[2]),
			}
			continue
		}

		if current == nil {
			continue // Preamble before the first entry.
		}
		if !classifyLine(current, trimmedLine) {
			accumulateDescription(current, trimmedLine)
		}
	}
	flush()

	return records
}
