package parser

import (
	"regexp"
	"strings"

	"github.com/meridian-press/curata/internal/core/domain"
)

// Strategy parses a line sequence into candidate records. Implementations
// must be pure: no state, no side effects, identical output for identical
// input, records in document order.
type Strategy interface {
	// Name identifies the strategy in logs and reports.
	Name() string

	// Parse extracts candidate records from the lines. An empty result means
	// the strategy does not recognise the document shape.
	Parse(lines []string) []domain.CandidateRecord
}

// rankedLine matches a leading-integer line such as "1. Jane Doe" or
// "12 Acme Corp", capturing the rank and the remainder.
var rankedLine = regexp.MustCompile(`^(\d+)\.?\s*(.+)$`)

// Cascade tries strategies in precedence order and accepts the first
// non-empty result. Outputs are never merged across strategies.
type Cascade struct {
	strategies []Strategy
}

// NewCascade builds the cascade with the fixed precedence order:
// structured-label, financial-listing, table, bullet, simple-fallback.
func NewCascade() *Cascade {
	return &Cascade{
		strategies: []Strategy{
			StructuredLabel{},
			FinancialListing{},
			Table{},
			Bullet{},
			SimpleFallback{},
		},
	}
}

// Parse runs the cascade. Returns the winning records and the name of the
// strategy that produced them, or (nil, "") when every strategy came up
// empty.
func (c *Cascade) Parse(lines []string) ([]domain.CandidateRecord, string) {
	for _, s := range c.strategies {
		if records := s.Parse(lines); len(records) > 0 {
			return records, s.Name()
		}
	}
	return nil, ""
}

// emittable rejects candidates that must never leave a strategy.
func emittable(record domain.CandidateRecord) bool {
	return strings.TrimSpace(record.Name) != ""
}
