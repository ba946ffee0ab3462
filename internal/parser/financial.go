package parser

import (
	"strconv"
	"strings"

	"github.com/meridian-press/curata/internal/core/domain"
)

// DefaultFinancialDesignation is injected when a financial listing names an
// organisation rather than a person; such lists conventionally rank the
// institution under its chief executive.
const DefaultFinancialDesignation = "CEO"

// DefaultFinancialCategory labels entries produced by the financial strategy.
const DefaultFinancialCategory = "Banking & Finance"

// organisationKeywords mark a captured name as an institution.
var organisationKeywords = []string{"Bank", "Group", "Corporation", "Holdings"}

// FinancialListing parses bank/financial ranking documents. Detection is the
// same leading-integer shape as StructuredLabel, but a captured name
// containing an organisational keyword is additionally recorded as the
// company, with the conventional designation and category injected.
type FinancialListing struct{}

// Name identifies the strategy.
func (FinancialListing) Name() string { return "financial-listing" }

// Parse extracts one record per leading-integer line naming an organisation.
func (FinancialListing) Parse(lines []string) []domain.CandidateRecord {
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
			flush()
			continue
		}

		if m := rankedLine.FindStringSubmatch(trimmedLine); m != nil {
			flush()
			name := strings.TrimSpace(m[2])
			if !namesOrganisation(name) {
				continue // Not a financial entry; leave for later strategies.
			}
			rank, _ := strconv.Atoi(m[1])
			current = &domain.CandidateRecord{
				Rank:        rank,
				Name:        name,
				Company:     name,
				Designation: DefaultFinancialDesignation,
				Category:    DefaultFinancialCategory,
			}
			continue
		}

		if current == nil {
			continue
		}
		if !classifyLine(current, trimmedLine) {
			accumulateDescription(current, trimmedLine)
		}
	}
	flush()

	return records
}

func namesOrganisation(name string) bool {
	for _, kw := range organisationKeywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}
