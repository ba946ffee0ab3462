package parser

import (
	"regexp"
	"strings"

	"github.com/meridian-press/curata/internal/core/domain"
)

// tableDelimiter splits columns on a tab or a run of two or more spaces.
var tableDelimiter = regexp.MustCompile(`\t+| {2,}`)

// Table parses delimiter-separated listings, one entry per line:
//
//	Jane Doe\tCEO\tAcme Corp
//
// Column one is the name, column two the designation, column three (when
// present) the company. Rank is the output position.
type Table struct{}

// Name identifies the strategy.
func (Table) Name() string { return "table" }

// Parse extracts one record per delimited line with at least two columns.
func (Table) Parse(lines []string) []domain.CandidateRecord {
	var records []domain.CandidateRecord

	for _, line := range lines {
		trimmedLine := strings.TrimSpace(line)
		if !strings.Contains(trimmedLine, "\t") && !strings.Contains(trimmedLine, "  ") {
			continue
		}

		columns := splitColumns(trimmedLine)
		if len(columns) < 2 {
			continue
		}

		record := domain.CandidateRecord{
			Rank:        len(records) + 1,
			Name:        columns[0],
			Designation: columns[1],
		}
		if len(columns) > 2 {
			record.Company = columns[2]
		}
		if emittable(record) {
			records = append(records, record)
		}
	}

	return records
}

func splitColumns(line string) []string {
	parts := tableDelimiter.Split(line, -1)
	columns := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			columns = append(columns, p)
		}
	}
	return columns
}
