package parser

import (
	"strconv"
	"strings"

	"github.com/meridian-press/curata/internal/core/domain"
)

// MinDescriptionLength is the shortest unmatched line that still accumulates
// into a record's description. Shorter lines are almost always layout noise
// (page numbers, stray headers). Lossy by design; do not tune without new
// requirements.
const MinDescriptionLength = 20

// fieldKeywords maps classified fields to the keywords that select them.
// Order matters: earlier rows win when a line matches several fields, and the
// slice keeps classification deterministic.
var fieldKeywords = []struct {
	field    string
	keywords []string
}{
	{"designation", []string{"designation", "title", "role", "position"}},
	{"company", []string{"company", "bank", "firm", "organization", "organisation", "employer"}},
	{"nationality", []string{"nationality", "citizen"}},
	{"residence", []string{"location", "city", "country", "based", "residence"}},
	{"industry", []string{"industry", "sector"}},
	{"category", []string{"category"}},
	{"age", []string{"age"}},
}

// FieldValue extracts the value portion of a labelled line: the text after
// the first colon, else after the first of the ordered alternate separators
// (" - ", em-dash, en-dash), else the trimmed line itself. Total: it never
// fails and never returns more than the input.
func FieldValue(line string) string {
	if idx := strings.Index(line, ":"); idx >= 0 {
		return strings.TrimSpace(line[idx+1:])
	}
	for _, sep := range []string{" - ", "—", "–"} {
		if idx := strings.Index(line, sep); idx >= 0 {
			return strings.TrimSpace(line[idx+len(sep):])
		}
	}
	return strings.TrimSpace(line)
}

// classifyLine assigns a labelled line to a candidate field by
// case-insensitive keyword containment. Returns false when no keyword
// matched, leaving the line for description accumulation.
func classifyLine(record *domain.CandidateRecord, line string) bool {
	lower := strings.ToLower(line)
	for _, fk := range fieldKeywords {
		for _, kw := range fk.keywords {
			if !strings.Contains(lower, kw) {
				continue
			}
			value := FieldValue(line)
			if value == "" {
				return true
			}
			switch fk.field {
			case "designation":
				record.Designation = value
			case "company":
				record.Company = value
			case "nationality":
				record.Nationality = value
			case "residence":
				record.Residence = value
			case "industry":
				record.Industry = value
			case "category":
				record.Category = value
			case "age":
				if age, err := strconv.Atoi(strings.Fields(value)[0]); err == nil {
					record.Age = age
				}
			}
			return true
		}
	}
	return false
}

// accumulateDescription appends an unmatched line to the record description
// when it is long enough to carry meaning.
func accumulateDescription(record *domain.CandidateRecord, line string) {
	if len(line) < MinDescriptionLength {
		return
	}
	if record.Description == "" {
		record.Description = line
		return
	}
	record.Description += " " + line
}
