package parser

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/meridian-press/curata/internal/core/domain"
)

// Bare-line acceptance bounds. A line with no rank marker is only taken as a
// name when it starts with an uppercase letter, its length lies strictly
// inside (MinBareNameLength, MaxBareNameLength) and it contains no colon.
// The record cap stops runaway false positives on narrative text. All three
// are undocumented heuristics inherited from the production pipeline: keep
// them named, do not tune them without new requirements.
const (
	MinBareNameLength  = 2
	MaxBareNameLength  = 100
	MaxFallbackRecords = 50
)

// SimpleFallback is the last-resort strategy: leading-integer lines become
// ranked names, and conservative bare lines become unranked names.
type SimpleFallback struct{}

// Name identifies the strategy.
func (SimpleFallback) Name() string { return "simple-fallback" }

// Parse extracts ranked and bare-line records up to the record cap.
func (SimpleFallback) Parse(lines []string) []domain.CandidateRecord {
	var records []domain.CandidateRecord

	for _, line := range lines {
		if len(records) >= MaxFallbackRecords {
			break
		}
		trimmedLine := strings.TrimSpace(line)
		if trimmedLine == "" {
			continue
		}

		if m := rankedLine.FindStringSubmatch(trimmedLine); m != nil {
			rank, _ := strconv.Atoi(m[1])
			record := domain.CandidateRecord{Rank: rank, Name: strings.TrimSpace(m[2])}
			if emittable(record) {
				records = append(records, record)
			}
			continue
		}

		if acceptableBareName(trimmedLine) {
			records = append(records, domain.CandidateRecord{Name: trimmedLine})
		}
	}

	return records
}

func acceptableBareName(line string) bool {
	runes := []rune(line)
	if !unicode.IsUpper(runes[0]) {
		return false
	}
	if len(line) <= MinBareNameLength || len(line) >= MaxBareNameLength {
		return false
	}
	return !strings.Contains(line, ":")
}
