package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meridian-press/curata/internal/core/domain"
)

func TestFieldValue(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"colon", "Designation: CEO", "CEO"},
		{"colon no space", "Company:Acme Corp", "Acme Corp"},
		{"hyphen separator", "Role - CTO", "CTO"},
		{"em dash", "Age — 45", "45"},
		{"en dash", "City – Lagos", "Lagos"},
		{"colon wins over dash", "Note: a - b", "a - b"},
		{"no separator", "  plain text  ", "plain text"},
		{"empty value", "Designation:", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FieldValue(tt.line))
		})
	}
}

func TestClassifyLine_AllFields(t *testing.T) {
	var record domain.CandidateRecord

	assert.True(t, classifyLine(&record, "Designation: CEO"))
	assert.True(t, classifyLine(&record, "Company: Acme Corp"))
	assert.True(t, classifyLine(&record, "Nationality: Nigerian"))
	assert.True(t, classifyLine(&record, "Location: Lagos"))
	assert.True(t, classifyLine(&record, "Industry: Fintech"))
	assert.True(t, classifyLine(&record, "Category: Leadership"))
	assert.True(t, classifyLine(&record, "Age: 52"))

	assert.Equal(t, "CEO", record.Designation)
	assert.Equal(t, "Acme Corp", record.Company)
	assert.Equal(t, "Nigerian", record.Nationality)
	assert.Equal(t, "Lagos", record.Residence)
	assert.Equal(t, "Fintech", record.Industry)
	assert.Equal(t, "Leadership", record.Category)
	assert.Equal(t, 52, record.Age)
}

func TestClassifyLine_CaseInsensitive(t *testing.T) {
	var record domain.CandidateRecord

	assert.True(t, classifyLine(&record, "DESIGNATION: Chair"))
	assert.Equal(t, "Chair", record.Designation)
}

func TestClassifyLine_AgeWithTrailingWords(t *testing.T) {
	var record domain.CandidateRecord

	assert.True(t, classifyLine(&record, "Age: 47 years old"))
	assert.Equal(t, 47, record.Age)
}

func TestClassifyLine_NonNumericAgeIgnored(t *testing.T) {
	var record domain.CandidateRecord

	assert.True(t, classifyLine(&record, "Age: unknown"))
	assert.Zero(t, record.Age)
}

func TestClassifyLine_Unmatched(t *testing.T) {
	var record domain.CandidateRecord

	assert.False(t, classifyLine(&record, "An unremarkable narrative line."))
	assert.Equal(t, domain.CandidateRecord{}, record)
}

func TestClassifyLine_KeywordOrderWins(t *testing.T) {
	// "title" (designation) appears before "company" in the keyword table, so
	// a line containing both classifies as designation.
	var record domain.CandidateRecord

	assert.True(t, classifyLine(&record, "Title at company: Director"))
	assert.Equal(t, "Director", record.Designation)
	assert.Empty(t, record.Company)
}

func TestAccumulateDescription_DropsShortLines(t *testing.T) {
	var record domain.CandidateRecord

	accumulateDescription(&record, "page 4")
	assert.Empty(t, record.Description)

	accumulateDescription(&record, "A pioneer of mobile payments across West Africa.")
	accumulateDescription(&record, "Named innovator of the year twice in a row.")
	assert.Equal(t,
		"A pioneer of mobile payments across West Africa. Named innovator of the year twice in a row.",
		record.Description)
}
