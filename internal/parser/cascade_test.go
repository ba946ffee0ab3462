package parser

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCascade_Order(t *testing.T) {
	cascade := NewCascade()

	names := make([]string, 0, len(cascade.strategies))
	for _, s := range cascade.strategies {
		names = append(names, s.Name())
	}

	assert.Equal(t, []string{
		"structured-label",
		"financial-listing",
		"table",
		"bullet",
		"simple-fallback",
	}, names)
}

func TestCascade_StructuredWins(t *testing.T) {
	lines := []string{
		"1. Jane Doe",
		"Designation: CEO",
		"Company: Acme Corp",
		"",
		"2. John Roe",
		"Designation: CTO",
	}

	records, strategy := NewCascade().Parse(lines)

	require.Len(t, records, 2)
	assert.Equal(t, "structured-label", strategy)
	assert.Equal(t, "Jane Doe", records[0].Name)
	assert.Equal(t, "CEO", records[0].Designation)
	assert.Equal(t, "Acme Corp", records[0].Company)
	assert.Equal(t, 1, records[0].Rank)
	assert.Equal(t, "John Roe", records[1].Name)
	assert.Equal(t, 2, records[1].Rank)
}

func TestCascade_TableWinsWhenNoRankedLines(t *testing.T) {
	lines := []string{
		"Jane Doe\tCEO\tAcme Corp",
		"John Roe\tCTO\tBeta Inc",
	}

	records, strategy := NewCascade().Parse(lines)

	require.Len(t, records, 2)
	assert.Equal(t, "table", strategy)
	assert.Equal(t, "Jane Doe", records[0].Name)
	assert.Equal(t, "Beta Inc", records[1].Company)
}

func TestCascade_BulletWins(t *testing.T) {
	lines := []string{
		"• Jane Doe",
		"• John Roe",
	}

	records, strategy := NewCascade().Parse(lines)

	require.Len(t, records, 2)
	assert.Equal(t, "bullet", strategy)
	assert.Equal(t, 1, records[0].Rank)
	assert.Equal(t, 2, records[1].Rank)
}

func TestCascade_FallbackIsLastResort(t *testing.T) {
	lines := []string{
		"Jane Doe",
		"John Roe",
	}

	records, strategy := NewCascade().Parse(lines)

	require.Len(t, records, 2)
	assert.Equal(t, "simple-fallback", strategy)
}

func TestCascade_EmptyInput(t *testing.T) {
	records, strategy := NewCascade().Parse(nil)

	assert.Nil(t, records)
	assert.Empty(t, strategy)
}

func TestCascade_Deterministic(t *testing.T) {
	lines := []string{
		"1. Jane Doe",
		"Designation: CEO",
		"2. John Roe",
	}
	cascade := NewCascade()

	first, firstStrategy := cascade.Parse(lines)
	second, secondStrategy := cascade.Parse(lines)

	assert.Equal(t, first, second)
	assert.Equal(t, firstStrategy, secondStrategy)
}

func TestCascade_NeverMergesStrategies(t *testing.T) {
	// Ranked lines and bullet lines in one document: the structured strategy
	// wins and the bullet lines contribute nothing.
	lines := []string{
		"1. Jane Doe",
		"• Stray Bullet",
	}

	records, strategy := NewCascade().Parse(lines)

	require.Len(t, records, 1)
	assert.Equal(t, "structured-label", strategy)
	assert.Equal(t, "Jane Doe", records[0].Name)
}

func TestLines(t *testing.T) {
	lines := Lines("first\r\n\r\n  second  \n\nthird\n")

	assert.Equal(t, []string{"first", "second", "third"}, lines)
}

func TestLines_Empty(t *testing.T) {
	assert.Empty(t, Lines(""))
	assert.Empty(t, Lines("\n\n  \n"))
}

func TestCascade_RanksPreservedFromDocument(t *testing.T) {
	var lines []string
	for i := 1; i <= 5; i++ {
		lines = append(lines, fmt.Sprintf("%d. Person %d", i, i))
	}

	records, _ := NewCascade().Parse(lines)

	require.Len(t, records, 5)
	for i, record := range records {
		assert.Equal(t, i+1, record.Rank)
	}
}
