package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStringList_JSONArray(t *testing.T) {
	list, err := ParseStringList(`["Ada Obi", " Tunde Bakare ", ""]`)

	require.NoError(t, err)
	assert.Equal(t, StringList{"Ada Obi", "Tunde Bakare"}, list)
}

func TestParseStringList_CommaSeparated(t *testing.T) {
	list, err := ParseStringList("fintech, payments , ,lagos")

	require.NoError(t, err)
	assert.Equal(t, StringList{"fintech", "payments", "lagos"}, list)
}

func TestParseStringList_Empty(t *testing.T) {
	list, err := ParseStringList("   ")

	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestParseStringList_MalformedJSON(t *testing.T) {
	_, err := ParseStringList(`["unterminated`)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestStringList_UnmarshalJSON_Array(t *testing.T) {
	var list StringList
	require.NoError(t, json.Unmarshal([]byte(`["a", "b"]`), &list))

	assert.Equal(t, StringList{"a", "b"}, list)
}

func TestStringList_UnmarshalJSON_EncodedString(t *testing.T) {
	// Legacy clients double-encode the array as a string field.
	var list StringList
	require.NoError(t, json.Unmarshal([]byte(`"[\"a\", \"b\"]"`), &list))

	assert.Equal(t, StringList{"a", "b"}, list)
}

func TestStringList_UnmarshalJSON_PlainString(t *testing.T) {
	var list StringList
	require.NoError(t, json.Unmarshal([]byte(`"a, b"`), &list))

	assert.Equal(t, StringList{"a", "b"}, list)
}

func TestStringList_UnmarshalJSON_WrongShape(t *testing.T) {
	var list StringList
	err := json.Unmarshal([]byte(`42`), &list)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestNewStringList_TrimsBlanks(t *testing.T) {
	assert.Equal(t, StringList{"x"}, NewStringList([]string{" x ", "", "  "}))
}
