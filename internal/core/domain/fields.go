package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// StringList normalises request fields that arrive either as an
// already-parsed list or as a raw JSON-encoded string (legacy clients send
// co-authors, tags and keywords both ways). Validation happens once at the
// ingestion boundary; after construction a StringList is always the parsed
// form.
type StringList []string

// ParseStringList accepts either a raw JSON array string or a plain
// comma-separated string and returns the parsed list. Empty input yields an
// empty list, not an error.
func ParseStringList(raw string) (StringList, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return StringList{}, nil
	}

	if strings.HasPrefix(raw, "[") {
		var parsed []string
		if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
			return nil, fmt.Errorf("%w: list field is neither JSON array nor plain text: %v", ErrInvalidInput, err)
		}
		return trimmed(parsed), nil
	}

	return trimmed(strings.Split(raw, ",")), nil
}

// NewStringList wraps an already-parsed list, trimming blanks.
func NewStringList(parsed []string) StringList {
	return trimmed(parsed)
}

// UnmarshalJSON accepts both a JSON array and a JSON string containing an
// encoded array, collapsing the two wire shapes into one type.
func (l *StringList) UnmarshalJSON(data []byte) error {
	var parsed []string
	if err := json.Unmarshal(data, &parsed); err == nil {
		*l = trimmed(parsed)
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: list field is neither array nor string", ErrInvalidInput)
	}

	list, err := ParseStringList(raw)
	if err != nil {
		return err
	}
	*l = list
	return nil
}

func trimmed(values []string) StringList {
	out := make(StringList, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
