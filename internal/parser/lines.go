package parser

import "strings"

// Lines derives the line sequence from extracted document text: lines are
// split on newlines, trimmed, and blank lines are dropped. The result is
// consumed once by the cascade.
func Lines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
