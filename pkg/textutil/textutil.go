// Package textutil provides small text-formatting helpers for generated help output.
package textutil

import "strings"

// Wrap breaks text into lines no wider than width, splitting on whitespace. A single
// word longer than width occupies its own line rather than being broken mid-word.
// Returns nil for empty input.
func Wrap(text string, width int) []string {
	words := strings.Fields(text)
	var lines []string
	var line string
	for _, word := range words {
		switch {
		case line == "":
			line = word
		case len(line)+1+len(word) <= width:
			line += " " + word
		default:
			lines = append(lines, line)
			line = word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
