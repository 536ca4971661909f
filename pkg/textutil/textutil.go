// Package textutil holds small text helpers for help-screen output.
package textutil

import "strings"

// Wrap breaks text into lines of at most width characters, splitting on
// whitespace. A single word longer than width gets its own line rather than
// being broken mid-word.
func Wrap(text string, width int) []string {
	words := strings.Fields(text)
	var (
		lines   []string
		current []string
		length  int
	)
	for _, word := range words {
		if length+len(word)+1 > width && len(current) > 0 {
			lines = append(lines, strings.Join(current, " "))
			current = []string{word}
			length = len(word)
			continue
		}
		current = append(current, word)
		if length == 0 {
			length = len(word)
		} else {
			length += len(word) + 1
		}
	}
	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}
	return lines
}
