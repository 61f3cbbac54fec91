// Package textwrap breaks free-form text into fixed-width lines for badge
// rendering. Words are never split; a word longer than the width gets a line
// of its own.
package textwrap

import "strings"

// Wrap splits text into lines of at most width characters using greedy word
// wrapping. Whitespace runs collapse to single spaces. Empty or
// whitespace-only input returns nil.
func Wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) <= width {
			current += " " + word
			continue
		}
		lines = append(lines, current)
		current = word
	}
	return append(lines, current)
}
