// Package sanitize cleans free-text answers before they reach the draft.
package sanitize

import (
	"regexp"
	"strings"
)

// MaxLength is the longest free-text value kept, in characters.
const MaxLength = 1000

var (
	angleBrackets = regexp.MustCompile(`[<>]`)
	jsProtocol    = regexp.MustCompile(`(?i)javascript:`)
	eventHandler  = regexp.MustCompile(`(?i)on\w+=`)
)

// String strips angle brackets, "javascript:" and inline on<event>= handlers,
// trims surrounding whitespace and truncates to MaxLength characters.
//
// Removal repeats until nothing matches, so input such as
// "javajavascript:script:" cannot reassemble a pattern. The result is a
// fixed point: String(String(s)) == String(s).
func String(input string) string {
	out := input
	for {
		next := angleBrackets.ReplaceAllString(out, "")
		next = jsProtocol.ReplaceAllString(next, "")
		next = eventHandler.ReplaceAllString(next, "")
		if next == out {
			break
		}
		out = next
	}

	out = strings.TrimSpace(out)
	if r := []rune(out); len(r) > MaxLength {
		out = strings.TrimSpace(string(r[:MaxLength]))
	}
	return out
}
