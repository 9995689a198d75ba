package matching

import (
	"regexp"
	"strings"
)

var (
	nonWordRE    = regexp.MustCompile(`[^\w\s]`)
	whitespaceRE = regexp.MustCompile(`\s+`)
)

// Normalize lowercases text, replaces punctuation with spaces and collapses
// whitespace runs. It is idempotent and never fails; empty input yields "".
// Both job descriptions and taxonomy terms go through this function so that
// matching stays symmetric.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	text = strings.ToLower(text)
	text = nonWordRE.ReplaceAllString(text, " ")
	text = whitespaceRE.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}
