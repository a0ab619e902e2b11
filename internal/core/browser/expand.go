package browser

import "strings"

// Ellipsis is appended to collapsed bodies.
const Ellipsis = " ..."

// DefaultTruncateAt is the number of characters kept when a body collapses.
const DefaultTruncateAt = 20

// Truncate returns the display text of body and whether it can be toggled.
// Bodies longer than limit characters are cut to limit characters plus
// Ellipsis unless expanded. Shorter bodies are returned whole and cannot be
// toggled.
func Truncate(body string, limit int, expanded bool) (text string, toggle bool) {
	runes := []rune(body)
	if len(runes) <= limit {
		return body, false
	}
	if expanded {
		return body, true
	}
	return string(runes[:limit]) + Ellipsis, true
}

// ToggleLabel returns the label of the expand control for a row.
func ToggleLabel(expanded bool) string {
	if expanded {
		return "View Less"
	}
	return "View More"
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// SingleLine replaces line breaks with spaces so text fits on one table row.
func SingleLine(s string) string {
	return lineBreaks.Replace(s)
}
