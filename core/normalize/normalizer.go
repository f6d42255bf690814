// Package normalize implements the text rules applied to raw character data
// before it becomes a text leaf.
package normalize

import "strings"

// blankChars are the characters a droppable text run may consist of.
const blankChars = " \t\n\r"

// IsBlank reports whether s contains nothing but spaces, tabs, newlines and
// carriage returns. The empty string is blank.
func IsBlank(s string) bool {
	return strings.Trim(s, blankChars) == ""
}

// Keep reports whether a text run survives conversion. Surviving text is
// used verbatim, internal whitespace included.
func Keep(s string) bool {
	return !IsBlank(s)
}
