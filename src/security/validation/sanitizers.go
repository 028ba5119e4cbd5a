// backend/src/security/validation/sanitizers.go
package validation

import (
	"strings"
	"unicode"
)

// StripUnprintable removes non-printable characters from user-supplied form
// values (business type) before they reach metrics output or LLM prompts.
// Common whitespace like space, tab, newline, and carriage return survives.
func StripUnprintable(s string) string {
	return strings.TrimSpace(strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) || r == '\t' || r == '\n' || r == '\r' {
			return r
		}
		return -1
	}, s))
}
