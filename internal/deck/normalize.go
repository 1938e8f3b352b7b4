package deck

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize trims surrounding whitespace and composes s to NFC so that
// visually identical text compares equal regardless of how it was encoded.
func Normalize(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}
