package assistant

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// accentStripper decomposes text and drops combining marks, so "Natália"
// and "Natalia" compare equal.
var accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases text and strips accents. Used for all
// accent-insensitive substring matching (consultant and project filters).
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	out, _, err := transform.String(accentStripper, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}
