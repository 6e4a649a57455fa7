// internal/words/canonical.go
//
// Canonical form shared by the dictionary, the word buffers and the console:
// accents folded (é -> E, ç -> C) and French upper-casing. Signals such as
// '?' and '!' pass through untouched.

package words

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Canonical returns s trimmed, accent-free and uppercase.
func Canonical(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	// Transformers and casers keep state: build them per call.
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(fold, s)
	if err != nil {
		folded = s
	}
	return cases.Upper(language.French).String(folded)
}

// CanonicalLetter canonicalizes the first character of s and returns it as a
// single byte. ok is false when s is blank or folds to a multi-byte rune.
func CanonicalLetter(s string) (c byte, ok bool) {
	s = strings.TrimSpace(s)
	for _, r := range s {
		up := Canonical(string(r))
		if len(up) != 1 {
			return 0, false
		}
		return up[0], true
	}
	return 0, false
}
