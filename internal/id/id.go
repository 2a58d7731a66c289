// Package id provides the canonical identifier used to key every content record.
package id

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ID is a normalized content identifier: lowercase ASCII letters and digits only.
type ID string

// Empty is the id produced by names with no alphanumeric characters.
const Empty ID = ""

// String implements fmt.Stringer.
func (i ID) String() string {
	return string(i)
}

// ToID normalizes a display name into an ID.
// Diacritics are folded first so "Flabébé" becomes "flabebe".
func ToID(name string) ID {
	if name == "" {
		return Empty
	}
	if isID(name) {
		return ID(name)
	}

	folded, _, err := transform.String(foldDiacritics(), name)
	if err != nil {
		folded = name
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		}
	}
	return ID(b.String())
}

// isID reports whether s is already in normalized form.
func isID(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}

// transform.Chain is stateful, so a fresh chain is built per call.
func foldDiacritics() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}
