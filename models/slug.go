package models

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify derives a URL-safe slug from a display title: accents stripped,
// lowercased, every non-alphanumeric run collapsed into a single hyphen.
// Deterministic, so deriving twice from the same title yields the same slug.
// Collisions are not disambiguated here; the unique index on the slug column
// rejects them.
func Slugify(title string) string {
	ascii, _, err := transform.String(stripAccents, title)
	if err != nil {
		ascii = title
	}

	var b strings.Builder
	pending := false
	for _, r := range strings.ToLower(ascii) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pending && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			pending = false
		default:
			pending = true
		}
	}
	return b.String()
}
