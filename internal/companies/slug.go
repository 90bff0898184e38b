package companies

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Slugify derives a company code from a display name. Accents are folded,
// whitespace and hyphen runs become a single hyphen and every character
// outside [a-z0-9-] is dropped. Slugify(Slugify(s)) == Slugify(s).
func Slugify(name string) string {
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(fold, name)
	if err != nil {
		folded = name
	}

	var b strings.Builder
	b.Grow(len(folded))
	hyphen := false
	for _, r := range strings.ToLower(folded) {
		switch {
		case unicode.IsSpace(r) || r == '-':
			hyphen = b.Len() > 0
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if hyphen {
				b.WriteByte('-')
				hyphen = false
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}
