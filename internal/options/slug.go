package options

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Slugify derives a project slug: accents are folded to their base letter,
// the result is lower-cased, every run of characters outside [a-z0-9]
// becomes one hyphen, and leading/trailing hyphens are dropped. A name with
// no usable characters yields DefaultSlug.
func Slugify(name string) string {
	folder := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(folder, name)
	if err != nil {
		folded = name
	}

	var b strings.Builder
	gap := false
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if gap && b.Len() > 0 {
				b.WriteByte('-')
			}
			gap = false
			b.WriteRune(r)
			continue
		}
		gap = true
	}

	if b.Len() == 0 {
		return DefaultSlug
	}
	return b.String()
}
