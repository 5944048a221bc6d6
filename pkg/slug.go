package pkg

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lower-cases s, strips accents and collapses everything that is not
// a letter or digit into single hyphens. Empty input yields fallback.
func Slugify(s, fallback string) string {
	t := norm.NFD.String(s)
	var b strings.Builder
	for _, r := range t {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}

	out := nonSlugChars.ReplaceAllString(strings.ToLower(b.String()), "-")
	out = strings.Trim(out, "-")
	if out == "" {
		return fallback
	}
	return out
}
