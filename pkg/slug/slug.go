// Package slug converts display strings into URL-safe identifiers. Field
// names derived from headings, composite titles and toggle panels all pass
// through Make so the same title always yields the same identifier.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var replacer = strings.NewReplacer(
	"&amp;", "-and-",
	"&", "-and-",
	"_", "-",
	".", "-",
	"/", "-",
)

// Make returns the URL-safe form of raw: lowercase ASCII letters, digits and
// single dashes. Already safe input is returned unchanged.
func Make(raw string) string {
	if raw == "" {
		return ""
	}
	folded := fold(raw)
	folded = replacer.Replace(strings.ToLower(folded))

	var builder strings.Builder
	builder.Grow(len(folded))
	dash := false
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			builder.WriteRune(r)
			dash = false
		case r == '-' || unicode.IsSpace(r):
			if !dash && builder.Len() > 0 {
				builder.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimRight(builder.String(), "-")
}

func fold(raw string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, raw)
	if err != nil {
		return raw
	}
	return out
}
