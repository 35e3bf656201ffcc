package form

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NameToLabel converts a field or tab name into a display label. Words are
// split on separators, case changes and digit runs, then title cased; a
// trailing "ID" on a foreign key name is dropped.
func NameToLabel(name string) string {
	if trimmed, ok := strings.CutSuffix(name, "ID"); ok && trimmed != "" {
		last, _ := utf8.DecodeLastRuneInString(trimmed)
		if unicode.IsLower(last) {
			name = trimmed
		}
	}

	// Casers are stateful; one per call.
	caser := cases.Title(language.Und)
	words := labelWords(name)
	for idx, word := range words {
		words[idx] = caser.String(word)
	}
	return strings.Join(words, " ")
}

func labelWords(name string) []string {
	runes := []rune(name)
	var (
		words []string
		start = -1
	)
	for idx, r := range runes {
		if r == '_' || r == '-' || unicode.IsSpace(r) {
			if start >= 0 {
				words = append(words, string(runes[start:idx]))
				start = -1
			}
			continue
		}
		if start >= 0 && wordBreak(runes, idx) {
			words = append(words, string(runes[start:idx]))
			start = idx
		}
		if start < 0 {
			start = idx
		}
	}
	if start >= 0 {
		words = append(words, string(runes[start:]))
	}
	return words
}

// wordBreak reports whether a new word starts at runes[idx]: "showIn",
// "Address2", "2nd" and the "T" of "HTMLText" all break.
func wordBreak(runes []rune, idx int) bool {
	prev, cur := runes[idx-1], runes[idx]
	switch {
	case unicode.IsLower(prev) && unicode.IsUpper(cur):
		return true
	case unicode.IsLetter(prev) && unicode.IsDigit(cur), unicode.IsDigit(prev) && unicode.IsLetter(cur):
		return true
	case unicode.IsUpper(prev) && unicode.IsUpper(cur):
		return idx+1 < len(runes) && unicode.IsLower(runes[idx+1])
	}
	return false
}
