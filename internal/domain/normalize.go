package domain

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// NormalizeWord turns raw input into the key used for every lookup:
//   - lower-cases (Unicode-aware)
//   - removes every rune that is not a letter or a digit
//
// Lower-casing runs first so that letters which lower-case into a base
// letter plus a combining mark (e.g. "İ") end up stable after stripping.
// The result may be empty; callers decide what an empty key means.
func NormalizeWord(raw string) NormalizedWord {
	if raw == "" {
		return ""
	}

	// cases.Caser is stateful, so the chain is built per call.
	t := transform.Chain(cases.Lower(language.Und), runes.Remove(runes.Predicate(isNotAlnum)))

	out, _, err := transform.String(t, raw)
	if err != nil {
		return normalizeFallback(raw)
	}
	return NormalizedWord(out)
}

func isNotAlnum(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// normalizeFallback is used only if the transform chain reports an error,
// which happens for invalid UTF-8 sequences.
func normalizeFallback(raw string) NormalizedWord {
	out := make([]rune, 0, len(raw))
	for _, r := range raw {
		r = unicode.ToLower(r)
		if isNotAlnum(r) {
			continue
		}
		out = append(out, r)
	}
	return NormalizedWord(out)
}
