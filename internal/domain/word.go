package domain

// NormalizedWord is a lower-cased, alphanumeric-only lookup key.
// Values are produced by NormalizeWord and never modified afterwards.
type NormalizedWord string

func (w NormalizedWord) String() string { return string(w) }

// IsEmpty reports whether normalization stripped everything.
func (w NormalizedWord) IsEmpty() bool { return w == "" }

// Source tells which stage of the pipeline confirmed a word.
type Source string

const (
	SourceLocal    Source = "local"
	SourceExternal Source = "external"
	SourceNone     Source = "none"
)

func (s Source) String() string { return string(s) }

func (s Source) IsValid() bool {
	switch s {
	case SourceLocal, SourceExternal, SourceNone:
		return true
	}
	return false
}

// ValidationResult is the outcome of validating one word.
//
// Source local or external implies Found; Source none implies !Found.
// Provider names the external provider that confirmed the word and is
// empty for any other source.
type ValidationResult struct {
	Word     NormalizedWord
	Found    bool
	Source   Source
	Provider string
}

// LocalHit builds the result for a word found in the local word list.
func LocalHit(w NormalizedWord) ValidationResult {
	return ValidationResult{Word: w, Found: true, Source: SourceLocal}
}

// ExternalHit builds the result for a word confirmed by an external provider.
func ExternalHit(w NormalizedWord, provider string) ValidationResult {
	return ValidationResult{Word: w, Found: true, Source: SourceExternal, Provider: provider}
}

// Miss builds the result for a word no source could confirm.
func Miss(w NormalizedWord) ValidationResult {
	return ValidationResult{Word: w, Found: false, Source: SourceNone}
}
