// Package provider holds the contract shared by external word-lookup adapters.
package provider

import "context"

// Verdict is the outcome of asking one external provider about a word.
type Verdict int

const (
	// Unreachable means the provider could not give an answer: network
	// failure, timeout, 5xx, or a body that could not be parsed.
	Unreachable Verdict = iota
	// NotConfirmed means the provider answered and does not know the word.
	NotConfirmed
	// Confirmed means the provider knows the word.
	Confirmed
)

func (v Verdict) String() string {
	switch v {
	case Confirmed:
		return "confirmed"
	case NotConfirmed:
		return "not_confirmed"
	default:
		return "unreachable"
	}
}

// Checker is implemented by every external provider adapter.
// Check never returns an error: failures are reported as Unreachable.
type Checker interface {
	Name() string
	Check(ctx context.Context, word string) Verdict
}

// VerdictFromStatus maps an HTTP status code to a verdict for providers
// that treat any success status as confirmation.
func VerdictFromStatus(status int) Verdict {
	switch {
	case status >= 200 && status < 300:
		return Confirmed
	case status >= 500:
		return Unreachable
	default:
		return NotConfirmed
	}
}
