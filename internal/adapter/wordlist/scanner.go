package wordlist

import (
	"context"
	"log/slog"
	"os"

	"github.com/AstroX11/word-vaildator-api/internal/domain"
)

// Scanner checks membership by reading the word-list file on every call.
// It keeps no state between calls, so edits to the file are visible
// immediately and concurrent calls each use their own file handle.
type Scanner struct {
	path string
	log  *slog.Logger
}

// NewScanner creates a Scanner for the file at path.
func NewScanner(path string, logger *slog.Logger) *Scanner {
	return &Scanner{
		path: path,
		log:  logger.With("adapter", "wordlist_scanner"),
	}
}

// Contains scans the file until word is found. A missing or unreadable
// file is reported as a miss.
func (s *Scanner) Contains(ctx context.Context, word domain.NormalizedWord) bool {
	f, err := os.Open(s.path)
	if err != nil {
		s.log.WarnContext(ctx, "word list unavailable",
			slog.String("path", s.path),
			slog.String("error", err.Error()),
		)
		return false
	}
	defer f.Close()

	// The context is polled every few thousand words, not on each one.
	found := false
	seen := 0
	err = EachWord(f, func(w domain.NormalizedWord) bool {
		seen++
		if seen%4096 == 0 && ctx.Err() != nil {
			return false
		}
		if w == word {
			found = true
			return false
		}
		return true
	})
	if err != nil {
		s.log.WarnContext(ctx, "word list scan failed",
			slog.String("path", s.path),
			slog.String("error", err.Error()),
		)
	}
	if !found && ctx.Err() != nil {
		s.log.DebugContext(ctx, "word list scan cancelled", slog.String("path", s.path))
	}

	return found
}
