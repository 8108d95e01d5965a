package wordlist

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/AstroX11/word-vaildator-api/internal/domain"
)

// Set is an immutable, fully materialized word list. It is safe for
// concurrent use without locking because nothing mutates it after Load.
type Set struct {
	words map[domain.NormalizedWord]struct{}
}

// NewSet builds a Set from raw words, normalizing and deduplicating them.
func NewSet(words ...string) *Set {
	s := &Set{words: make(map[domain.NormalizedWord]struct{}, len(words))}
	for _, w := range words {
		if n := domain.NormalizeWord(w); !n.IsEmpty() {
			s.words[n] = struct{}{}
		}
	}
	return s
}

// Load reads the word list at path into memory.
func Load(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wordlist: open %s: %w", path, err)
	}
	defer f.Close()

	return LoadReader(f)
}

// LoadReader reads a whitespace-separated word list from r into memory.
// On a read error it returns the words collected so far along with the
// error.
func LoadReader(r io.Reader) (*Set, error) {
	s := &Set{words: make(map[domain.NormalizedWord]struct{})}
	err := EachWord(r, func(w domain.NormalizedWord) bool {
		s.words[w] = struct{}{}
		return true
	})
	return s, err
}

// Contains reports whether word is in the set.
func (s *Set) Contains(_ context.Context, word domain.NormalizedWord) bool {
	if s == nil {
		return false
	}
	_, ok := s.words[word]
	return ok
}

// Len returns the number of distinct words.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.words)
}
