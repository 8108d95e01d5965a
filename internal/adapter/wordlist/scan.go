// Package wordlist implements local word sources backed by a plain-text
// file of whitespace-separated words. Every token goes through the same
// normalization as query input, so punctuation and case in the file are
// irrelevant.
package wordlist

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode"

	"github.com/AstroX11/word-vaildator-api/internal/domain"
)

// maxTokenBytes caps a single word. Longer runs of non-space bytes are
// skipped, the rest of the input is still read.
const maxTokenBytes = 64 << 10

// EachWord calls fn for every non-empty normalized word of r, stopping
// early when fn returns false.
func EachWord(r io.Reader, fn func(domain.NormalizedWord) bool) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxTokenBytes)
	sc.Split(scanWordsSkippingLong(maxTokenBytes))

	for sc.Scan() {
		w := domain.NormalizeWord(sc.Text())
		if w.IsEmpty() {
			continue
		}
		if !fn(w) {
			return nil
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("wordlist: scan: %w", err)
	}
	return nil
}

// scanWordsSkippingLong behaves like bufio.ScanWords, except that a word
// filling the whole buffer is dropped up to the next space instead of
// failing the scan with bufio.ErrTooLong.
func scanWordsSkippingLong(limit int) bufio.SplitFunc {
	skipping := false
	return func(data []byte, atEOF bool) (int, []byte, error) {
		if skipping {
			i := bytes.IndexFunc(data, unicode.IsSpace)
			if i < 0 {
				return len(data), nil, nil
			}
			skipping = false
			return i, nil, nil
		}

		advance, token, err := bufio.ScanWords(data, atEOF)
		if advance == 0 && token == nil && err == nil && !atEOF && len(data) >= limit {
			skipping = true
			return len(data), nil, nil
		}
		return advance, token, err
	}
}
