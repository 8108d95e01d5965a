package testhelper

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AstroX11/word-vaildator-api/internal/domain"
)

// UniqueWord returns a normalized word that no other test uses, so tests
// sharing the container never see each other's rows.
func UniqueWord(prefix string) domain.NormalizedWord {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
	return domain.NormalizeWord(prefix + suffix)
}

// SeedWords inserts words directly into the words table.
func SeedWords(t *testing.T, pool *pgxpool.Pool, words ...domain.NormalizedWord) {
	t.Helper()
	ctx := context.Background()

	for _, w := range words {
		_, err := pool.Exec(ctx,
			`INSERT INTO words (word) VALUES ($1) ON CONFLICT (word) DO NOTHING`,
			w.String(),
		)
		if err != nil {
			t.Fatalf("testhelper: seed word %q: %v", w, err)
		}
	}
}
