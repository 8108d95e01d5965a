// Package wordlist implements the local word source backed by a
// PostgreSQL words table.
package wordlist

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/AstroX11/word-vaildator-api/internal/adapter/postgres"
	filelist "github.com/AstroX11/word-vaildator-api/internal/adapter/wordlist"
	"github.com/AstroX11/word-vaildator-api/internal/domain"
)

const (
	tableWords  = "words"
	tableImport = "words_import"
	columnWord  = "word"
)

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Repo provides word membership checks and bulk import.
type Repo struct {
	pool *pgxpool.Pool
	tx   txManager
	log  *slog.Logger
}

// New creates a new word repository.
func New(pool *pgxpool.Pool, tx txManager, logger *slog.Logger) *Repo {
	return &Repo{
		pool: pool,
		tx:   tx,
		log:  logger.With("adapter", "postgres_wordlist"),
	}
}

// Exists reports whether word is stored.
func (r *Repo) Exists(ctx context.Context, word domain.NormalizedWord) (bool, error) {
	query := builder.Select("1").
		From(tableWords).
		Where(squirrel.Eq{columnWord: word.String()}).
		Prefix("SELECT EXISTS(").
		Suffix(")")

	sql, args, err := query.ToSql()
	if err != nil {
		return false, fmt.Errorf("words exists: build: %w", err)
	}

	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "words exists")
	}
	return exists, nil
}

// Contains is Exists with query failures logged and reported as a miss.
func (r *Repo) Contains(ctx context.Context, word domain.NormalizedWord) bool {
	ok, err := r.Exists(ctx, word)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			r.log.WarnContext(ctx, "word lookup failed", slog.String("error", err.Error()))
		}
		return false
	}
	return ok
}

// Count returns the number of stored words.
func (r *Repo) Count(ctx context.Context) (int64, error) {
	sql, args, err := builder.Select("count(*)").From(tableWords).ToSql()
	if err != nil {
		return 0, fmt.Errorf("words count: build: %w", err)
	}

	var n int64
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "words count")
	}
	return n, nil
}

// Ping checks database connectivity for the readiness probe.
func (r *Repo) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

// Import reads a word list from src, normalizes every line and stores the
// non-empty results. Words already present are skipped. It returns the
// number of newly inserted words.
func (r *Repo) Import(ctx context.Context, src io.Reader) (int64, error) {
	rows, err := readWords(src)
	if err != nil {
		return 0, fmt.Errorf("words import: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}

	var inserted int64
	err = r.tx.RunInTx(ctx, func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, r.pool)

		create := fmt.Sprintf(`CREATE TEMP TABLE %s (%s TEXT NOT NULL) ON COMMIT DROP`, tableImport, columnWord)
		if _, err := q.Exec(ctx, create); err != nil {
			return postgres.MapError(err, "words import: temp table")
		}

		if _, err := q.CopyFrom(ctx, pgx.Identifier{tableImport}, []string{columnWord}, pgx.CopyFromRows(rows)); err != nil {
			return postgres.MapError(err, "words import: copy")
		}

		insert := builder.Insert(tableWords).
			Columns(columnWord).
			Select(builder.Select(columnWord).Distinct().From(tableImport)).
			Suffix("ON CONFLICT (" + columnWord + ") DO NOTHING")

		sql, args, err := insert.ToSql()
		if err != nil {
			return fmt.Errorf("words import: build: %w", err)
		}

		tag, err := q.Exec(ctx, sql, args...)
		if err != nil {
			return postgres.MapError(err, "words import: insert")
		}
		inserted = tag.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, err
	}

	r.log.InfoContext(ctx, "word list imported",
		slog.Int("read", len(rows)),
		slog.Int64("inserted", inserted),
	)
	return inserted, nil
}

func readWords(src io.Reader) ([][]any, error) {
	var rows [][]any
	err := filelist.EachWord(src, func(w domain.NormalizedWord) bool {
		rows = append(rows, []any{w.String()})
		return true
	})
	return rows, err
}
