// Package validator decides whether a word is known, checking the local
// word list before the external provider chain.
package validator

import (
	"context"
	"log/slog"

	"github.com/AstroX11/word-vaildator-api/internal/domain"
	"github.com/AstroX11/word-vaildator-api/pkg/ctxutil"
)

// localSource answers membership questions against the local word list.
// Implementations degrade failures to false.
type localSource interface {
	Contains(ctx context.Context, word domain.NormalizedWord) bool
}

// sizedSource is implemented by local sources that know their size up front.
type sizedSource interface {
	Len() int
}

// externalChain asks external providers, in order, about a word.
type externalChain interface {
	Check(ctx context.Context, word domain.NormalizedWord) (bool, string)
}

// validationRecorder counts finished validations by source.
type validationRecorder interface {
	ObserveValidation(source domain.Source)
}

// DictionaryInfo describes the local source for the index endpoint.
type DictionaryInfo struct {
	Size     int
	OnDemand bool
}

// Service implements word validation.
type Service struct {
	log   *slog.Logger
	local localSource
	chain externalChain
	rec   validationRecorder
}

// NewService creates a new validator service. rec may be nil.
func NewService(logger *slog.Logger, local localSource, chain externalChain, rec validationRecorder) *Service {
	return &Service{
		log:   logger.With("service", "validator"),
		local: local,
		chain: chain,
		rec:   rec,
	}
}

// Validate normalizes raw and looks it up locally, then externally.
// present is false when the caller supplied no word at all, which is the
// only error case.
func (s *Service) Validate(ctx context.Context, raw string, present bool) (domain.ValidationResult, error) {
	if !present {
		return domain.ValidationResult{}, domain.ErrMissingParameter
	}

	word := domain.NormalizeWord(raw)
	result := s.resolve(ctx, word)

	if s.rec != nil {
		s.rec.ObserveValidation(result.Source)
	}
	s.log.InfoContext(ctx, "word validated",
		slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
		slog.String("word", word.String()),
		slog.Bool("found", result.Found),
		slog.String("source", result.Source.String()),
		slog.String("provider", result.Provider),
	)
	return result, nil
}

func (s *Service) resolve(ctx context.Context, word domain.NormalizedWord) domain.ValidationResult {
	if word.IsEmpty() {
		return domain.Miss(word)
	}
	if s.local.Contains(ctx, word) {
		return domain.LocalHit(word)
	}
	if found, name := s.chain.Check(ctx, word); found {
		return domain.ExternalHit(word, name)
	}
	return domain.Miss(word)
}

// DictionaryInfo reports the local word-list size when the source is
// preloaded, or OnDemand for sources consulted per request.
func (s *Service) DictionaryInfo() DictionaryInfo {
	if sized, ok := s.local.(sizedSource); ok {
		return DictionaryInfo{Size: sized.Len()}
	}
	return DictionaryInfo{OnDemand: true}
}
