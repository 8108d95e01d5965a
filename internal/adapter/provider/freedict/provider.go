// Package freedict checks words against the Free Dictionary API
// (dictionaryapi.dev). Any success status counts as confirmation; the body
// is not parsed.
package freedict

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/AstroX11/word-vaildator-api/internal/provider"
)

const (
	// Name identifies the provider in logs and metrics.
	Name = "freedict"

	defaultBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"
	defaultTimeout = 5 * time.Second
)

// Provider checks word existence with the FreeDictionary API.
type Provider struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider with the default FreeDictionary API URL.
func NewProvider(logger *slog.Logger) *Provider {
	return NewProviderWithURL(defaultBaseURL, logger)
}

// NewProviderWithURL creates a Provider with a custom base URL.
// An empty baseURL falls back to the default.
func NewProviderWithURL(baseURL string, logger *slog.Logger) *Provider {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Provider{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		log:        logger.With("adapter", Name),
	}
}

// WithTimeout replaces the HTTP client timeout. Non-positive values keep
// the default.
func (p *Provider) WithTimeout(d time.Duration) *Provider {
	if d > 0 {
		p.httpClient.Timeout = d
	}
	return p
}

// Name implements provider.Checker.
func (p *Provider) Name() string { return Name }

// Check reports Confirmed when the API answers the entry lookup with a 2xx.
func (p *Provider) Check(ctx context.Context, word string) provider.Verdict {
	reqURL := p.baseURL + "/" + url.PathEscape(word)

	p.log.DebugContext(ctx, "freedict request", slog.String("word", word))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		p.log.WarnContext(ctx, "freedict create request", slog.String("word", word), slog.String("error", err.Error()))
		return provider.Unreachable
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.log.Log(ctx, failureLevel(ctx), "freedict request failed", slog.String("word", word), slog.String("error", err.Error()))
		return provider.Unreachable
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10)) //nolint:errcheck

	verdict := provider.VerdictFromStatus(resp.StatusCode)

	p.log.DebugContext(ctx, "freedict response",
		slog.String("word", word),
		slog.Int("status", resp.StatusCode),
		slog.String("verdict", verdict.String()),
	)

	return verdict
}

// failureLevel keeps calls cancelled by the caller out of the warning log.
func failureLevel(ctx context.Context) slog.Level {
	if ctx.Err() != nil {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}
