// Package merriam checks words against the Merriam-Webster Collegiate
// Dictionary API (dictionaryapi.com).
package merriam

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
	Name = "merriam"

	defaultBaseURL = "https://www.dictionaryapi.com/api/v3/references/collegiate/json"
	defaultTimeout = 5 * time.Second

	// placeholderKey is accepted when no real key is configured.
	placeholderKey = "test"
)

// Provider checks word existence with the Merriam-Webster API.
type Provider struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider with the default API URL.
func NewProvider(apiKey string, logger *slog.Logger) *Provider {
	return NewProviderWithURL(defaultBaseURL, apiKey, logger)
}

// NewProviderWithURL creates a Provider with a custom base URL.
// Empty values fall back to the default URL and the placeholder key.
func NewProviderWithURL(baseURL, apiKey string, logger *slog.Logger) *Provider {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if apiKey == "" {
		apiKey = placeholderKey
	}
	return &Provider{
		baseURL:    baseURL,
		apiKey:     apiKey,
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

// Check reports Confirmed when the collegiate lookup answers with a 2xx.
func (p *Provider) Check(ctx context.Context, word string) provider.Verdict {
	reqURL := p.baseURL + "/" + url.PathEscape(word) + "?" + url.Values{"key": {p.apiKey}}.Encode()

	p.log.DebugContext(ctx, "merriam request", slog.String("word", word))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		p.log.WarnContext(ctx, "merriam create request", slog.String("word", word), slog.String("error", err.Error()))
		return provider.Unreachable
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.log.Log(ctx, failureLevel(ctx), "merriam request failed", slog.String("word", word), slog.String("error", err.Error()))
		return provider.Unreachable
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10)) //nolint:errcheck

	verdict := provider.VerdictFromStatus(resp.StatusCode)

	p.log.DebugContext(ctx, "merriam response",
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
