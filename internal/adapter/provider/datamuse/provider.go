// Package datamuse checks words with the Datamuse spelling-suggestion API.
package datamuse

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/AstroX11/word-vaildator-api/internal/domain"
	"github.com/AstroX11/word-vaildator-api/internal/provider"
)

const (
	// Name identifies the provider in logs and metrics.
	Name = "datamuse"

	defaultBaseURL = "https://api.datamuse.com"
	defaultTimeout = 5 * time.Second

	// maxSuggestions is the number of ranked suggestions requested.
	// Only the top one decides the verdict.
	maxSuggestions = 1

	maxBodyBytes = 1 << 20
)

// suggestion is a single entry of the Datamuse /words response.
type suggestion struct {
	Word  string `json:"word"`
	Score int    `json:"score"`
}

// Provider checks words by asking Datamuse for spelling suggestions.
type Provider struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider with the default Datamuse API URL.
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

// Check reports Confirmed when the top-ranked suggestion normalizes to the
// queried word. An empty suggestion list is NotConfirmed; an unparseable
// body is Unreachable.
func (p *Provider) Check(ctx context.Context, word string) provider.Verdict {
	suggestions, err := p.fetchSuggestions(ctx, word)
	if err != nil {
		level := slog.LevelWarn
		if ctx.Err() != nil {
			level = slog.LevelDebug
		}
		p.log.Log(ctx, level, "datamuse request failed", slog.String("word", word), slog.String("error", err.Error()))
		return provider.Unreachable
	}
	if suggestions == nil {
		return provider.NotConfirmed
	}

	verdict := provider.NotConfirmed
	if len(suggestions) > 0 && string(domain.NormalizeWord(suggestions[0].Word)) == word {
		verdict = provider.Confirmed
	}

	p.log.DebugContext(ctx, "datamuse response",
		slog.String("word", word),
		slog.Int("suggestions", len(suggestions)),
		slog.String("verdict", verdict.String()),
	)

	return verdict
}

// fetchSuggestions returns the ranked suggestions for word.
// A 4xx answer returns nil, nil.
func (p *Provider) fetchSuggestions(ctx context.Context, word string) ([]suggestion, error) {
	q := url.Values{}
	q.Set("sp", word)
	q.Set("max", fmt.Sprint(maxSuggestions))
	reqURL := p.baseURL + "/words?" + q.Encode()

	p.log.DebugContext(ctx, "datamuse request", slog.String("word", word))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("datamuse: create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("datamuse: request failed: %w", err)
	}
	defer resp.Body.Close()

	switch provider.VerdictFromStatus(resp.StatusCode) {
	case provider.Unreachable:
		return nil, fmt.Errorf("datamuse: unexpected status %d", resp.StatusCode)
	case provider.NotConfirmed:
		return nil, nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("datamuse: read body: %w", err)
	}

	suggestions := []suggestion{}
	if err := json.Unmarshal(body, &suggestions); err != nil {
		return nil, fmt.Errorf("datamuse: decode json: %w", err)
	}

	return suggestions, nil
}
