package datamuse

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AstroX11/word-vaildator-api/internal/provider"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newJSONServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestProvider_Check_RequestShape(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/words", r.URL.Path)
		assert.Equal(t, "xyzzy123", r.URL.Query().Get("sp"))
		assert.Equal(t, "1", r.URL.Query().Get("max"))
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	p := NewProviderWithURL(srv.URL, newTestLogger())
	p.Check(context.Background(), "xyzzy123")
}

func TestProvider_Check(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		word   string
		status int
		body   string
		want   provider.Verdict
	}{
		{name: "exact first suggestion", word: "xyzzy123", status: 200, body: `[{"word":"xyzzy123","score":100}]`, want: provider.Confirmed},
		{name: "suggestion differs only in case", word: "hello", status: 200, body: `[{"word":"Hello","score":90}]`, want: provider.Confirmed},
		{name: "suggestion with punctuation", word: "dont", status: 200, body: `[{"word":"don't","score":90}]`, want: provider.Confirmed},
		{name: "different first suggestion", word: "helo", status: 200, body: `[{"word":"hello","score":90}]`, want: provider.NotConfirmed},
		{name: "match only in second place", word: "helo", status: 200, body: `[{"word":"hello"},{"word":"helo"}]`, want: provider.NotConfirmed},
		{name: "empty list", word: "zzqv", status: 200, body: `[]`, want: provider.NotConfirmed},
		{name: "null body", word: "zzqv", status: 200, body: `null`, want: provider.NotConfirmed},
		{name: "malformed body", word: "zzqv", status: 200, body: `{"oops":`, want: provider.Unreachable},
		{name: "client error", word: "zzqv", status: 400, body: `{}`, want: provider.NotConfirmed},
		{name: "server error", word: "zzqv", status: 503, body: ``, want: provider.Unreachable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			srv := newJSONServer(t, tt.status, tt.body)
			p := NewProviderWithURL(srv.URL, newTestLogger())
			assert.Equal(t, tt.want, p.Check(context.Background(), tt.word))
		})
	}
}

func TestProvider_Check_NetworkError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	p := NewProviderWithURL(url, newTestLogger())
	assert.Equal(t, provider.Unreachable, p.Check(context.Background(), "offline"))
}

func TestProvider_WithTimeout(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 9*time.Second, NewProviderWithURL("", newTestLogger()).WithTimeout(9*time.Second).httpClient.Timeout)
	assert.Equal(t, defaultTimeout, NewProviderWithURL("", newTestLogger()).WithTimeout(-1).httpClient.Timeout)
}
