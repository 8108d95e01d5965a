package rest

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AstroX11/word-vaildator-api/internal/adapter/provider/datamuse"
	"github.com/AstroX11/word-vaildator-api/internal/adapter/provider/freedict"
	"github.com/AstroX11/word-vaildator-api/internal/adapter/provider/merriam"
	"github.com/AstroX11/word-vaildator-api/internal/adapter/wordlist"
	"github.com/AstroX11/word-vaildator-api/internal/config"
	"github.com/AstroX11/word-vaildator-api/internal/metrics"
	"github.com/AstroX11/word-vaildator-api/internal/service/validator"
	"github.com/AstroX11/word-vaildator-api/internal/transport/middleware"
)

// fakeProviders stands in for the three public APIs. Only datamuse knows
// "xyzzy123"; nobody else knows anything.
type fakeProviders struct {
	freedict, datamuse, merriam *httptest.Server
	freedictHits, datamuseHits  atomic.Int32
	merriamHits                 atomic.Int32
}

func newFakeProviders(t *testing.T) *fakeProviders {
	t.Helper()
	f := &fakeProviders{}

	f.freedict = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.freedictHits.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	f.datamuse = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.datamuseHits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("sp") == "xyzzy123" {
			_, _ = w.Write([]byte(`[{"word":"xyzzy123","score":1}]`))
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	f.merriam = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.merriamHits.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))

	t.Cleanup(func() {
		f.freedict.Close()
		f.datamuse.Close()
		f.merriam.Close()
	})
	return f
}

func (f *fakeProviders) hits() [3]int32 {
	return [3]int32{f.freedictHits.Load(), f.datamuseHits.Load(), f.merriamHits.Load()}
}

func newTestServer(t *testing.T, f *fakeProviders) *httptest.Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := metrics.New()

	chain := validator.NewChain(logger,
		config.ChainConfig{Mode: config.ChainSequential, ProviderTimeout: 2 * time.Second},
		m,
		freedict.NewProviderWithURL(f.freedict.URL, logger),
		datamuse.NewProviderWithURL(f.datamuse.URL, logger),
		merriam.NewProviderWithURL(f.merriam.URL, "test", logger),
	)
	svc := validator.NewService(logger, wordlist.NewSet("hello", "world"), chain, m)

	mux := NewRouter(Routes{
		Word:        NewWordHandler(svc, "0.1.0", logger),
		Health:      NewHealthHandler("0.1.0"),
		Metrics:     m.Handler(),
		MetricsPath: "/metrics",
	})
	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.Metrics(m),
	)(mux)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string) (int, map[string]any) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestRouter_Scenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   map[string]any
		wantHits   [3]int32
	}{
		{
			name:       "local hit is case-insensitive",
			path:       "/word?word=HELLO",
			wantStatus: http.StatusOK,
			wantBody:   map[string]any{"word": "hello", "found": true, "source": "local"},
			wantHits:   [3]int32{0, 0, 0},
		},
		{
			name:       "external hit via datamuse",
			path:       "/word?word=xyzzy123",
			wantStatus: http.StatusOK,
			wantBody:   map[string]any{"word": "xyzzy123", "found": true, "source": "external"},
			wantHits:   [3]int32{1, 1, 0},
		},
		{
			name:       "unknown everywhere",
			path:       "/word?word=zzqv",
			wantStatus: http.StatusOK,
			wantBody:   map[string]any{"word": "zzqv", "found": false, "source": "none"},
			wantHits:   [3]int32{1, 1, 1},
		},
		{
			name:       "missing parameter",
			path:       "/word",
			wantStatus: http.StatusBadRequest,
			wantBody:   map[string]any{"error": "Missing 'word' query parameter"},
			wantHits:   [3]int32{0, 0, 0},
		},
		{
			name:       "empty key after normalization",
			path:       "/word?word=%21%21%21",
			wantStatus: http.StatusOK,
			wantBody:   map[string]any{"word": "", "found": false, "source": "none"},
			wantHits:   [3]int32{0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFakeProviders(t)
			srv := newTestServer(t, f)

			status, body := getJSON(t, srv.URL+tt.path)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantBody, body)
			assert.Equal(t, tt.wantHits, f.hits())
		})
	}
}

func TestRouter_Index(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, newFakeProviders(t))

	status, body := getJSON(t, srv.URL+"/")

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Word Validator API", body["service"])
	assert.Equal(t, "0.1.0", body["version"])
	assert.Equal(t, "/word?word=<word_to_validate>", body["usage"])
	assert.Equal(t, float64(2), body["dictionary_size"])
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, newFakeProviders(t))

	for _, path := range []string{"/", "/word?word=hello"} {
		resp, err := http.Post(srv.URL+path, "text/plain", strings.NewReader("x"))
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode, path)
	}
}

func TestRouter_UnknownPath(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, newFakeProviders(t))

	resp, err := http.Get(srv.URL + "/nope")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouter_RequestIDHeader(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, newFakeProviders(t))

	resp, err := http.Get(srv.URL + "/live")
	require.NoError(t, err)
	resp.Body.Close()

	assert.NotEmpty(t, resp.Header.Get(middleware.RequestIDHeader))
}

func TestRouter_Metrics(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, newFakeProviders(t))

	_, _ = getJSON(t, srv.URL+"/word?word=xyzzy123")

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	text := string(raw)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, text, `wordvalidator_validations_total{source="external"} 1`)
	assert.Contains(t, text, `wordvalidator_provider_verdicts_total{provider="datamuse",verdict="confirmed"} 1`)
	assert.Contains(t, text, `wordvalidator_provider_verdicts_total{provider="freedict",verdict="not_confirmed"} 1`)
	assert.Contains(t, text, `wordvalidator_http_requests_total{method="GET",route="GET /word",status="200"} 1`)
}
