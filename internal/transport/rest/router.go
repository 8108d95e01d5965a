package rest

import "net/http"

// Routes bundles everything the HTTP surface serves.
type Routes struct {
	Word    *WordHandler
	Health  *HealthHandler
	Metrics http.Handler // nil disables the metrics endpoint

	MetricsPath string
}

// NewRouter registers all routes on a fresh mux. Method patterns make the
// mux answer 405 for anything but GET (and HEAD) on the API routes.
func NewRouter(routes Routes) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", routes.Word.Index)
	mux.HandleFunc("GET /word", routes.Word.Word)

	mux.HandleFunc("GET /live", routes.Health.Live)
	mux.HandleFunc("GET /ready", routes.Health.Ready)
	mux.HandleFunc("GET /health", routes.Health.Health)

	if routes.Metrics != nil && routes.MetricsPath != "" {
		mux.Handle("GET "+routes.MetricsPath, routes.Metrics)
	}

	return mux
}
