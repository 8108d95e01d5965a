package middleware

import (
	"net/http"
	"time"
)

// requestRecorder receives one observation per served request.
type requestRecorder interface {
	ObserveRequest(method, route string, status int, d time.Duration)
}

// unmatchedRoute labels requests no registered pattern matched.
const unmatchedRoute = "unmatched"

// Metrics returns middleware that records request count and latency per
// route. It must wrap the *http.ServeMux directly: the route label is the
// pattern the mux stores on the request it was handed.
func Metrics(rec requestRecorder) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := newStatusWriter(w)

			next.ServeHTTP(sw, r)

			route := r.Pattern
			if route == "" {
				route = unmatchedRoute
			}
			rec.ObserveRequest(r.Method, route, sw.status, time.Since(start))
		})
	}
}
