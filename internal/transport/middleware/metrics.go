package middleware

import (
	"net/http"
	"time"
)

// requestObserver receives one observation per finished request.
type requestObserver interface {
	ObserveRequest(method, route string, status int, d time.Duration)
}

// Metrics returns middleware that reports every request to obs, labelled
// by the matched route pattern.
func Metrics(obs requestObserver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			obs.ObserveRequest(r.Method, routeOf(r), sw.status, time.Since(start))
		})
	}
}
