package api

import (
	"net/http"
)

func (h *Handler) instrument(endpoint string, next http.Handler) http.Handler {
	if h.metrics == nil {
		return next
	}
	return h.metrics.instrument(endpoint, next)
}

// limit rejects requests beyond the configured rate with 429.
func (h *Handler) limit(next http.Handler) http.Handler {
	if h.limiter == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.limiter.Allow() {
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
