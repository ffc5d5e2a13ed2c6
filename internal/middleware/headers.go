package middleware

import "net/http"

// APIHeaders sets response headers appropriate for a JSON API consumed
// by the dashboard SPA: no MIME sniffing, no framing, and no caching —
// the client always refetches after a write.
func APIHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Cache-Control", "no-store")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")

		next.ServeHTTP(w, r)
	})
}
