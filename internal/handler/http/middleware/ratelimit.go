package middleware

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/ngabsen-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/pkg/ratelimit"
)

// RateLimit throttles requests per client IP.
func RateLimit(limiter *ratelimit.GlobalRateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := ratelimit.ClientIP(r)
			if !limiter.Allow(ip) {
				slog.Warn("rate limit exceeded", "ip", ip, "path", r.URL.Path)
				w.Header().Set("Retry-After", "1")
				response.TooManyRequests(w, "Too many requests, please slow down")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
