package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"wordrush/internal/security"
	"wordrush/internal/service"
)

// Middleware holds dependencies for middleware functions
type Middleware struct {
	authService *service.AuthService
	rateLimiter *security.RateLimiter
}

// NewMiddleware creates a new middleware instance
func NewMiddleware(authService *service.AuthService, rateLimiter *security.RateLimiter) *Middleware {
	return &Middleware{
		authService: authService,
		rateLimiter: rateLimiter,
	}
}

// RequireSettings guards the parent settings endpoints. It expects the
// token issued by the PIN login as an Authorization bearer token.
func (m *Middleware) RequireSettings(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			respondWithError(w, http.StatusUnauthorized, "Settings token required", "", nil)
			return
		}

		if err := m.authService.VerifyToken(token); err != nil {
			respondWithError(w, http.StatusUnauthorized, "Invalid or expired settings token", "", nil)
			return
		}

		next(w, r)
	}
}

// RateLimit throttles requests per client IP. Used on the PIN login
// endpoint to slow down guessing.
func (m *Middleware) RateLimit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ip := security.GetClientIP(r)
		if !m.rateLimiter.Allow(ip) {
			respondWithError(w, http.StatusTooManyRequests, "Too many attempts, try again later", "", nil)
			return
		}
		next(w, r)
	}
}

// Logging middleware logs HTTP requests
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		next.ServeHTTP(w, r)

		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}
