package middleware

import (
	"net/http"
	"strings"

	"roomagent/config"
)

// EnableCORS adds CORS headers to responses. Allowed origins come from the
// ALLOWED_ORIGINS environment variable (comma-separated); when unset, any
// origin is allowed.
func EnableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		allowed := config.GetAllowedOrigins()

		if allowed == "" {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		} else {
			for _, candidate := range strings.Split(allowed, ",") {
				if strings.TrimSpace(candidate) == origin {
					w.Header().Set("Access-Control-Allow-Origin", origin)
					break
				}
			}
		}

		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Max-Age", "86400") // 24 hours

		// Handle preflight requests
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next(w, r)
	}
}
