package middleware

import (
	"net/http"
)

const (
	HeaderAllowOrigin  = "Access-Control-Allow-Origin"
	HeaderAllowMethods = "Access-Control-Allow-Methods"
	HeaderAllowHeaders = "Access-Control-Allow-Headers"
	HeaderAllowCreds   = "Access-Control-Allow-Credentials"
	HeaderVary         = "Vary"

	AllowedMethods = "GET, POST, DELETE, OPTIONS"
	AllowedHeaders = "Content-Type, Authorization, X-Request-ID"
)

// CORS allows cross-origin calls from allowedOrigin only. Preflight requests
// from that origin are answered directly.
func CORS(allowedOrigin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add(HeaderVary, "Origin")

			origin := r.Header.Get("Origin")
			if origin == "" || origin != allowedOrigin {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set(HeaderAllowOrigin, origin)
			w.Header().Set(HeaderAllowCreds, "true")
			w.Header().Set(HeaderAllowMethods, AllowedMethods)
			w.Header().Set(HeaderAllowHeaders, AllowedHeaders)

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
