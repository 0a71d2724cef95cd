package auth

import (
	"log/slog"
	"net/http"

	"github.com/ferdiebergado/parentdesk/internal/middleware"
	"github.com/ferdiebergado/parentdesk/internal/pkg/message"
	"github.com/ferdiebergado/parentdesk/internal/pkg/web"
	"github.com/ferdiebergado/parentdesk/internal/platform/jwt"
)

// RequireToken rejects requests without a valid access token. Every failure
// gets the same 401 response; the reason only goes to the log.
func RequireToken(verifier jwt.Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := verifier.VerifyRequest(jwt.FromHTTP(r))
			if err != nil {
				slog.Warn("Access token rejected.",
					"request_id", middleware.RequestIDFromContext(r.Context()),
					"reason", err,
				)
				web.RespondUnauthorized(w, err, message.Unauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithClaims(r.Context(), claims)))
		})
	}
}

// RequireAdmin lets through only callers whose claims carry the admin role.
// It must run after RequireToken.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := ClaimsFromContext(r.Context())
		if err != nil {
			web.RespondUnauthorized(w, err, message.Unauthorized)
			return
		}

		if err := RequireRole(claims, jwt.RoleAdmin); err != nil {
			web.RespondForbidden(w, err, message.AdminRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
