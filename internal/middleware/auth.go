package middleware

import (
	"net/http"
	"strings"

	"gathergrid/commune/internal/auth"
)

// RequireFullToken admits only requests carrying a valid full-access token.
// Every social-graph mutation sits behind this tier.
func RequireFullToken(tokens *auth.TokenService) func(http.Handler) http.Handler {
	return requireScope(tokens, auth.ScopeFull)
}

// RequireInitialToken admits any valid token. Initial tokens are issued at
// login before the profile is complete; only profile completion and
// full-token reissue are reachable with one.
func RequireInitialToken(tokens *auth.TokenService) func(http.Handler) http.Handler {
	return requireScope(tokens, auth.ScopeInitial)
}

func requireScope(tokens *auth.TokenService, scope auth.Scope) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				http.Error(w, "Unauthorized. Missing bearer token", http.StatusUnauthorized)
				return
			}

			claims, err := tokens.ParseAccessToken(strings.TrimPrefix(authHeader, "Bearer "))
			if err != nil {
				http.Error(w, "Unauthorized. Invalid access token", http.StatusUnauthorized)
				return
			}

			// A full token satisfies an initial requirement, never the
			// other way around.
			if scope == auth.ScopeFull && claims.Scope != auth.ScopeFull {
				http.Error(w, "Unauthorized. Full access token required", http.StatusUnauthorized)
				return
			}

			ctx := auth.SetAccessClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
