package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/securepass/securepass-go/internal/crypto"
)

type contextKey string

const profileIDKey contextKey = "profileID"

// ProfileAuth returns middleware that validates a Bearer profile token from the
// Authorization header.
func ProfileAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeJSONError(w, http.StatusUnauthorized, "missing authorization header")
				return
			}

			token, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || token == "" {
				writeJSONError(w, http.StatusUnauthorized, "invalid authorization format")
				return
			}

			claims, err := crypto.ParseProfileToken(token, secret)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			ctx := WithProfileID(r.Context(), claims.ProfileID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithProfileID stores the authenticated profile on ctx.
func WithProfileID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, profileIDKey, id)
}

// ProfileIDFromContext extracts the authenticated profile ID from the request context.
func ProfileIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(profileIDKey).(int64)
	return id, ok
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
