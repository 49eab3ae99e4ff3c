// Package middleware provides the HTTP stages that run before API handlers:
// principal resolution, request ids and rate limiting.
package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"shop-demo/internal/domain"
)

// Resolver resolves an Authorization header value into a Principal.
type Resolver interface {
	Resolve(ctx context.Context, header string) (domain.Principal, error)
}

// PrincipalHandlerFunc is a handler that requires an authenticated caller.
// The principal is passed explicitly rather than through the request context.
type PrincipalHandlerFunc func(w http.ResponseWriter, r *http.Request, p domain.Principal)

// RequirePrincipal returns an adapter that resolves the caller before the
// handler body runs. Requests that fail resolution get 401 and never reach
// the handler.
func RequirePrincipal(resolver Resolver, logger *slog.Logger) func(PrincipalHandlerFunc) http.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next PrincipalHandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			p, err := resolver.Resolve(r.Context(), r.Header.Get("Authorization"))
			if err != nil {
				logger.LogAttrs(r.Context(), slog.LevelInfo, "authentication failed",
					slog.String("request_id", RequestIDFromContext(r.Context())),
					slog.String("kind", kindName(err)),
					slog.String("path", r.URL.Path),
				)
				w.Header().Set("WWW-Authenticate", `Bearer realm="shop"`)
				WriteError(w, http.StatusUnauthorized, err.Error())
				return
			}
			next(w, r, p)
		}
	}
}

func kindName(err error) string {
	if kind := domain.KindOf(err); kind != nil {
		return kind.Error()
	}
	return "unknown"
}

// WriteError writes the JSON error body used across the API.
func WriteError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"code":    status,
		"message": message,
	})
}
