package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop-demo/internal/domain"
)

type resolverFunc func(ctx context.Context, header string) (domain.Principal, error)

func (f resolverFunc) Resolve(ctx context.Context, header string) (domain.Principal, error) {
	return f(ctx, header)
}

func TestRequirePrincipal_PassesPrincipal(t *testing.T) {
	var seenHeader string
	resolver := resolverFunc(func(_ context.Context, header string) (domain.Principal, error) {
		seenHeader = header
		return domain.Principal{Username: "yaho"}, nil
	})

	var got domain.Principal
	handler := RequirePrincipal(resolver, nil)(func(w http.ResponseWriter, _ *http.Request, p domain.Principal) {
		got = p
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer abc")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "Bearer abc", seenHeader)
	assert.Equal(t, "yaho", got.Username)
}

func TestRequirePrincipal_RejectsUnresolved(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"missing", domain.ErrUnauthorized(domain.ErrMissingCredentials, "authorization header is required")},
		{"malformed", domain.ErrUnauthorized(domain.ErrMalformedCredentials, "authorization header must use the Bearer scheme")},
		{"invalid", domain.ErrUnauthorized(domain.ErrInvalidToken, "token is expired")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := resolverFunc(func(context.Context, string) (domain.Principal, error) {
				return domain.Principal{}, tt.err
			})
			called := false
			handler := RequirePrincipal(resolver, nil)(func(http.ResponseWriter, *http.Request, domain.Principal) {
				called = true
			})

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.False(t, called, "handler must not run")
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Header().Get("WWW-Authenticate"), "Bearer")

			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.InDelta(t, float64(401), body["code"], 0.001)
			assert.Equal(t, tt.err.Error(), body["message"])
		})
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, http.StatusBadRequest, "bad")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"code":400,"message":"bad"}`, rec.Body.String())
}
