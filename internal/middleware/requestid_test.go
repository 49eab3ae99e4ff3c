package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureRequestID(captured *string) http.Handler {
	return RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*captured = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))
}

func TestRequestID_GeneratesNewID(t *testing.T) {
	var got string
	rec := httptest.NewRecorder()
	captureRequestID(&got).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotEmpty(t, got)
	assert.Equal(t, got, rec.Header().Get(RequestIDHeader))
}

func TestRequestID_PreservesClientID(t *testing.T) {
	var got string
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "custom-id-123")
	rec := httptest.NewRecorder()
	captureRequestID(&got).ServeHTTP(rec, req)

	assert.Equal(t, "custom-id-123", got)
	assert.Equal(t, "custom-id-123", rec.Header().Get(RequestIDHeader))
}

func TestRequestID_ReplacesOversizedID(t *testing.T) {
	var got string
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, strings.Repeat("x", maxRequestIDLen+1))
	rec := httptest.NewRecorder()
	captureRequestID(&got).ServeHTTP(rec, req)

	require.NotEmpty(t, got)
	assert.Less(t, len(got), maxRequestIDLen)
}

func TestRequestIDFromContext_Empty(t *testing.T) {
	assert.Empty(t, RequestIDFromContext(context.Background()))
}
