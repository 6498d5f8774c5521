package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func userEcho(t *testing.T, got *uuid.UUID) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := GetUserIDFromContext(r.Context())
		require.NoError(t, err)
		*got = id
		w.WriteHeader(http.StatusNoContent)
	})
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestJWTAuthMiddleware(t *testing.T) {
	userID := uuid.New()
	valid := signToken(t, testSecret, jwt.MapClaims{"sub": userID.String(), "exp": time.Now().Add(time.Hour).Unix()})

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"valid token", "Bearer " + valid, http.StatusNoContent},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + valid, http.StatusUnauthorized},
		{"wrong secret", "Bearer " + signToken(t, "other", jwt.MapClaims{"sub": userID.String()}), http.StatusUnauthorized},
		{"expired", "Bearer " + signToken(t, testSecret, jwt.MapClaims{"sub": userID.String(), "exp": time.Now().Add(-time.Hour).Unix()}), http.StatusUnauthorized},
		{"sub not uuid", "Bearer " + signToken(t, testSecret, jwt.MapClaims{"sub": "bob"}), http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got uuid.UUID
			h := JWTAuthMiddleware(testSecret)(userEcho(t, &got))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusNoContent {
				assert.Equal(t, userID, got)
			}
		})
	}
}

func TestDevUserContextMiddleware(t *testing.T) {
	userID := uuid.New()

	var got uuid.UUID
	h := DevUserContextMiddleware(userEcho(t, &got))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(DevUserHeader, userID.String())
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, userID, got)

	for _, v := range []string{"", "not-a-uuid"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(DevUserHeader, v)
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	}
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	_, err := GetUserIDFromContext(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	assert.Error(t, err)
}

func TestFormatHeaders_MasksSensitive(t *testing.T) {
	h := http.Header{}
	h.Set("Authorization", "Bearer abc")
	h.Set("Content-Type", "application/json")

	got := formatHeaders(h)
	assert.Equal(t, "[SENSITIVE]", got["Authorization"])
	assert.Equal(t, "application/json", got["Content-Type"])
}
