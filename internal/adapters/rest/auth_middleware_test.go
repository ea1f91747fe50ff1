package rest

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"listing-service/internal/core/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSigningKey = "test-signing-key"

func signToken(t *testing.T, claims jwtCustomClaims, key string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(key))
	require.NoError(t, err)
	return signed
}

func validClaims() jwtCustomClaims {
	return jwtCustomClaims{
		UserID: 7,
		Email:  "agent@example.com",
		Role:   "agent",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func authProbe(t *testing.T, header string) (*httptest.ResponseRecorder, *domain.Principal) {
	t.Helper()

	var got *domain.Principal
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if principal, ok := PrincipalFromContext(r.Context()); ok {
			got = &principal
		}
		w.WriteHeader(http.StatusNoContent)
	})

	r := httptest.NewRequest(http.MethodGet, "/api/v1/me/saved-listings", nil)
	if header != "" {
		r.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()

	AuthMiddleware(testSigningKey)(next).ServeHTTP(rec, r)
	return rec, got
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	token := signToken(t, validClaims(), testSigningKey)

	rec, principal := authProbe(t, "Bearer "+token)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	require.NotNil(t, principal)
	assert.Equal(t, int64(7), principal.UserID)
	assert.Equal(t, "agent@example.com", principal.Email)
	assert.Equal(t, "agent", principal.Role)
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	rec, principal := authProbe(t, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, principal)
}

func TestAuthMiddlewareWrongScheme(t *testing.T) {
	rec, principal := authProbe(t, "Basic dXNlcjpwYXNz")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, principal)
}

func TestAuthMiddlewareWrongKey(t *testing.T) {
	token := signToken(t, validClaims(), "another-key")

	rec, principal := authProbe(t, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, principal)
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	claims := validClaims()
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
	token := signToken(t, claims, testSigningKey)

	rec, principal := authProbe(t, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, principal)
}

func TestAuthMiddlewareTokenWithoutUserID(t *testing.T) {
	claims := validClaims()
	claims.UserID = 0
	token := signToken(t, claims, testSigningKey)

	rec, principal := authProbe(t, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, principal)
}

func TestPrincipalFromContextWithoutMiddleware(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := PrincipalFromContext(r.Context())

	assert.False(t, ok)
}
