package rest

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"listing-service/internal/core/domain"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const principalKey = contextKey("principal")

type jwtCustomClaims struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// AuthMiddleware validates the Bearer token and stores the verified
// principal in the request context. Identity is never taken from the body.
func AuthMiddleware(signingKey string) func(next http.Handler) http.Handler {
	key := []byte(signingKey)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				WriteJSONError(w, http.StatusUnauthorized, "Authorization header is missing")
				return
			}

			tokenString, found := strings.CutPrefix(header, "Bearer ")
			if !found {
				WriteJSONError(w, http.StatusUnauthorized, "Authorization header must be a Bearer token")
				return
			}

			token, err := jwt.ParseWithClaims(tokenString, &jwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return key, nil
			})
			if err != nil || !token.Valid {
				WriteJSONError(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			claims, ok := token.Claims.(*jwtCustomClaims)
			if !ok || claims.UserID == 0 {
				WriteJSONError(w, http.StatusUnauthorized, "Token carries no user identity")
				return
			}

			principal := domain.Principal{
				UserID: claims.UserID,
				Email:  claims.Email,
				Role:   claims.Role,
			}

			ctx := context.WithValue(r.Context(), principalKey, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// PrincipalFromContext returns the verified principal placed by
// AuthMiddleware. The bool is false on routes that skipped authentication.
func PrincipalFromContext(ctx context.Context) (domain.Principal, bool) {
	principal, ok := ctx.Value(principalKey).(domain.Principal)
	return principal, ok
}
