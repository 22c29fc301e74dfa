package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"rk-commerce/internal/data/entity"
	"rk-commerce/internal/usecase"
	"rk-commerce/pkg/utils"

	"go.uber.org/zap"
)

// TokenVerifier resolves a bearer token to its user.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*entity.User, error)
}

// Auth middleware untuk validasi bearer JWT
func Auth(verifier TokenVerifier, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Extract token
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Not authenticated")
				return
			}

			scheme, token, found := strings.Cut(authHeader, " ")
			token = strings.TrimSpace(token)
			if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			user, err := verifier.Verify(r.Context(), token)
			if err != nil {
				if errors.Is(err, usecase.ErrUnauthorized) {
					utils.ResponseUnauthorized(w, err.Error())
					return
				}
				logger.Error("Failed to validate token",
					zap.String("request_id", utils.GetRequestIDFromContext(r.Context())),
					zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			// Set context dengan user DAN token
			ctx := utils.SetUserContext(r.Context(), user)
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
