package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go_golf_stat_keep/internal/model"
	"go_golf_stat_keep/internal/webutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTAuthMiddleware validates the Bearer token in the Authorization header and
// stores its subject in the context as the user ID.
func JWTAuthMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("JWT auth failed: Authorization header missing")
				webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authorization header is required", "", model.ErrUnauthorized))
				return
			}

			headerParts := strings.Split(authHeader, " ")
			if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
				logger.Warn("JWT auth failed: invalid Authorization header format")
				webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authorization header must be 'Bearer <token>'", "", model.ErrUnauthorized))
				return
			}

			// Parse が署名と有効期限 (exp) を検証する
			token, err := jwt.Parse(headerParts[1], func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				logger.Warn("JWT auth failed: invalid token", "error", err)
				webutil.HandleError(w, logger, model.NewAppError("INVALID_TOKEN", "token is invalid", "", model.ErrUnauthorized))
				return
			}

			subject, err := token.Claims.GetSubject()
			if err != nil || subject == "" {
				logger.Warn("JWT auth failed: sub claim missing", "error", err)
				webutil.HandleError(w, logger, model.NewAppError("INVALID_TOKEN", "token carries no user", "", model.ErrUnauthorized))
				return
			}

			userID, err := uuid.Parse(subject)
			if err != nil {
				logger.Warn("JWT auth failed: sub is not a UUID", "subject", subject, "error", err)
				webutil.HandleError(w, logger, model.NewAppError("INVALID_TOKEN", "token user is malformed", "", model.ErrUnauthorized))
				return
			}

			next.ServeHTTP(w, r.WithContext(withUser(r.Context(), userID)))
		})
	}
}

// withUser stores userID in ctx and tags the request logger with it.
func withUser(ctx context.Context, userID uuid.UUID) context.Context {
	ctx = context.WithValue(ctx, model.UserIDKey, userID)
	return WithLogger(ctx, GetLogger(ctx).With("user_id", userID.String()))
}

// GetUserIDFromContext returns the authenticated user. A missing user means
// the auth middleware was not mounted, which is a server error.
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, error) {
	value, ok := ctx.Value(model.UserIDKey).(uuid.UUID)
	if !ok || value == uuid.Nil {
		return uuid.Nil, model.NewAppError("INTERNAL_SERVER_ERROR", "no user in request context", "", model.ErrInternalServer)
	}
	return value, nil
}
