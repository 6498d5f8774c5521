// internal/middleware/dev_auth.go
package middleware

import (
	"net/http"

	"go_golf_stat_keep/internal/model"
	"go_golf_stat_keep/internal/webutil"

	"github.com/google/uuid"
)

// DevUserHeader carries the user ID when auth is disabled.
const DevUserHeader = "X-User-ID"

// DevUserContextMiddleware is for development only. It trusts the X-User-ID
// header as the user ID without any verification.
func DevUserContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		raw := r.Header.Get(DevUserHeader)
		if raw == "" {
			logger.Warn("[DEV AUTH] X-User-ID header missing")
			webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "[DEV] X-User-ID header is required", "", model.ErrUnauthorized))
			return
		}

		userID, err := uuid.Parse(raw)
		if err != nil {
			logger.Warn("[DEV AUTH] invalid X-User-ID", "value", raw)
			webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "[DEV] X-User-ID must be a UUID", "", model.ErrUnauthorized))
			return
		}

		// ヘッダーの値をそのままユーザーIDとして context に格納する
		logger.Debug("[DEV AUTH] user set from header", "user_id", userID.String())
		next.ServeHTTP(w, r.WithContext(withUser(r.Context(), userID)))
	})
}
