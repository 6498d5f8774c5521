package middleware

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// logCtxKey is the context key of the request-scoped logger.
type logCtxKey struct{}

// sensitiveHeaders are masked when headers are logged. Keys are lower case.
var sensitiveHeaders = map[string]bool{
	"authorization": true,
	"cookie":        true,
	"set-cookie":    true,
	"x-api-key":     true,
	"x-csrf-token":  true,
}

// maxLoggedBody caps how much of a request or response body ends up in a debug log.
// Scorecard exports are binary and can be large.
const maxLoggedBody = 4 << 10

// responseLogger records the status code and body written by a handler.
type responseLogger struct {
	http.ResponseWriter
	statusCode int
	bytesOut   int
	body       *bytes.Buffer
}

func newResponseLogger(w http.ResponseWriter) *responseLogger {
	return &responseLogger{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
		body:           new(bytes.Buffer),
	}
}

func (rl *responseLogger) WriteHeader(statusCode int) {
	rl.statusCode = statusCode
	rl.ResponseWriter.WriteHeader(statusCode)
}

func (rl *responseLogger) Write(b []byte) (int, error) {
	if room := maxLoggedBody - rl.body.Len(); room > 0 {
		if len(b) < room {
			room = len(b)
		}
		rl.body.Write(b[:room])
	}
	n, err := rl.ResponseWriter.Write(b)
	rl.bytesOut += n
	return n, err
}

// LoggingMiddleware stores a request-scoped logger in the context and logs the
// start and completion of every request. Headers and bodies are logged at debug level.
func LoggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			startTime := time.Now()

			requestLogger := logger.With("req_id", chimiddleware.GetReqID(r.Context()))
			r = r.WithContext(WithLogger(r.Context(), requestLogger))

			requestLogger.Info("Request started",
				"method", r.Method,
				"path", r.URL.Path,
				"remote_addr", r.RemoteAddr,
			)

			debug := logger.Enabled(r.Context(), slog.LevelDebug)
			var reqBody []byte
			if debug && r.Body != nil {
				reqBody, _ = io.ReadAll(r.Body)
				r.Body = io.NopCloser(bytes.NewBuffer(reqBody))
			}

			rl := newResponseLogger(w)
			next.ServeHTTP(rl, r)

			level := slog.LevelInfo
			if rl.statusCode >= 500 {
				level = slog.LevelError
			} else if rl.statusCode >= 400 {
				level = slog.LevelWarn
			}

			requestLogger.Log(r.Context(), level, "Request completed",
				"status", rl.statusCode,
				"latency_ms", float64(time.Since(startTime).Nanoseconds())/1e6,
				"bytes_out", rl.bytesOut,
			)

			if debug {
				requestLogger.Debug("Request detail",
					"headers", formatHeaders(r.Header),
					"body", truncate(reqBody),
				)
				requestLogger.Debug("Response detail",
					"status", rl.statusCode,
					"headers", formatHeaders(rl.Header()),
					"body", rl.body.String(),
				)
			}
		})
	}
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, logCtxKey{}, logger)
}

// GetLogger returns the request-scoped logger, or slog.Default when there is none.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(logCtxKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

func formatHeaders(headers http.Header) map[string]string {
	result := make(map[string]string, len(headers))
	for key, values := range headers {
		if sensitiveHeaders[strings.ToLower(key)] {
			result[key] = "[SENSITIVE]"
		} else {
			result[key] = strings.Join(values, ", ")
		}
	}
	return result
}

func truncate(b []byte) string {
	if len(b) > maxLoggedBody {
		return string(b[:maxLoggedBody]) + "...(truncated)"
	}
	return string(b)
}
