package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"time"
)

// responseWriter captures status, size and, for failures, the body, so
// the access log can show what the client was actually told.
type responseWriter struct {
	http.ResponseWriter
	body   *bytes.Buffer
	status int
	size   int
}

func (rw *responseWriter) WriteHeader(status int) {
	rw.status = status
	rw.ResponseWriter.WriteHeader(status)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if rw.status >= http.StatusBadRequest {
		rw.body.Write(b)
	}

	size, err := rw.ResponseWriter.Write(b)
	rw.size += size
	return size, err
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{
			ResponseWriter: w,
			status:         http.StatusOK,
			body:           &bytes.Buffer{},
		}

		next.ServeHTTP(rw, r)

		attrs := []any{
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.status,
			"bytes", rw.size,
			"duration", time.Since(start).String(),
		}

		if rw.status >= http.StatusBadRequest {
			attrs = append(attrs, "response_body", rw.body.String())
			slog.Error("request failed", attrs...)
		} else {
			slog.Info("request served", attrs...)
		}
	})
}
