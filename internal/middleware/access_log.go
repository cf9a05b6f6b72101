package middleware

import (
	"net/http"
	"time"

	"vet-clinic/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// AccessLog loguea una línea por request con status y duración.
func AccessLog(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			fields := map[string]any{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      status,
				"bytes":       ww.BytesWritten(),
				"duration_ms": time.Since(start).Milliseconds(),
				"request_id":  chimw.GetReqID(r.Context()),
			}
			if c, ok := GetClaims(r.Context()); ok {
				fields["user_id"] = c.UserID
			}

			switch {
			case status >= 500:
				log.Error("http request", fields)
			case status >= 400:
				log.Warn("http request", fields)
			default:
				log.Info("http request", fields)
			}
		})
	}
}
