package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/go-kyugo/usersvc/logger"
)

// RequestID tags each request with an X-Request-Id, reusing the inbound
// header when the client supplied one.
func RequestID(next http.Handler) http.Handler {
	return chimw.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := chimw.GetReqID(r.Context()); id != "" {
			w.Header().Set(chimw.RequestIDHeader, id)
		}
		next.ServeHTTP(w, r)
	}))
}

// Logger logs each HTTP request in a single line once the handler returns.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		f := logger.Fields{
			"duration_ms": time.Since(start).Milliseconds(),
			"method":      r.Method,
			"path":        r.URL.Path,
			"remote_addr": r.RemoteAddr,
			"size":        ww.BytesWritten(),
			"status":      status,
		}
		if id := chimw.GetReqID(r.Context()); id != "" {
			f["request_id"] = id
		}
		if status >= http.StatusInternalServerError {
			logger.Warn("HTTP.Request", f)
			return
		}
		logger.Info("HTTP.Request", f)
	})
}
