package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"ms-listing/internal/logger"
)

// RequestID tags each request with a correlation id, echoed back in
// the X-Request-ID header. Incoming ids are kept so upstream proxies
// can trace through.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

// RequestLogger logs every handled request with its status and
// duration.
func RequestLogger(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			log.LogAPI(r.Method, r.URL.Path,
				fmt.Sprintf("%d", rec.status),
				time.Since(start).String())
		})
	}
}
