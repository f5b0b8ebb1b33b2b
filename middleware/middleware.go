package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

/*
	context key types are used to avoid conflicts when sharing data via contexts
	visit https://vld.bg/articles/go-context-type/ for more info
*/
type contextKey string

const KeyCtxRequestID contextKey = "RequestID"

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// RequestLogger tags every request with a fresh id and logs the
// method, path, status and latency once the handler returns.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		ctx := context.WithValue(r.Context(), KeyCtxRequestID, requestID)

		recorder := statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(&recorder, r.WithContext(ctx))

		log.WithFields(log.Fields{
			"request_id": requestID,
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     recorder.status,
			"latency":    time.Since(start).String(),
		}).Info("request completed")
	})
}

// RequestIDFromContext returns the id attached by RequestLogger, or an
// empty string if the request never passed through it.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyCtxRequestID).(string); ok {
		return id
	}
	return ""
}
