package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/dsa-forge/forge/middleware"
)

func TestMain(m *testing.M) {
	logrus.SetFormatter(&logrus.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	logrus.SetLevel(logrus.DebugLevel)

	logrus.Info("starting tests")
	code := m.Run()
	os.Exit(code)
}

func serveOnce(t *testing.T, handler http.Handler) string {
	t.Helper()

	var seen string
	wrapped := middleware.RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = middleware.RequestIDFromContext(r.Context())
		handler.ServeHTTP(w, r)
	}))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	wrapped.ServeHTTP(httptest.NewRecorder(), req)
	return seen
}

func TestRequestLoggerAttachesRequestID(t *testing.T) {
	noop := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	first := serveOnce(t, noop)
	if first == "" {
		t.Fatal("expected a request id inside the handler")
	}
	second := serveOnce(t, noop)
	if second == first {
		t.Errorf("request ids must be unique per request, got %q twice", first)
	}
}

func TestRequestIDFromContextWithoutLogger(t *testing.T) {
	if id := middleware.RequestIDFromContext(context.Background()); id != "" {
		t.Errorf("expected empty id on a bare context, got %q", id)
	}
}
