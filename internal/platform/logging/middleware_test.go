package logging

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestAccessLoggerLogsRoutePattern(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(contextWithLogger(r.Context(), logger)))
		})
	})
	router.Use(AccessLogger())
	router.Get("/v1/cards/{username}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/cards/jeandupont", nil)
	router.ServeHTTP(httptest.NewRecorder(), req)

	entries := recorded.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	if entries[0].Message != "request completed" {
		t.Fatalf("unexpected log message: %s", entries[0].Message)
	}
	fields := fieldMap(entries[0])
	if f := fields["status"]; f.Integer != http.StatusTeapot {
		t.Errorf("expected status 418, got %+v", f)
	}
	if f := fields["path"]; f.String != "/v1/cards/jeandupont" {
		t.Errorf("unexpected path %+v", f)
	}
	if f := fields["route"]; f.String != "/v1/cards/{username}" {
		t.Errorf("unexpected route %+v", f)
	}
	if _, ok := fields["duration"]; !ok {
		t.Error("expected duration field")
	}
}

func TestRequestLoggerUsesTraceHeader(t *testing.T) {
	SetProjectID("test-project")
	t.Cleanup(resetProjectIDForTest)

	var traceID string
	handler := RequestLogger()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID, _ = TraceIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/profile", nil)
	req.Header.Set("traceparent", "00-3d23d071b5bfd6579171efce907685cb-08f067aa0ba902b7-01")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	want := "projects/test-project/traces/3d23d071b5bfd6579171efce907685cb"
	if traceID != want {
		t.Fatalf("expected trace %q, got %v", want, traceID)
	}
}

func TestRequestLoggerFallsBackToRequestID(t *testing.T) {
	SetProjectID("")
	t.Cleanup(resetProjectIDForTest)

	var traceID string
	inner := RequestLogger()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID, _ = TraceIDFromContext(r.Context())
	}))
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), chimiddleware.RequestIDKey, "test-request-id")
		inner.ServeHTTP(w, r.WithContext(ctx))
	})

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if traceID != "test-request-id" {
		t.Fatalf("expected request id as trace, got %v", traceID)
	}
}
