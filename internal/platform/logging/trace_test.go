package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const sampledHeader = "00-3d23d071b5bfd6579171efce907685cb-08f067aa0ba902b7-01"

func resetProjectIDForTest() {
	projectIDMu.Lock()
	defer projectIDMu.Unlock()
	cachedProjectID = ""
	projectIDSet = false
}

func TestTraceFields(t *testing.T) {
	fields := traceFields(sampledHeader, "test-project")
	if len(fields) != 3 {
		t.Fatalf("expected 3 fields, got %d", len(fields))
	}
	if fields[0].String != "projects/test-project/traces/3d23d071b5bfd6579171efce907685cb" {
		t.Errorf("unexpected trace resource %q", fields[0].String)
	}
	if fields[1].String != "08f067aa0ba902b7" {
		t.Errorf("unexpected span %q", fields[1].String)
	}
	if fields[2].Integer != 1 {
		t.Error("expected sampled flag")
	}

	notSampled := traceFields("00-3d23d071b5bfd6579171efce907685cb-08f067aa0ba902b7-00", "test-project")
	if notSampled[2].Integer != 0 {
		t.Error("expected flags 00 to be unsampled")
	}
}

func TestTraceFieldsInvalid(t *testing.T) {
	for _, tc := range []struct{ header, project string }{
		{"", "test-project"},
		{"trace/span;o=1", "test-project"},
		{"00-xyz-08f067aa0ba902b7-01", "test-project"},
		{sampledHeader, ""},
	} {
		if fields := traceFields(tc.header, tc.project); fields != nil {
			t.Errorf("expected nil fields for %+v, got %v", tc, fields)
		}
		if res := traceResource(tc.header, tc.project); res != "" {
			t.Errorf("expected empty resource for %+v, got %q", tc, res)
		}
	}
}

func TestLoggerWithTrace(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	loggerWithTrace(base, sampledHeader, "test-project", "req-123").Info("hello")
	loggerWithTrace(base, "", "", "").Info("plain")

	entries := recorded.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	fields := fieldMap(entries[0])
	if fields["requestId"].String != "req-123" {
		t.Errorf("expected requestId field, got %+v", fields)
	}
	if _, ok := fields["logging.googleapis.com/trace"]; !ok {
		t.Errorf("expected trace field, got %+v", fields)
	}
	if len(entries[1].Context) != 0 {
		t.Errorf("expected no context fields, got %+v", entries[1].Context)
	}
	if loggerWithTrace(nil, "", "", "") == nil {
		t.Error("expected nop logger for nil base")
	}
}

func TestResolveProjectID(t *testing.T) {
	t.Cleanup(resetProjectIDForTest)

	resetProjectIDForTest()
	t.Setenv("FIREBASE_PROJECT_ID", "")
	t.Setenv("GOOGLE_CLOUD_PROJECT", "gcloud-proj")
	if got := resolveProjectID(); got != "gcloud-proj" {
		t.Errorf("expected env fallback, got %q", got)
	}

	resetProjectIDForTest()
	t.Setenv("FIREBASE_PROJECT_ID", "firebase-proj")
	if got := resolveProjectID(); got != "firebase-proj" {
		t.Errorf("expected FIREBASE_PROJECT_ID first, got %q", got)
	}

	SetProjectID("configured")
	if got := resolveProjectID(); got != "configured" {
		t.Errorf("expected configured project, got %q", got)
	}
}

func TestFirstNonEmpty(t *testing.T) {
	if got := firstNonEmpty("", "", "value", "other"); got != "value" {
		t.Fatalf("expected 'value', got %q", got)
	}
	if got := firstNonEmpty("", ""); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
