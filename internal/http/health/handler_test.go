package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHandlerReportsVersion(t *testing.T) {
	resp := httptest.NewRecorder()
	Handler("1.4.0")(resp, httptest.NewRequest(http.MethodGet, "/health", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %q", ct)
	}
	var got Response
	if err := json.Unmarshal(resp.Body.Bytes(), &got); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	want := Response{Status: "healthy", Service: ServiceName, Version: "1.4.0"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected payload (-want +got):\n%s", diff)
	}
}
