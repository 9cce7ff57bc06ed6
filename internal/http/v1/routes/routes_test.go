package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/janisto/digicard/internal/draft"
	"github.com/janisto/digicard/internal/platform/auth"
	applog "github.com/janisto/digicard/internal/platform/logging"
	appmiddleware "github.com/janisto/digicard/internal/platform/middleware"
	"github.com/janisto/digicard/internal/platform/respond"
	"github.com/janisto/digicard/internal/service/avatar"
	cardsvc "github.com/janisto/digicard/internal/service/cards"
	"github.com/janisto/digicard/internal/service/events"
	profilesvc "github.com/janisto/digicard/internal/service/profile"
	"github.com/janisto/digicard/internal/service/stats"
)

func newTestRouter(user *auth.FirebaseUser) chi.Router {
	profiles := profilesvc.NewMockProfileService()
	ev := events.NewMockEventService()

	router := chi.NewRouter()
	router.Use(
		appmiddleware.RequestID(),
		chimiddleware.RealIP,
		applog.RequestLogger(),
		respond.Recoverer(),
	)
	cfg := huma.DefaultConfig("RoutesTest", "test")
	cfg.Servers = []*huma.Server{{URL: "/v1"}}
	api := humachi.New(router, cfg)
	Register(api, &auth.MockVerifier{User: user}, Services{
		Profiles: profiles,
		Cards:    cardsvc.New(profiles, avatar.NewMockUploader(), ev, "https://cards.example.com"),
		Stats:    stats.New(profiles, ev),
		Drafts:   draft.NewMemory(),
	})
	return router
}

func TestRegisterRoutes(t *testing.T) {
	tests := []struct {
		name       string
		user       *auth.FirebaseUser
		method     string
		path       string
		token      bool
		wantStatus int
	}{
		{"public card without token", auth.TestUser(), http.MethodGet, "/cards/demo", false, http.StatusOK},
		{"qr without token", auth.TestUser(), http.MethodGet, "/cards/demo/qr", false, http.StatusOK},
		{"profile requires token", auth.TestUser(), http.MethodGet, "/profile", false, http.StatusUnauthorized},
		{"profile with token", auth.TestUser(), http.MethodGet, "/profile", true, http.StatusNotFound},
		{"draft with token", auth.TestUser(), http.MethodGet, "/profile/draft", true, http.StatusOK},
		{"admin rejects owner", auth.TestUser(), http.MethodGet, "/admin/stats", true, http.StatusForbidden},
		{"admin accepts admin", auth.TestAdmin(), http.MethodGet, "/admin/profiles", true, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(tt.user)
			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Header.Set(chimiddleware.RequestIDHeader, "routes-test")
			if tt.token {
				req.Header.Set("Authorization", "Bearer valid-token")
			}
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			if resp.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tt.wantStatus, resp.Code, resp.Body.String())
			}
		})
	}
}

func TestPublicCardNegotiatesCBOR(t *testing.T) {
	router := newTestRouter(auth.TestUser())

	req := httptest.NewRequest(http.MethodGet, "/cards/demo", nil)
	req.Header.Set("Accept", "application/cbor")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); ct != "application/cbor" {
		t.Fatalf("expected application/cbor, got %q", ct)
	}
}

func TestAPIPrefix(t *testing.T) {
	cfg := huma.DefaultConfig("PrefixTest", "test")
	api := humachi.New(chi.NewRouter(), cfg)
	if got := apiPrefix(api); got != "" {
		t.Fatalf("expected empty prefix, got %q", got)
	}

	cfg.Servers = []*huma.Server{{URL: "https://cards.example.com/v1"}}
	api = humachi.New(chi.NewRouter(), cfg)
	if got := apiPrefix(api); got != "/v1" {
		t.Fatalf("expected /v1, got %q", got)
	}
}
