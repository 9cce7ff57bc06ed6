package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/janisto/digicard/internal/config"
	"github.com/janisto/digicard/internal/draft"
	"github.com/janisto/digicard/internal/http/health"
	"github.com/janisto/digicard/internal/http/v1/routes"
	"github.com/janisto/digicard/internal/platform/auth"
	"github.com/janisto/digicard/internal/platform/firebase"
	applog "github.com/janisto/digicard/internal/platform/logging"
	appmiddleware "github.com/janisto/digicard/internal/platform/middleware"
	"github.com/janisto/digicard/internal/platform/respond"
	"github.com/janisto/digicard/internal/service/avatar"
	"github.com/janisto/digicard/internal/service/cards"
	"github.com/janisto/digicard/internal/service/events"
	"github.com/janisto/digicard/internal/service/profile"
	"github.com/janisto/digicard/internal/service/stats"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

const (
	apiPrefix = "/v1"
	// Avatars travel base64-encoded inside the save body.
	maxRequestBody = 1 << 20 // 1 MB
)

func main() {
	defer func() {
		if err := applog.Sync(); err != nil {
			applog.LogError(context.Background(), "logger sync error", err)
		}
	}()
	if err := applog.Err(); err != nil {
		applog.LogError(context.Background(), "logger init error", err)
	}

	if err := run(); err != nil {
		applog.LogError(context.Background(), "server failed", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	applog.SetProjectID(cfg.FirebaseProjectID)

	ctx := context.Background()
	clients, err := firebase.InitializeClients(ctx, firebase.Config{
		ProjectID:                    cfg.FirebaseProjectID,
		GoogleApplicationCredentials: cfg.GoogleApplicationCredentials,
		StorageBucket:                cfg.AvatarBucket,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := clients.Close(); err != nil {
			applog.LogError(ctx, "firebase close error", err)
		}
	}()

	drafts, err := draft.OpenSQLite(ctx, cfg.DraftDBPath)
	if err != nil {
		return err
	}
	defer func() {
		if err := drafts.Close(); err != nil {
			applog.LogError(ctx, "draft store close error", err)
		}
	}()

	profiles := profile.NewFirestoreStore(clients.Firestore)
	ev := events.NewFirestoreStore(clients.Firestore)
	handler := newHandler(auth.NewFirebaseVerifier(clients.Auth), routes.Services{
		Profiles: profiles,
		Cards:    cards.New(profiles, avatar.NewGCSUploader(clients.Bucket), ev, cfg.PublicBaseURL),
		Stats:    stats.New(profiles, ev),
		Drafts:   drafts,
	})

	srv := &http.Server{
		Addr:              cfg.Address(),
		Handler:           handler,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10, // 64 KB
	}
	return serve(srv)
}

// newHandler builds the router: base middleware, /health at the root and the
// huma API under apiPrefix.
func newHandler(verifier auth.Verifier, svc routes.Services) http.Handler {
	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	router.Use(
		appmiddleware.Security(appmiddleware.SecurityOptions{
			SkipPaths:   []string{apiPrefix + "/api-docs"},
			PublicPaths: []string{apiPrefix + "/cards/"},
		}),
		appmiddleware.Vary(),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		// RealIP extracts client IP from X-Real-IP or X-Forwarded-For headers.
		// SECURITY: Only use behind a trusted reverse proxy (e.g., Cloud Run, nginx).
		chimiddleware.RealIP,
		chimiddleware.RequestSize(maxRequestBody),
		applog.RequestLogger(),
		applog.AccessLogger(),
		respond.Recoverer(),
	)

	router.Get("/health", health.Handler(Version))

	router.Route(apiPrefix, func(r chi.Router) {
		cfg := huma.DefaultConfig("Digital Business Card API", Version)
		cfg.DocsPath = "/api-docs"
		cfg.Servers = []*huma.Server{{URL: apiPrefix}}
		cfg.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
			"bearerAuth": {
				Type:         "http",
				Scheme:       "bearer",
				BearerFormat: "JWT",
				Description:  "Firebase ID token",
			},
		}
		api := humachi.New(r, cfg)
		api.OpenAPI().OnAddOperation = append(api.OpenAPI().OnAddOperation, addCBORContent)
		routes.Register(api, verifier, svc)
	})
	return router
}

// addCBORContent advertises CBOR next to every JSON request and response body.
func addCBORContent(_ *huma.OpenAPI, op *huma.Operation) {
	if op.RequestBody != nil && op.RequestBody.Content != nil {
		if jsonContent, ok := op.RequestBody.Content["application/json"]; ok {
			op.RequestBody.Content["application/cbor"] = jsonContent
		}
	}
	for _, resp := range op.Responses {
		if resp.Content == nil {
			continue
		}
		if jsonContent, ok := resp.Content["application/json"]; ok {
			resp.Content["application/cbor"] = jsonContent
		}
	}
}

func serve(srv *http.Server) error {
	listenErr := make(chan error, 1)
	go func() {
		applog.LogInfo(context.Background(), "server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-listenErr:
		return err
	case <-stop:
		applog.LogInfo(context.Background(), "shutdown signal received")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		applog.LogError(ctx, "server shutdown error", err)
	}
	applog.LogInfo(context.Background(), "server exited")
	return nil
}
