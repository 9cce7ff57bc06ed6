package routes

import (
	"net/url"

	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/digicard/internal/draft"
	"github.com/janisto/digicard/internal/http/v1/admin"
	"github.com/janisto/digicard/internal/http/v1/cards"
	"github.com/janisto/digicard/internal/http/v1/profile"
	"github.com/janisto/digicard/internal/platform/auth"
	cardsvc "github.com/janisto/digicard/internal/service/cards"
	profilesvc "github.com/janisto/digicard/internal/service/profile"
	"github.com/janisto/digicard/internal/service/stats"
)

// Services are the backends the v1 API is served from.
type Services struct {
	Profiles profilesvc.Service
	Cards    *cardsvc.Service
	Stats    *stats.Service
	Drafts   draft.Store
}

// Register wires all HTTP routes into the provided API router.
func Register(api huma.API, verifier auth.Verifier, svc Services) {
	prefix := apiPrefix(api)

	// Apply auth middleware for protected endpoints
	api.UseMiddleware(auth.NewAuthMiddleware(api, verifier))

	cards.Register(api, svc.Cards)
	profile.Register(api, svc.Profiles, svc.Cards, svc.Drafts)
	admin.Register(api, prefix, svc.Stats, svc.Cards.URL)
}

func apiPrefix(api huma.API) string {
	for _, s := range api.OpenAPI().Servers {
		if u, err := url.Parse(s.URL); err == nil && u.Path != "" {
			return u.Path
		}
	}
	return ""
}
