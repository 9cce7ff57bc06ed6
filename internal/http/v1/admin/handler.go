package admin

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/digicard/internal/analytics"
	"github.com/janisto/digicard/internal/card"
	"github.com/janisto/digicard/internal/platform/auth"
	applog "github.com/janisto/digicard/internal/platform/logging"
	"github.com/janisto/digicard/internal/platform/pagination"
	"github.com/janisto/digicard/internal/platform/timeutil"
	"github.com/janisto/digicard/internal/service/stats"
)

const cursorType = "profile"

// Register registers the admin dashboard endpoints. Both require a token
// carrying the admin claim. cardURL builds the shareable URL of a username.
func Register(api huma.API, prefix string, svc *stats.Service, cardURL func(username string) string) {
	security := []map[string][]string{{"bearerAuth": {}}}
	adminOnly := map[string]any{auth.AdminOnly: true}

	huma.Register(api, huma.Operation{
		OperationID: "get-admin-stats",
		Method:      http.MethodGet,
		Path:        "/admin/stats",
		Summary:     "Usage statistics",
		Description: "Returns service-wide totals, the view to contact conversion rate and a daily series.",
		Tags:        []string{"Admin"},
		Security:    security,
		Metadata:    adminOnly,
	}, func(ctx context.Context, input *StatsInput) (*StatsOutput, error) {
		ov, err := svc.Overview(ctx, input.Days)
		if err != nil {
			if errors.Is(err, analytics.ErrInvalidWindow) {
				return nil, huma.Error422UnprocessableEntity(err.Error())
			}
			applog.LogError(ctx, "stats overview failed", err)
			return nil, huma.Error500InternalServerError("failed to load statistics")
		}
		return &StatsOutput{Body: Stats{
			Totals:         ov.Totals,
			ConversionRate: ov.ConversionRate,
			Series:         ov.Series,
		}}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-admin-profiles",
		Method:      http.MethodGet,
		Path:        "/admin/profiles",
		Summary:     "List profiles",
		Description: "Returns registered profiles with their view and contact counters. " +
			"Use the cursor from the Link header to navigate between pages.",
		Tags:     []string{"Admin"},
		Security: security,
		Metadata: adminOnly,
	}, func(ctx context.Context, input *ProfilesListInput) (*ProfilesListOutput, error) {
		cursor, err := pagination.DecodeCursorFor(input.Cursor, cursorType)
		if err != nil {
			return nil, huma.Error400BadRequest("invalid cursor")
		}

		rows, err := svc.Profiles(ctx)
		if err != nil {
			applog.LogError(ctx, "list profiles failed", err)
			return nil, huma.Error500InternalServerError("failed to load profiles")
		}

		result := pagination.Paginate(
			rows,
			cursor,
			input.PageSize(),
			cursorType,
			func(r stats.ProfileStats) string { return r.Profile.ID },
			prefix+"/admin/profiles",
			url.Values{},
		)

		summaries := make([]ProfileSummary, 0, len(result.Items))
		for _, r := range result.Items {
			summaries = append(summaries, toSummary(r, cardURL))
		}
		return &ProfilesListOutput{
			Link: result.LinkHeader,
			Body: ProfilesData{Profiles: summaries, Total: result.Total},
		}, nil
	})
}

func toSummary(r stats.ProfileStats, cardURL func(string) string) ProfileSummary {
	return ProfileSummary{
		ID:          r.Profile.ID,
		Username:    r.Profile.Username,
		DisplayName: card.DisplayName(r.Profile.Card()),
		CardURL:     cardURL(r.Profile.Username),
		Counts:      r.Counts,
		CreatedAt:   timeutil.NewTime(r.Profile.CreatedAt),
	}
}
