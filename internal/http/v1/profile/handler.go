package profile

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/digicard/internal/card"
	"github.com/janisto/digicard/internal/draft"
	"github.com/janisto/digicard/internal/editor"
	"github.com/janisto/digicard/internal/platform/auth"
	applog "github.com/janisto/digicard/internal/platform/logging"
	"github.com/janisto/digicard/internal/platform/timeutil"
	"github.com/janisto/digicard/internal/service/avatar"
	cardsvc "github.com/janisto/digicard/internal/service/cards"
	profilesvc "github.com/janisto/digicard/internal/service/profile"
)

var bearer = []map[string][]string{{"bearerAuth": {}}}

// Register registers the owner's profile and draft endpoints.
func Register(api huma.API, profiles profilesvc.Service, cards *cardsvc.Service, drafts draft.Store) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-profile",
		Method:        http.MethodPost,
		Path:          "/profile",
		Summary:       "Register profile",
		Description:   "Creates the card profile of the authenticated user and reserves its username.",
		Tags:          []string{"Profile"},
		DefaultStatus: http.StatusCreated,
		Security:      bearer,
	}, func(ctx context.Context, input *ProfileCreateInput) (*ProfileCreateOutput, error) {
		user := auth.UserFromContext(ctx)

		username := card.NormalizeUsername(input.Body.Username)
		if err := card.ValidateUsername(username); err != nil {
			return nil, huma.Error422UnprocessableEntity("validation failed", &huma.ErrorDetail{
				Location: "body.username",
				Message:  err.Error(),
				Value:    input.Body.Username,
			})
		}

		p, err := profiles.Create(ctx, user.UID, profilesvc.CreateParams{
			Username: username,
			Email:    user.Email,
		})
		if err != nil {
			return nil, mapServiceError(ctx, err)
		}
		return &ProfileCreateOutput{
			Location: "/v1/profile",
			Body:     toHTTPProfile(p, cards),
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-profile",
		Method:      http.MethodGet,
		Path:        "/profile",
		Summary:     "Get own profile",
		Description: "Returns the stored card of the authenticated user.",
		Tags:        []string{"Profile"},
		Security:    bearer,
	}, func(ctx context.Context, _ *ProfileGetInput) (*ProfileGetOutput, error) {
		user := auth.UserFromContext(ctx)

		p, err := profiles.Get(ctx, user.UID)
		if err != nil {
			return nil, mapServiceError(ctx, err)
		}
		return &ProfileGetOutput{Body: toHTTPProfile(p, cards)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "save-profile",
		Method:      http.MethodPut,
		Path:        "/profile",
		Summary:     "Save own card",
		Description: "Replaces the stored card. An included photo is uploaded first; " +
			"if the upload fails nothing is saved.",
		Tags:     []string{"Profile"},
		Security: bearer,
	}, func(ctx context.Context, input *ProfileSaveInput) (*ProfileSaveOutput, error) {
		user := auth.UserFromContext(ctx)

		p, err := cards.Save(ctx, user.UID, input.Body.Card, input.Body.Photo)
		if err != nil {
			return nil, mapServiceError(ctx, err)
		}
		return &ProfileSaveOutput{Body: toHTTPProfile(p, cards)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "delete-profile",
		Method:        http.MethodDelete,
		Path:          "/profile",
		Summary:       "Delete own profile",
		Description:   "Permanently deletes the card and releases its username.",
		Tags:          []string{"Profile"},
		DefaultStatus: http.StatusNoContent,
		Security:      bearer,
	}, func(ctx context.Context, _ *ProfileDeleteInput) (*struct{}, error) {
		user := auth.UserFromContext(ctx)

		if err := profiles.Delete(ctx, user.UID); err != nil {
			return nil, mapServiceError(ctx, err)
		}
		return nil, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-draft",
		Method:      http.MethodGet,
		Path:        "/profile/draft",
		Summary:     "Load editor draft",
		Description: "Returns the cached editor working copy. Drafts saved in older shapes are migrated.",
		Tags:        []string{"Draft"},
		Security:    bearer,
	}, func(ctx context.Context, _ *DraftGetInput) (*DraftOutput, error) {
		user := auth.UserFromContext(ctx)

		session := editor.New(drafts, draft.UserKey(user.UID))
		found, err := session.Load(ctx)
		if err != nil {
			applog.LogError(ctx, "draft load failed", err)
			return nil, huma.Error500InternalServerError("failed to load draft")
		}
		return &DraftOutput{Body: Draft{Found: found, Card: session.Card()}}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "put-draft",
		Method:      http.MethodPut,
		Path:        "/profile/draft",
		Summary:     "Store editor draft",
		Description: "Replaces the cached editor working copy.",
		Tags:        []string{"Draft"},
		Security:    bearer,
	}, func(ctx context.Context, input *DraftPutInput) (*DraftOutput, error) {
		user := auth.UserFromContext(ctx)

		session := editor.New(drafts, draft.UserKey(user.UID))
		session.Replace(input.Body)
		if err := session.Save(ctx); err != nil {
			applog.LogError(ctx, "draft save failed", err)
			return nil, huma.Error500InternalServerError("failed to save draft")
		}
		return &DraftOutput{Body: Draft{Found: true, Card: session.Card()}}, nil
	})
}

func mapServiceError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, profilesvc.ErrNotFound):
		return huma.Error404NotFound("profile not found")
	case errors.Is(err, profilesvc.ErrAlreadyExists):
		return huma.Error409Conflict("profile already exists")
	case errors.Is(err, profilesvc.ErrUsernameTaken):
		return huma.Error409Conflict("username already taken")
	case errors.Is(err, avatar.ErrEmpty),
		errors.Is(err, avatar.ErrTooLarge),
		errors.Is(err, avatar.ErrUnsupportedType):
		return huma.Error422UnprocessableEntity(err.Error())
	case errors.Is(err, avatar.ErrUpload):
		applog.LogError(ctx, "photo upload failed", err)
		return huma.Error502BadGateway("failed to upload photo")
	case errors.Is(err, cardsvc.ErrSave):
		applog.LogError(ctx, "card save failed", err)
		return huma.Error500InternalServerError("failed to save")
	default:
		applog.LogError(ctx, "profile operation failed", err)
		return huma.Error500InternalServerError("internal error")
	}
}

func toHTTPProfile(p *profilesvc.Profile, cards *cardsvc.Service) Profile {
	return Profile{
		ID:        p.ID,
		Username:  p.Username,
		CardURL:   cards.URL(p.Username),
		Card:      p.Card(),
		CreatedAt: timeutil.NewTime(p.CreatedAt),
		UpdatedAt: timeutil.NewTime(p.UpdatedAt),
	}
}
