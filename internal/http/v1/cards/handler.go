package cards

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	"github.com/janisto/digicard/internal/card"
	applog "github.com/janisto/digicard/internal/platform/logging"
	cardsvc "github.com/janisto/digicard/internal/service/cards"
	"github.com/janisto/digicard/internal/service/events"
)

const (
	contentTypeVCard = card.VCardContentType + "; charset=utf-8"
	contentTypePNG   = card.QRContentType
)

// Register registers the public card endpoints. None of them require
// authentication.
func Register(api huma.API, svc *cardsvc.Service) {
	huma.Register(api, huma.Operation{
		OperationID: "get-card",
		Method:      http.MethodGet,
		Path:        "/cards/{username}",
		Summary:     "Get public card",
		Description: "Returns the public view of a card. The username demo always resolves to a sample card.",
		Tags:        []string{"Cards"},
	}, func(ctx context.Context, input *CardPathInput) (*CardOutput, error) {
		pc, err := svc.Public(ctx, input.Username)
		if err != nil {
			return nil, mapError(ctx, input.Username, err)
		}
		return &CardOutput{Body: pc}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-card-vcard",
		Method:      http.MethodGet,
		Path:        "/cards/{username}/vcard",
		Summary:     "Download vCard",
		Description: "Returns the card as a vCard 3.0 attachment.",
		Tags:        []string{"Cards"},
		Responses: map[string]*huma.Response{
			"200": {
				Description: "vCard file",
				Content:     map[string]*huma.MediaType{contentTypeVCard: {}},
			},
		},
	}, func(ctx context.Context, input *CardPathInput) (*FileOutput, error) {
		text, filename, err := svc.VCard(ctx, input.Username)
		if err != nil {
			return nil, mapError(ctx, input.Username, err)
		}
		return &FileOutput{
			ContentType:        contentTypeVCard,
			ContentDisposition: attachment(filename),
			Body:               []byte(text),
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-card-qr",
		Method:      http.MethodGet,
		Path:        "/cards/{username}/qr",
		Summary:     "Download QR code",
		Description: "Returns a PNG QR code encoding the shareable card URL.",
		Tags:        []string{"Cards"},
		Responses: map[string]*huma.Response{
			"200": {
				Description: "QR code image",
				Content:     map[string]*huma.MediaType{contentTypePNG: {}},
			},
		},
	}, func(ctx context.Context, input *CardPathInput) (*FileOutput, error) {
		png, filename, err := svc.QR(ctx, input.Username)
		if err != nil {
			return nil, mapError(ctx, input.Username, err)
		}
		return &FileOutput{
			ContentType:        contentTypePNG,
			ContentDisposition: attachment(filename),
			Body:               png,
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "record-card-event",
		Method:        http.MethodPost,
		Path:          "/cards/{username}/events",
		Summary:       "Record card interaction",
		Description:   "Appends an analytics event. Events on the demo card are accepted and discarded.",
		Tags:          []string{"Cards"},
		DefaultStatus: http.StatusAccepted,
	}, func(ctx context.Context, input *EventInput) (*struct{}, error) {
		if err := svc.RecordEvent(ctx, input.Username, input.Body.Type); err != nil {
			return nil, mapError(ctx, input.Username, err)
		}
		return nil, nil
	})
}

func attachment(filename string) string {
	return fmt.Sprintf("attachment; filename=%q", filename)
}

func mapError(ctx context.Context, username string, err error) error {
	switch {
	case errors.Is(err, cardsvc.ErrNotFound):
		return huma.Error404NotFound("card not found")
	case errors.Is(err, events.ErrUnknownEventType):
		return huma.Error422UnprocessableEntity("unknown event type")
	default:
		applog.LogError(applog.WithFields(ctx, zap.String("username", username)), "card request failed", err)
		return huma.Error500InternalServerError("internal error")
	}
}
