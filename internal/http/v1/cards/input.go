package cards

import "github.com/janisto/digicard/internal/analytics"

// CardPathInput selects a card by username.
type CardPathInput struct {
	Username string `path:"username" maxLength:"64" doc:"Card owner username, case-insensitive" example:"demo"`
}

// EventInput for POST /cards/{username}/events
type EventInput struct {
	Username string `path:"username" maxLength:"64" doc:"Card owner username, case-insensitive" example:"demo"`
	Body     struct {
		Type analytics.EventType `json:"type" required:"true" enum:"view,contact_saved,whatsapp_click,linkedin_click" doc:"Interaction kind" example:"view"`
	}
}
