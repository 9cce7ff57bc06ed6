package profile

import "github.com/janisto/digicard/internal/card"

// ProfileCreateInput for POST /profile
type ProfileCreateInput struct {
	Body struct {
		Username string `json:"username" required:"true" maxLength:"64" doc:"Public username, lower-cased before validation" example:"jeandupont"`
	}
}

// ProfileGetInput for GET /profile (no body needed)
type ProfileGetInput struct{}

// ProfileSaveInput for PUT /profile
type ProfileSaveInput struct {
	Body struct {
		Card  card.Card `json:"card"            doc:"Complete card; replaces the stored one"`
		Photo []byte    `json:"photo,omitempty" doc:"Optional avatar image (base64). Uploaded before the card is stored"`
	}
}

// ProfileDeleteInput for DELETE /profile (no body needed)
type ProfileDeleteInput struct{}

// DraftGetInput for GET /profile/draft
type DraftGetInput struct{}

// DraftPutInput for PUT /profile/draft
type DraftPutInput struct {
	Body card.Card
}
