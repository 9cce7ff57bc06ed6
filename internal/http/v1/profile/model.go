package profile

import (
	"github.com/janisto/digicard/internal/card"
	"github.com/janisto/digicard/internal/platform/timeutil"
)

// Profile is the owner's view of a stored card.
type Profile struct {
	ID        string        `json:"id"        doc:"Owner user ID"            example:"test-user-123"`
	Username  string        `json:"username"  doc:"Public username"          example:"jeandupont"`
	CardURL   string        `json:"cardUrl"   doc:"Shareable public card URL" example:"https://cards.example.com/card/jeandupont"`
	Card      card.Card     `json:"card"      doc:"Card data"`
	CreatedAt timeutil.Time `json:"createdAt" doc:"Creation timestamp"       example:"2024-01-15T10:30:00.000Z"`
	UpdatedAt timeutil.Time `json:"updatedAt" doc:"Last save timestamp"      example:"2024-01-15T10:30:00.000Z"`
}

// Draft is the cached working copy of the card editor.
type Draft struct {
	Found bool      `json:"found" doc:"False when no draft was stored; card is then empty"`
	Card  card.Card `json:"card"  doc:"Draft card data"`
}
