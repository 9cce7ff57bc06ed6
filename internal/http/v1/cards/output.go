package cards

import "github.com/janisto/digicard/internal/card"

// CardOutput for GET /cards/{username}
type CardOutput struct {
	Body card.PublicCard
}

// FileOutput is a binary download with its media type and attachment name.
type FileOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}
