package card

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

const (
	QRContentType = "image/png"
	QRSize        = 256
)

// QRCode encodes the public card URL as a PNG at error-correction level Medium.
func QRCode(baseURL, username string) ([]byte, error) {
	png, err := qrcode.Encode(CardURL(baseURL, username), qrcode.Medium, QRSize)
	if err != nil {
		return nil, fmt.Errorf("encode qr code: %w", err)
	}
	return png, nil
}
