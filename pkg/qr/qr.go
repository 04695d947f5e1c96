package qr

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// DefaultSize is the pixel width/height of the generated ticket QR
const DefaultSize = 300

// Render encodes the check-in URL into a PNG QR image
func Render(checkinURL string, size int) ([]byte, error) {
	if checkinURL == "" {
		return nil, fmt.Errorf("encode qr: empty content")
	}
	if size <= 0 {
		size = DefaultSize
	}

	png, err := qrcode.Encode(checkinURL, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}

	return png, nil
}
