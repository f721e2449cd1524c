package share

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// QRCodePNG renders the payload as a square PNG image of the given pixel
// size, suitable for saving to a file or sending to another device.
func QRCodePNG(payload string, size int) ([]byte, error) {
	png, err := qrcode.Encode(payload, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr payload: %w", err)
	}
	return png, nil
}

// QRCodeTerminal renders the payload as a block-character QR code for
// display inside a terminal screen.
func QRCodeTerminal(payload string) (string, error) {
	qr, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("encode qr payload: %w", err)
	}
	return qr.ToSmallString(false), nil
}
