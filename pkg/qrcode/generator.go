package qrcode

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"

	"github.com/dmitrymomot/gs1kit/pkg/gs1"
)

// Error variables for QR code generation
var (
	// ErrEmptyContent is returned when there is no data to encode
	ErrEmptyContent = errors.New("content cannot be empty")
	// ErrorFailedToGenerateQRCode is returned when the QR code generation fails.
	ErrorFailedToGenerateQRCode = errors.New("failed to generate QR code")
)

// defaultSize is the size in pixels used when no size is specified
const defaultSize = 256

// Generate encodes barcode data as a PNG QR code of size x size pixels.
// data is the element string in its bare form (see gs1.WithoutParentheses).
func Generate(data string, size int) ([]byte, error) {
	if strings.TrimSpace(data) == "" {
		return nil, ErrEmptyContent
	}
	if size <= 0 {
		size = defaultSize
	}
	png, err := skipqrcode.Encode(data, skipqrcode.Medium, size)
	if err != nil {
		return nil, errors.Join(ErrorFailedToGenerateQRCode, err)
	}
	return png, nil
}

// GenerateElements assembles elements into barcode data with ASCII GS
// separators and encodes it as a plain QR code (no FNC1 mode indicator). Elements dropped by the assembler are returned
// as warnings alongside the image.
func GenerateElements(elements []gs1.Element, size int) ([]byte, []*gs1.UnknownIdentifierWarning, error) {
	data, warnings := gs1.Assemble(elements, gs1.WithoutParentheses(), gs1.WithSeparator(gs1.GroupSeparator))
	png, err := Generate(data, size)
	if err != nil {
		return nil, warnings, err
	}
	return png, warnings, nil
}

// GenerateBase64Image returns the QR code as a data URI for an <img> tag:
//
//	<img src="{{.QRCode}}">
func GenerateBase64Image(data string, size int) (string, error) {
	png, err := Generate(data, size)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("data:image/png;base64,%s", base64.StdEncoding.EncodeToString(png)), nil
}
