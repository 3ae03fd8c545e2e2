// Package qrcode renders GS1 element strings as QR code images, either as raw
// PNG bytes or as a data URI for HTML previews.
//
// The package is a thin wrapper around github.com/skip2/go-qrcode. The result
// is a plain QR code carrying GS1 element data in its bare, GS-separated form.
// It is not a GS1 QR Code symbol: the encoder cannot place FNC1 in first
// position, so scanners report it as ordinary text. Layout of the printed
// label is left to the caller.
//
// # Usage
//
//	img, warnings, err := qrcode.GenerateElements([]gs1.Element{
//		{AI: gs1.AISSCC, Value: sscc},
//		{AI: gs1.AIBatchLot, Value: "LOT42"},
//	}, 256)
//
// # Error Handling
//
//   - ErrEmptyContent             – nothing to encode (no elements kept).
//   - ErrorFailedToGenerateQRCode – the upstream encoder failed, for example
//     because the data exceeds QR capacity.
package qrcode
