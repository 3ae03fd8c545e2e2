// Package label turns the raw values of a logistics-label form into the data
// a renderer prints: the SSCC, the parenthesised element string shown under
// the barcode, the bare barcode data, and localized human-readable lines.
//
// Build runs the whole flow: Request.Validate reports field errors as
// validator.ValidationErrors, GTINs are padded to 14 digits, an SSCC is
// generated when asked for, dates and net weight are formatted by package gs1,
// and the elements are assembled with fixed-length data first.
//
//	l, err := label.Build(label.Request{
//		GenerateSSCC: true,
//		Content:      "1234567890128",
//		Count:        24,
//		Lot:          "LOT42",
//		Expiry:       expiry,
//	}, label.WithSSCCOptions(gs1.WithCompanyPrefix("0614141")))
package label
