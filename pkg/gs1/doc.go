// Package gs1 implements the GS1 identifier layer used to print logistics
// labels: Mod-10 check digits, GTIN/SSCC/lot validation, SSCC generation,
// YYMMDD date and fixed-width measure formatting, and assembly of
// Application Identifier (AI) element strings for GS1-128 barcodes.
//
// # Architecture
//
// The package is a set of free functions over strings and scalars. It holds no
// mutable state and performs no I/O, so every function is safe for concurrent
// use. The only collaborator is the DigitSource used by GenerateSSCC, which can
// be replaced to make generated codes deterministic.
//
// Files group one concern each:
//   - checkdigit.go  – CheckDigit, AppendCheckDigit
//   - identifiers.go – ValidGTIN, ValidSSCC, ValidLotNumber, NormalizeGTIN
//   - sscc.go        – GenerateSSCC and its options
//   - format.go      – FormatDate, FormatWeight, MeasureAI
//   - assemble.go    – Assemble and Parse
//   - ai.go          – AI constants, aliases and data titles
//
// # Usage
//
//	sscc, err := gs1.GenerateSSCC(gs1.WithCompanyPrefix("0614141"), gs1.WithExtensionDigit(1))
//	if err != nil {
//		// handle error
//	}
//
//	data, warnings := gs1.Assemble([]gs1.Element{
//		{AI: gs1.AISSCC, Value: sscc},
//		{AI: "lot", Value: "LOT42"},
//		{AI: gs1.AIExpiry, Value: gs1.FormatDate(expiry)},
//	})
//
// # Error Handling
//
// Malformed digit strings and out-of-range arguments return errors wrapping
// ErrInvalidInput (ErrPrefixTooLong and ErrFieldOverflow wrap it too). The
// Valid* functions never fail; they return false for anything malformed or
// with a wrong check digit. Assemble never fails: elements with unknown keys
// are dropped and returned as *UnknownIdentifierWarning values.
package gs1
