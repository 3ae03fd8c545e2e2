// Package validator provides declarative, field-level validation for label
// forms. Each rule is a small Rule value pairing a boolean Check with
// translation-friendly error metadata; Apply evaluates a list of rules and
// aggregates the failures into ValidationErrors.
//
// Rules for GS1 data (GTIN, SSCC, lot numbers, YYMMDD dates, six-digit
// measures) delegate to package gs1, so a form reports exactly the values the
// element-string assembler would reject.
//
// # Usage
//
//	err := validator.Apply(
//		validator.Required("gtin", req.GTIN),
//		validator.ValidGTIN("gtin", req.GTIN),
//		validator.ValidLotNumber("lot", req.Lot).When(req.Lot != ""),
//		validator.DateNotBefore("expiry", req.Expiry, req.ProductionDate),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//		for _, field := range verrs.Fields() {
//			// show verrs.Get(field) next to the input
//		}
//	}
//
// # Error Handling
//
// ValidationErrors implements error and matches ErrValidationFailed with
// errors.Is. The package holds no state and is safe for concurrent use.
package validator
