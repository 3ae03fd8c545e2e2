package gs1

import (
	"errors"
	"fmt"
)

// Package-specific errors
var (
	// ErrInvalidInput is returned when a digit string is empty or contains non-digit characters,
	// or when an argument falls outside the range a GS1 field allows.
	ErrInvalidInput = errors.New("invalid input")

	// ErrPrefixTooLong is returned when a company prefix leaves no room for an SSCC serial reference.
	ErrPrefixTooLong = fmt.Errorf("%w: company prefix too long", ErrInvalidInput)

	// ErrFieldOverflow is returned when a scaled value does not fit its fixed-width field.
	ErrFieldOverflow = fmt.Errorf("%w: value does not fit fixed-width field", ErrInvalidInput)

	// ErrMalformedElementString is returned when an element string cannot be split into AI/value pairs.
	ErrMalformedElementString = errors.New("malformed element string")
)

// UnknownIdentifierWarning reports an element whose key is neither numeric nor a known alias.
// The element is dropped; assembly continues.
type UnknownIdentifierWarning struct {
	Key   string
	Value string
}

func (w *UnknownIdentifierWarning) Error() string {
	return fmt.Sprintf("unknown application identifier %q: element skipped", w.Key)
}
