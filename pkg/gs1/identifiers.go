package gs1

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// GTINLength is the length of a GTIN-14, the form carried in AI (01) and (02).
	GTINLength = 14
	// SSCCLength is the length of an SSCC including its check digit.
	SSCCLength = 18
	// MaxLotLength is the maximum length of a batch/lot number in AI (10).
	MaxLotLength = 20

	minCompanyPrefixLength = 6
	maxCompanyPrefixLength = 12
)

var lotNumberRegex = regexp.MustCompile(`^[A-Za-z0-9]{1,20}$`)

// ValidGTIN reports whether s is a 14-digit GTIN with a correct check digit.
func ValidGTIN(s string) bool {
	return len(s) == GTINLength && isDigits(s) && hasValidCheckDigit(s)
}

// ValidSSCC reports whether s is an 18-digit SSCC with a correct check digit.
func ValidSSCC(s string) bool {
	return len(s) == SSCCLength && isDigits(s) && hasValidCheckDigit(s)
}

// ValidLotNumber reports whether s is 1-20 ASCII letters and digits.
func ValidLotNumber(s string) bool {
	return lotNumberRegex.MatchString(s)
}

// ValidCompanyPrefix reports whether s looks like a GS1 company prefix (6-12 digits).
func ValidCompanyPrefix(s string) bool {
	return len(s) >= minCompanyPrefixLength && len(s) <= maxCompanyPrefixLength && isDigits(s)
}

// NormalizeGTIN left-pads a GTIN-8, GTIN-12 or GTIN-13 with zeros to the 14-digit form.
// Padding does not change the check digit, so the result is valid whenever the input is.
func NormalizeGTIN(s string) (string, error) {
	switch len(s) {
	case 8, 12, 13, 14:
	default:
		return "", fmt.Errorf("%w: GTIN must have 8, 12, 13 or 14 digits, got %d", ErrInvalidInput, len(s))
	}
	if !isDigits(s) {
		return "", fmt.Errorf("%w: GTIN %q contains non-digit characters", ErrInvalidInput, s)
	}

	padded := strings.Repeat("0", GTINLength-len(s)) + s
	if !hasValidCheckDigit(padded) {
		return "", fmt.Errorf("%w: GTIN %q has a wrong check digit", ErrInvalidInput, s)
	}
	return padded, nil
}
