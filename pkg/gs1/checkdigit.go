package gs1

import (
	"fmt"
	"strconv"
)

// CheckDigit computes the GS1 Mod-10 check digit for a string of data digits
// (the identifier without its check digit).
//
// Weights alternate 3,1,3,... starting from the rightmost data digit. For the
// 13 data digits of a GTIN-14 and the 17 of an SSCC this puts weight 3 on every
// even 0-based index counted from the left.
func CheckDigit(digits string) (int, error) {
	if err := requireDigits(digits); err != nil {
		return 0, err
	}

	sum := 0
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if (len(digits)-1-i)%2 == 0 {
			d *= 3
		}
		sum += d
	}

	return (10 - sum%10) % 10, nil
}

// AppendCheckDigit returns digits followed by their check digit.
func AppendCheckDigit(digits string) (string, error) {
	cd, err := CheckDigit(digits)
	if err != nil {
		return "", err
	}
	return digits + strconv.Itoa(cd), nil
}

// hasValidCheckDigit reports whether the last character of s is the check digit of the rest.
// s must already be known to consist of at least two digits.
func hasValidCheckDigit(s string) bool {
	cd, err := CheckDigit(s[:len(s)-1])
	if err != nil {
		return false
	}
	return int(s[len(s)-1]-'0') == cd
}

func requireDigits(s string) error {
	if s == "" {
		return fmt.Errorf("%w: empty digit string", ErrInvalidInput)
	}
	if !isDigits(s) {
		return fmt.Errorf("%w: %q contains non-digit characters", ErrInvalidInput, s)
	}
	return nil
}

// isDigits reports whether s is non-empty and consists of ASCII digits only.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
