package gs1

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	// DateLength is the width of a GS1 YYMMDD date field.
	DateLength = 6
	// MeasureLength is the width of a fixed-length trade measure or quantity field.
	MeasureLength = 6
	// MaxDecimalPlaces is the largest implied decimal position a measure AI can carry.
	MaxDecimalPlaces = 6

	maxMeasure = 999999
)

// emptyMeasure is returned for missing or non-numeric measures.
const emptyMeasure = "000000"

// dateLayouts lists the textual forms FormatDateString understands, most specific first.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
	"2006/01/02",
	"02.01.2006",
	"01/02/2006",
	"060102",
}

// FormatDate renders t as a GS1 YYMMDD date using the year, month and day of t's
// own location. The century is dropped. The zero time yields "".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	year, month, day := t.Date()
	return fmt.Sprintf("%02d%02d%02d", year%100, int(month), day)
}

// FormatDateString parses s with the layouts the label forms accept and renders it
// as YYMMDD. Unparseable input yields "".
func FormatDateString(s string) string {
	t, err := ParseDate(s)
	if err != nil {
		return ""
	}
	return FormatDate(t)
}

// ParseDate parses s with the layouts FormatDateString accepts. Blank input
// yields the zero time and no error.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unrecognized date %q", ErrInvalidInput, s)
}

// FormatWeight scales value by 10^decimals, rounds half away from zero, and
// zero-pads the result to six digits. NaN is treated as a missing value and
// yields "000000". Values that would need more than six digits are rejected
// with ErrFieldOverflow rather than truncated. A value is negative only if it
// is still below zero after rounding, so -0.0001 at 0 decimals is "000000".
func FormatWeight(value float64, decimals int) (string, error) {
	if decimals < 0 || decimals > MaxDecimalPlaces {
		return "", fmt.Errorf("%w: decimal places must be 0-%d, got %d", ErrInvalidInput, MaxDecimalPlaces, decimals)
	}
	if math.IsNaN(value) {
		return emptyMeasure, nil
	}

	scaled := math.Round(value * math.Pow10(decimals))
	if scaled < 0 {
		return "", fmt.Errorf("%w: measure must not be negative, got %v", ErrInvalidInput, value)
	}
	if math.IsInf(scaled, 0) || scaled > maxMeasure {
		return "", fmt.Errorf("%w: %v with %d decimal places", ErrFieldOverflow, value, decimals)
	}

	return fmt.Sprintf("%06d", int64(scaled)), nil
}

// FormatWeightString is FormatWeight for raw form input. Blank or non-numeric
// text yields "000000".
func FormatWeightString(s string, decimals int) (string, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		if decimals < 0 || decimals > MaxDecimalPlaces {
			return "", fmt.Errorf("%w: decimal places must be 0-%d, got %d", ErrInvalidInput, MaxDecimalPlaces, decimals)
		}
		return emptyMeasure, nil
	}
	return FormatWeight(value, decimals)
}

// MeasureAI appends the implied decimal position to a three-digit measure AI
// base, e.g. MeasureAI("310", 3) == "3103" for net weight in kg with three decimals.
func MeasureAI(base string, decimals int) (string, error) {
	if len(base) != 3 || !isDigits(base) {
		return "", fmt.Errorf("%w: measure AI base must be three digits, got %q", ErrInvalidInput, base)
	}
	if decimals < 0 || decimals > MaxDecimalPlaces {
		return "", fmt.Errorf("%w: decimal places must be 0-%d, got %d", ErrInvalidInput, MaxDecimalPlaces, decimals)
	}
	return base + strconv.Itoa(decimals), nil
}
