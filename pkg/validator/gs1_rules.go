package validator

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrymomot/gs1kit/pkg/gs1"
)

// Required validates that a string is not empty after trimming whitespace.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidGTIN accepts GTIN-8, GTIN-12, GTIN-13 and GTIN-14 with a correct check digit.
func ValidGTIN(field, value string) Rule {
	return Rule{
		Check: func() bool {
			_, err := gs1.NormalizeGTIN(value)
			return err == nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a GTIN of 8, 12, 13 or 14 digits with a valid check digit",
			TranslationKey: "validation.gtin",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func ValidSSCC(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return gs1.ValidSSCC(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be an 18-digit SSCC with a valid check digit",
			TranslationKey: "validation.sscc",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func ValidLotNumber(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return gs1.ValidLotNumber(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be 1-%d letters or digits", gs1.MaxLotLength),
			TranslationKey: "validation.lot_number",
			TranslationValues: map[string]any{
				"field": field,
				"max":   gs1.MaxLotLength,
			},
		},
	}
}

func ValidCompanyPrefix(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return gs1.ValidCompanyPrefix(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a GS1 company prefix of 6-12 digits",
			TranslationKey: "validation.company_prefix",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidGS1Date validates a YYMMDD date. Day "00" is allowed and means the last day of the month.
func ValidGS1Date(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return validGS1Date(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a date in YYMMDD format",
			TranslationKey: "validation.gs1_date",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidMeasure validates that value fits a six-digit measure field with the given decimals.
func ValidMeasure(field string, value float64, decimals int) Rule {
	return Rule{
		Check: func() bool {
			_, err := gs1.FormatWeight(value, decimals)
			return err == nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be between 0 and %s", maxMeasure(decimals)),
			TranslationKey: "validation.measure",
			TranslationValues: map[string]any{
				"field":    field,
				"decimals": decimals,
			},
		},
	}
}

// DateNotBefore validates that value is on or after earliest, comparing calendar days.
// A zero value or zero earliest passes; pair with a required rule where needed.
func DateNotBefore(field string, value, earliest time.Time) Rule {
	return Rule{
		Check: func() bool {
			if value.IsZero() || earliest.IsZero() {
				return true
			}
			return calendarDay(value) >= calendarDay(earliest)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must not be before %s", earliest.Format(time.DateOnly)),
			TranslationKey: "validation.date_not_before",
			TranslationValues: map[string]any{
				"field":    field,
				"earliest": earliest.Format(time.DateOnly),
			},
		},
	}
}

func validGS1Date(s string) bool {
	if len(s) != gs1.DateLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	year := 2000 + int(s[0]-'0')*10 + int(s[1]-'0')
	month := int(s[2]-'0')*10 + int(s[3]-'0')
	day := int(s[4]-'0')*10 + int(s[5]-'0')
	if month < 1 || month > 12 {
		return false
	}
	if day == 0 {
		return true
	}
	// Day zero of the following month is the last day of this one.
	last := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	return day <= last
}

func maxMeasure(decimals int) string {
	if decimals <= 0 || decimals > gs1.MaxDecimalPlaces {
		return "999999"
	}
	digits := "999999"
	whole := digits[:len(digits)-decimals]
	if whole == "" {
		whole = "0"
	}
	return whole + "." + digits[len(digits)-decimals:]
}

func calendarDay(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}
