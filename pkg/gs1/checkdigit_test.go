package gs1_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/gs1kit/pkg/gs1"
)

func TestCheckDigit(t *testing.T) {
	t.Parallel()

	t.Run("published GS1 vectors", func(t *testing.T) {
		t.Parallel()
		cases := map[string]int{
			"123456789012":      8, // GTIN-13 1234567890128
			"400638133393":      1, // GTIN-13 4006381333931
			"9501101020917":     6, // GTIN-14 data
			"03600029145":       2, // GTIN-12 036000291452
			"1234567":           0, // GTIN-8 12345670
			"0001234567890":     5,
			"10614141123456789": 7, // SSCC 106141411234567897
			"0000000000000":     0,
		}
		for digits, want := range cases {
			got, err := gs1.CheckDigit(digits)
			require.NoError(t, err, digits)
			assert.Equal(t, want, got, "check digit of %s", digits)
		}
	})

	t.Run("weight 3 on even indices for 13 and 17 data digits", func(t *testing.T) {
		t.Parallel()
		for _, digits := range []string{"9501101020917", "10614141123456789", "37610425002123456"} {
			sum := 0
			for i, r := range digits {
				d := int(r - '0')
				if i%2 == 0 {
					d *= 3
				}
				sum += d
			}
			got, err := gs1.CheckDigit(digits)
			require.NoError(t, err)
			assert.Equal(t, (10-sum%10)%10, got, digits)
		}
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		t.Parallel()
		for _, in := range []string{"", "12a4", " 123", "１２３", "12-34"} {
			_, err := gs1.CheckDigit(in)
			require.Error(t, err, "input %q", in)
			assert.True(t, errors.Is(err, gs1.ErrInvalidInput))
		}
	})
}

func TestAppendCheckDigit(t *testing.T) {
	t.Parallel()

	got, err := gs1.AppendCheckDigit("10614141123456789")
	require.NoError(t, err)
	assert.Equal(t, "106141411234567897", got)

	_, err = gs1.AppendCheckDigit("x")
	assert.ErrorIs(t, err, gs1.ErrInvalidInput)
}

func TestAppendCheckDigit_ProducesValidGTIN(t *testing.T) {
	t.Parallel()

	for i := 0; i < 1000; i++ {
		data := fmt.Sprintf("%013d", i*7919+spread(i))
		gtin, err := gs1.AppendCheckDigit(data)
		require.NoError(t, err)
		assert.True(t, gs1.ValidGTIN(gtin), "GTIN %s should be valid", gtin)
	}
}

// spread spreads test inputs over all thirteen positions.
func spread(i int) int {
	return (i * 2654435761) % 1_000_000_000_000
}
