package gs1_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/gs1kit/pkg/gs1"
)

func TestValidGTIN(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		for _, gtin := range []string{
			"00000000000000",
			"00012345678905",
			"95011010209176",
			"01234567890128",
		} {
			assert.True(t, gs1.ValidGTIN(gtin), gtin)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()
		for _, gtin := range []string{
			"",
			"1234567890123",   // 13 digits
			"000123456789050", // 15 digits
			"00012345678904",  // wrong check digit
			"0001234567890A",
			" 0012345678905",
			"0001234567890５",
		} {
			assert.False(t, gs1.ValidGTIN(gtin), gtin)
		}
	})
}

func TestValidSSCC(t *testing.T) {
	t.Parallel()

	assert.True(t, gs1.ValidSSCC("106141411234567897"))
	assert.True(t, gs1.ValidSSCC("000000000000000000"))

	for _, sscc := range []string{
		"106141411234567898",
		"10614141123456789",
		"1061414112345678970",
		"10614141123456789X",
		"",
	} {
		assert.False(t, gs1.ValidSSCC(sscc), sscc)
	}
}

func TestValidLotNumber(t *testing.T) {
	t.Parallel()

	for _, lot := range []string{"A", "LOT42", "abc123XYZ", "12345678901234567890"} {
		assert.True(t, gs1.ValidLotNumber(lot), lot)
	}
	for _, lot := range []string{"", "123456789012345678901", "LOT-42", "LOT 42", "lot_1", "LÖT1", "LOT42\n"} {
		assert.False(t, gs1.ValidLotNumber(lot), lot)
	}
}

func TestValidCompanyPrefix(t *testing.T) {
	t.Parallel()

	assert.True(t, gs1.ValidCompanyPrefix("061414"))
	assert.True(t, gs1.ValidCompanyPrefix("0614141"))
	assert.True(t, gs1.ValidCompanyPrefix("123456789012"))
	assert.False(t, gs1.ValidCompanyPrefix("12345"))
	assert.False(t, gs1.ValidCompanyPrefix("1234567890123"))
	assert.False(t, gs1.ValidCompanyPrefix("06141A1"))
}

func TestNormalizeGTIN(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"12345670", "00000012345670"},
		{"036000291452", "00036000291452"},
		{"1234567890128", "01234567890128"},
		{"00012345678905", "00012345678905"},
	}
	for _, tc := range cases {
		got, err := gs1.NormalizeGTIN(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got)
		assert.True(t, gs1.ValidGTIN(got))
	}

	for _, in := range []string{"", "1234567", "1234567890127", "12345678901A8", "123456789"} {
		_, err := gs1.NormalizeGTIN(in)
		assert.ErrorIs(t, err, gs1.ErrInvalidInput, in)
	}
}
