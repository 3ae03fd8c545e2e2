package gs1_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/gs1kit/pkg/gs1"
)

func TestFormatDate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "240305", gs1.FormatDate(time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "991231", gs1.FormatDate(time.Date(1999, time.December, 31, 23, 59, 0, 0, time.UTC)))
	assert.Equal(t, "050101", gs1.FormatDate(time.Date(2005, time.January, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "", gs1.FormatDate(time.Time{}))

	t.Run("uses the value's own location", func(t *testing.T) {
		t.Parallel()
		tokyo := time.FixedZone("JST", 9*60*60)
		// 2024-03-04 20:00 UTC is already March 5th in Tokyo.
		ts := time.Date(2024, time.March, 4, 20, 0, 0, 0, time.UTC).In(tokyo)
		assert.Equal(t, "240305", gs1.FormatDate(ts))
		assert.Equal(t, "240304", gs1.FormatDate(ts.UTC()))
	})
}

func TestFormatDateString(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"2024-03-05":                "240305",
		" 2024-03-05 ":              "240305",
		"2024-03-05T23:30:00-05:00": "240305",
		"2024-03-05T10:00:00Z":      "240305",
		"2024-03-05T10:00:00":       "240305",
		"2024-03-05 10:00:00":       "240305",
		"2024/03/05":                "240305",
		"05.03.2024":                "240305",
		"03/05/2024":                "240305",
		"240305":                    "240305",
		"":                          "",
		"not a date":                "",
		"2024-13-01":                "",
		"2024-02-30":                "",
	}
	for in, want := range cases {
		got := gs1.FormatDateString(in)
		assert.Equal(t, want, got, "input %q", in)
		if got != "" {
			assert.Len(t, got, gs1.DateLength)
		}
	}
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	got, err := gs1.ParseDate("2025-12-31")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC), got)

	got, err = gs1.ParseDate("  ")
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	_, err = gs1.ParseDate("31st of December")
	assert.ErrorIs(t, err, gs1.ErrInvalidInput)
}

func TestFormatWeight(t *testing.T) {
	t.Parallel()

	t.Run("scales and pads", func(t *testing.T) {
		t.Parallel()
		cases := []struct {
			value    float64
			decimals int
			want     string
		}{
			{12.5, 3, "012500"},
			{1.2345, 2, "000123"},
			{1.5, 0, "000002"},
			{0, 0, "000000"},
			{999999.4, 0, "999999"},
			{0.000001, 6, "000001"},
			{2.5, 1, "000025"},
		}
		for _, tc := range cases {
			got, err := gs1.FormatWeight(tc.value, tc.decimals)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got, "%v with %d decimals", tc.value, tc.decimals)
		}
	})

	t.Run("NaN is a missing value", func(t *testing.T) {
		t.Parallel()
		got, err := gs1.FormatWeight(math.NaN(), 2)
		require.NoError(t, err)
		assert.Equal(t, "000000", got)
	})

	t.Run("overflow is rejected", func(t *testing.T) {
		t.Parallel()
		for _, tc := range []struct {
			value    float64
			decimals int
		}{
			{1000000, 0},
			{999999.5, 0},
			{1000, 3},
			{1, 6},
			{math.Inf(1), 0},
		} {
			_, err := gs1.FormatWeight(tc.value, tc.decimals)
			assert.ErrorIs(t, err, gs1.ErrFieldOverflow, "%v/%d", tc.value, tc.decimals)
		}
	})

	t.Run("bad arguments", func(t *testing.T) {
		t.Parallel()
		_, err := gs1.FormatWeight(-1, 0)
		assert.ErrorIs(t, err, gs1.ErrInvalidInput)
		_, err = gs1.FormatWeight(-0.001, 3)
		assert.ErrorIs(t, err, gs1.ErrInvalidInput)
		_, err = gs1.FormatWeight(math.Inf(-1), 0)
		assert.ErrorIs(t, err, gs1.ErrInvalidInput)
		_, err = gs1.FormatWeight(1, -1)
		assert.ErrorIs(t, err, gs1.ErrInvalidInput)
		_, err = gs1.FormatWeight(1, 7)
		assert.ErrorIs(t, err, gs1.ErrInvalidInput)
	})

	t.Run("negative values that round to zero", func(t *testing.T) {
		t.Parallel()
		got, err := gs1.FormatWeight(-0.0001, 0)
		require.NoError(t, err)
		assert.Equal(t, "000000", got)

		got, err = gs1.FormatWeight(-0.0004, 3)
		require.NoError(t, err)
		assert.Equal(t, "000000", got)
	})

	t.Run("always six digits when accepted", func(t *testing.T) {
		t.Parallel()
		for decimals := 0; decimals <= gs1.MaxDecimalPlaces; decimals++ {
			limit := 999999 / math.Pow10(decimals)
			for _, v := range []float64{0, limit / 3, limit / 2, limit} {
				got, err := gs1.FormatWeight(v, decimals)
				require.NoError(t, err)
				assert.Len(t, got, gs1.MeasureLength)
			}
		}
	})
}

func TestFormatWeightString(t *testing.T) {
	t.Parallel()

	got, err := gs1.FormatWeightString("12.5", 3)
	require.NoError(t, err)
	assert.Equal(t, "012500", got)

	for _, in := range []string{"", "  ", "abc", "12,5"} {
		got, err := gs1.FormatWeightString(in, 2)
		require.NoError(t, err)
		assert.Equal(t, "000000", got, "input %q", in)
	}

	_, err = gs1.FormatWeightString("abc", 9)
	assert.ErrorIs(t, err, gs1.ErrInvalidInput)

	_, err = gs1.FormatWeightString("5000", 3)
	assert.ErrorIs(t, err, gs1.ErrFieldOverflow)
}

func TestMeasureAI(t *testing.T) {
	t.Parallel()

	ai, err := gs1.MeasureAI(gs1.AINetWeightKgBase, 3)
	require.NoError(t, err)
	assert.Equal(t, "3103", ai)

	_, err = gs1.MeasureAI("31", 3)
	assert.ErrorIs(t, err, gs1.ErrInvalidInput)
	_, err = gs1.MeasureAI("310", 7)
	assert.ErrorIs(t, err, gs1.ErrInvalidInput)
}
