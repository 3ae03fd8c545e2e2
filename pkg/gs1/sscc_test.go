package gs1_test

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/gs1kit/pkg/gs1"
)

// sequenceSource replays fixed values, each reduced modulo n.
type sequenceSource struct {
	values []int
	pos    int
}

func (s *sequenceSource) Intn(n int) int {
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v % n
}

func TestGenerateSSCC(t *testing.T) {
	t.Parallel()

	t.Run("deterministic with prefix, extension and source", func(t *testing.T) {
		t.Parallel()
		src := &sequenceSource{values: []int{1, 2, 3, 4, 5, 6, 7, 8, 9}}

		sscc, err := gs1.GenerateSSCC(
			gs1.WithCompanyPrefix("0614141"),
			gs1.WithExtensionDigit(1),
			gs1.WithDigitSource(src),
		)

		require.NoError(t, err)
		assert.Equal(t, "106141411234567897", sscc)
	})

	t.Run("random prefix and extension come from the source", func(t *testing.T) {
		t.Parallel()
		src := &sequenceSource{values: []int{0}}

		sscc, err := gs1.GenerateSSCC(gs1.WithDigitSource(src))

		require.NoError(t, err)
		assert.Equal(t, "010000000000000009", sscc)
		assert.True(t, gs1.ValidSSCC(sscc))
	})

	t.Run("random prefix stays in range", func(t *testing.T) {
		t.Parallel()
		src := &sequenceSource{values: []int{8999999, 5}}

		sscc, err := gs1.GenerateSSCC(gs1.WithDigitSource(src))

		require.NoError(t, err)
		prefix, err := strconv.Atoi(sscc[1:8])
		require.NoError(t, err)
		assert.Equal(t, 9999999, prefix)
		assert.True(t, gs1.ValidSSCC(sscc))
	})

	t.Run("extension digit zero is kept", func(t *testing.T) {
		t.Parallel()
		src := &sequenceSource{values: []int{9}}

		sscc, err := gs1.GenerateSSCC(gs1.WithCompanyPrefix("0614141"), gs1.WithExtensionDigit(0), gs1.WithDigitSource(src))

		require.NoError(t, err)
		assert.Equal(t, "00614141999999999"+"4", sscc)
	})

	t.Run("sixteen digit prefix leaves no serial", func(t *testing.T) {
		t.Parallel()
		sscc, err := gs1.GenerateSSCC(gs1.WithCompanyPrefix("1234567890123456"), gs1.WithExtensionDigit(9))

		require.NoError(t, err)
		assert.Equal(t, "912345678901234563", sscc)
	})

	t.Run("prefix too long", func(t *testing.T) {
		t.Parallel()
		_, err := gs1.GenerateSSCC(gs1.WithCompanyPrefix("12345678901234567"))

		require.Error(t, err)
		assert.ErrorIs(t, err, gs1.ErrPrefixTooLong)
		assert.ErrorIs(t, err, gs1.ErrInvalidInput)
	})

	t.Run("non-digit prefix", func(t *testing.T) {
		t.Parallel()
		_, err := gs1.GenerateSSCC(gs1.WithCompanyPrefix("06141A1"))
		assert.ErrorIs(t, err, gs1.ErrInvalidInput)
	})

	t.Run("extension digit out of range", func(t *testing.T) {
		t.Parallel()
		for _, d := range []int{-1, 10} {
			_, err := gs1.GenerateSSCC(gs1.WithExtensionDigit(d))
			assert.ErrorIs(t, err, gs1.ErrInvalidInput)
		}
	})
}

func TestGenerateSSCC_Properties(t *testing.T) {
	t.Parallel()

	src := gs1.NewSeededSource(42)
	prefixes := []string{"", "061414", "0614141", "06141410", "123456789012"}
	for i := 0; i < 500; i++ {
		prefix := prefixes[i%len(prefixes)]
		ext := i % 10

		sscc, err := gs1.GenerateSSCC(gs1.WithCompanyPrefix(prefix), gs1.WithExtensionDigit(ext), gs1.WithDigitSource(src))

		require.NoError(t, err)
		require.Len(t, sscc, gs1.SSCCLength)
		assert.True(t, gs1.ValidSSCC(sscc), sscc)
		assert.Equal(t, strconv.Itoa(ext), sscc[:1])
		if prefix != "" {
			assert.Equal(t, prefix, sscc[1:1+len(prefix)])
		}
	}
}

func TestSeededSource_Deterministic(t *testing.T) {
	t.Parallel()

	a, err := gs1.GenerateSSCC(gs1.WithDigitSource(gs1.NewSeededSource(7)))
	require.NoError(t, err)
	b, err := gs1.GenerateSSCC(gs1.WithDigitSource(gs1.NewSeededSource(7)))
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestGenerateSSCC_Concurrent(t *testing.T) {
	t.Parallel()

	var wg sync.WaitGroup
	results := make(chan string, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sscc, err := gs1.GenerateSSCC(gs1.WithCompanyPrefix("0614141"))
			if err == nil {
				results <- sscc
			}
		}()
	}
	wg.Wait()
	close(results)

	count := 0
	for sscc := range results {
		assert.True(t, gs1.ValidSSCC(sscc))
		count++
	}
	assert.Equal(t, 64, count)
}
