package gs1

import (
	"fmt"
	"strings"
)

const (
	ssccDataLength = SSCCLength - 1

	minRandomPrefix = 1000000
	maxRandomPrefix = 9999999
)

// SSCCOption configures GenerateSSCC.
type SSCCOption func(*ssccConfig)

type ssccConfig struct {
	prefix       string
	hasPrefix    bool
	extension    int
	hasExtension bool
	source       DigitSource
}

// WithCompanyPrefix fixes the GS1 company prefix. An empty prefix is ignored
// and a random 7-digit prefix is used instead.
func WithCompanyPrefix(prefix string) SSCCOption {
	return func(c *ssccConfig) {
		if prefix != "" {
			c.prefix = prefix
			c.hasPrefix = true
		}
	}
}

// WithExtensionDigit fixes the leading extension digit (0-9).
func WithExtensionDigit(d int) SSCCOption {
	return func(c *ssccConfig) {
		c.extension = d
		c.hasExtension = true
	}
}

// WithDigitSource replaces the random source. Nil sources are ignored.
func WithDigitSource(src DigitSource) SSCCOption {
	return func(c *ssccConfig) {
		if src != nil {
			c.source = src
		}
	}
}

// GenerateSSCC builds an 18-digit SSCC:
//
//	extension digit | company prefix | serial reference | check digit
//
// Missing parts are drawn from the configured DigitSource. The serial reference
// fills whatever the prefix leaves of the 17 data digits.
func GenerateSSCC(opts ...SSCCOption) (string, error) {
	cfg := &ssccConfig{source: DefaultDigitSource}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.hasPrefix {
		if err := requireDigits(cfg.prefix); err != nil {
			return "", fmt.Errorf("company prefix: %w", err)
		}
	} else {
		cfg.prefix = fmt.Sprintf("%07d", minRandomPrefix+cfg.source.Intn(maxRandomPrefix-minRandomPrefix+1))
	}

	if cfg.hasExtension {
		if cfg.extension < 0 || cfg.extension > 9 {
			return "", fmt.Errorf("%w: extension digit must be 0-9, got %d", ErrInvalidInput, cfg.extension)
		}
	} else {
		cfg.extension = cfg.source.Intn(10)
	}

	serialLength := ssccDataLength - len(cfg.prefix) - 1
	if serialLength < 0 {
		return "", fmt.Errorf("%w: %d digits leave no room in %d data digits", ErrPrefixTooLong, len(cfg.prefix), ssccDataLength)
	}

	var b strings.Builder
	b.Grow(SSCCLength)
	b.WriteByte(byte('0' + cfg.extension))
	b.WriteString(cfg.prefix)
	for range serialLength {
		b.WriteByte(byte('0' + cfg.source.Intn(10)))
	}

	return AppendCheckDigit(b.String())
}
