package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/gs1kit/pkg/gs1"
	"github.com/dmitrymomot/gs1kit/pkg/logger"
)

// Separator names accepted by GS1_SEPARATOR.
const (
	SeparatorGS   = "gs"
	SeparatorText = "text"
)

// Config holds the label defaults read from the environment.
type Config struct {
	// CompanyPrefix is used for generated SSCCs. Empty means a random prefix per code.
	CompanyPrefix string `env:"GS1_COMPANY_PREFIX"`
	// ExtensionDigit is the SSCC extension digit; -1 means random.
	ExtensionDigit int    `env:"GS1_EXTENSION_DIGIT" envDefault:"-1"`
	Separator      string `env:"GS1_SEPARATOR" envDefault:"gs"`
	QRSize         int    `env:"GS1_QR_SIZE" envDefault:"256"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat      string `env:"LOG_FORMAT" envDefault:"text"`
}

// Load reads the given .env files (or ./.env when none are named and it exists),
// then parses the process environment into a Config and checks it.
// Variables already set in the environment win over file values.
func Load(files ...string) (Config, error) {
	if len(files) > 0 {
		if err := godotenv.Load(files...); err != nil {
			return Config{}, errors.Join(ErrLoadingEnvFile, err)
		}
	} else {
		// The default .env file is optional.
		_ = godotenv.Load()
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges that struct tags cannot express.
func (c Config) Validate() error {
	if c.CompanyPrefix != "" && !gs1.ValidCompanyPrefix(c.CompanyPrefix) {
		return fmt.Errorf("%w: GS1_COMPANY_PREFIX %q must be 6-12 digits", ErrInvalidConfig, c.CompanyPrefix)
	}
	if c.ExtensionDigit < -1 || c.ExtensionDigit > 9 {
		return fmt.Errorf("%w: GS1_EXTENSION_DIGIT must be -1..9, got %d", ErrInvalidConfig, c.ExtensionDigit)
	}
	if c.Separator != SeparatorGS && c.Separator != SeparatorText {
		return fmt.Errorf("%w: GS1_SEPARATOR must be %q or %q, got %q", ErrInvalidConfig, SeparatorGS, SeparatorText, c.Separator)
	}
	if c.QRSize <= 0 {
		return fmt.Errorf("%w: GS1_QR_SIZE must be positive, got %d", ErrInvalidConfig, c.QRSize)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if f := logger.Format(c.LogFormat); f != logger.FormatJSON && f != logger.FormatText {
		return fmt.Errorf("%w: LOG_FORMAT must be %q or %q, got %q", ErrInvalidConfig, logger.FormatJSON, logger.FormatText, c.LogFormat)
	}
	return nil
}

// SSCCOptions turns the configured defaults into gs1.GenerateSSCC options.
func (c Config) SSCCOptions() []gs1.SSCCOption {
	var opts []gs1.SSCCOption
	if c.CompanyPrefix != "" {
		opts = append(opts, gs1.WithCompanyPrefix(c.CompanyPrefix))
	}
	if c.ExtensionDigit >= 0 {
		opts = append(opts, gs1.WithExtensionDigit(c.ExtensionDigit))
	}
	return opts
}

// SeparatorValue returns the separator string for gs1.WithSeparator.
func (c Config) SeparatorValue() string {
	if c.Separator == SeparatorText {
		return gs1.TextSeparator
	}
	return gs1.GroupSeparator
}

// Logger builds the process logger from LOG_LEVEL and LOG_FORMAT.
// Call it on a validated Config.
func (c Config) Logger(opts ...logger.Option) *slog.Logger {
	level, _ := logger.ParseLevel(c.LogLevel)
	base := []logger.Option{
		logger.WithLevel(level),
		logger.WithFormat(logger.Format(c.LogFormat)),
	}
	return logger.New(append(base, opts...)...)
}
