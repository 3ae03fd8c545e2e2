// Package config loads label defaults from the environment.
//
// Values come from optional .env files (github.com/joho/godotenv) and the
// process environment, parsed into Config with github.com/caarlos0/env/v11:
//
//	GS1_COMPANY_PREFIX   company prefix for generated SSCCs (6-12 digits, optional)
//	GS1_EXTENSION_DIGIT  SSCC extension digit, -1 for random (default -1)
//	GS1_SEPARATOR        "gs" for ASCII GS or "text" for <GS> (default gs)
//	GS1_QR_SIZE          QR image size in pixels (default 256)
//	LOG_LEVEL            debug, info, warn or error (default info)
//	LOG_FORMAT           text or json (default text)
//
// Errors are joined with ErrLoadingEnvFile, ErrParsingConfig or wrapped in
// ErrInvalidConfig so callers can tell them apart with errors.Is.
package config
