// Package logger builds *slog.Logger values from functional options: output
// format (JSON or text), minimum level, destination and static attributes.
//
// # Usage
//
//	log := logger.New(
//		logger.WithFormat(logger.FormatText),
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithAttr(slog.String("service", "gs1label")),
//	)
//
// Library packages never create loggers themselves; they accept one through
// an option (for example gs1.WithLogger) and stay silent otherwise.
package logger
