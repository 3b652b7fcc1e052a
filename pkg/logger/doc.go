// Package logger builds configured log/slog loggers for the fieldcheck CLI.
//
// The validation engine itself never logs - validators are pure functions -
// so this package only serves the process-level surfaces around it. It wraps
// slog handler construction behind a small functional-options factory:
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithFormat(logger.FormatText),
//	)
//	log.Info("validated", "type", "iban", "valid", true)
package logger
