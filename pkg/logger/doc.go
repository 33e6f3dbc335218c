// Package logger provides structured logging for the localization
// controller: a log/slog factory with context-based attribute injection
// and optional Sentry error reporting.
//
// Context extractors attach request-scoped values (like the language the
// middleware resolved) to every record:
//
//	log := logger.New(
//		localize.LanguageExtractor(),
//	)
//	log.InfoContext(ctx, "bundle loaded")
//	// {"level":"INFO","msg":"bundle loaded","lang":"de"}
//
// NewWithSentry adds Sentry delivery for warnings and errors, falling back
// to stdout-only logging when no DSN is configured, so the same wiring
// works locally and in production. NewNope returns a discard logger for
// defaults and tests.
package logger
