package localize

import "errors"

var (
	// ErrUnsupportedLanguage is returned when a language change names a code
	// absent from the registry. The request is dropped and state unchanged.
	ErrUnsupportedLanguage = errors.New("localize: unsupported language")

	// ErrNoLoader is returned by New when no bundle loader was configured.
	ErrNoLoader = errors.New("localize: bundle loader required")

	// ErrBadFallback is returned by New when the fallback code is not in
	// the registry.
	ErrBadFallback = errors.New("localize: fallback language not in registry")
)
