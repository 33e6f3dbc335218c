// Package registry holds the static table of supported languages with their
// display metadata and text direction.
//
// A Registry is immutable after construction and safe for concurrent use.
// Exactly one registry backs a localization controller; the order languages
// are registered in is the order the language picker lists them.
//
//	reg, err := registry.New(
//		registry.Language{Code: "en", Name: "English", Flag: "🇬🇧"},
//		registry.Language{Code: "ar", Name: "العربية", Flag: "🇸🇦", RTL: true},
//	)
//
// Use [Default] for the built-in table.
package registry
