package registry

import (
	"errors"
	"fmt"
)

// Document direction attribute values.
const (
	DirectionLTR = "ltr"
	DirectionRTL = "rtl"
)

// Errors.
var (
	ErrEmptyCode     = errors.New("registry: language code cannot be empty")
	ErrDuplicateCode = errors.New("registry: duplicate language code")
	ErrNoLanguages   = errors.New("registry: at least one language required")
)

// Language describes a single supported language.
type Language struct {
	// Code is the short (2-letter) language identifier, e.g. "en".
	Code string

	// Name is the native display name shown in the picker, e.g. "Deutsch".
	Name string

	// Flag is the flag glyph displayed next to the name.
	Flag string

	// RTL marks right-to-left languages.
	RTL bool
}

// Direction returns the document direction attribute value for the language.
func (l Language) Direction() string {
	if l.RTL {
		return DirectionRTL
	}
	return DirectionLTR
}

// Registry is a fixed table of supported languages. It is immutable after
// creation and safe for concurrent use. The order languages are passed to
// New is the order All returns them in, which drives the picker menu.
type Registry struct {
	byCode  map[string]Language
	ordered []Language
}

// New creates a Registry from the given languages.
// Codes must be unique and non-empty.
func New(langs ...Language) (*Registry, error) {
	if len(langs) == 0 {
		return nil, ErrNoLanguages
	}

	r := &Registry{
		byCode:  make(map[string]Language, len(langs)),
		ordered: make([]Language, 0, len(langs)),
	}

	for _, lang := range langs {
		if lang.Code == "" {
			return nil, ErrEmptyCode
		}
		if _, exists := r.byCode[lang.Code]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCode, lang.Code)
		}
		r.byCode[lang.Code] = lang
		r.ordered = append(r.ordered, lang)
	}

	return r, nil
}

// Default returns the built-in language table. The default language ("en")
// is first; RTL languages carry the RTL flag.
func Default() *Registry {
	r, err := New(
		Language{Code: "en", Name: "English", Flag: "🇬🇧"},
		Language{Code: "de", Name: "Deutsch", Flag: "🇩🇪"},
		Language{Code: "es", Name: "Español", Flag: "🇪🇸"},
		Language{Code: "fr", Name: "Français", Flag: "🇫🇷"},
		Language{Code: "pt", Name: "Português", Flag: "🇵🇹"},
		Language{Code: "ar", Name: "العربية", Flag: "🇸🇦", RTL: true},
		Language{Code: "he", Name: "עברית", Flag: "🇮🇱", RTL: true},
	)
	if err != nil {
		// The built-in table is static; a constructor failure is a programming error.
		panic(err)
	}
	return r
}

// Get returns the descriptor for the given code.
func (r *Registry) Get(code string) (Language, bool) {
	lang, ok := r.byCode[code]
	return lang, ok
}

// IsSupported reports whether the code is present in the registry.
func (r *Registry) IsSupported(code string) bool {
	_, ok := r.byCode[code]
	return ok
}

// All returns the languages in their fixed display order.
// The returned slice is a copy.
func (r *Registry) All() []Language {
	out := make([]Language, len(r.ordered))
	copy(out, r.ordered)
	return out
}
