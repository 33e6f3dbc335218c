package localize

import (
	"log/slog"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"

	"github.com/dmitrymomot/localize/pkg/bundle"
	"github.com/dmitrymomot/localize/pkg/prefs"
	"github.com/dmitrymomot/localize/pkg/registry"
)

// Option configures the Controller during construction.
type Option func(*Controller) error

// renderOptions holds the optional value-transformation hooks applied when
// translations are written as markup.
type renderOptions struct {
	sanitize *bluemonday.Policy
	markdown goldmark.Markdown
}

// WithLoader sets the bundle loader. Required unless WithStore is used.
func WithLoader(loader bundle.Loader) Option {
	return func(c *Controller) error {
		if loader == nil {
			return ErrNoLoader
		}
		c.loader = loader
		return nil
	}
}

// WithStore sets a pre-built bundle store, e.g. one shared with a
// bundle.Refresher. Overrides WithLoader.
func WithStore(store *bundle.Store) Option {
	return func(c *Controller) error {
		if store != nil {
			c.bundles = store
		}
		return nil
	}
}

// WithRegistry replaces the built-in language table.
func WithRegistry(reg *registry.Registry) Option {
	return func(c *Controller) error {
		if reg != nil {
			c.registry = reg
		}
		return nil
	}
}

// WithPrefs sets the preference persistence backend.
// Default: in-memory store.
func WithPrefs(store prefs.Store) Option {
	return func(c *Controller) error {
		if store != nil {
			c.prefs = store
		}
		return nil
	}
}

// WithLocaleSource sets the environment locale source consulted when no
// persisted preference exists. Default: EnvLocale.
func WithLocaleSource(src LocaleSource) Option {
	return func(c *Controller) error {
		if src != nil {
			c.locale = src
		}
		return nil
	}
}

// WithLogger sets the logger. Default: no-op.
func WithLogger(log *slog.Logger) Option {
	return func(c *Controller) error {
		if log != nil {
			c.log = log
		}
		return nil
	}
}

// WithFallback sets the fallback language code. Default: "en".
// The code must be present in the registry.
func WithFallback(code string) Option {
	return func(c *Controller) error {
		if code != "" {
			c.fallback = code
		}
		return nil
	}
}

// WithPreferenceKey sets the persisted-preference key. Default: "lang".
func WithPreferenceKey(key string) Option {
	return func(c *Controller) error {
		if key != "" {
			c.prefKey = key
		}
		return nil
	}
}

// WithSanitizer runs translated markup through the given bluemonday policy
// before insertion. Off by default: bundle content is trusted, inline
// markup in translations is a feature. Enable this only when bundles come
// from sources you do not control.
func WithSanitizer(policy *bluemonday.Policy) Option {
	return func(c *Controller) error {
		c.render.sanitize = policy
		return nil
	}
}

// WithMarkdown renders translated values as inline Markdown before
// insertion, for text-heavy bundles authored in Markdown.
func WithMarkdown() Option {
	return func(c *Controller) error {
		c.render.markdown = goldmark.New()
		return nil
	}
}

// WithPicker enables the injected language picker control.
func WithPicker() Option {
	return func(c *Controller) error {
		c.pickerOn = true
		return nil
	}
}
