package localize

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/localize/pkg/bundle"
	"github.com/dmitrymomot/localize/pkg/htmldoc"
	"github.com/dmitrymomot/localize/pkg/logger"
	"github.com/dmitrymomot/localize/pkg/prefs"
	"github.com/dmitrymomot/localize/pkg/registry"
)

// Controller owns the full localization pipeline: language resolution,
// bundle loading, and document rewriting. Construct it once at startup and
// pass it by reference to whatever needs translation or direction services.
type Controller struct {
	registry *registry.Registry
	prefs    prefs.Store
	bundles  *bundle.Store
	loader   bundle.Loader
	locale   LocaleSource
	log      *slog.Logger
	prefKey  string
	fallback string
	render   renderOptions
	picker   *Picker
	pickerOn bool

	// mu guards active for memory safety only. Concurrent language changes
	// are not serialized: both complete and the last write wins.
	mu     sync.RWMutex
	active state
}

// state is the active-language snapshot: the selected code, its registry
// descriptor, and the bundle lookups run against.
type state struct {
	code   string
	lang   registry.Language
	bundle bundle.Bundle
}

// New creates a Controller. A bundle loader (or a pre-built store) is
// required; everything else has defaults: the built-in registry, an
// in-memory preference store, the process-environment locale source, and
// a no-op logger.
func New(opts ...Option) (*Controller, error) {
	c := &Controller{
		registry: registry.Default(),
		prefs:    prefs.NewMemory(),
		locale:   EnvLocale(),
		log:      logger.NewNope(),
		prefKey:  DefaultPreferenceKey,
		fallback: bundle.DefaultFallback,
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("localize: applying option: %w", err)
		}
	}

	if c.bundles == nil {
		if c.loader == nil {
			return nil, ErrNoLoader
		}
		c.bundles = bundle.NewStore(c.loader,
			bundle.WithFallback(c.fallback),
			bundle.WithLogger(c.log),
		)
	}

	lang, ok := c.registry.Get(c.fallback)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrBadFallback, c.fallback)
	}

	// Until Init runs, lookups resolve against an empty bundle and echo
	// their keys; the document is never left half-applied.
	c.active = state{code: c.fallback, lang: lang, bundle: bundle.Bundle{}}

	if c.pickerOn {
		c.picker = newPicker(c)
	}

	return c, nil
}

// Init resolves the initial language, loads its bundle, and applies it to
// the document. When the picker is enabled it is injected as part of Init.
// Init never fails: every load problem degrades per the bundle store's
// fallback rules.
func (c *Controller) Init(ctx context.Context, doc htmldoc.Document) {
	code := c.resolveInitial(ctx)
	c.activate(ctx, code)
	if doc != nil {
		c.Apply(doc)
		if c.picker != nil {
			c.picker.Render(doc)
		}
	}
}

// SetLanguage switches the active language and reapplies translations to
// the document. An unsupported code drops the request with a warning and
// leaves state untouched. The preference write is best-effort; the bundle
// load awaits completion before the document is rewritten.
func (c *Controller) SetLanguage(ctx context.Context, doc htmldoc.Document, code string) error {
	if !c.registry.IsSupported(code) {
		c.log.WarnContext(ctx, "language change dropped",
			slog.String("lang", code),
		)
		return fmt.Errorf("%w: %s", ErrUnsupportedLanguage, code)
	}

	c.persist(ctx, code)
	c.activate(ctx, code)

	if doc != nil {
		c.Apply(doc)
		if c.picker != nil {
			c.picker.Render(doc)
		}
	}
	return nil
}

// activate loads the bundle for code and swaps the active snapshot.
func (c *Controller) activate(ctx context.Context, code string) {
	lang, _ := c.registry.Get(code)
	b := c.bundles.Load(ctx, code)

	c.mu.Lock()
	c.active = state{code: code, lang: lang, bundle: b}
	c.mu.Unlock()

	c.log.InfoContext(ctx, "language activated",
		slog.String("lang", code),
		slog.String("dir", lang.Direction()),
	)
}

// current returns a snapshot of the active state.
func (c *Controller) current() state {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.active
}

// Language returns the active language code.
func (c *Controller) Language() string {
	return c.current().code
}

// IsRTL reports whether the active language is right-to-left.
func (c *Controller) IsRTL() bool {
	return c.current().lang.RTL
}

// Direction returns "rtl" or "ltr" for the active language.
func (c *Controller) Direction() string {
	return c.current().lang.Direction()
}

// T resolves a dotted key against the active bundle. With no translation
// and no fallback the key itself is returned, a deliberately visible
// missing-translation signal.
func (c *Controller) T(key string, fallback ...string) string {
	def := ""
	if len(fallback) > 0 {
		def = fallback[0]
	}
	return c.current().bundle.String(key, def)
}

// List resolves a dotted key to an ordered string sequence.
// Returns false when the key is missing or not a sequence.
func (c *Controller) List(key string) ([]string, bool) {
	return c.current().bundle.List(key)
}

// Lookup resolves a dotted key to its raw value (string or sequence),
// applying the same miss rules as T.
func (c *Controller) Lookup(key, fallback string) any {
	return c.current().bundle.Lookup(key, fallback)
}

// Registry returns the controller's language registry.
func (c *Controller) Registry() *registry.Registry {
	return c.registry
}

// Store returns the bundle store, e.g. for wiring a bundle.Refresher.
func (c *Controller) Store() *bundle.Store {
	return c.bundles
}

// Picker returns the language picker, or nil when not enabled.
func (c *Controller) Picker() *Picker {
	return c.picker
}
