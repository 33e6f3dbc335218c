package localize

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/text/language"
)

// DefaultPreferenceKey is the storage key for the persisted language choice.
const DefaultPreferenceKey = "lang"

// LocaleSource reports the environment's best-guess locale tag, e.g.
// "en-US". An empty string means the environment expresses no preference.
type LocaleSource func() string

// EnvLocale reads the process locale from LC_ALL, LC_MESSAGES or LANG,
// in that order, normalizing "en_US.UTF-8" style values to BCP 47 tags.
func EnvLocale() LocaleSource {
	return func() string {
		for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
			v := os.Getenv(name)
			if v == "" || v == "C" || v == "POSIX" {
				continue
			}
			if i := strings.IndexByte(v, '.'); i > 0 {
				v = v[:i]
			}
			return strings.ReplaceAll(v, "_", "-")
		}
		return ""
	}
}

// StaticLocale always reports the given tag. Useful for tests and for
// hosts that resolve the locale themselves.
func StaticLocale(tag string) LocaleSource {
	return func() string { return tag }
}

// resolveInitial determines the startup language: the persisted preference
// when it is supported, else the environment locale's base language when
// supported, else the fallback code. Deterministic given its two external
// reads.
func (c *Controller) resolveInitial(ctx context.Context) string {
	if v, err := c.prefs.Get(ctx, c.prefKey); err == nil && c.registry.IsSupported(v) {
		return v
	}

	if tag := c.locale(); tag != "" {
		if code := primarySubtag(tag); c.registry.IsSupported(code) {
			return code
		}
	}

	return c.fallback
}

// persist writes the language choice to the preference store. Fire and
// forget: a failed write is a warning, never a blocked language change.
func (c *Controller) persist(ctx context.Context, code string) {
	if err := c.prefs.Set(ctx, c.prefKey, code); err != nil {
		c.log.WarnContext(ctx, "failed to persist language preference",
			slog.String("lang", code),
			slog.String("error", err.Error()),
		)
	}
}

// primarySubtag extracts the base language from a locale tag:
// "en-US" → "en". Falls back to the first two characters when the tag
// does not parse.
func primarySubtag(tag string) string {
	if t, err := language.Parse(tag); err == nil {
		base, _ := t.Base()
		return base.String()
	}
	if len(tag) >= 2 {
		return strings.ToLower(tag[:2])
	}
	return strings.ToLower(tag)
}

// MatchAcceptLanguage returns the supported language best matching an
// Accept-Language header, honoring quality values. Returns false when the
// header is empty or nothing matches with any confidence.
func (c *Controller) MatchAcceptLanguage(header string) (string, bool) {
	if header == "" {
		return "", false
	}

	langs := c.registry.All()
	codes := make([]string, 0, len(langs))
	tags := make([]language.Tag, 0, len(langs))
	for _, l := range langs {
		t, err := language.Parse(l.Code)
		if err != nil {
			continue
		}
		codes = append(codes, l.Code)
		tags = append(tags, t)
	}
	if len(tags) == 0 {
		return "", false
	}

	matcher := language.NewMatcher(tags)
	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return "", false
	}
	_, idx, conf := matcher.Match(desired...)
	if conf == language.No {
		return "", false
	}
	return codes[idx], true
}
