package localize

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrymomot/localize/pkg/htmldoc"
	"github.com/dmitrymomot/localize/pkg/registry"
)

// Marker attributes the renderer recognizes. The attribute value is the
// dotted lookup key.
const (
	AttrTranslate      = "data-translate"
	AttrTranslateTitle = "data-translate-title"
	AttrTranslateArray = "data-translate-array"
)

// RTLClass is the body marker class external styling keys off to mirror
// layout for right-to-left languages.
const RTLClass = "rtl"

// Apply rewrites the document for the active language: root language and
// direction attributes, the body RTL marker class, and every element
// carrying a translation marker.
//
// Translated markup is inserted as-is: bundles may legitimately contain
// inline markup, and their content is trusted, not sanitized. Hosts
// loading bundles from untrusted sources should configure WithSanitizer.
func (c *Controller) Apply(doc htmldoc.Document) {
	c.apply(doc, c.current())
}

// apply runs the rewrite for an explicit state snapshot, shared between
// the active-state path and per-request rewriting.
func (c *Controller) apply(doc htmldoc.Document, st state) {
	setDirection(doc, st.lang)

	for _, el := range doc.Select("[" + AttrTranslate + "]") {
		key, _ := el.Attr(AttrTranslate)
		text := st.bundle.String(key, "")

		switch el.Tag() {
		case "input", "textarea":
			el.SetAttr("placeholder", text)
		case "title":
			el.SetText(text)
		case "meta":
			el.SetAttr("content", text)
		default:
			el.SetHTML(c.renderValue(text))
		}
	}

	for _, el := range doc.Select("[" + AttrTranslateTitle + "]") {
		key, _ := el.Attr(AttrTranslateTitle)
		el.SetAttr("title", st.bundle.String(key, ""))
	}

	for _, el := range doc.Select("[" + AttrTranslateArray + "]") {
		key, _ := el.Attr(AttrTranslateArray)
		items, ok := st.bundle.List(key)
		if !ok {
			// Key missing or not a sequence: leave existing content alone.
			continue
		}

		var sb strings.Builder
		for _, item := range items {
			sb.WriteString("<li>")
			sb.WriteString(c.renderValue(item))
			sb.WriteString("</li>")
		}
		el.SetHTML(sb.String())
	}
}

// setDirection writes the root language/direction attributes and toggles
// the body RTL marker class.
func setDirection(doc htmldoc.Document, lang registry.Language) {
	root := doc.Root()
	root.SetAttr("lang", lang.Code)
	root.SetAttr("dir", lang.Direction())

	body := doc.Body()
	if lang.RTL {
		body.AddClass(RTLClass)
	} else {
		body.RemoveClass(RTLClass)
	}
}

// renderValue applies the optional markdown and sanitizer hooks to a value
// about to be written as markup.
func (c *Controller) renderValue(s string) string {
	if c.render.markdown != nil {
		var buf bytes.Buffer
		if err := c.render.markdown.Convert([]byte(s), &buf); err == nil {
			s = strings.TrimSpace(buf.String())
			// Single-paragraph values stay inline.
			if strings.HasPrefix(s, "<p>") && strings.HasSuffix(s, "</p>") && strings.Count(s, "<p>") == 1 {
				s = strings.TrimSuffix(strings.TrimPrefix(s, "<p>"), "</p>")
			}
		}
	}
	if c.render.sanitize != nil {
		s = c.render.sanitize.Sanitize(s)
	}
	return s
}

// Localize parses an HTML document from r, applies the bundle for code,
// and writes the rewritten markup to w. Unsupported codes render as the
// fallback language. The controller's active state is untouched, so
// concurrent per-request rewrites are safe.
func (c *Controller) Localize(ctx context.Context, w io.Writer, r io.Reader, code string) error {
	if !c.registry.IsSupported(code) {
		code = c.fallback
	}
	lang, _ := c.registry.Get(code)

	doc, err := htmldoc.Parse(r)
	if err != nil {
		return fmt.Errorf("localize: parsing document: %w", err)
	}

	c.apply(doc, state{
		code:   code,
		lang:   lang,
		bundle: c.bundles.Load(ctx, code),
	})

	out, err := doc.Render()
	if err != nil {
		return fmt.Errorf("localize: rendering document: %w", err)
	}

	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("localize: writing document: %w", err)
	}
	return nil
}
