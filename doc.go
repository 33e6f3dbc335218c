// Package localize is a localization controller for server-rendered HTML.
// It resolves the user's language, lazily loads and caches translation
// bundles, and rewrites documents in place: elements carrying marker
// attributes get their content replaced, the root element gets lang and
// dir attributes, and right-to-left languages toggle an "rtl" class on
// the body.
//
// # Quick Start
//
//	ctrl, err := localize.New(
//		localize.WithLoader(bundle.NewFSLoader(localesFS)),
//		localize.WithPicker(),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	doc, _ := htmldoc.ParseString(pageHTML)
//	ctrl.Init(ctx, doc)
//	out, _ := doc.Render()
//
// # Markup
//
// Translations are addressed by dotted keys against a nested bundle.
// Three marker attributes drive the rewrite:
//
//	<h1 data-translate="home.title"></h1>
//	<input data-translate="home.search" />        <!-- sets placeholder -->
//	<a data-translate-title="nav.help">?</a>       <!-- sets title -->
//	<ul data-translate-array="home.features"></ul> <!-- renders <li> items -->
//
// Inputs and textareas receive the translation as their placeholder,
// title elements as text, meta elements as their content attribute, and
// everything else as markup. A missing key leaves the key itself visible
// rather than blanking the element, so gaps surface during review.
//
// # Language Resolution
//
// The initial language is the persisted preference if one exists and is
// supported, otherwise the configured locale source (the process
// environment by default), otherwise the fallback language. Explicit
// changes via SetLanguage persist the choice for the next session.
//
// # Serving HTTP
//
// Middleware rewrites each HTML response for the language resolved from
// the request's preference cookie or Accept-Language header:
//
//	r := chi.NewRouter()
//	r.Use(ctrl.Middleware())
//
// Bundle content is trusted and inserted unsanitized; use WithSanitizer
// when bundles come from untrusted sources.
package localize
