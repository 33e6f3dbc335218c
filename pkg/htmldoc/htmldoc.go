package htmldoc

// Element is a single document node the renderer can read and mutate.
type Element interface {
	// Tag returns the lowercase element name ("input", "title").
	Tag() string

	// Attr returns the value of the named attribute.
	Attr(name string) (string, bool)

	// SetAttr sets the named attribute, replacing any existing value.
	SetAttr(name, value string)

	// SetText replaces the element's content with escaped text.
	SetText(text string)

	// SetHTML replaces the element's content with parsed markup.
	SetHTML(html string)

	// AppendHTML parses markup and appends it to the element's content.
	AppendHTML(html string)

	// AddClass adds the given class names.
	AddClass(names ...string)

	// RemoveClass removes the given class names.
	RemoveClass(names ...string)

	// Remove detaches the element from the document.
	Remove()
}

// Document is the capability set the renderer needs from an HTML document:
// query by selector plus access to the structural elements it rewrites.
// Keeping the surface this small lets tests run against any in-memory
// implementation.
type Document interface {
	// Select returns all elements matching the CSS selector, in document order.
	Select(selector string) []Element

	// First returns the first element matching the CSS selector.
	First(selector string) (Element, bool)

	// Root returns the document root element (<html>).
	Root() Element

	// Head returns the <head> element.
	Head() Element

	// Body returns the <body> element.
	Body() Element

	// Render serializes the document back to markup.
	Render() (string, error)
}
