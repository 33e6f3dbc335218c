// Package htmldoc abstracts the HTML document behind a small adapter so
// the renderer's logic stays independent of any particular DOM library.
//
// The [Document] and [Element] interfaces cover exactly what translation
// application needs: selector queries, attribute and content writes, class
// toggling, and serialization. [Parse] returns the goquery-backed
// implementation used in production; tests can substitute their own.
package htmldoc
