package htmldoc

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// document adapts a goquery document to the Document interface.
// The underlying parser normalizes fragments into a full html/head/body
// tree, so Root, Head and Body are always present.
type document struct {
	doc *goquery.Document
}

// Parse reads and parses an HTML document.
func Parse(r io.Reader) (Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("htmldoc: parsing document: %w", err)
	}
	return &document{doc: doc}, nil
}

// ParseString parses an HTML document from a string.
func ParseString(s string) (Document, error) {
	return Parse(strings.NewReader(s))
}

func (d *document) Select(selector string) []Element {
	var els []Element
	d.doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
		els = append(els, &element{sel: sel})
	})
	return els
}

func (d *document) First(selector string) (Element, bool) {
	sel := d.doc.Find(selector).First()
	if sel.Length() == 0 {
		return nil, false
	}
	return &element{sel: sel}, true
}

func (d *document) Root() Element {
	return &element{sel: d.doc.Find("html").First()}
}

func (d *document) Head() Element {
	return &element{sel: d.doc.Find("head").First()}
}

func (d *document) Body() Element {
	return &element{sel: d.doc.Find("body").First()}
}

func (d *document) Render() (string, error) {
	out, err := goquery.OuterHtml(d.doc.Selection)
	if err != nil {
		return "", fmt.Errorf("htmldoc: rendering document: %w", err)
	}
	return out, nil
}

// element adapts a goquery selection to the Element interface.
type element struct {
	sel *goquery.Selection
}

func (e *element) Tag() string {
	return goquery.NodeName(e.sel)
}

func (e *element) Attr(name string) (string, bool) {
	return e.sel.Attr(name)
}

func (e *element) SetAttr(name, value string) {
	e.sel.SetAttr(name, value)
}

func (e *element) SetText(text string) {
	e.sel.SetText(text)
}

func (e *element) SetHTML(html string) {
	e.sel.SetHtml(html)
}

func (e *element) AppendHTML(html string) {
	e.sel.AppendHtml(html)
}

func (e *element) AddClass(names ...string) {
	e.sel.AddClass(names...)
}

func (e *element) RemoveClass(names ...string) {
	e.sel.RemoveClass(names...)
}

func (e *element) Remove() {
	e.sel.Remove()
}
