package htmldoc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localize/pkg/htmldoc"
)

const page = `<!DOCTYPE html>
<html lang="en">
<head><title>App</title></head>
<body>
	<h1 data-translate="title">Welcome</h1>
	<p data-translate="intro">Intro</p>
	<input type="text" data-translate="search">
</body>
</html>`

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("full document", func(t *testing.T) {
		t.Parallel()
		doc, err := htmldoc.ParseString(page)
		require.NoError(t, err)
		assert.Equal(t, "html", doc.Root().Tag())
		assert.Equal(t, "head", doc.Head().Tag())
		assert.Equal(t, "body", doc.Body().Tag())
	})

	t.Run("fragment is normalized into a full tree", func(t *testing.T) {
		t.Parallel()
		doc, err := htmldoc.ParseString(`<p>hello</p>`)
		require.NoError(t, err)
		assert.Equal(t, "html", doc.Root().Tag())
		assert.Equal(t, "body", doc.Body().Tag())
	})
}

func TestSelect(t *testing.T) {
	t.Parallel()

	doc, err := htmldoc.ParseString(page)
	require.NoError(t, err)

	t.Run("attribute selector in document order", func(t *testing.T) {
		els := doc.Select("[data-translate]")
		require.Len(t, els, 3)
		assert.Equal(t, "h1", els[0].Tag())
		assert.Equal(t, "p", els[1].Tag())
		assert.Equal(t, "input", els[2].Tag())
	})

	t.Run("first hit and miss", func(t *testing.T) {
		el, ok := doc.First("h1")
		require.True(t, ok)
		assert.Equal(t, "h1", el.Tag())

		_, ok = doc.First("#absent")
		assert.False(t, ok)
	})
}

func TestElementMutation(t *testing.T) {
	t.Parallel()

	doc, err := htmldoc.ParseString(page)
	require.NoError(t, err)

	el, ok := doc.First("h1")
	require.True(t, ok)

	key, ok := el.Attr("data-translate")
	require.True(t, ok)
	assert.Equal(t, "title", key)

	el.SetHTML("Bienvenue <strong>chez nous</strong>")
	el.SetAttr("data-done", "yes")

	input, ok := doc.First("input")
	require.True(t, ok)
	input.SetAttr("placeholder", "Rechercher")

	doc.Body().AddClass("rtl")
	doc.Root().SetAttr("dir", "rtl")

	out, err := doc.Render()
	require.NoError(t, err)
	assert.Contains(t, out, "Bienvenue <strong>chez nous</strong>")
	assert.Contains(t, out, `data-done="yes"`)
	assert.Contains(t, out, `placeholder="Rechercher"`)
	assert.Contains(t, out, `class="rtl"`)
	assert.Contains(t, out, `dir="rtl"`)

	doc.Body().RemoveClass("rtl")
	out, err = doc.Render()
	require.NoError(t, err)
	assert.NotContains(t, out, `class="rtl"`)
}

func TestAppendAndRemove(t *testing.T) {
	t.Parallel()

	doc, err := htmldoc.ParseString(page)
	require.NoError(t, err)

	doc.Body().AppendHTML(`<div id="widget">w</div>`)
	el, ok := doc.First("#widget")
	require.True(t, ok)

	el.Remove()
	_, ok = doc.First("#widget")
	assert.False(t, ok)
}

func TestSetTextEscapes(t *testing.T) {
	t.Parallel()

	doc, err := htmldoc.ParseString(page)
	require.NoError(t, err)

	el, ok := doc.First("p")
	require.True(t, ok)
	el.SetText("a < b")

	out, err := doc.Render()
	require.NoError(t, err)
	assert.Contains(t, out, "a &lt; b")
}
