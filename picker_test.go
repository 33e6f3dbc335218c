package localize_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localize"
	"github.com/dmitrymomot/localize/pkg/htmldoc"
)

func pickerController(t *testing.T) *localize.Controller {
	t.Helper()

	ctrl, err := localize.New(
		localize.WithLoader(testLoader()),
		localize.WithPicker(),
	)
	require.NoError(t, err)
	return ctrl
}

func TestPickerState(t *testing.T) {
	t.Parallel()

	picker := pickerController(t).Picker()
	require.NotNil(t, picker)

	assert.Equal(t, localize.PickerClosed, picker.State())
	assert.Equal(t, localize.PickerOpen, picker.Toggle())
	assert.Equal(t, localize.PickerClosed, picker.Toggle())

	picker.Toggle()
	picker.Close()
	assert.Equal(t, localize.PickerClosed, picker.State())

	// Closing again stays closed.
	picker.Close()
	assert.Equal(t, localize.PickerClosed, picker.State())
}

func TestPickerRender(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("injected during init", func(t *testing.T) {
		t.Parallel()

		ctrl := pickerController(t)
		doc, err := htmldoc.ParseString(testPage)
		require.NoError(t, err)

		ctrl.Init(ctx, doc)
		out, err := doc.Render()
		require.NoError(t, err)

		assert.Contains(t, out, `id="localize-picker"`)
		assert.Contains(t, out, `id="localize-picker-style"`)
		assert.Contains(t, out, `data-lang="de"`)
	})

	t.Run("repeated renders never duplicate", func(t *testing.T) {
		t.Parallel()

		ctrl := pickerController(t)
		doc, err := htmldoc.ParseString(testPage)
		require.NoError(t, err)

		ctrl.Init(ctx, doc)
		require.NoError(t, ctrl.SetLanguage(ctx, doc, "de"))
		require.NoError(t, ctrl.SetLanguage(ctx, doc, "en"))

		out, err := doc.Render()
		require.NoError(t, err)

		assert.Equal(t, 1, strings.Count(out, `id="localize-picker"`))
		assert.Equal(t, 1, strings.Count(out, `id="localize-picker-style"`))
	})

	t.Run("trigger tracks active language", func(t *testing.T) {
		t.Parallel()

		ctrl := pickerController(t)
		doc, err := htmldoc.ParseString(testPage)
		require.NoError(t, err)

		ctrl.Init(ctx, doc)
		require.NoError(t, ctrl.SetLanguage(ctx, doc, "de"))

		out, err := doc.Render()
		require.NoError(t, err)

		assert.Contains(t, out, "<span>Deutsch</span>")
		assert.Contains(t, out, `data-lang="de" class="localize-picker-option active"`)
	})

	t.Run("open state reflected in markup", func(t *testing.T) {
		t.Parallel()

		ctrl := pickerController(t)
		doc, err := htmldoc.ParseString(testPage)
		require.NoError(t, err)

		ctrl.Init(ctx, doc)
		ctrl.Picker().Toggle()
		ctrl.Picker().Render(doc)

		out, err := doc.Render()
		require.NoError(t, err)
		assert.Contains(t, out, `class="localize-picker open"`)
	})
}

func TestPickerSelect(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("switches language and closes", func(t *testing.T) {
		t.Parallel()

		ctrl := pickerController(t)
		doc, err := htmldoc.ParseString(testPage)
		require.NoError(t, err)

		ctrl.Init(ctx, doc)
		ctrl.Picker().Toggle()

		require.NoError(t, ctrl.Picker().Select(ctx, doc, "ar"))
		assert.Equal(t, "ar", ctrl.Language())
		assert.Equal(t, localize.PickerClosed, ctrl.Picker().State())

		out, err := doc.Render()
		require.NoError(t, err)
		assert.Contains(t, out, `dir="rtl"`)
	})

	t.Run("unsupported selection closes but keeps language", func(t *testing.T) {
		t.Parallel()

		ctrl := pickerController(t)
		doc, err := htmldoc.ParseString(testPage)
		require.NoError(t, err)

		ctrl.Init(ctx, doc)
		ctrl.Picker().Toggle()

		err = ctrl.Picker().Select(ctx, doc, "xx")
		require.ErrorIs(t, err, localize.ErrUnsupportedLanguage)
		assert.Equal(t, "en", ctrl.Language())
		assert.Equal(t, localize.PickerClosed, ctrl.Picker().State())
	})
}

func TestPickerDisabled(t *testing.T) {
	t.Parallel()

	ctrl, err := localize.New(localize.WithLoader(testLoader()))
	require.NoError(t, err)

	assert.Nil(t, ctrl.Picker())

	doc, err := htmldoc.ParseString(testPage)
	require.NoError(t, err)

	ctrl.Init(context.Background(), doc)
	out, err := doc.Render()
	require.NoError(t, err)
	assert.NotContains(t, out, "localize-picker")
}
