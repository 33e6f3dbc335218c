package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localize/pkg/registry"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("creates registry with languages", func(t *testing.T) {
		t.Parallel()
		reg, err := registry.New(
			registry.Language{Code: "en", Name: "English"},
			registry.Language{Code: "pl", Name: "Polski"},
		)
		require.NoError(t, err)
		require.NotNil(t, reg)
		assert.True(t, reg.IsSupported("en"))
		assert.True(t, reg.IsSupported("pl"))
	})

	t.Run("rejects empty code", func(t *testing.T) {
		t.Parallel()
		_, err := registry.New(registry.Language{Name: "English"})
		require.ErrorIs(t, err, registry.ErrEmptyCode)
	})

	t.Run("rejects duplicate codes", func(t *testing.T) {
		t.Parallel()
		_, err := registry.New(
			registry.Language{Code: "en"},
			registry.Language{Code: "en"},
		)
		require.ErrorIs(t, err, registry.ErrDuplicateCode)
	})

	t.Run("rejects empty table", func(t *testing.T) {
		t.Parallel()
		_, err := registry.New()
		require.ErrorIs(t, err, registry.ErrNoLanguages)
	})
}

func TestRegistryLookups(t *testing.T) {
	t.Parallel()

	reg := registry.Default()

	t.Run("every supported code resolves to its own descriptor", func(t *testing.T) {
		t.Parallel()
		for _, lang := range reg.All() {
			require.True(t, reg.IsSupported(lang.Code))
			got, ok := reg.Get(lang.Code)
			require.True(t, ok)
			assert.Equal(t, lang.Code, got.Code)
		}
	})

	t.Run("unknown code is absent", func(t *testing.T) {
		t.Parallel()
		_, ok := reg.Get("xx")
		assert.False(t, ok)
		assert.False(t, reg.IsSupported("xx"))
	})

	t.Run("all preserves registration order", func(t *testing.T) {
		t.Parallel()
		reg, err := registry.New(
			registry.Language{Code: "uk"},
			registry.Language{Code: "en"},
			registry.Language{Code: "ar", RTL: true},
		)
		require.NoError(t, err)

		codes := make([]string, 0, 3)
		for _, lang := range reg.All() {
			codes = append(codes, lang.Code)
		}
		assert.Equal(t, []string{"uk", "en", "ar"}, codes)
	})

	t.Run("all returns a copy", func(t *testing.T) {
		t.Parallel()
		langs := reg.All()
		langs[0] = registry.Language{Code: "zz"}
		fresh := reg.All()
		assert.NotEqual(t, "zz", fresh[0].Code)
	})
}

func TestLanguageDirection(t *testing.T) {
	t.Parallel()

	assert.Equal(t, registry.DirectionLTR, registry.Language{Code: "en"}.Direction())
	assert.Equal(t, registry.DirectionRTL, registry.Language{Code: "ar", RTL: true}.Direction())
}

func TestDefault(t *testing.T) {
	t.Parallel()

	reg := registry.Default()

	// The default language must come first so picker menus lead with it.
	langs := reg.All()
	require.NotEmpty(t, langs)
	assert.Equal(t, "en", langs[0].Code)

	ar, ok := reg.Get("ar")
	require.True(t, ok)
	assert.True(t, ar.RTL)

	he, ok := reg.Get("he")
	require.True(t, ok)
	assert.True(t, he.RTL)
}
