package prefs_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localize/pkg/prefs"
)

func TestMemory(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		store := prefs.NewMemory()
		ctx := context.Background()

		require.NoError(t, store.Set(ctx, "lang", "de"))
		v, err := store.Get(ctx, "lang")
		require.NoError(t, err)
		assert.Equal(t, "de", v)
	})

	t.Run("missing key", func(t *testing.T) {
		t.Parallel()
		store := prefs.NewMemory()
		_, err := store.Get(context.Background(), "lang")
		require.ErrorIs(t, err, prefs.ErrNotFound)
	})

	t.Run("last write wins", func(t *testing.T) {
		t.Parallel()
		store := prefs.NewMemory()
		ctx := context.Background()

		require.NoError(t, store.Set(ctx, "lang", "en"))
		require.NoError(t, store.Set(ctx, "lang", "ar"))

		v, err := store.Get(ctx, "lang")
		require.NoError(t, err)
		assert.Equal(t, "ar", v)
	})
}

func TestCookie(t *testing.T) {
	t.Parallel()

	t.Run("set writes cookie header", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		store := prefs.NewCookie(w, r)
		require.NoError(t, store.Set(r.Context(), "lang", "fr"))

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "lang", cookies[0].Name)
		assert.Equal(t, "fr", cookies[0].Value)
		assert.Equal(t, "/", cookies[0].Path)
		assert.Positive(t, cookies[0].MaxAge)
	})

	t.Run("get reads request cookie", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "lang", Value: "he"})

		store := prefs.NewCookie(w, r)
		v, err := store.Get(r.Context(), "lang")
		require.NoError(t, err)
		assert.Equal(t, "he", v)
	})

	t.Run("missing cookie", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		store := prefs.NewCookie(w, r)
		_, err := store.Get(r.Context(), "lang")
		require.ErrorIs(t, err, prefs.ErrNotFound)
	})

	t.Run("options are applied", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		store := prefs.NewCookie(w, r,
			prefs.WithCookiePath("/app"),
			prefs.WithCookieDomain("example.com"),
			prefs.WithCookieMaxAge(time.Hour),
			prefs.WithCookieSecure(true),
		)
		require.NoError(t, store.Set(r.Context(), "lang", "es"))

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "/app", cookies[0].Path)
		assert.Equal(t, "example.com", cookies[0].Domain)
		assert.Equal(t, 3600, cookies[0].MaxAge)
		assert.True(t, cookies[0].Secure)
	})
}
