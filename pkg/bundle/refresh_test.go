package bundle_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localize/pkg/bundle"
)

// mutableLoader lets tests swap served bundles between loads.
type mutableLoader struct {
	mu      sync.Mutex
	bundles map[string]bundle.Bundle
}

func (l *mutableLoader) Load(_ context.Context, code string) (bundle.Bundle, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.bundles[code]
	if !ok {
		return nil, errors.New("simulated outage")
	}
	return b, nil
}

func (l *mutableLoader) set(code string, b bundle.Bundle) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.bundles[code] = b
}

func (l *mutableLoader) remove(code string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.bundles, code)
}

func TestRefresher(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("replaces cached entries wholesale", func(t *testing.T) {
		t.Parallel()
		loader := &mutableLoader{bundles: map[string]bundle.Bundle{
			"en": {"hello": "Hello"},
		}}
		store := bundle.NewStore(loader)
		store.Load(ctx, "en")

		loader.set("en", bundle.Bundle{"hello": "Hi there"})

		ref := bundle.NewRefresher(store, "@every 1h", nil)
		ref.Refresh(ctx)

		b, ok := store.Cached("en")
		require.True(t, ok)
		assert.Equal(t, "Hi there", b.String("hello", ""))
	})

	t.Run("keeps stale bundle when refresh fails", func(t *testing.T) {
		t.Parallel()
		loader := &mutableLoader{bundles: map[string]bundle.Bundle{
			"en": {"hello": "Hello"},
		}}
		store := bundle.NewStore(loader)
		store.Load(ctx, "en")

		loader.remove("en")

		ref := bundle.NewRefresher(store, "@every 1h", nil)
		ref.Refresh(ctx)

		b, ok := store.Cached("en")
		require.True(t, ok)
		assert.Equal(t, "Hello", b.String("hello", ""))
	})

	t.Run("start rejects an invalid schedule", func(t *testing.T) {
		t.Parallel()
		loader := &mutableLoader{bundles: map[string]bundle.Bundle{}}
		store := bundle.NewStore(loader)

		ref := bundle.NewRefresher(store, "not a schedule", nil)
		require.Error(t, ref.Start())
	})

	t.Run("start and stop with a valid schedule", func(t *testing.T) {
		t.Parallel()
		loader := &mutableLoader{bundles: map[string]bundle.Bundle{}}
		store := bundle.NewStore(loader)

		ref := bundle.NewRefresher(store, "@every 1h", nil)
		require.NoError(t, ref.Start())
		ref.Stop()
	})
}
