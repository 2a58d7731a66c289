package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/vgcsim/battle-engine-go/internal/dex"
	"github.com/vgcsim/battle-engine-go/internal/loader"
)

// openTestStore connects to DATABASE_URL. The content tables are truncated by
// Save, so point it at a scratch database.
func openTestStore(t *testing.T) *Store {
	t.Helper()
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set")
	}
	store, err := Open(context.Background(), url, zaptest.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_SaveLoad(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	b, err := loader.New(nil, os.DirFS("../../loader/testdata/mods")).Load(ctx)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, b))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got.Mods, 2)
	assert.Equal(t, "base", got.Mods[0].Name)
	assert.Equal(t, "charizard", got.Mods[0].Aliases["zard"])
	assert.Equal(t, b.Mods[0].Len(), got.Mods[0].Len())

	specs, err := got.Specs()
	require.NoError(t, err)
	r, err := dex.NewRegistry(nil, specs)
	require.NoError(t, err)
	gen4, err := r.Mod("gen4")
	require.NoError(t, err)
	assert.Equal(t, 95, gen4.Move("thunderbolt").BasePower)
}

func TestStore_CanceledContext(t *testing.T) {
	store := openTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
