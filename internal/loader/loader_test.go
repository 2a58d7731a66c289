package loader

import (
	"context"
	"os"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/vgcsim/battle-engine-go/internal/dex"
	"github.com/vgcsim/battle-engine-go/internal/game/effects"
	"github.com/vgcsim/battle-engine-go/internal/id"
)

func TestLoader_LoadTestdata(t *testing.T) {
	l := New(zaptest.NewLogger(t), os.DirFS("testdata/mods"))
	b, err := l.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, b.Mods, 2)
	assert.Equal(t, "base", b.Mods[0].Name)
	assert.Equal(t, "gen4", b.Mods[1].Name)
	assert.Equal(t, "base", b.Mods[1].Parent)
	assert.Equal(t, 8, b.Mods[0].Len())

	specs, err := b.Specs()
	require.NoError(t, err)
	r, err := dex.NewRegistry(zaptest.NewLogger(t), specs)
	require.NoError(t, err)

	base := r.Base()
	gen4, err := r.Mod("gen4")
	require.NoError(t, err)

	assert.Equal(t, 90, base.Move("tbolt").BasePower)
	assert.Equal(t, 95, gen4.Move("tbolt").BasePower)
	assert.Equal(t, "Electric", gen4.Move("thunderbolt").Type)
	assert.Equal(t, 10, gen4.Move("thunderbolt").Secondary.Chance)

	protect := base.Condition("protect")
	require.True(t, protect.Exists())
	assert.Equal(t, effects.CategoryVolatile, protect.Category)

	assert.Equal(t, effects.CategoryWeather, base.Condition("raindance").Category)

	mime := gen4.Species("Mr. Mime")
	assert.Equal(t, []string{"Psychic"}, mime.Types)
	assert.Equal(t, 40, mime.BaseStats.HP)
	assert.Equal(t, []string{"Psychic", "Fairy"}, base.Species("mrmime").Types)

	assert.Same(t, base.Species("charizard"), base.Species("zard"))
	assert.Contains(t, base.FuzzyAliases("megacharizardx"), id.ID("charizardmegax"))

	assert.False(t, base.GetImmunity("Electric", "Ground"))
	assert.Equal(t, 2, base.GetEffectiveness("Grass", "Ground", "Water"))
}

func TestLoader_ChecksumMatchesAcrossLoads(t *testing.T) {
	load := func() string {
		b, err := New(nil, os.DirFS("testdata/mods")).Load(context.Background())
		require.NoError(t, err)
		specs, err := b.Specs()
		require.NoError(t, err)
		r, err := dex.NewRegistry(nil, specs)
		require.NoError(t, err)
		d, err := r.Mod("gen4")
		require.NoError(t, err)
		sum, err := d.Checksum()
		require.NoError(t, err)
		return sum.Hash
	}
	assert.Equal(t, load(), load())
}

func TestLoader_Errors(t *testing.T) {
	manifest := &fstest.MapFile{Data: []byte("gen: 9\n")}
	child := &fstest.MapFile{Data: []byte("parent: base\ngen: 4\n")}

	cases := []struct {
		name string
		fsys fstest.MapFS
	}{
		{"unknown kind file", fstest.MapFS{
			"base/mod.yaml":      manifest,
			"base/trainers.yaml": {Data: []byte("red: {name: Red}\n")},
		}},
		{"duplicate kind", fstest.MapFS{
			"base/mod.yaml":     manifest,
			"base/species.yaml": {Data: []byte("pikachu: {num: 25}\n")},
			"base/pokedex.yaml": {Data: []byte("raichu: {num: 26}\n")},
		}},
		{"duplicate id", fstest.MapFS{
			"base/mod.yaml":   manifest,
			"base/moves.yaml": {Data: []byte("Thunder Bolt: {num: 85}\nthunderbolt: {num: 85}\n")},
		}},
		{"unknown field", fstest.MapFS{
			"base/mod.yaml":   manifest,
			"base/moves.yaml": {Data: []byte("tackle: {power: 40}\n")},
		}},
		{"bad inherit", fstest.MapFS{
			"base/mod.yaml":   manifest,
			"gen4/mod.yaml":   child,
			"gen4/moves.yaml": {Data: []byte("tackle: {inherit: yes please}\n")},
		}},
		{"inherit on base", fstest.MapFS{
			"base/mod.yaml":   manifest,
			"base/moves.yaml": {Data: []byte("tackle: {inherit: true, basePower: 40}\n")},
		}},
		{"bad yaml", fstest.MapFS{
			"base/mod.yaml":   manifest,
			"base/moves.yaml": {Data: []byte("tackle: [\n")},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(zaptest.NewLogger(t), tc.fsys).Load(context.Background())
			assert.Error(t, err)
		})
	}
}

func TestLoader_NoMods(t *testing.T) {
	_, err := New(nil, fstest.MapFS{"readme.txt": {Data: []byte("hi")}}).Load(context.Background())
	assert.ErrorIs(t, err, ErrNoMods)
}

func TestLoader_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(nil, os.DirFS("testdata/mods")).Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
