package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vgcsim/battle-engine-go/internal/dex"
	"github.com/vgcsim/battle-engine-go/internal/id"
)

func TestNewRegistry_BuildsBundledMods(t *testing.T) {
	r := newRegistry(t)
	assert.Equal(t, []string{"gen9", "gen8", "gen7", "gen4"}, r.Mods())
	assert.Equal(t, BaseMod, r.Base().Name())

	d, err := r.ForGen(4)
	require.NoError(t, err)
	assert.Equal(t, "gen7", d.Parent().Name())

	d, f, err := r.ForFormat("[Gen 4] OU")
	require.NoError(t, err)
	assert.Equal(t, "gen4", d.Name())
	assert.Equal(t, "singles", f.GameType)

	_, f, err = r.ForFormat("gen9vgc")
	require.NoError(t, err)
	assert.Equal(t, "doubles", f.GameType)
}

func TestSpecs_FreshRecordsPerCall(t *testing.T) {
	a := Specs()[0].Entries[dex.Abilities]["levitate"].Record
	b := Specs()[0].Entries[dex.Abilities]["levitate"].Record
	assert.NotSame(t, a, b)
}

func TestTypeChart(t *testing.T) {
	r := newRegistry(t)
	d := r.Base()

	assert.Len(t, d.All(dex.Types), 18)

	assert.Equal(t, 2, d.GetEffectiveness("Electric", "Water", "Flying"))
	assert.Equal(t, 2, d.GetEffectiveness("Ice", "Dragon", "Flying"))
	assert.Equal(t, -2, d.GetEffectiveness("Grass", "Fire", "Dragon"))
	assert.Equal(t, 0, d.GetEffectiveness("Fire", "Water", "Grass"))

	assert.False(t, d.GetImmunity("Electric", "Ground"))
	assert.False(t, d.GetImmunity("Ground", "Electric", "Flying"))
	assert.False(t, d.GetImmunity("Dragon", "Fairy"))
	assert.False(t, d.GetImmunity("par", "Electric"))
	assert.False(t, d.GetImmunity("sandstorm", "Steel"))
	assert.False(t, d.GetImmunity("prankster", "Dark"))
	assert.True(t, d.GetImmunity("Fighting", "Normal", "Psychic"))
	assert.False(t, d.GetImmunity("Fighting", "Normal", "Ghost"))

	gen4, err := r.Mod("gen4")
	require.NoError(t, err)
	assert.Equal(t, 0, d.GetEffectiveness("Ghost", "Steel"))
	assert.Equal(t, -1, gen4.GetEffectiveness("Ghost", "Steel"))
	assert.Equal(t, -1, gen4.GetEffectiveness("Dark", "Steel"))
}

func TestNatures(t *testing.T) {
	d := newRegistry(t).Base()
	natures := d.Natures()
	require.Len(t, natures, 25)

	neutral := 0
	for _, n := range natures {
		if n.Plus == "" {
			neutral++
		}
	}
	assert.Equal(t, 5, neutral)

	timid := d.Nature("Timid")
	assert.InDelta(t, 1.1, timid.Modifier(dex.StatSpe), 1e-9)
	assert.InDelta(t, 0.9, timid.Modifier(dex.StatAtk), 1e-9)
}

func TestOlderGens(t *testing.T) {
	r := newRegistry(t)
	gen9 := r.Base()
	gen7, err := r.Mod("gen7")
	require.NoError(t, err)
	gen4, err := r.Mod("gen4")
	require.NoError(t, err)

	assert.Equal(t, 90, gen9.Move("thunderbolt").BasePower)
	assert.Equal(t, 95, gen4.Move("thunderbolt").BasePower)
	assert.Equal(t, 15, gen4.Move("thunderbolt").PP)
	assert.Same(t, gen9.ModData(dex.Moves, "thunderbolt"), gen7.ModData(dex.Moves, "thunderbolt"))

	assert.Equal(t, map[string]string{"0": "Levitate"}, gen4.Species("gengar").Abilities)
	assert.Equal(t, map[string]string{"0": "Cursed Body"}, gen9.Species("gengar").Abilities)
	assert.Equal(t, []string{"Psychic"}, gen4.Species("Mr. Mime").Types)

	assert.Equal(t, "Past", gen9.Species("charizardmegax").IsNonstandard)
	assert.Empty(t, gen7.Species("charizardmegax").IsNonstandard)
	assert.Equal(t, "OU", gen7.Species("charizardmegax").Tier)
	assert.Empty(t, gen7.Item("charizarditex").IsNonstandard)
	assert.Equal(t, "Future", gen4.Species("charizardmegax").IsNonstandard)
	assert.Equal(t, "Future", gen4.Species("tapukoko").IsNonstandard)
	assert.Equal(t, "Future", gen4.Ability("neutralizinggas").IsNonstandard)
	assert.Empty(t, gen4.Ability("levitate").IsNonstandard)

	gen8, err := r.Mod("gen8")
	require.NoError(t, err)
	assert.Equal(t, "UU", gen8.Species("dragonite").Tier)
	assert.Equal(t, "OU", gen9.Species("dragonite").Tier)
}

func TestAliases(t *testing.T) {
	r := newRegistry(t)
	gen4, err := r.Mod("gen4")
	require.NoError(t, err)

	for _, d := range []*dex.Dex{r.Base(), gen4} {
		assert.Same(t, d.Species("charizard"), d.Species("zard"))
		assert.Same(t, d.Move("thunderbolt"), d.Move("tbolt"))
		assert.Same(t, d.Item("leftovers"), d.Item("Lefties"))
		assert.Same(t, d.Ability("neutralizinggas"), d.Ability("NG"))
	}

	d := r.Base()
	assert.Contains(t, d.FuzzyAliases("alolanraichu"), id.ID("raichualola"))
	assert.Contains(t, d.FuzzyAliases("megacharizardx"), id.ID("charizardmegax"))
	assert.Contains(t, d.FuzzyAliases("washrotom"), id.ID("rotomwash"))
	assert.Contains(t, d.FuzzyAliases("koko"), id.ID("tapukoko"))
	assert.Contains(t, d.FuzzyAliases("wow"), id.ID("willowisp"))

	res := d.Search("Alolan Raichu")
	require.Len(t, res, 1)
	assert.Equal(t, dex.MatchFuzzy, res[0].Match)
	assert.Equal(t, "Raichu-Alola", res[0].Record.(*dex.SpeciesData).Name)
}

func TestProtectCondition(t *testing.T) {
	d := newRegistry(t).Base()
	cond := d.Condition("protect")
	require.True(t, cond.Exists())
	assert.Equal(t, 1, cond.DefaultDuration())
	assert.Same(t, d.Move("protect").Condition, cond)
}

func TestChecksumStableAcrossBuilds(t *testing.T) {
	a, err := newRegistry(t).Base().Checksum()
	require.NoError(t, err)
	b, err := newRegistry(t).Base().Checksum()
	require.NoError(t, err)
	assert.Equal(t, a.Hash, b.Hash)
}
