package dex

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/vgcsim/battle-engine-go/internal/game/effects"
	"github.com/vgcsim/battle-engine-go/internal/id"
)

// fixtureSpecs returns a fresh base mod plus a gen 4 child.
func fixtureSpecs() []ModSpec {
	base := ModSpec{
		Name: "base",
		Gen:  9,
		Entries: map[Kind]map[id.ID]Entry{
			Abilities: {
				"static":     Replace(&Ability{Base: Base{Name: "Static", Num: 9, Desc: "May paralyze on contact."}}),
				"levitate":   Replace(&Ability{Base: Base{Name: "Levitate", Num: 26}, Flags: Flags{"breakable": true}}),
				"toxicchain": Replace(&Ability{Base: Base{Name: "Toxic Chain", Num: 305}}),
			},
			Items: {
				"leftovers":   Replace(&Item{Base: Base{Name: "Leftovers", Num: 234}, FlingBasePower: 10}),
				"choicescarf": Replace(&Item{Base: Base{Name: "Choice Scarf", Num: 287}, IsChoice: true}),
			},
			Moves: {
				"thunderbolt": Replace(&Move{Base: Base{Name: "Thunderbolt", Num: 85}, Accuracy: 100, BasePower: 90, Category: "Special", Type: "Electric", PP: 15}),
				"protect": Replace(&Move{
					Base:      Base{Name: "Protect", Num: 182},
					Category:  "Status",
					Type:      "Normal",
					Priority:  4,
					Condition: &Condition{Category: effects.CategoryVolatile, Duration: 1},
				}),
			},
			Species: {
				"pikachu":        Replace(&SpeciesData{Base: Base{Name: "Pikachu", Num: 25}, Types: []string{"Electric"}}),
				"raichu":         Replace(&SpeciesData{Base: Base{Name: "Raichu", Num: 26}, Types: []string{"Electric"}}),
				"raichualola":    Replace(&SpeciesData{Base: Base{Name: "Raichu-Alola", Num: 26}, BaseSpecies: "Raichu", Forme: "Alola", Types: []string{"Electric", "Psychic"}}),
				"charizard":      Replace(&SpeciesData{Base: Base{Name: "Charizard", Num: 6}, Types: []string{"Fire", "Flying"}}),
				"charizardmegax": Replace(&SpeciesData{Base: Base{Name: "Charizard-Mega-X", Num: 6}, BaseSpecies: "Charizard", Forme: "Mega-X", Types: []string{"Fire", "Dragon"}}),
				"mrmime":         Replace(&SpeciesData{Base: Base{Name: "Mr. Mime", Num: 122}, Types: []string{"Psychic", "Fairy"}}),
			},
			Types: {
				"electric": Replace(&TypeInfo{Base: Base{Name: "Electric"}, DamageTaken: map[string]int{"Electric": 2, "Ground": 1, "Flying": 2, "par": 3}}),
				"ground":   Replace(&TypeInfo{Base: Base{Name: "Ground"}, DamageTaken: map[string]int{"Electric": 3, "Water": 1, "sandstorm": 3}}),
				"flying":   Replace(&TypeInfo{Base: Base{Name: "Flying"}, DamageTaken: map[string]int{"Electric": 1, "Ground": 3}}),
				"water":    Replace(&TypeInfo{Base: Base{Name: "Water"}, DamageTaken: map[string]int{"Electric": 1, "Water": 2}}),
			},
			Natures: {
				"adamant": Replace(&Nature{Base: Base{Name: "Adamant"}, Plus: StatAtk, Minus: StatSpA}),
				"hardy":   Replace(&Nature{Base: Base{Name: "Hardy"}}),
			},
			Formats: {
				"gen9ou": Replace(&Format{Base: Base{Name: "[Gen 9] OU"}, Mod: "base"}),
				"gen4ou": Replace(&Format{Base: Base{Name: "[Gen 4] OU"}, Mod: "gen4"}),
			},
		},
		Aliases: map[string]string{
			"zard":  "charizard",
			"tbolt": "thunderbolt",
			"pika":  "pikachu",
		},
	}
	gen4 := ModSpec{
		Name:   "gen4",
		Parent: "base",
		Gen:    4,
		Entries: map[Kind]map[id.ID]Entry{
			Moves: {
				"thunderbolt": Patch(func(m *Move) { m.BasePower = 95 }),
			},
			Items: {
				"leftovers": Replace(&Item{Base: Base{Name: "Leftovers", Num: 234, Desc: "old"}}),
			},
		},
	}
	return []ModSpec{base, gen4}
}

func newFixture(t *testing.T, opts ...RegistryOption) *Registry {
	t.Helper()
	r, err := NewRegistry(zaptest.NewLogger(t), fixtureSpecs(), opts...)
	require.NoError(t, err)
	return r
}

func mustMod(t *testing.T, r *Registry, name string) *Dex {
	t.Helper()
	d, err := r.Mod(name)
	require.NoError(t, err)
	return d
}
