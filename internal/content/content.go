// Package content holds the bundled game data: a gen 9 base mod with bound
// handlers and the older-generation mods layered over it.
package content

import (
	"go.uber.org/zap"

	"github.com/vgcsim/battle-engine-go/internal/dex"
	"github.com/vgcsim/battle-engine-go/internal/game/effects"
	"github.com/vgcsim/battle-engine-go/internal/game/rules"
	"github.com/vgcsim/battle-engine-go/internal/id"
)

// BaseMod is the name of the bundled root mod.
const BaseMod = "gen9"

var aliases = map[string]string{
	"zard":    "charizard",
	"pika":    "pikachu",
	"koko":    "tapukoko",
	"wash":    "rotomwash",
	"tbolt":   "thunderbolt",
	"eq":      "earthquake",
	"tr":      "trickroom",
	"wow":     "willowisp",
	"lefties": "leftovers",
	"scarf":   "choicescarf",
	"sitrus":  "sitrusberry",
	"ng":      "neutralizinggas",
}

// compoundNames mark word boundaries the display name hides.
var compoundNames = []string{"Mr. Mime", "Tapu Koko", "Will-O-Wisp"}

func formatEntries() map[id.ID]dex.Entry {
	formats := []*dex.Format{
		{Base: dex.Base{Name: "[Gen 9] VGC 2025"}, Mod: "gen9", GameType: "doubles", Ruleset: []string{"Flat Rules", "VGC Timer"}},
		{Base: dex.Base{Name: "[Gen 9] OU"}, Mod: "gen9", GameType: "singles", Ruleset: []string{"Standard"}, Banlist: []string{"Uber", "AG", "Moody"}},
		{Base: dex.Base{Name: "[Gen 8] OU"}, Mod: "gen8", GameType: "singles", Ruleset: []string{"Standard", "Dynamax Clause"}, Banlist: []string{"Uber", "AG"}},
		{Base: dex.Base{Name: "[Gen 7] OU"}, Mod: "gen7", GameType: "singles", Ruleset: []string{"Standard"}, Banlist: []string{"Uber"}},
		{Base: dex.Base{Name: "[Gen 4] OU"}, Mod: "gen4", GameType: "singles", Ruleset: []string{"Standard"}, Banlist: []string{"Uber"}},
	}
	out := make(map[id.ID]dex.Entry, len(formats))
	for _, f := range formats {
		out[id.ToID(f.Name)] = dex.Replace(f)
	}
	// Short ids used by clients.
	out["gen9vgc"] = dex.Replace(formats[0].Clone().(*dex.Format))
	return out
}

func baseSpec() dex.ModSpec {
	return dex.ModSpec{
		Name: BaseMod,
		Gen:  9,
		Entries: map[dex.Kind]map[id.ID]dex.Entry{
			dex.Abilities:  abilityEntries(),
			dex.Items:      itemEntries(),
			dex.Moves:      moveEntries(),
			dex.Conditions: conditionEntries(),
			dex.Natures:    natureEntries(),
			dex.Species:    speciesEntries(),
			dex.Types:      typeEntries(),
			dex.Formats:    formatEntries(),
		},
		Aliases:       aliases,
		CompoundNames: compoundNames,
	}
}

func tier(t string) dex.Entry {
	return dex.Patch(func(s *dex.SpeciesData) { s.Tier = t })
}

func standard() dex.Entry {
	return dex.Patch(func(r dex.Record) {
		switch v := r.(type) {
		case *dex.SpeciesData:
			v.IsNonstandard = ""
			v.Tier = "OU"
		case *dex.Item:
			v.IsNonstandard = ""
		}
	})
}

func basePower(bp int) dex.Entry {
	return dex.Patch(func(m *dex.Move) { m.BasePower = bp })
}

func gen8Spec() dex.ModSpec {
	return dex.ModSpec{
		Name:   "gen8",
		Parent: BaseMod,
		Gen:    8,
		Entries: map[dex.Kind]map[id.ID]dex.Entry{
			dex.Species: {
				"dragonite": tier("UU"),
				"gengar":    tier("OU"),
				"tapukoko":  tier("OU"),
			},
		},
	}
}

func gen7Spec() dex.ModSpec {
	return dex.ModSpec{
		Name:   "gen7",
		Parent: "gen8",
		Gen:    7,
		Entries: map[dex.Kind]map[id.ID]dex.Entry{
			dex.Species: {
				"charizardmegax": standard(),
				"charizardmegay": standard(),
			},
			dex.Items: {
				"charizarditex": standard(),
				"charizarditey": standard(),
			},
		},
	}
}

func gen4Spec() dex.ModSpec {
	return dex.ModSpec{
		Name:   "gen4",
		Parent: "gen7",
		Gen:    4,
		Entries: map[dex.Kind]map[id.ID]dex.Entry{
			dex.Moves: {
				"thunderbolt":  basePower(95),
				"flamethrower": basePower(95),
				"surf":         basePower(95),
			},
			dex.Species: {
				"gengar": dex.Patch(func(s *dex.SpeciesData) {
					s.Abilities = map[string]string{"0": "Levitate"}
				}),
				"mrmime": dex.Patch(func(s *dex.SpeciesData) {
					s.Types = []string{"Psychic"}
				}),
			},
			dex.Types: {
				"steel": dex.Patch(func(t *dex.TypeInfo) {
					t.DamageTaken["Ghost"] = dex.DamageResist
					t.DamageTaken["Dark"] = dex.DamageResist
				}),
			},
		},
		Init: func(d *dex.Dex) error {
			rec, err := d.Override(dex.Conditions, "par")
			if err != nil {
				return err
			}
			rec.(*dex.Condition).Events.On(rules.EventModifySpe, effects.Call(func(_ *effects.Context, a effects.Args) (any, error) {
				return scale(a.Relay, 1, 4), nil
			}).WithPriority(-101))
			return nil
		},
	}
}

// Specs returns fresh mod specs for the bundled content. Records are built
// on every call, so registries built from separate calls share nothing.
func Specs() []dex.ModSpec {
	return []dex.ModSpec{baseSpec(), gen8Spec(), gen7Spec(), gen4Spec()}
}

// NewRegistry builds a registry over the bundled content.
func NewRegistry(logger *zap.Logger, opts ...dex.RegistryOption) (*dex.Registry, error) {
	return dex.NewRegistry(logger, Specs(), opts...)
}
