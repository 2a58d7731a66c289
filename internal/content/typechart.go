package content

import (
	"github.com/vgcsim/battle-engine-go/internal/dex"
	"github.com/vgcsim/battle-engine-go/internal/id"
)

type typeRow struct {
	name    string
	weak    []string
	resist  []string
	immune  []string
	special []string // non-type keys the type is immune to
}

var typeRows = []typeRow{
	{name: "Normal", weak: []string{"Fighting"}, immune: []string{"Ghost"}},
	{name: "Fire", weak: []string{"Water", "Ground", "Rock"}, resist: []string{"Fire", "Grass", "Ice", "Bug", "Steel", "Fairy"}, special: []string{"brn"}},
	{name: "Water", weak: []string{"Electric", "Grass"}, resist: []string{"Fire", "Water", "Ice", "Steel"}},
	{name: "Electric", weak: []string{"Ground"}, resist: []string{"Electric", "Flying", "Steel"}, special: []string{"par"}},
	{name: "Grass", weak: []string{"Fire", "Ice", "Poison", "Flying", "Bug"}, resist: []string{"Water", "Electric", "Grass", "Ground"}, special: []string{"powder"}},
	{name: "Ice", weak: []string{"Fire", "Fighting", "Rock", "Steel"}, resist: []string{"Ice"}, special: []string{"frz", "hail"}},
	{name: "Fighting", weak: []string{"Flying", "Psychic", "Fairy"}, resist: []string{"Bug", "Rock", "Dark"}},
	{name: "Poison", weak: []string{"Ground", "Psychic"}, resist: []string{"Grass", "Fighting", "Poison", "Bug", "Fairy"}, special: []string{"psn", "tox"}},
	{name: "Ground", weak: []string{"Water", "Grass", "Ice"}, resist: []string{"Poison", "Rock"}, immune: []string{"Electric"}, special: []string{"sandstorm"}},
	{name: "Flying", weak: []string{"Electric", "Ice", "Rock"}, resist: []string{"Grass", "Fighting", "Bug"}, immune: []string{"Ground"}},
	{name: "Psychic", weak: []string{"Bug", "Ghost", "Dark"}, resist: []string{"Fighting", "Psychic"}},
	{name: "Bug", weak: []string{"Fire", "Flying", "Rock"}, resist: []string{"Grass", "Fighting", "Ground"}},
	{name: "Rock", weak: []string{"Water", "Grass", "Fighting", "Ground", "Steel"}, resist: []string{"Normal", "Fire", "Poison", "Flying"}, special: []string{"sandstorm"}},
	{name: "Ghost", weak: []string{"Ghost", "Dark"}, resist: []string{"Poison", "Bug"}, immune: []string{"Normal", "Fighting"}, special: []string{"trapped"}},
	{name: "Dragon", weak: []string{"Ice", "Dragon", "Fairy"}, resist: []string{"Fire", "Water", "Electric", "Grass"}},
	{name: "Dark", weak: []string{"Fighting", "Bug", "Fairy"}, resist: []string{"Ghost", "Dark"}, immune: []string{"Psychic"}, special: []string{"prankster"}},
	{name: "Steel", weak: []string{"Fire", "Fighting", "Ground"}, resist: []string{"Normal", "Grass", "Ice", "Flying", "Psychic", "Bug", "Rock", "Dragon", "Steel", "Fairy"}, immune: []string{"Poison"}, special: []string{"psn", "tox", "sandstorm"}},
	{name: "Fairy", weak: []string{"Poison", "Steel"}, resist: []string{"Fighting", "Bug", "Dark"}, immune: []string{"Dragon"}},
}

func typeEntries() map[id.ID]dex.Entry {
	out := make(map[id.ID]dex.Entry, len(typeRows))
	for _, row := range typeRows {
		taken := make(map[string]int, len(row.weak)+len(row.resist)+len(row.immune)+len(row.special))
		for _, t := range row.weak {
			taken[t] = dex.DamageWeak
		}
		for _, t := range row.resist {
			taken[t] = dex.DamageResist
		}
		for _, t := range row.immune {
			taken[t] = dex.DamageImmune
		}
		for _, t := range row.special {
			taken[t] = dex.DamageImmune
		}
		out[id.ToID(row.name)] = dex.Replace(&dex.TypeInfo{
			Base:        dex.Base{Name: row.name},
			DamageTaken: taken,
		})
	}
	return out
}
