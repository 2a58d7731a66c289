package content

import (
	"github.com/vgcsim/battle-engine-go/internal/dex"
	"github.com/vgcsim/battle-engine-go/internal/id"
)

func stats(hp, atk, def, spa, spd, spe int) dex.StatsTable {
	return dex.StatsTable{HP: hp, Atk: atk, Def: def, SpA: spa, SpD: spd, Spe: spe}
}

func speciesEntries() map[id.ID]dex.Entry {
	species := []*dex.SpeciesData{
		{
			Base:  dex.Base{Name: "Pikachu", Num: 25},
			Types: []string{"Electric"}, BaseStats: stats(35, 55, 40, 50, 50, 90),
			Abilities: map[string]string{"0": "Static", "H": "Lightning Rod"},
			HeightM:   0.4, WeightKg: 6, Color: "Yellow", Evos: []string{"Raichu", "Raichu-Alola"}, Tier: "ZU",
		},
		{
			Base:  dex.Base{Name: "Raichu", Num: 26},
			Types: []string{"Electric"}, BaseStats: stats(60, 90, 55, 90, 80, 110),
			Abilities: map[string]string{"0": "Static", "H": "Lightning Rod"},
			HeightM:   0.8, WeightKg: 30, Color: "Yellow", Prevo: "Pikachu", OtherFormes: []string{"Raichu-Alola"}, Tier: "ZU",
		},
		{
			Base:        dex.Base{Name: "Raichu-Alola", Num: 26, Gen: 7},
			BaseSpecies: "Raichu", Forme: "Alola",
			Types: []string{"Electric", "Psychic"}, BaseStats: stats(60, 85, 50, 95, 85, 110),
			Abilities: map[string]string{"0": "Surge Surfer"},
			HeightM:   0.7, WeightKg: 21, Color: "Brown", Prevo: "Pikachu", Tier: "ZU",
		},
		{
			Base:  dex.Base{Name: "Charizard", Num: 6},
			Types: []string{"Fire", "Flying"}, BaseStats: stats(78, 84, 78, 109, 85, 100),
			Abilities: map[string]string{"0": "Blaze", "H": "Solar Power"},
			HeightM:   1.7, WeightKg: 90.5, Color: "Red", OtherFormes: []string{"Charizard-Mega-X", "Charizard-Mega-Y"}, Tier: "PU",
		},
		{
			Base:        dex.Base{Name: "Charizard-Mega-X", Num: 6, Gen: 6, IsNonstandard: "Past"},
			BaseSpecies: "Charizard", Forme: "Mega-X",
			Types: []string{"Fire", "Dragon"}, BaseStats: stats(78, 130, 111, 130, 85, 100),
			Abilities: map[string]string{"0": "Tough Claws"},
			HeightM:   1.7, WeightKg: 110.5, Color: "Black", RequiredItem: "Charizardite X", Tier: "Illegal",
		},
		{
			Base:        dex.Base{Name: "Charizard-Mega-Y", Num: 6, Gen: 6, IsNonstandard: "Past"},
			BaseSpecies: "Charizard", Forme: "Mega-Y",
			Types: []string{"Fire", "Flying"}, BaseStats: stats(78, 104, 78, 159, 115, 100),
			Abilities: map[string]string{"0": "Drought"},
			HeightM:   1.7, WeightKg: 100.5, Color: "Red", RequiredItem: "Charizardite Y", Tier: "Illegal",
		},
		{
			Base:  dex.Base{Name: "Gengar", Num: 94},
			Types: []string{"Ghost", "Poison"}, BaseStats: stats(60, 65, 60, 130, 75, 110),
			Abilities: map[string]string{"0": "Cursed Body"},
			HeightM:   1.5, WeightKg: 40.5, Color: "Purple", Tier: "UU",
		},
		{
			Base:  dex.Base{Name: "Dragonite", Num: 149},
			Types: []string{"Dragon", "Flying"}, BaseStats: stats(91, 134, 95, 100, 100, 80),
			Abilities: map[string]string{"0": "Inner Focus", "H": "Multiscale"},
			HeightM:   2.2, WeightKg: 210, Color: "Brown", Tier: "OU",
		},
		{
			Base:  dex.Base{Name: "Mr. Mime", Num: 122},
			Types: []string{"Psychic", "Fairy"}, BaseStats: stats(40, 45, 65, 100, 120, 90),
			Abilities: map[string]string{"0": "Soundproof", "1": "Filter", "H": "Technician"},
			HeightM:   1.3, WeightKg: 54.5, Color: "Pink", Tier: "ZU",
		},
		{
			Base:  dex.Base{Name: "Rotom", Num: 479},
			Types: []string{"Electric", "Ghost"}, BaseStats: stats(50, 50, 77, 95, 77, 91),
			Abilities: map[string]string{"0": "Levitate"},
			HeightM:   0.3, WeightKg: 0.3, Color: "Red", OtherFormes: []string{"Rotom-Wash"}, Tier: "ZU",
		},
		{
			Base:        dex.Base{Name: "Rotom-Wash", Num: 479},
			BaseSpecies: "Rotom", Forme: "Wash",
			Types: []string{"Electric", "Water"}, BaseStats: stats(50, 65, 107, 105, 107, 86),
			Abilities: map[string]string{"0": "Levitate"},
			HeightM:   0.3, WeightKg: 0.3, Color: "Red", Tier: "UU",
		},
		{
			Base:        dex.Base{Name: "Weezing-Galar", Num: 110, Gen: 8},
			BaseSpecies: "Weezing", Forme: "Galar",
			Types: []string{"Poison", "Fairy"}, BaseStats: stats(65, 90, 120, 85, 70, 60),
			Abilities: map[string]string{"0": "Levitate", "1": "Neutralizing Gas", "H": "Misty Surge"},
			HeightM:   3, WeightKg: 16, Color: "Gray", Tier: "RU",
		},
		{
			Base:  dex.Base{Name: "Tapu Koko", Num: 785},
			Types: []string{"Electric", "Fairy"}, BaseStats: stats(70, 115, 85, 95, 75, 130),
			Abilities: map[string]string{"0": "Electric Surge", "H": "Telepathy"},
			HeightM:   1.8, WeightKg: 20.5, Color: "Yellow", Tier: "UU",
		},
	}

	out := make(map[id.ID]dex.Entry, len(species))
	for _, s := range species {
		out[id.ToID(s.Name)] = dex.Replace(s)
	}
	return out
}
