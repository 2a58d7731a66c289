package dex

import "github.com/vgcsim/battle-engine-go/internal/id"

// StatID names one of the six battle stats.
type StatID string

const (
	StatHP  StatID = "hp"
	StatAtk StatID = "atk"
	StatDef StatID = "def"
	StatSpA StatID = "spa"
	StatSpD StatID = "spd"
	StatSpe StatID = "spe"
)

// StatsTable holds one value per stat.
type StatsTable struct {
	HP  int `yaml:"hp" json:"hp"`
	Atk int `yaml:"atk" json:"atk"`
	Def int `yaml:"def" json:"def"`
	SpA int `yaml:"spa" json:"spa"`
	SpD int `yaml:"spd" json:"spd"`
	Spe int `yaml:"spe" json:"spe"`
}

// Get returns the value for stat.
func (s StatsTable) Get(stat StatID) int {
	switch stat {
	case StatHP:
		return s.HP
	case StatAtk:
		return s.Atk
	case StatDef:
		return s.Def
	case StatSpA:
		return s.SpA
	case StatSpD:
		return s.SpD
	case StatSpe:
		return s.Spe
	default:
		return 0
	}
}

// Total returns the base stat total.
func (s StatsTable) Total() int {
	return s.HP + s.Atk + s.Def + s.SpA + s.SpD + s.Spe
}

var statAliases = map[id.ID]StatID{
	"hp":             StatHP,
	"hitpoints":      StatHP,
	"atk":            StatAtk,
	"attack":         StatAtk,
	"def":            StatDef,
	"defense":        StatDef,
	"spa":            StatSpA,
	"spatk":          StatSpA,
	"spattack":       StatSpA,
	"specialattack":  StatSpA,
	"spc":            StatSpA,
	"special":        StatSpA,
	"spd":            StatSpD,
	"spdef":          StatSpD,
	"spdefense":      StatSpD,
	"specialdefense": StatSpD,
	"spe":            StatSpe,
	"speed":          StatSpe,
}

// ToStatID resolves a stat name or common abbreviation.
func ToStatID(name string) (StatID, bool) {
	s, ok := statAliases[id.ToID(name)]
	return s, ok
}

// Modifier returns the multiplier n applies to stat: 1.1, 0.9 or 1.
func (n *Nature) Modifier(stat StatID) float64 {
	if n.Plus == n.Minus {
		return 1
	}
	switch stat {
	case n.Plus:
		return 1.1
	case n.Minus:
		return 0.9
	default:
		return 1
	}
}
