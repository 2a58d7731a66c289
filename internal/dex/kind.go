package dex

import "strings"

// Kind names one content table.
type Kind uint8

const (
	Abilities Kind = iota + 1
	Items
	Moves
	Conditions
	Natures
	Species
	Types
	Formats
)

// AllKinds lists every table in a stable order.
var AllKinds = []Kind{Abilities, Items, Moves, Conditions, Natures, Species, Types, Formats}

var kindNames = map[Kind]string{
	Abilities:  "abilities",
	Items:      "items",
	Moves:      "moves",
	Conditions: "conditions",
	Natures:    "natures",
	Species:    "species",
	Types:      "types",
	Formats:    "formats",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "unknown"
}

// ParseKind accepts a table name such as "abilities" or "Abilities".
// "pokedex" and "typechart" are accepted as the historical table names.
func ParseKind(name string) (Kind, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "pokedex":
		return Species, true
	case "typechart":
		return Types, true
	}
	for k, kn := range kindNames {
		if kn == n {
			return k, true
		}
	}
	return 0, false
}
