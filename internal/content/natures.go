package content

import (
	"github.com/vgcsim/battle-engine-go/internal/dex"
	"github.com/vgcsim/battle-engine-go/internal/id"
)

var natureRows = []struct {
	name        string
	plus, minus dex.StatID
}{
	{"Hardy", "", ""},
	{"Lonely", dex.StatAtk, dex.StatDef},
	{"Brave", dex.StatAtk, dex.StatSpe},
	{"Adamant", dex.StatAtk, dex.StatSpA},
	{"Naughty", dex.StatAtk, dex.StatSpD},
	{"Bold", dex.StatDef, dex.StatAtk},
	{"Docile", "", ""},
	{"Relaxed", dex.StatDef, dex.StatSpe},
	{"Impish", dex.StatDef, dex.StatSpA},
	{"Lax", dex.StatDef, dex.StatSpD},
	{"Timid", dex.StatSpe, dex.StatAtk},
	{"Hasty", dex.StatSpe, dex.StatDef},
	{"Serious", "", ""},
	{"Jolly", dex.StatSpe, dex.StatSpA},
	{"Naive", dex.StatSpe, dex.StatSpD},
	{"Modest", dex.StatSpA, dex.StatAtk},
	{"Mild", dex.StatSpA, dex.StatDef},
	{"Quiet", dex.StatSpA, dex.StatSpe},
	{"Bashful", "", ""},
	{"Rash", dex.StatSpA, dex.StatSpD},
	{"Calm", dex.StatSpD, dex.StatAtk},
	{"Gentle", dex.StatSpD, dex.StatDef},
	{"Sassy", dex.StatSpD, dex.StatSpe},
	{"Careful", dex.StatSpD, dex.StatSpA},
	{"Quirky", "", ""},
}

func natureEntries() map[id.ID]dex.Entry {
	out := make(map[id.ID]dex.Entry, len(natureRows))
	for _, n := range natureRows {
		out[id.ToID(n.name)] = dex.Replace(&dex.Nature{
			Base:  dex.Base{Name: n.name},
			Plus:  n.plus,
			Minus: n.minus,
		})
	}
	return out
}
