package bundle

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/vgcsim/battle-engine-go/internal/dex"
)

func sample() *Bundle {
	base := Mod{Name: "base", Gen: 9, Aliases: map[string]string{"tbolt": "thunderbolt"}}
	base.Put(dex.Moves, "thunderbolt", Entry{Data: json.RawMessage(`{"name":"Thunderbolt","num":85,"basePower":90,"type":"Electric","pp":15,"flags":{"protect":true}}`)})
	base.Put(dex.Conditions, "raindance", Entry{Data: json.RawMessage(`{"name":"RainDance","effectType":"Weather","duration":5}`)})

	gen4 := Mod{Name: "gen4", Parent: "base", Gen: 4}
	gen4.Put(dex.Moves, "thunderbolt", Entry{Inherit: true, Data: json.RawMessage(`{"basePower":95,"flags":{"mirror":true}}`)})
	return &Bundle{Mods: []Mod{gen4, base}}
}

func TestBundle_Specs(t *testing.T) {
	b := sample()
	b.Sort()
	require.Equal(t, "base", b.Mods[0].Name)
	assert.Equal(t, 2, b.Mods[0].Len())

	specs, err := b.Specs()
	require.NoError(t, err)
	r, err := dex.NewRegistry(zaptest.NewLogger(t), specs)
	require.NoError(t, err)

	base := r.Base()
	gen4, err := r.Mod("gen4")
	require.NoError(t, err)

	assert.Equal(t, 90, base.Move("tbolt").BasePower)
	old := gen4.Move("thunderbolt")
	assert.Equal(t, 95, old.BasePower)
	assert.Equal(t, 15, old.PP)
	assert.Equal(t, dex.Flags{"protect": true, "mirror": true}, old.Flags)
	assert.Equal(t, dex.Flags{"protect": true}, base.Move("thunderbolt").Flags)

	rain := base.Condition("raindance")
	assert.Equal(t, 5, rain.Duration)
	assert.Equal(t, "Weather", rain.Category.String())
}

func TestBundle_RejectsMalformed(t *testing.T) {
	b := sample()
	m, ok := b.Mod("base")
	require.True(t, ok)
	m.Put(dex.Moves, "tackle", Entry{Data: json.RawMessage(`{"name":"Tackle","power":40}`)})
	assert.Error(t, b.Validate())

	b = sample()
	m, _ = b.Mod("gen4")
	m.Put(dex.Moves, "surf", Entry{Inherit: true, Data: json.RawMessage(`{"basePower":"high"}`)})
	assert.Error(t, b.Validate())

	b = sample()
	m, _ = b.Mod("base")
	m.Put(dex.Moves, "surf", Entry{Inherit: true, Data: json.RawMessage(`{"basePower":95}`)})
	assert.ErrorIs(t, b.Validate(), dex.ErrInheritWithoutParent)

	b = sample()
	m, _ = b.Mod("base")
	m.Put(dex.Items, "leftovers", Entry{})
	assert.Error(t, b.Validate())
}

func TestEncode_RoundTripsThroughDecode(t *testing.T) {
	in := &dex.Nature{Base: dex.Base{Name: "Adamant"}, Plus: dex.StatAtk, Minus: dex.StatSpA}
	data, err := Encode(in)
	require.NoError(t, err)

	out := &dex.Nature{}
	require.NoError(t, Decode(data, out))
	assert.Equal(t, in, out)
}
