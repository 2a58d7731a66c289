package effects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/vgcsim/battle-engine-go/internal/game/rules"
)

func TestEngine_FieldEventTicksDurations(t *testing.T) {
	e := NewEngine(zaptest.NewLogger(t))
	mon := newCombatant("mon", 0, 100)
	var log []string

	taunt := newTestEffect("Taunt", KindCondition)
	taunt.handlers.On(rules.EventResidual, recorder(&log, "taunt"))
	taunt.handlers.On(rules.EventEnd, recorder(&log, "taunt-end"))
	st := mon.attach(e, taunt)
	st.SetDuration(2)

	scene := &testScene{holders: []Holder{mon}}
	require.NoError(t, e.FieldEvent(scene, rules.EventResidual))
	assert.Equal(t, []string{"taunt"}, log)
	remaining, ok := st.Duration()
	require.True(t, ok)
	assert.Equal(t, 1, remaining)

	require.NoError(t, e.FieldEvent(scene, rules.EventResidual))
	assert.Equal(t, []string{"taunt", "taunt-end"}, log)
	assert.True(t, st.Ended())
	assert.False(t, mon.states.Has(taunt))

	require.NoError(t, e.FieldEvent(scene, rules.EventResidual))
	assert.Equal(t, []string{"taunt", "taunt-end"}, log)
}

func TestEngine_FieldEventTicksEffectsWithoutResidualHandler(t *testing.T) {
	e := NewEngine(zaptest.NewLogger(t))
	mon := newCombatant("mon", 0, 100)
	var log []string

	flinch := newTestEffect("Flinch", KindCondition)
	flinch.handlers.On(rules.EventEnd, recorder(&log, "flinch-end"))
	st := mon.attach(e, flinch)
	st.SetDuration(1)

	require.NoError(t, e.FieldEvent(&testScene{holders: []Holder{mon}}, rules.EventResidual))
	assert.Equal(t, []string{"flinch-end"}, log)
	assert.True(t, st.Ended())
}

func TestEngine_FieldEventVariants(t *testing.T) {
	e := NewEngine(zaptest.NewLogger(t))
	mon := newCombatant("mon", 0, 100)
	side := &testHolder{name: "side", kind: HolderSide, team: 0}
	field := &testHolder{name: "field", kind: HolderField, team: -1}
	var log []string

	rain := newTestEffect("RainDance", KindCondition)
	rain.category = CategoryWeather
	rain.handlers.On(rules.EventFieldResidual, recorder(&log, "rain").WithOrder(1))
	rain.handlers.On(rules.EventResidual, recorder(&log, "rain-wrong"))
	field.attach(e, rain)

	tailwind := newTestEffect("Tailwind", KindCondition)
	tailwind.category = CategorySideCondition
	tailwind.handlers.On(rules.EventSideResidual, recorder(&log, "tailwind").WithOrder(5))
	side.attach(e, tailwind)

	burn := newTestEffect("brn", KindCondition)
	burn.category = CategoryStatus
	burn.handlers.On(rules.EventResidual, recorder(&log, "burn").WithOrder(10))
	mon.status = "brn"
	mon.attach(e, burn)

	scene := &testScene{holders: []Holder{mon, side, field}}
	require.NoError(t, e.FieldEvent(scene, rules.EventResidual))
	assert.Equal(t, []string{"rain", "tailwind", "burn"}, log)
}

func TestEngine_FieldEventSkipsStaleStatus(t *testing.T) {
	e := NewEngine(zaptest.NewLogger(t))
	mon := newCombatant("mon", 0, 100)
	var log []string

	psn := newTestEffect("psn", KindCondition)
	psn.category = CategoryStatus
	psn.handlers.On(rules.EventResidual, recorder(&log, "psn"))
	mon.attach(e, psn)
	mon.status = ""

	require.NoError(t, e.FieldEvent(&testScene{holders: []Holder{mon}}, rules.EventResidual))
	assert.Empty(t, log)
}
