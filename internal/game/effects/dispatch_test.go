package effects

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/vgcsim/battle-engine-go/internal/game/rules"
)

func TestEngine_DispatchEmptySlotReturnsRelay(t *testing.T) {
	e := NewEngine(zaptest.NewLogger(t))
	eff := newTestEffect("Nothing", KindAbility)

	got, err := e.Dispatch(Single{Event: rules.EventModifySpe, Effect: eff, Relay: 100})
	require.NoError(t, err)
	assert.Equal(t, 100, got)

	got, err = e.Dispatch(Single{Event: rules.EventModifySpe, Effect: eff})
	require.NoError(t, err)
	assert.Equal(t, true, got)
}

func TestEngine_DispatchArgumentShape(t *testing.T) {
	e := NewEngine(zaptest.NewLogger(t))
	eff := newTestEffect("Shape", KindItem)
	target := newCombatant("target", 0, 50)

	var seen []Args
	eff.handlers.On(rules.EventModifySpe, Call(func(c *Context, a Args) (any, error) {
		seen = append(seen, a)
		return nil, nil
	}))

	_, err := e.Dispatch(Single{Event: rules.EventModifySpe, Effect: eff, Target: target})
	require.NoError(t, err)
	_, err = e.Dispatch(Single{Event: rules.EventModifySpe, Effect: eff, Target: target, Relay: 80})
	require.NoError(t, err)

	require.Len(t, seen, 2)
	assert.False(t, seen[0].HasRelay)
	assert.Equal(t, true, seen[0].Relay)
	assert.Equal(t, []any{target, nil, nil}, seen[0].Positional())
	assert.True(t, seen[1].HasRelay)
	assert.Equal(t, []any{80, target, nil, nil}, seen[1].Positional())
}

func TestEngine_DispatchResultReplacesRelay(t *testing.T) {
	e := NewEngine(zaptest.NewLogger(t))
	eff := newTestEffect("Half", KindCondition)
	eff.handlers.On(rules.EventModifySpe, Call(func(c *Context, a Args) (any, error) {
		return a.Relay.(int) / 2, nil
	}))
	eff.handlers.On(rules.EventModifyAtk, Call(func(c *Context, a Args) (any, error) {
		return nil, nil
	}))

	got, err := e.Dispatch(Single{Event: rules.EventModifySpe, Effect: eff, Relay: 100})
	require.NoError(t, err)
	assert.Equal(t, 50, got)

	got, err = e.Dispatch(Single{Event: rules.EventModifyAtk, Effect: eff, Relay: 100})
	require.NoError(t, err)
	assert.Equal(t, 100, got, "no explicit value keeps the relay")
}

func TestEngine_DispatchConstantHandler(t *testing.T) {
	e := NewEngine(zaptest.NewLogger(t))
	eff := newTestEffect("Levitate", KindAbility)
	eff.handlers.On(rules.EventImmunity, Const(false))

	got, err := e.Dispatch(Single{Event: rules.EventImmunity, Effect: eff, Relay: "Ground"})
	require.NoError(t, err)
	assert.Equal(t, false, got)
	assert.Equal(t, 0, e.Depth())
}

func TestEngine_DispatchOverrideHandler(t *testing.T) {
	e := NewEngine(zaptest.NewLogger(t))
	eff := newTestEffect("Plain", KindMove)
	eff.handlers.On(rules.EventBasePower, Const(40))
	override := Const(80)

	got, err := e.Dispatch(Single{Event: rules.EventBasePower, Effect: eff, Override: &override})
	require.NoError(t, err)
	assert.Equal(t, 80, got)
}

func TestEngine_DispatchStatusChangedSkipsHandler(t *testing.T) {
	e := NewEngine(zaptest.NewLogger(t))
	par := newTestEffect("par", KindCondition)
	par.category = CategoryStatus
	called := false
	par.handlers.On(rules.EventStart, Call(func(c *Context, a Args) (any, error) {
		called = true
		return false, nil
	}))
	mon := newCombatant("mon", 0, 100)
	mon.status = "brn"

	got, err := e.Dispatch(Single{Event: rules.EventStart, Effect: par, Target: mon, Relay: 7})
	require.NoError(t, err)
	assert.Equal(t, 7, got)
	assert.False(t, called)

	mon.status = "par"
	got, err = e.Dispatch(Single{Event: rules.EventStart, Effect: par, Target: mon, Relay: 7})
	require.NoError(t, err)
	assert.Equal(t, false, got)
	assert.True(t, called)
}

func TestEngine_DispatchIgnoredAbilityOnlyAnswersEnd(t *testing.T) {
	e := NewEngine(zaptest.NewLogger(t))
	ability := newTestEffect("Intimidate", KindAbility)
	var log []string
	for _, ev := range []rules.EventID{rules.EventStart, rules.EventSwitchIn, rules.EventModifyAtk, rules.EventEnd} {
		ability.handlers.On(ev, recorder(&log, ev.String()))
	}
	mon := newCombatant("mon", 0, 100)
	mon.ignoringAbility = true

	for _, ev := range []rules.EventID{rules.EventStart, rules.EventSwitchIn, rules.EventModifyAtk, rules.EventEnd} {
		_, err := e.Dispatch(Single{Event: ev, Effect: ability, Target: mon})
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"End"}, log)
}

func TestEngine_DispatchBreakableAbilityOnSwitchIn(t *testing.T) {
	e := NewEngine(zaptest.NewLogger(t), WithEnvironment(testEnv{suppressAbility: true}))
	ability := newTestEffect("Pressure", KindAbility)
	ability.breakable = true
	var log []string
	ability.handlers.On(rules.EventSwitchIn, recorder(&log, "switchin"))
	ability.handlers.On(rules.EventModifyDef, recorder(&log, "def"))

	_, err := e.Dispatch(Single{Event: rules.EventSwitchIn, Effect: ability, Target: newCombatant("mon", 0, 1)})
	require.NoError(t, err)
	_, err = e.Dispatch(Single{Event: rules.EventModifyDef, Effect: ability, Target: newCombatant("mon", 0, 1)})
	require.NoError(t, err)
	assert.Equal(t, []string{"def"}, log)
}

func TestEngine_DispatchIgnoredItem(t *testing.T) {
	e := NewEngine(zaptest.NewLogger(t))
	item := newTestEffect("Leftovers", KindItem)
	var log []string
	for _, ev := range []rules.EventID{rules.EventStart, rules.EventTakeItem, rules.EventResidual, rules.EventEnd} {
		item.handlers.On(ev, recorder(&log, ev.String()))
	}
	mon := newCombatant("mon", 0, 100)
	mon.ignoringItem = true

	for _, ev := range []rules.EventID{rules.EventStart, rules.EventTakeItem, rules.EventResidual, rules.EventEnd} {
		_, err := e.Dispatch(Single{Event: ev, Effect: item, Target: mon})
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"Start", "TakeItem"}, log)
}

func TestEngine_DispatchSuppressedWeather(t *testing.T) {
	e := NewEngine(zaptest.NewLogger(t), WithEnvironment(testEnv{suppressWeather: true}))
	rain := newTestEffect("RainDance", KindCondition)
	rain.category = CategoryWeather
	var log []string
	for _, ev := range []rules.EventID{rules.EventFieldStart, rules.EventFieldResidual, rules.EventFieldEnd, rules.EventWeather, rules.EventBasePower} {
		rain.handlers.On(ev, recorder(&log, ev.String()))
	}

	for _, ev := range []rules.EventID{rules.EventFieldStart, rules.EventFieldResidual, rules.EventFieldEnd, rules.EventWeather, rules.EventBasePower} {
		_, err := e.Dispatch(Single{Event: ev, Effect: rain})
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"FieldStart", "FieldResidual", "FieldEnd"}, log)
}

// nestingEffect re-dispatches ModifySpe from inside its own handler until the
// engine reaches limit.
func nestingEffect(limit int, deepest *int) *testEffect {
	eff := newTestEffect("Loop", KindCondition)
	var handler Handler
	handler = Call(func(c *Context, a Args) (any, error) {
		d := c.Engine().Depth()
		if d > *deepest {
			*deepest = d
		}
		if d < limit {
			return c.Dispatch(Single{Event: rules.EventModifySpe, Effect: eff, Target: a.Target})
		}
		return d, nil
	})
	eff.handlers.On(rules.EventModifySpe, handler)
	eff.handlers.On(rules.EventBeforeMove, handler)
	return eff
}

func TestEngine_DispatchDepthEightSucceeds(t *testing.T) {
	e := NewEngine(zaptest.NewLogger(t))
	deepest := 0
	eff := nestingEffect(MaxDepth, &deepest)

	got, err := e.Dispatch(Single{Event: rules.EventBeforeMove, Effect: eff})
	require.NoError(t, err)
	assert.Equal(t, MaxDepth, got)
	assert.Equal(t, MaxDepth, deepest)
	assert.Equal(t, 0, e.Depth())
}

func TestEngine_DispatchDepthNineFails(t *testing.T) {
	e := NewEngine(zaptest.NewLogger(t))
	deepest := 0
	eff := nestingEffect(MaxDepth+1, &deepest)

	_, err := e.Dispatch(Single{Event: rules.EventBeforeMove, Effect: eff})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStackLimit))

	var integrity *IntegrityError
	require.True(t, errors.As(err, &integrity))
	assert.Equal(t, rules.EventModifySpe, integrity.Event)
	assert.Equal(t, rules.EventModifySpe, integrity.Parent)
	assert.Equal(t, rules.EventBeforeMove, integrity.Root)
	assert.Equal(t, MaxDepth, integrity.Depth)
	assert.Contains(t, err.Error(), "root BeforeMove")

	assert.Equal(t, 0, e.Depth(), "context is restored after the abort")
	assert.Contains(t, e.Log().Lines(), "|message|STACK LIMIT EXCEEDED")
}

func TestEngine_DispatchLineLimit(t *testing.T) {
	log := NewLog()
	e := NewEngine(zaptest.NewLogger(t), WithLog(log), WithMaxLogLines(3))
	eff := newTestEffect("Chatty", KindCondition)
	eff.handlers.On(rules.EventResidual, Call(func(c *Context, a Args) (any, error) {
		c.Add("-message", "tick")
		return nil, nil
	}))

	for i := 0; i < 4; i++ {
		_, err := e.Dispatch(Single{Event: rules.EventResidual, Effect: eff})
		require.NoError(t, err)
	}
	_, err := e.Dispatch(Single{Event: rules.EventResidual, Effect: eff})
	require.ErrorIs(t, err, ErrLineLimit)

	log.Checkpoint()
	_, err = e.Dispatch(Single{Event: rules.EventResidual, Effect: eff})
	require.NoError(t, err)
}

func TestEngine_DispatchRestoresContext(t *testing.T) {
	e := NewEngine(zaptest.NewLogger(t))
	inner := newTestEffect("Inner", KindItem)
	outer := newTestEffect("Outer", KindAbility)
	target := newCombatant("mon", 0, 1)

	inner.handlers.On(rules.EventModifySpe, Call(func(c *Context, a Args) (any, error) {
		eff, _, ev := c.Engine().Current()
		assert.Same(t, inner, eff)
		assert.Equal(t, rules.EventModifySpe, ev.ID)
		return nil, nil
	}))
	outer.handlers.On(rules.EventStart, Call(func(c *Context, a Args) (any, error) {
		outerState := c.State
		_, err := c.Dispatch(Single{Event: rules.EventModifySpe, Effect: inner, Target: target})
		if err != nil {
			return nil, err
		}
		eff, st, ev := c.Engine().Current()
		assert.Same(t, outer, eff)
		assert.Same(t, outerState, st)
		assert.Equal(t, rules.EventStart, ev.ID)
		assert.Same(t, target, ev.Target)
		return nil, nil
	}))

	_, err := e.Dispatch(Single{Event: rules.EventStart, Effect: outer, Target: target})
	require.NoError(t, err)

	eff, st, ev := e.Current()
	assert.Nil(t, eff)
	assert.Nil(t, st)
	assert.Equal(t, rules.EventNone, ev.ID)
}

func TestEngine_DispatchHandlerErrorUnwinds(t *testing.T) {
	e := NewEngine(zaptest.NewLogger(t))
	eff := newTestEffect("Broken", KindMove)
	boom := errors.New("boom")
	eff.handlers.On(rules.EventHit, Call(func(c *Context, a Args) (any, error) {
		return nil, boom
	}))

	_, err := e.Dispatch(Single{Event: rules.EventHit, Effect: eff})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 0, e.Depth())
}

func TestEngine_DispatchLazyState(t *testing.T) {
	e := NewEngine(zaptest.NewLogger(t))
	eff := newTestEffect("Scratch", KindMove)
	var states []*State
	eff.handlers.On(rules.EventHit, Call(func(c *Context, a Args) (any, error) {
		states = append(states, c.State)
		return nil, nil
	}))

	for i := 0; i < 2; i++ {
		_, err := e.Dispatch(Single{Event: rules.EventHit, Effect: eff})
		require.NoError(t, err)
	}
	require.Len(t, states, 2)
	require.NotNil(t, states[0])
	assert.NotSame(t, states[0], states[1])
	assert.Less(t, states[0].EffectOrder, states[1].EffectOrder)
	assert.NotEqual(t, states[0].ID, states[1].ID)
}
