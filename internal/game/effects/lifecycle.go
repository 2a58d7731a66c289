package effects

import (
	"go.uber.org/zap"

	"github.com/vgcsim/battle-engine-go/internal/game/rules"
)

// AddEffect attaches effect to holder, recording its state in set.
//
// If the effect is already attached, its Restart handler decides the outcome
// and no second state is created. Otherwise a new state gets the next effect
// order and the effect's default duration (a Duration handler may replace it),
// then Start runs; a falsy Start result detaches the effect again.
func (e *Engine) AddEffect(set *StateSet, holder any, effect Effect, source any, sourceEffect Effect) (bool, error) {
	if st, ok := set.Get(effect); ok {
		restart := lifecycleEvent(holder, rules.EventRestart)
		if _, has := effect.EffectHandlers().Lookup(ScopeSelf, restart); !has {
			return false, nil
		}
		res, err := e.Dispatch(Single{
			Event:        restart,
			Effect:       effect,
			State:        st,
			Target:       holder,
			Source:       source,
			SourceEffect: sourceEffect,
		})
		if err != nil {
			return false, err
		}
		return Truthy(res), nil
	}

	st := e.InitState(effect, holder, source)
	if d, ok := effect.(Durable); ok && d.DefaultDuration() > 0 {
		st.SetDuration(d.DefaultDuration())
	}
	if _, has := effect.EffectHandlers().Lookup(ScopeSelf, rules.EventDuration); has {
		res, err := e.Dispatch(Single{
			Event:        rules.EventDuration,
			Effect:       effect,
			State:        st,
			Target:       holder,
			Source:       source,
			SourceEffect: sourceEffect,
		})
		if err != nil {
			return false, err
		}
		if turns, ok := res.(int); ok {
			st.SetDuration(turns)
		}
	}
	set.put(effect, st)

	res, err := e.Dispatch(Single{
		Event:        lifecycleEvent(holder, rules.EventStart),
		Effect:       effect,
		State:        st,
		Target:       holder,
		Source:       source,
		SourceEffect: sourceEffect,
	})
	if err != nil {
		set.remove(effect)
		return false, err
	}
	if !Truthy(res) {
		set.remove(effect)
		e.logger.Debug("effect start rejected", zap.String("effect_id", effect.EffectID().String()))
		return false, nil
	}
	return true, nil
}

// RemoveEffect runs effect's End handler and detaches it from holder.
// It reports false when the effect was not attached.
func (e *Engine) RemoveEffect(set *StateSet, holder any, effect Effect) (bool, error) {
	st, ok := set.Get(effect)
	if !ok {
		return false, nil
	}
	_, err := e.Dispatch(Single{
		Event:  lifecycleEvent(holder, rules.EventEnd),
		Effect: effect,
		State:  st,
		Target: holder,
	})
	set.remove(effect)
	return true, err
}

func lifecycleEvent(holder any, ev rules.EventID) rules.EventID {
	h, ok := holder.(Holder)
	if !ok {
		return ev
	}
	switch h.HolderKind() {
	case HolderField:
		return ev.ForField()
	case HolderSide:
		return ev.ForSide()
	default:
		return ev
	}
}
