package content

import (
	"github.com/vgcsim/battle-engine-go/internal/dex"
	"github.com/vgcsim/battle-engine-go/internal/game/effects"
	"github.com/vgcsim/battle-engine-go/internal/game/rules"
	"github.com/vgcsim/battle-engine-go/internal/id"
)

func announce(parts ...string) effects.Func {
	return func(c *effects.Context, a effects.Args) (any, error) {
		line := make([]string, 0, len(parts)+1)
		line = append(line, parts[0])
		if a.Target != nil {
			if name := ident(a.Target); name != "" {
				line = append(line, name)
			}
		}
		c.Add(append(line, parts[1:]...)...)
		return nil, nil
	}
}

// residualDamage deals num/den of max HP to the holder.
func residualDamage(num, den int) effects.Func {
	return func(c *effects.Context, a effects.Args) (any, error) {
		d, ok := a.Target.(Damager)
		if !ok {
			return nil, nil
		}
		d.Damage(fraction(d.MaxHP(), num, den))
		c.Add("-damage", ident(a.Target), "[from] "+c.Effect.EffectID().String())
		return nil, nil
	}
}

func cant(reason string) effects.Func {
	return func(c *effects.Context, a effects.Args) (any, error) {
		c.Add("cant", ident(a.Target), reason)
		return false, nil
	}
}

func randomTurns(target any, min, max, fallback int) int {
	if r, ok := target.(Rand); ok {
		return r.Random(min, max)
	}
	return fallback
}

func status(name string) *dex.Condition {
	return &dex.Condition{Base: dex.Base{Name: name}, Category: effects.CategoryStatus}
}

// noop holds a residual slot so the duration ticks at that order.
func noop(*effects.Context, effects.Args) (any, error) {
	return nil, nil
}

func weather(name string) *dex.Condition {
	cond := &dex.Condition{Base: dex.Base{Name: name}, Category: effects.CategoryWeather, Duration: 5}
	cond.Events.
		On(rules.EventFieldStart, effects.Call(announce("-weather", name))).
		On(rules.EventFieldResidual, effects.Call(announce("-weather", name, "[upkeep]")).WithOrder(1)).
		On(rules.EventFieldEnd, effects.Call(announce("-weather", "none")))
	return cond
}

// weatherBoost scales damage of moves of the favored type up and of the
// hindered type down.
func weatherBoost(favored, hindered string) effects.Func {
	return func(_ *effects.Context, a effects.Args) (any, error) {
		m, ok := moveOf(a.SourceEffect)
		if !ok {
			return nil, nil
		}
		switch m.Type {
		case favored:
			return scale(a.Relay, 3, 2), nil
		case hindered:
			return scale(a.Relay, 1, 2), nil
		}
		return nil, nil
	}
}

func conditionEntries() map[id.ID]dex.Entry {
	par := status("par")
	par.Events.
		On(rules.EventStart, effects.Call(announce("-status", "par"))).
		On(rules.EventModifySpe, effects.Call(func(_ *effects.Context, a effects.Args) (any, error) {
			return scale(a.Relay, 1, 2), nil
		}).WithPriority(-101)).
		On(rules.EventBeforeMove, effects.Call(func(c *effects.Context, a effects.Args) (any, error) {
			if r, ok := a.Target.(Chancer); ok && r.RandomChance(1, 4) {
				return cant("par")(c, a)
			}
			return nil, nil
		}).WithPriority(1))

	brn := status("brn")
	brn.Events.
		On(rules.EventStart, effects.Call(announce("-status", "brn"))).
		On(rules.EventResidual, effects.Call(residualDamage(1, 16)).WithOrder(10))

	psn := status("psn")
	psn.Events.
		On(rules.EventStart, effects.Call(announce("-status", "psn"))).
		On(rules.EventResidual, effects.Call(residualDamage(1, 8)).WithOrder(9))

	tox := status("tox")
	tox.Events.
		On(rules.EventStart, effects.Call(func(c *effects.Context, a effects.Args) (any, error) {
			c.State.Set("stage", 0)
			return announce("-status", "tox")(c, a)
		})).
		On(rules.EventSwitchIn, effects.Call(func(c *effects.Context, _ effects.Args) (any, error) {
			c.State.Set("stage", 0)
			return nil, nil
		})).
		On(rules.EventResidual, effects.Call(func(c *effects.Context, a effects.Args) (any, error) {
			stage := c.State.Int("stage")
			if stage < 15 {
				stage++
			}
			c.State.Set("stage", stage)
			return residualDamage(stage, 16)(c, a)
		}).WithOrder(9))

	slp := status("slp")
	slp.Events.
		On(rules.EventStart, effects.Call(func(c *effects.Context, a effects.Args) (any, error) {
			c.State.Set("time", randomTurns(a.Target, 2, 5, 3))
			return announce("-status", "slp")(c, a)
		})).
		On(rules.EventBeforeMove, effects.Call(func(c *effects.Context, a effects.Args) (any, error) {
			left := c.State.Int("time") - 1
			c.State.Set("time", left)
			if left <= 0 {
				if s, ok := a.Target.(StatusCurer); ok {
					s.CureStatus()
				}
				c.Add("-curestatus", ident(a.Target), "slp", "[msg]")
				return nil, nil
			}
			return cant("slp")(c, a)
		}).WithPriority(10))

	frz := status("frz")
	frz.Events.
		On(rules.EventStart, effects.Call(announce("-status", "frz"))).
		On(rules.EventBeforeMove, effects.Call(func(c *effects.Context, a effects.Args) (any, error) {
			if r, ok := a.Target.(Chancer); ok && r.RandomChance(1, 5) {
				if s, ok := a.Target.(StatusCurer); ok {
					s.CureStatus()
				}
				c.Add("-curestatus", ident(a.Target), "frz", "[msg]")
				return nil, nil
			}
			return cant("frz")(c, a)
		}).WithPriority(10))

	confusion := &dex.Condition{Base: dex.Base{Name: "confusion"}, Category: effects.CategoryVolatile}
	confusion.Events.
		On(rules.EventStart, effects.Call(func(c *effects.Context, a effects.Args) (any, error) {
			c.State.Set("time", randomTurns(a.Target, 2, 6, 3))
			return announce("-start", "confusion")(c, a)
		})).
		On(rules.EventEnd, effects.Call(announce("-end", "confusion"))).
		On(rules.EventBeforeMove, effects.Call(func(c *effects.Context, a effects.Args) (any, error) {
			left := c.State.Int("time") - 1
			c.State.Set("time", left)
			if left <= 0 {
				return nil, nil
			}
			c.Add("-activate", ident(a.Target), "confusion")
			if r, ok := a.Target.(Chancer); ok && r.RandomChance(33, 100) {
				return false, nil
			}
			return nil, nil
		}).WithPriority(3))

	flinch := &dex.Condition{Base: dex.Base{Name: "flinch"}, Category: effects.CategoryVolatile, Duration: 1}
	flinch.Events.On(rules.EventBeforeMove, effects.Call(cant("flinch")).WithPriority(8))

	rain := weather("RainDance")
	rain.Events.On(rules.EventModifyDamage, effects.Call(weatherBoost("Water", "Fire")))

	sun := weather("SunnyDay")
	sun.Events.On(rules.EventModifyDamage, effects.Call(weatherBoost("Fire", "Water")))

	sand := weather("Sandstorm")
	sand.Events.
		On(rules.EventWeather, effects.Call(func(c *effects.Context, a effects.Args) (any, error) {
			if hasType(a.Target, "Rock", "Ground", "Steel") {
				return nil, nil
			}
			return residualDamage(1, 16)(c, a)
		})).
		On(rules.EventModifySpD, effects.Call(func(_ *effects.Context, a effects.Args) (any, error) {
			if !hasType(a.Target, "Rock") {
				return nil, nil
			}
			return scale(a.Relay, 3, 2), nil
		}).WithPriority(10))

	trickRoom := &dex.Condition{Base: dex.Base{Name: "Trick Room"}, Category: effects.CategoryPseudoWeather, Duration: 5}
	trickRoom.Events.
		On(rules.EventFieldStart, effects.Call(announce("-fieldstart", "move: Trick Room"))).
		On(rules.EventFieldResidual, effects.Call(noop).WithOrder(27).WithSubOrder(1)).
		On(rules.EventFieldEnd, effects.Call(announce("-fieldend", "move: Trick Room")))

	tailwind := &dex.Condition{Base: dex.Base{Name: "Tailwind"}, Category: effects.CategorySideCondition, Duration: 4}
	tailwind.Events.
		On(rules.EventSideStart, effects.Call(announce("-sidestart", "move: Tailwind"))).
		On(rules.EventModifySpe, effects.Call(func(_ *effects.Context, a effects.Args) (any, error) {
			return scale(a.Relay, 2, 1), nil
		})).
		On(rules.EventSideResidual, effects.Call(noop).WithOrder(26).WithSubOrder(5)).
		On(rules.EventSideEnd, effects.Call(announce("-sideend", "move: Tailwind")))

	return map[id.ID]dex.Entry{
		"par":       dex.Replace(par),
		"brn":       dex.Replace(brn),
		"psn":       dex.Replace(psn),
		"tox":       dex.Replace(tox),
		"slp":       dex.Replace(slp),
		"frz":       dex.Replace(frz),
		"confusion": dex.Replace(confusion),
		"flinch":    dex.Replace(flinch),
		"raindance": dex.Replace(rain),
		"sunnyday":  dex.Replace(sun),
		"sandstorm": dex.Replace(sand),
		"trickroom": dex.Replace(trickRoom),
		"tailwind":  dex.Replace(tailwind),
	}
}
