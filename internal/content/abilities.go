package content

import (
	"github.com/vgcsim/battle-engine-go/internal/dex"
	"github.com/vgcsim/battle-engine-go/internal/game/effects"
	"github.com/vgcsim/battle-engine-go/internal/game/rules"
	"github.com/vgcsim/battle-engine-go/internal/id"
)

// groundImmunity fails an Immunity check against Ground.
func groundImmunity(_ *effects.Context, a effects.Args) (any, error) {
	if t, ok := a.Relay.(string); ok && t == "Ground" {
		return false, nil
	}
	return nil, nil
}

func announceAbility(name string) effects.Func {
	return func(c *effects.Context, a effects.Args) (any, error) {
		c.Add("-ability", ident(a.Target), name)
		return nil, nil
	}
}

func abilityEntries() map[id.ID]dex.Entry {
	static := &dex.Ability{
		Base:   dex.Base{Name: "Static", Num: 9, ShortDesc: "30% chance a Pokemon making contact with this Pokemon will be paralyzed."},
		Rating: 2,
	}
	static.Events.On(rules.EventDamagingHit, effects.Call(func(c *effects.Context, a effects.Args) (any, error) {
		m, ok := moveOf(a.SourceEffect)
		if !ok || !m.Flags["contact"] {
			return nil, nil
		}
		if r, ok := a.Target.(Chancer); !ok || !r.RandomChance(3, 10) {
			return nil, nil
		}
		if s, ok := a.Source.(StatusSetter); ok {
			s.TrySetStatus("par", a.Target)
		}
		return nil, nil
	}))

	levitate := &dex.Ability{
		Base:   dex.Base{Name: "Levitate", Num: 26, ShortDesc: "This Pokemon is immune to Ground; Gravity/Ingrain/Smack Down/Iron Ball nullify it."},
		Rating: 3.5,
		Flags:  dex.Flags{"breakable": true},
	}
	levitate.Events.On(rules.EventImmunity, effects.Call(groundImmunity))

	moldBreaker := &dex.Ability{
		Base:   dex.Base{Name: "Mold Breaker", Num: 104, ShortDesc: "This Pokemon's moves and their effects ignore the Abilities of other Pokemon."},
		Rating: 3,
	}
	moldBreaker.Events.On(rules.EventStart, effects.Call(announceAbility("Mold Breaker")))

	airLock := &dex.Ability{
		Base:            dex.Base{Name: "Air Lock", Num: 76, ShortDesc: "While this Pokemon is active, the effects of weather conditions are disabled."},
		Rating:          1.5,
		SuppressWeather: true,
	}
	airLock.Events.On(rules.EventSwitchIn, effects.Call(announceAbility("Air Lock")))

	cloudNine := &dex.Ability{
		Base:            dex.Base{Name: "Cloud Nine", Num: 13, ShortDesc: "While this Pokemon is active, the effects of weather conditions are disabled."},
		Rating:          1.5,
		SuppressWeather: true,
	}
	cloudNine.Events.On(rules.EventSwitchIn, effects.Call(announceAbility("Cloud Nine")))

	// Item suppression is answered by the combatant's ItemBearer.
	klutz := &dex.Ability{
		Base:   dex.Base{Name: "Klutz", Num: 103, ShortDesc: "This Pokemon's held item has no effect, except Macho Brace. Fling cannot be used."},
		Rating: -1,
	}

	neutralizingGas := &dex.Ability{
		Base:   dex.Base{Name: "Neutralizing Gas", Num: 256, ShortDesc: "While this Pokemon is active, Abilities have no effect."},
		Rating: 3.5,
		Flags:  dex.Flags{"failroleplay": true, "noreceiver": true, "noentrain": true, "notrace": true},
	}
	neutralizingGas.Events.On(rules.EventSwitchIn, effects.Call(announceAbility("Neutralizing Gas")).WithPriority(2))

	multiscale := &dex.Ability{
		Base:   dex.Base{Name: "Multiscale", Num: 136, ShortDesc: "If this Pokemon is at full HP, damage taken from attacks is halved."},
		Rating: 3.5,
		Flags:  dex.Flags{"breakable": true},
	}
	multiscale.Events.On(rules.EventSourceModifyDamage, effects.Call(func(_ *effects.Context, a effects.Args) (any, error) {
		if !isFull(a.Target) {
			return nil, nil
		}
		return scale(a.Relay, 1, 2), nil
	}))

	sturdy := &dex.Ability{
		Base:   dex.Base{Name: "Sturdy", Num: 5, ShortDesc: "If this Pokemon is at full HP, it survives one hit with at least 1 HP. OHKO moves fail on it."},
		Rating: 3,
		Flags:  dex.Flags{"breakable": true},
	}
	sturdy.Events.On(rules.EventDamage, effects.Call(func(c *effects.Context, a effects.Args) (any, error) {
		hp, ok := a.Target.(HP)
		damage, isInt := a.Relay.(int)
		if !ok || !isInt || hp.HP() != hp.MaxHP() || damage < hp.HP() {
			return nil, nil
		}
		c.Add("-activate", ident(a.Target), "ability: Sturdy")
		return hp.HP() - 1, nil
	}).WithPriority(-30))

	speedBoost := &dex.Ability{
		Base:   dex.Base{Name: "Speed Boost", Num: 3, ShortDesc: "This Pokemon's Speed is raised by 1 stage at the end of each full turn on the field."},
		Rating: 4.5,
	}
	speedBoost.Events.On(rules.EventResidual, effects.Call(func(_ *effects.Context, a effects.Args) (any, error) {
		if b, ok := a.Target.(Booster); ok {
			b.Boost(dex.StatSpe, 1)
		}
		return nil, nil
	}).WithOrder(28).WithSubOrder(2))

	intimidate := &dex.Ability{
		Base:   dex.Base{Name: "Intimidate", Num: 22, ShortDesc: "On switch-in, this Pokemon lowers the Attack of opponents by 1 stage."},
		Rating: 3.5,
	}
	intimidate.Events.On(rules.EventSwitchIn, effects.Call(func(c *effects.Context, a effects.Args) (any, error) {
		foes, ok := a.Target.(FoeLister)
		if !ok {
			return nil, nil
		}
		c.Add("-ability", ident(a.Target), "Intimidate", "boost")
		for _, foe := range foes.AdjacentFoes() {
			if b, ok := foe.(Booster); ok {
				b.Boost(dex.StatAtk, -1)
			}
		}
		return nil, nil
	}))

	return map[id.ID]dex.Entry{
		"static":          dex.Replace(static),
		"levitate":        dex.Replace(levitate),
		"moldbreaker":     dex.Replace(moldBreaker),
		"airlock":         dex.Replace(airLock),
		"cloudnine":       dex.Replace(cloudNine),
		"klutz":           dex.Replace(klutz),
		"neutralizinggas": dex.Replace(neutralizingGas),
		"multiscale":      dex.Replace(multiscale),
		"sturdy":          dex.Replace(sturdy),
		"speedboost":      dex.Replace(speedBoost),
		"intimidate":      dex.Replace(intimidate),
	}
}
