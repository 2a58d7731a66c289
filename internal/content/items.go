package content

import (
	"github.com/vgcsim/battle-engine-go/internal/dex"
	"github.com/vgcsim/battle-engine-go/internal/game/effects"
	"github.com/vgcsim/battle-engine-go/internal/game/rules"
	"github.com/vgcsim/battle-engine-go/internal/id"
)

func itemEntries() map[id.ID]dex.Entry {
	leftovers := &dex.Item{
		Base:           dex.Base{Name: "Leftovers", Num: 234, Gen: 2, ShortDesc: "At the end of every turn, holder restores 1/16 of its max HP."},
		FlingBasePower: 10,
	}
	leftovers.Events.On(rules.EventResidual, effects.Call(func(c *effects.Context, a effects.Args) (any, error) {
		h, ok := a.Target.(Healer)
		if !ok {
			return nil, nil
		}
		if healed := h.Heal(fraction(h.MaxHP(), 1, 16)); healed > 0 {
			c.Add("-heal", ident(a.Target), "[from] item: Leftovers")
		}
		return nil, nil
	}).WithOrder(5).WithSubOrder(4))

	choiceScarf := &dex.Item{
		Base:           dex.Base{Name: "Choice Scarf", Num: 287, Gen: 4, ShortDesc: "Holder's Speed is 1.5x, but it can only select the first move it executes."},
		FlingBasePower: 10,
		IsChoice:       true,
	}
	choiceScarf.Events.On(rules.EventModifySpe, effects.Call(func(_ *effects.Context, a effects.Args) (any, error) {
		return scale(a.Relay, 3, 2), nil
	}))

	airBalloon := &dex.Item{
		Base:           dex.Base{Name: "Air Balloon", Num: 541, Gen: 5, ShortDesc: "Holder is immune to Ground-type attacks. Pops when holder is hit."},
		FlingBasePower: 10,
	}
	airBalloon.Events.
		On(rules.EventStart, effects.Call(func(c *effects.Context, a effects.Args) (any, error) {
			c.Add("-item", ident(a.Target), "Air Balloon")
			return nil, nil
		})).
		On(rules.EventImmunity, effects.Call(groundImmunity)).
		On(rules.EventDamagingHit, effects.Call(func(c *effects.Context, a effects.Args) (any, error) {
			c.Add("-enditem", ident(a.Target), "Air Balloon")
			if r, ok := a.Target.(ItemRemover); ok {
				r.ClearItem()
			}
			return nil, nil
		}))

	sitrus := &dex.Item{
		Base:           dex.Base{Name: "Sitrus Berry", Num: 158, Gen: 3, ShortDesc: "Restores 1/4 max HP when at 1/2 max HP or less. Single use."},
		IsBerry:        true,
		FlingBasePower: 10,
		NaturalGift:    &dex.NaturalGift{BasePower: 80, Type: "Psychic"},
	}
	sitrus.Events.
		On(rules.EventUpdate, effects.Call(func(_ *effects.Context, a effects.Args) (any, error) {
			hp, ok := a.Target.(HP)
			if !ok || hp.HP() > hp.MaxHP()/2 {
				return nil, nil
			}
			if e, ok := a.Target.(ItemEater); ok {
				e.EatItem()
			}
			return nil, nil
		})).
		On(rules.EventEatItem, effects.Call(func(c *effects.Context, a effects.Args) (any, error) {
			h, ok := a.Target.(Healer)
			if !ok {
				return nil, nil
			}
			if h.Heal(fraction(h.MaxHP(), 1, 4)) > 0 {
				c.Add("-heal", ident(a.Target), "[from] item: Sitrus Berry")
			}
			return nil, nil
		}))

	lifeOrb := &dex.Item{
		Base:           dex.Base{Name: "Life Orb", Num: 270, Gen: 4, ShortDesc: "Holder's attacks do 1.3x damage, and it loses 1/10 its max HP after the attack."},
		FlingBasePower: 30,
	}
	lifeOrb.Events.
		On(rules.EventModifyDamage, effects.Call(func(_ *effects.Context, a effects.Args) (any, error) {
			return scale(a.Relay, 5324, 4096), nil
		})).
		On(rules.EventAfterMoveSecondary, effects.Call(func(c *effects.Context, a effects.Args) (any, error) {
			m, ok := moveOf(a.SourceEffect)
			if !ok || m.Category == "Status" {
				return nil, nil
			}
			if d, ok := a.Target.(Damager); ok {
				d.Damage(fraction(d.MaxHP(), 1, 10))
				c.Add("-damage", ident(a.Target), "[from] item: Life Orb")
			}
			return nil, nil
		}))

	charizarditeX := &dex.Item{
		Base:        dex.Base{Name: "Charizardite X", Num: 660, Gen: 6, IsNonstandard: "Past", ShortDesc: "If held by a Charizard, this item allows it to Mega Evolve in battle."},
		MegaStone:   "Charizard-Mega-X",
		MegaEvolves: "Charizard",
		ItemUser:    []string{"Charizard"},
	}
	charizarditeY := &dex.Item{
		Base:        dex.Base{Name: "Charizardite Y", Num: 678, Gen: 6, IsNonstandard: "Past", ShortDesc: "If held by a Charizard, this item allows it to Mega Evolve in battle."},
		MegaStone:   "Charizard-Mega-Y",
		MegaEvolves: "Charizard",
		ItemUser:    []string{"Charizard"},
	}

	return map[id.ID]dex.Entry{
		"leftovers":     dex.Replace(leftovers),
		"choicescarf":   dex.Replace(choiceScarf),
		"airballoon":    dex.Replace(airBalloon),
		"sitrusberry":   dex.Replace(sitrus),
		"lifeorb":       dex.Replace(lifeOrb),
		"charizarditex": dex.Replace(charizarditeX),
		"charizarditey": dex.Replace(charizarditeY),
	}
}
