package content

import (
	"github.com/vgcsim/battle-engine-go/internal/dex"
	"github.com/vgcsim/battle-engine-go/internal/game/effects"
	"github.com/vgcsim/battle-engine-go/internal/game/rules"
	"github.com/vgcsim/battle-engine-go/internal/id"
)

func flags(names ...string) dex.Flags {
	out := make(dex.Flags, len(names))
	for _, n := range names {
		out[n] = true
	}
	return out
}

func moveEntries() map[id.ID]dex.Entry {
	protectCond := &dex.Condition{Category: effects.CategoryVolatile, Duration: 1}
	protectCond.Events.
		On(rules.EventStart, effects.Call(announce("-singleturn", "Protect"))).
		On(rules.EventTryHit, effects.Call(func(c *effects.Context, a effects.Args) (any, error) {
			m, ok := moveOf(a.SourceEffect)
			if !ok || !m.Flags["protect"] {
				return nil, nil
			}
			c.Add("-activate", ident(a.Target), "move: Protect")
			return effects.Null, nil
		}).WithPriority(3))

	moves := []*dex.Move{
		{
			Base:     dex.Base{Name: "Tackle", Num: 33, ShortDesc: "No additional effect."},
			Accuracy: 100, BasePower: 40, Category: "Physical", Type: "Normal", PP: 35, Target: "normal",
			Flags: flags("contact", "protect", "mirror"),
		},
		{
			Base:     dex.Base{Name: "Thunderbolt", Num: 85, ShortDesc: "10% chance to paralyze the target."},
			Accuracy: 100, BasePower: 90, Category: "Special", Type: "Electric", PP: 15, Target: "normal",
			Flags:     flags("protect", "mirror"),
			Secondary: &dex.Secondary{Chance: 10, Status: "par"},
		},
		{
			Base:     dex.Base{Name: "Thunder Wave", Num: 86, ShortDesc: "Paralyzes the target."},
			Accuracy: 90, Category: "Status", Type: "Electric", PP: 20, Target: "normal",
			Flags:  flags("protect", "reflectable", "mirror"),
			Status: "par",
		},
		{
			Base:     dex.Base{Name: "Flamethrower", Num: 53, ShortDesc: "10% chance to burn the target."},
			Accuracy: 100, BasePower: 90, Category: "Special", Type: "Fire", PP: 15, Target: "normal",
			Flags:     flags("protect", "mirror"),
			Secondary: &dex.Secondary{Chance: 10, Status: "brn"},
		},
		{
			Base:     dex.Base{Name: "Surf", Num: 57, ShortDesc: "Hits adjacent Pokemon. Power doubles on Dive."},
			Accuracy: 100, BasePower: 90, Category: "Special", Type: "Water", PP: 15, Target: "allAdjacent",
			Flags: flags("protect", "mirror", "nonsky"),
		},
		{
			Base:     dex.Base{Name: "Earthquake", Num: 89, ShortDesc: "Hits adjacent Pokemon. Double damage on Dig."},
			Accuracy: 100, BasePower: 100, Category: "Physical", Type: "Ground", PP: 10, Target: "allAdjacent",
			Flags: flags("protect", "mirror", "nonsky"),
		},
		{
			Base:     dex.Base{Name: "Toxic", Num: 92, ShortDesc: "Badly poisons the target. Poison types can't miss."},
			Accuracy: 90, Category: "Status", Type: "Poison", PP: 10, Target: "normal",
			Flags:  flags("protect", "reflectable", "mirror"),
			Status: "tox",
		},
		{
			Base:     dex.Base{Name: "Will-O-Wisp", Num: 261, ShortDesc: "Burns the target."},
			Accuracy: 85, Category: "Status", Type: "Fire", PP: 15, Target: "normal",
			Flags:  flags("protect", "reflectable", "mirror"),
			Status: "brn",
		},
		{
			Base:     dex.Base{Name: "Protect", Num: 182, ShortDesc: "Prevents moves from affecting the user this turn."},
			Category: "Status", Type: "Normal", PP: 10, Priority: 4, Target: "self",
			VolatileStatus: "protect",
			Condition:      protectCond,
		},
		{
			Base:     dex.Base{Name: "Rain Dance", Num: 240, ShortDesc: "For 5 turns, heavy rain powers Water moves."},
			Category: "Status", Type: "Water", PP: 5, Target: "all",
			Weather: "RainDance",
		},
		{
			Base:     dex.Base{Name: "Sunny Day", Num: 241, ShortDesc: "For 5 turns, intense sunlight powers Fire moves."},
			Category: "Status", Type: "Fire", PP: 5, Target: "all",
			Weather: "SunnyDay",
		},
		{
			Base:     dex.Base{Name: "Sandstorm", Num: 201, ShortDesc: "For 5 turns, a sandstorm rages. Rock: 1.5x SpD."},
			Category: "Status", Type: "Rock", PP: 10, Target: "all",
			Weather: "Sandstorm",
		},
		{
			Base:     dex.Base{Name: "Trick Room", Num: 433, ShortDesc: "Goes last. For 5 turns, turn order is reversed."},
			Category: "Status", Type: "Psychic", PP: 5, Priority: -7, Target: "all",
			Flags:         flags("mirror"),
			PseudoWeather: "trickroom",
		},
		{
			Base:     dex.Base{Name: "Tailwind", Num: 366, ShortDesc: "For 4 turns, allies' Speed is doubled."},
			Category: "Status", Type: "Flying", PP: 15, Target: "allySide",
			SideCondition: "tailwind",
		},
		{
			Base:     dex.Base{Name: "Draco Meteor", Num: 434, ShortDesc: "Lowers the user's Sp. Atk by 2."},
			Accuracy: 90, BasePower: 130, Category: "Special", Type: "Dragon", PP: 5, Target: "normal",
			Flags: flags("protect", "mirror"),
		},
	}

	out := make(map[id.ID]dex.Entry, len(moves))
	for _, m := range moves {
		out[id.ToID(m.Name)] = dex.Replace(m)
	}
	return out
}
