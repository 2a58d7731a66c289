package content

import (
	"github.com/vgcsim/battle-engine-go/internal/dex"
	"github.com/vgcsim/battle-engine-go/internal/id"
)

// Battle-state capabilities the bundled handlers use. A combatant type
// implements the ones it supports; a handler whose target lacks one leaves
// the relay untouched.

type Named interface {
	Name() string
}

type HP interface {
	HP() int
	MaxHP() int
}

type Healer interface {
	HP
	Heal(amount int) int
}

type Damager interface {
	HP
	Damage(amount int) int
}

type Booster interface {
	Boost(stat dex.StatID, stages int) bool
}

type Typed interface {
	Types() []string
}

// Chancer is the battle PRNG as seen from a combatant.
type Chancer interface {
	RandomChance(num, den int) bool
}

// Rand draws an integer in [min, max).
type Rand interface {
	Random(min, max int) int
}

type StatusSetter interface {
	TrySetStatus(status id.ID, source any) bool
}

type StatusCurer interface {
	CureStatus()
}

type ItemEater interface {
	EatItem() bool
}

type ItemRemover interface {
	ClearItem()
}

type FoeLister interface {
	AdjacentFoes() []any
}

func ident(x any) string {
	if n, ok := x.(Named); ok {
		return n.Name()
	}
	return ""
}

// fraction returns num/den of max, at least 1.
func fraction(max, num, den int) int {
	n := max * num / den
	if n < 1 {
		return 1
	}
	return n
}

// scale multiplies an int relay by num/den; other relays pass through.
func scale(relay any, num, den int) any {
	n, ok := relay.(int)
	if !ok {
		return relay
	}
	return n * num / den
}

func isFull(x any) bool {
	hp, ok := x.(HP)
	return ok && hp.HP() == hp.MaxHP()
}

func hasType(x any, types ...string) bool {
	t, ok := x.(Typed)
	if !ok {
		return false
	}
	for _, have := range t.Types() {
		for _, want := range types {
			if have == want {
				return true
			}
		}
	}
	return false
}

func moveOf(x any) (*dex.Move, bool) {
	m, ok := x.(*dex.Move)
	return m, ok && m.Exists()
}
