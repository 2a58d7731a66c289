package effects

import "github.com/vgcsim/battle-engine-go/internal/id"

// HolderKind distinguishes the battle-state objects that host effects.
type HolderKind uint8

const (
	HolderCombatant HolderKind = iota
	HolderSide
	HolderField
	HolderBattle
)

func (k HolderKind) String() string {
	switch k {
	case HolderCombatant:
		return "combatant"
	case HolderSide:
		return "side"
	case HolderField:
		return "field"
	case HolderBattle:
		return "battle"
	default:
		return "unknown"
	}
}

// Holder is a battle-state object owning attached effects. Holders are
// compared by identity, so implementations should be pointers.
type Holder interface {
	HolderKind() HolderKind
	// Team is the side index; field and battle holders return -1.
	Team() int
	// Speed is the effective speed used as a sorting tie-break.
	Speed() int
	// Attachments lists hosted effects. Combatants list status, volatiles,
	// ability, item, species, then slot conditions.
	Attachments() []Attachment
}

// Attachment is one effect hosted by a holder.
type Attachment struct {
	Effect Effect
	State  *State
	// End removes the effect from its holder when its duration runs out.
	End func() error
}

// Scene is the set of holders active in a battle.
type Scene interface {
	Holders() []Holder
}

// StatusBearer exposes a combatant's major status.
type StatusBearer interface {
	StatusID() id.ID
}

// AbilityBearer exposes whether a combatant's ability is currently ignored.
type AbilityBearer interface {
	IgnoringAbility() bool
}

// ItemBearer exposes whether a combatant's held item is currently ignored.
type ItemBearer interface {
	IgnoringItem() bool
}

// Environment answers battle-wide suppression queries.
type Environment interface {
	// SuppressingAbility reports whether an ability-bypassing action is
	// currently affecting target.
	SuppressingAbility(target any) bool
	// SuppressingWeather reports whether weather effects are negated.
	SuppressingWeather() bool
}

type noEnvironment struct{}

func (noEnvironment) SuppressingAbility(any) bool { return false }
func (noEnvironment) SuppressingWeather() bool    { return false }

// Shuffler randomizes runs of handlers that tie on every sort key.
// *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}
