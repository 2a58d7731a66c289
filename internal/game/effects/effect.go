package effects

import (
	"github.com/vgcsim/battle-engine-go/internal/id"
)

// Kind is the closed set of rule-bearing content variants.
type Kind uint8

const (
	KindAbility Kind = iota + 1
	KindItem
	KindMove
	KindCondition
	KindSpecies
	KindFormat
)

func (k Kind) String() string {
	switch k {
	case KindAbility:
		return "Ability"
	case KindItem:
		return "Item"
	case KindMove:
		return "Move"
	case KindCondition:
		return "Condition"
	case KindSpecies:
		return "Species"
	case KindFormat:
		return "Format"
	default:
		return "Unknown"
	}
}

// Category refines a Condition into the way it is held.
type Category uint8

const (
	CategoryNone Category = iota
	CategoryStatus
	CategoryVolatile
	CategoryWeather
	CategoryTerrain
	CategoryPseudoWeather
	CategorySideCondition
	CategorySlotCondition
)

var categoryNames = map[Category]string{
	CategoryNone:          "",
	CategoryStatus:        "Status",
	CategoryVolatile:      "Volatile",
	CategoryWeather:       "Weather",
	CategoryTerrain:       "Terrain",
	CategoryPseudoWeather: "PseudoWeather",
	CategorySideCondition: "SideCondition",
	CategorySlotCondition: "SlotCondition",
}

func (c Category) String() string {
	return categoryNames[c]
}

// ParseCategory maps a content-file name back to a Category.
func ParseCategory(name string) (Category, bool) {
	for c, n := range categoryNames {
		if n == name {
			return c, true
		}
	}
	return CategoryNone, false
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(b []byte) error {
	parsed, ok := ParseCategory(string(b))
	if !ok {
		return &UnknownCategoryError{Name: string(b)}
	}
	*c = parsed
	return nil
}

// UnknownCategoryError is returned when content names an undeclared category.
type UnknownCategoryError struct {
	Name string
}

func (e *UnknownCategoryError) Error() string {
	return "unknown condition category " + e.Name
}

// Effect is anything that can host event handlers and be the source of an event.
type Effect interface {
	EffectID() id.ID
	EffectName() string
	EffectKind() Kind
	EffectCategory() Category
	EffectHandlers() *Handlers
}

// Breakable is implemented by abilities that ability-suppressing moves bypass.
type Breakable interface {
	Breakable() bool
}

// Durable is implemented by effects that start with a fixed duration.
type Durable interface {
	DefaultDuration() int
}

// SameEffect reports whether a and b denote the same content entity.
func SameEffect(a, b Effect) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.EffectKind() == b.EffectKind() && a.EffectID() == b.EffectID()
}

func effectKey(e Effect) string {
	return e.EffectKind().String() + ":" + string(e.EffectID())
}

func isBreakable(e Effect) bool {
	b, ok := e.(Breakable)
	return ok && b.Breakable()
}
