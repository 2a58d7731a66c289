package dex

import (
	"fmt"

	"github.com/vgcsim/battle-engine-go/internal/id"
)

// Record is one content entry. Records returned by a Dex are shared between
// callers and mods and must be treated as read-only; use Dex.Override to get
// a mod-owned copy.
type Record interface {
	RecordID() id.ID
	RecordKind() Kind
	Exists() bool
	Generation() int
	Nonstandard() string
	// Clone returns a deep copy; handler slots are copied, handler funcs are shared.
	Clone() Record

	base() *Base
}

// Base holds the fields every record carries.
type Base struct {
	ID            id.ID  `yaml:"id,omitempty" json:"id,omitempty"`
	Name          string `yaml:"name" json:"name"`
	Num           int    `yaml:"num,omitempty" json:"num,omitempty"`
	Gen           int    `yaml:"gen,omitempty" json:"gen,omitempty"`
	IsNonstandard string `yaml:"isNonstandard,omitempty" json:"isNonstandard,omitempty"`
	Desc          string `yaml:"desc,omitempty" json:"desc,omitempty"`
	ShortDesc     string `yaml:"shortDesc,omitempty" json:"shortDesc,omitempty"`

	missing bool
}

func (b *Base) RecordID() id.ID     { return b.ID }
func (b *Base) Exists() bool        { return !b.missing }
func (b *Base) Generation() int     { return b.Gen }
func (b *Base) Nonstandard() string { return b.IsNonstandard }
func (b *Base) EffectID() id.ID     { return b.ID }
func (b *Base) EffectName() string  { return b.Name }

func (b *Base) base() *Base { return b }

// NewRecord returns an empty record of kind, ready to be decoded into.
func NewRecord(kind Kind) (Record, error) {
	switch kind {
	case Abilities:
		return &Ability{}, nil
	case Items:
		return &Item{}, nil
	case Moves:
		return &Move{}, nil
	case Conditions:
		return &Condition{}, nil
	case Natures:
		return &Nature{}, nil
	case Species:
		return &SpeciesData{}, nil
	case Types:
		return &TypeInfo{}, nil
	case Formats:
		return &Format{}, nil
	default:
		return nil, fmt.Errorf("no record type for kind %d", kind)
	}
}

// missingRecord builds the shared does-not-exist sentinel for kind.
func missingRecord(kind Kind) Record {
	rec, err := NewRecord(kind)
	if err != nil {
		panic(err)
	}
	rec.base().missing = true
	return rec
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func cloneMap[K comparable, V any](in map[K]V) map[K]V {
	if in == nil {
		return nil
	}
	out := make(map[K]V, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
