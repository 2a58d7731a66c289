package dex

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/vgcsim/battle-engine-go/internal/id"
)

// maxAliasHops bounds alias-to-alias chains at lookup time.
const maxAliasHops = 8

// Table is one mod's records of one kind keyed by id.
type Table map[id.ID]Record

type futureClone struct {
	source Record
	clone  Record
}

// Dex is one mod's view of the content. All lookups are safe for
// concurrent use.
type Dex struct {
	registry *Registry
	name     string
	gen      int
	parent   *Dex

	mu     sync.Mutex
	tables map[Kind]Table
	cache  map[Kind]map[id.ID]Record
	all    map[Kind][]Record
	// future survives cache invalidation so a future-marked record keeps
	// its identity until its source record changes.
	future map[Kind]map[id.ID]futureClone

	// Alias data is only populated on the base mod.
	rawAliases    map[string]string
	compoundNames []string
	aliasOnce     sync.Once
	aliases       map[id.ID]id.ID
	fuzzy         map[id.ID][]id.ID
}

func newDex(r *Registry, name string, gen int, parent *Dex) *Dex {
	return &Dex{
		registry: r,
		name:     name,
		gen:      gen,
		parent:   parent,
		tables:   make(map[Kind]Table, len(AllKinds)),
		cache:    make(map[Kind]map[id.ID]Record, len(AllKinds)),
		all:      make(map[Kind][]Record, len(AllKinds)),
		future:   make(map[Kind]map[id.ID]futureClone, len(AllKinds)),
	}
}

func (d *Dex) Name() string { return d.name }
func (d *Dex) Gen() int     { return d.gen }
func (d *Dex) Parent() *Dex { return d.parent }
func (d *Dex) IsBase() bool { return d.parent == nil }

// Logger returns the registry logger tagged with this mod's name.
func (d *Dex) Logger() *zap.Logger {
	return d.registry.logger.With(zap.String("mod", d.name))
}

// Missing returns the shared does-not-exist record for kind.
func (d *Dex) Missing(kind Kind) Record {
	return d.registry.missing[kind]
}

func (d *Dex) own(kind Kind, key id.ID) (Record, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	rec, ok := d.tables[kind][key]
	return rec, ok
}

// lookup reads the raw record visible to this mod: its own entry or the
// nearest ancestor's.
func (d *Dex) lookup(kind Kind, key id.ID) (Record, bool) {
	for cur := d; cur != nil; cur = cur.parent {
		if rec, ok := cur.own(kind, key); ok {
			return rec, true
		}
	}
	return nil, false
}

// GetByID resolves name to a record of kind. Unknown names return the
// shared record whose Exists reports false; both outcomes are cached.
func (d *Dex) GetByID(kind Kind, name string) Record {
	key := id.ToID(name)
	if key == id.Empty {
		return d.Missing(kind)
	}
	return d.getByID(kind, key, 0)
}

func (d *Dex) getByID(kind Kind, key id.ID, hops int) Record {
	d.mu.Lock()
	if rec, ok := d.cache[kind][key]; ok {
		d.mu.Unlock()
		return rec
	}
	d.mu.Unlock()

	rec := d.resolve(kind, key, hops)

	d.mu.Lock()
	defer d.mu.Unlock()
	// A concurrent resolve may have won; keep its instance.
	if prev, ok := d.cache[kind][key]; ok {
		return prev
	}
	if d.cache[kind] == nil {
		d.cache[kind] = make(map[id.ID]Record)
	}
	d.cache[kind][key] = rec
	return rec
}

func (d *Dex) resolve(kind Kind, key id.ID, hops int) Record {
	if hops < maxAliasHops {
		if target, ok := d.Alias(string(key)); ok && target != key {
			if rec := d.getByID(kind, target, hops+1); rec.Exists() {
				return rec
			}
		}
	}

	rec, ok := d.lookup(kind, key)
	if !ok && kind == Conditions {
		if m, found := d.lookup(Moves, key); found {
			if cond := m.(*Move).Condition; cond != nil {
				rec, ok = cond, true
			}
		}
	}
	if !ok {
		return d.Missing(kind)
	}

	if gen := rec.Generation(); gen > d.gen && rec.Nonstandard() == "" {
		return d.markFuture(kind, key, rec)
	}
	return rec
}

// markFuture returns this mod's Future-tagged copy of src, reusing the
// previous copy while src is unchanged.
func (d *Dex) markFuture(kind Kind, key id.ID, src Record) Record {
	d.mu.Lock()
	defer d.mu.Unlock()
	if fc, ok := d.future[kind][key]; ok && fc.source == src {
		return fc.clone
	}
	clone := src.Clone()
	clone.base().IsNonstandard = "Future"
	if d.future[kind] == nil {
		d.future[kind] = make(map[id.ID]futureClone)
	}
	d.future[kind][key] = futureClone{source: src, clone: clone}
	return clone
}

// ModData returns the record this mod owns for name. On a derived mod it
// shares the parent's instance until the mod diverges from it; an entry
// that is still the parent's instance is cloned into this mod first.
func (d *Dex) ModData(kind Kind, name string) Record {
	key := id.ToID(name)
	if d.parent == nil {
		if rec, ok := d.own(kind, key); ok {
			return rec
		}
		return d.Missing(kind)
	}

	inherited, hasParent := d.parent.lookup(kind, key)
	mine, hasOwn := d.own(kind, key)
	switch {
	case !hasOwn && !hasParent:
		return d.Missing(kind)
	case !hasOwn:
		return inherited
	case !hasParent || mine != inherited:
		return mine
	}
	return d.detach(kind, key, inherited)
}

// Override returns a record for name that belongs to this mod and can be
// mutated without affecting any other mod.
func (d *Dex) Override(kind Kind, name string) (Record, error) {
	key := id.ToID(name)
	mine, hasOwn := d.own(kind, key)
	if d.parent == nil {
		if !hasOwn {
			return nil, fmt.Errorf("%s %q: %w", kind, key, ErrNotFound)
		}
		return mine, nil
	}
	inherited, hasParent := d.parent.lookup(kind, key)
	if hasOwn && (!hasParent || mine != inherited) {
		return mine, nil
	}
	if !hasParent {
		return nil, fmt.Errorf("%s %q: %w", kind, key, ErrNotFound)
	}
	return d.detach(kind, key, inherited), nil
}

// detach stores a deep copy of inherited as this mod's own entry.
func (d *Dex) detach(kind Kind, key id.ID, inherited Record) Record {
	clone := inherited.Clone()
	d.mu.Lock()
	d.tables[kind][key] = clone
	d.mu.Unlock()
	d.registry.invalidate(kind)
	d.Logger().Debug("record detached from parent",
		zap.String("kind", kind.String()),
		zap.String("id", key.String()),
	)
	return clone
}

func (d *Dex) resetCache(kind Kind) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.cache, kind)
	delete(d.all, kind)
}

// IDs returns every id visible to this mod for kind, sorted.
func (d *Dex) IDs(kind Kind) []id.ID {
	seen := make(map[id.ID]struct{})
	for cur := d; cur != nil; cur = cur.parent {
		cur.mu.Lock()
		for key := range cur.tables[kind] {
			seen[key] = struct{}{}
		}
		cur.mu.Unlock()
	}
	return sortedIDs(seen)
}

// All returns every existing record of kind as resolved by GetByID. The
// list is built once and shared; callers must not modify it.
func (d *Dex) All(kind Kind) []Record {
	d.mu.Lock()
	if list, ok := d.all[kind]; ok {
		d.mu.Unlock()
		return list
	}
	d.mu.Unlock()

	ids := d.IDs(kind)
	list := make([]Record, 0, len(ids))
	for _, key := range ids {
		if rec := d.getByID(kind, key, 0); rec.Exists() {
			list = append(list, rec)
		}
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if prev, ok := d.all[kind]; ok {
		return prev
	}
	d.all[kind] = list
	return list
}

// Ability returns the ability named name, or the missing ability.
func (d *Dex) Ability(name string) *Ability {
	return d.GetByID(Abilities, name).(*Ability)
}

func (d *Dex) Item(name string) *Item {
	return d.GetByID(Items, name).(*Item)
}

func (d *Dex) Move(name string) *Move {
	return d.GetByID(Moves, name).(*Move)
}

// Condition also finds the condition a move leaves behind, e.g. "protect".
func (d *Dex) Condition(name string) *Condition {
	return d.GetByID(Conditions, name).(*Condition)
}

func (d *Dex) Nature(name string) *Nature {
	return d.GetByID(Natures, name).(*Nature)
}

func (d *Dex) Species(name string) *SpeciesData {
	return d.GetByID(Species, name).(*SpeciesData)
}

func (d *Dex) Type(name string) *TypeInfo {
	return d.GetByID(Types, name).(*TypeInfo)
}

func (d *Dex) Format(name string) *Format {
	return d.GetByID(Formats, name).(*Format)
}

// Natures returns every nature sorted by name.
func (d *Dex) Natures() []*Nature {
	all := d.All(Natures)
	out := make([]*Nature, 0, len(all))
	for _, rec := range all {
		out = append(out, rec.(*Nature))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
