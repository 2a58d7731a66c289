package dex

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/vgcsim/battle-engine-go/internal/id"
)

// DefaultGen is the generation of the base mod when its spec leaves it unset.
const DefaultGen = 9

// Entry is one record a mod declares.
type Entry struct {
	// Record replaces the parent's record wholesale.
	Record Record
	// Inherit applies Patch to a deep copy of the parent's record instead.
	Inherit bool
	Patch   func(Record) error
}

// Replace declares a full record.
func Replace(rec Record) Entry {
	return Entry{Record: rec}
}

// Patch declares a field-level override of the parent's record of type T.
func Patch[T Record](fn func(T)) Entry {
	return Entry{Inherit: true, Patch: func(r Record) error {
		t, ok := r.(T)
		if !ok {
			return fmt.Errorf("patch for %T applied to %T", t, r)
		}
		fn(t)
		return nil
	}}
}

// ModSpec is everything a content source supplies for one mod.
type ModSpec struct {
	Name string
	// Parent is empty for the base mod.
	Parent  string
	Gen     int
	Entries map[Kind]map[id.ID]Entry
	// Aliases and CompoundNames are only read from the base mod.
	Aliases       map[string]string
	CompoundNames []string
	// Init runs once the mod's tables are built, before any lookup; it
	// customizes records through Dex.Override.
	Init func(*Dex) error
}

// Registry owns every mod built from one content bundle.
type Registry struct {
	logger  *zap.Logger
	eager   bool
	base    *Dex
	mods    map[string]*Dex
	order   []string
	missing map[Kind]Record
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithEagerInheritance fills each child table with its parent's instances
// at build time instead of reading through to the parent on lookup.
func WithEagerInheritance() RegistryOption {
	return func(r *Registry) {
		r.eager = true
	}
}

// NewRegistry builds every mod in specs. Exactly one spec must have no parent.
func NewRegistry(logger *zap.Logger, specs []ModSpec, opts ...RegistryOption) (*Registry, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Registry{
		logger:  logger,
		mods:    make(map[string]*Dex, len(specs)),
		missing: make(map[Kind]Record, len(AllKinds)),
	}
	for _, opt := range opts {
		opt(r)
	}
	for _, k := range AllKinds {
		r.missing[k] = missingRecord(k)
	}

	pending := make(map[string]ModSpec, len(specs))
	var baseSpec *ModSpec
	for i := range specs {
		spec := specs[i]
		if spec.Name == "" {
			return nil, fmt.Errorf("mod %d has no name", i)
		}
		if _, dup := pending[spec.Name]; dup {
			return nil, fmt.Errorf("mod %q declared twice", spec.Name)
		}
		if spec.Parent == "" {
			if baseSpec != nil {
				return nil, fmt.Errorf("mods %q and %q both lack a parent", baseSpec.Name, spec.Name)
			}
			baseSpec = &specs[i]
			continue
		}
		pending[spec.Name] = spec
	}
	if baseSpec == nil {
		return nil, fmt.Errorf("no base mod")
	}
	if err := validateAliases(baseSpec.Aliases); err != nil {
		return nil, err
	}

	base, err := r.build(*baseSpec, nil)
	if err != nil {
		return nil, err
	}

	// Build children once their parent exists.
	for len(pending) > 0 {
		progressed := false
		for _, name := range sortedNames(pending) {
			spec := pending[name]
			parent, ok := r.mods[spec.Parent]
			if !ok {
				continue
			}
			if _, err := r.build(spec, parent); err != nil {
				return nil, err
			}
			delete(pending, name)
			progressed = true
		}
		if !progressed {
			name := sortedNames(pending)[0]
			return nil, fmt.Errorf("mod %q: parent %q: %w", name, pending[name].Parent, ErrUnknownMod)
		}
	}

	r.logger.Debug("content registry built",
		zap.Int("mods", len(r.mods)),
		zap.String("base", base.name),
		zap.Int("base_gen", base.gen),
		zap.Bool("eager_inheritance", r.eager),
	)
	return r, nil
}

func (r *Registry) build(spec ModSpec, parent *Dex) (*Dex, error) {
	gen := spec.Gen
	if gen == 0 {
		if parent != nil {
			gen = parent.gen
		} else {
			gen = DefaultGen
		}
	}
	d := newDex(r, spec.Name, gen, parent)
	if parent == nil {
		d.rawAliases = spec.Aliases
		d.compoundNames = spec.CompoundNames
		r.base = d
	}

	for _, kind := range AllKinds {
		table := make(Table)
		if parent != nil && r.eager {
			for key, rec := range parent.tables[kind] {
				table[key] = rec
			}
		}
		entries := spec.Entries[kind]
		for _, key := range sortedIDs(entries) {
			rec, err := materialize(kind, key, entries[key], parent)
			if err != nil {
				return nil, fmt.Errorf("mod %q: %s %q: %w", spec.Name, kind, key, err)
			}
			table[key] = rec
		}
		d.tables[kind] = table
	}

	r.mods[spec.Name] = d
	r.order = append(r.order, spec.Name)

	if spec.Init != nil {
		if err := spec.Init(d); err != nil {
			return nil, fmt.Errorf("mod %q: init: %w", spec.Name, err)
		}
	}
	r.logger.Debug("mod built", zap.String("mod", spec.Name), zap.Int("gen", gen))
	return d, nil
}

func materialize(kind Kind, key id.ID, entry Entry, parent *Dex) (Record, error) {
	var rec Record
	if entry.Inherit {
		if parent == nil {
			return nil, ErrInheritWithoutParent
		}
		parentRec, ok := parent.lookup(kind, key)
		if !ok {
			return nil, ErrInheritWithoutParent
		}
		rec = parentRec.Clone()
		if entry.Patch != nil {
			if err := entry.Patch(rec); err != nil {
				return nil, err
			}
		}
	} else {
		if entry.Record == nil {
			return nil, fmt.Errorf("entry has no record")
		}
		rec = entry.Record
	}
	if rec.RecordKind() != kind {
		return nil, fmt.Errorf("record is %s, not %s", rec.RecordKind(), kind)
	}
	prepare(kind, key, rec)
	return rec, nil
}

// prepare fills derived fields on a freshly declared record.
func prepare(kind Kind, key id.ID, rec Record) {
	b := rec.base()
	b.ID = key
	if b.Name == "" {
		b.Name = string(key)
	}
	if b.Gen == 0 {
		b.Gen = inferGen(kind, b.Num)
	}
	if m, ok := rec.(*Move); ok && m.Condition != nil {
		cb := m.Condition.base()
		cb.ID = key
		if cb.Name == "" {
			cb.Name = b.Name
		}
		if cb.Gen == 0 {
			cb.Gen = b.Gen
		}
	}
}

func validateAliases(raw map[string]string) error {
	aliases := make(map[id.ID]id.ID, len(raw))
	for alias, target := range raw {
		aliases[id.ToID(alias)] = id.ToID(target)
	}
	for start := range aliases {
		seen := map[id.ID]bool{start: true}
		cur := start
		for {
			next, ok := aliases[cur]
			if !ok {
				break
			}
			if seen[next] {
				return fmt.Errorf("alias %q: %w", start, ErrAliasCycle)
			}
			seen[next] = true
			cur = next
		}
	}
	return nil
}

// Base returns the root mod.
func (r *Registry) Base() *Dex {
	return r.base
}

// Mod returns the named mod.
func (r *Registry) Mod(name string) (*Dex, error) {
	if name == "" {
		return r.base, nil
	}
	d, ok := r.mods[name]
	if !ok {
		return nil, fmt.Errorf("mod %q: %w", name, ErrUnknownMod)
	}
	return d, nil
}

// ForGen returns the mod for a generation: "gen<N>" if present, else the
// first mod declared with that generation.
func (r *Registry) ForGen(gen int) (*Dex, error) {
	if d, ok := r.mods[fmt.Sprintf("gen%d", gen)]; ok {
		return d, nil
	}
	if r.base.gen == gen {
		return r.base, nil
	}
	for _, name := range r.order {
		if r.mods[name].gen == gen {
			return r.mods[name], nil
		}
	}
	return nil, fmt.Errorf("gen %d: %w", gen, ErrUnknownMod)
}

// ForFormat returns the mod a format is played under.
func (r *Registry) ForFormat(name string) (*Dex, *Format, error) {
	f := r.base.Format(name)
	if !f.Exists() {
		return nil, nil, fmt.Errorf("format %q: %w", name, ErrNotFound)
	}
	d, err := r.Mod(f.Mod)
	if err != nil {
		return nil, nil, fmt.Errorf("format %q: %w", name, err)
	}
	return d, f, nil
}

// Mods returns mod names in build order.
func (r *Registry) Mods() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// invalidate drops every mod's caches for kind after a record was replaced.
func (r *Registry) invalidate(kind Kind) {
	for _, d := range r.mods {
		d.resetCache(kind)
	}
}

func sortedNames(m map[string]ModSpec) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func sortedIDs[V any](m map[id.ID]V) []id.ID {
	out := make([]id.ID, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
