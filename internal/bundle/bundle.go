// Package bundle is the serializable form of content mods shared by the YAML
// loader and the database stores. Record data is kept as JSON until a
// registry is built from it.
package bundle

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/vgcsim/battle-engine-go/internal/dex"
	"github.com/vgcsim/battle-engine-go/internal/id"
)

// Entry is one stored record. With Inherit set, Data holds only the fields
// that differ from the parent mod's record.
type Entry struct {
	Inherit bool
	Data    json.RawMessage
}

// Mod is one mod's raw content.
type Mod struct {
	Name          string
	Parent        string
	Gen           int
	Aliases       map[string]string
	CompoundNames []string
	Entries       map[dex.Kind]map[id.ID]Entry
}

// Bundle is a set of mods that build one registry.
type Bundle struct {
	Mods []Mod
}

// Put adds or replaces an entry.
func (m *Mod) Put(kind dex.Kind, key id.ID, e Entry) {
	if m.Entries == nil {
		m.Entries = make(map[dex.Kind]map[id.ID]Entry)
	}
	if m.Entries[kind] == nil {
		m.Entries[kind] = make(map[id.ID]Entry)
	}
	m.Entries[kind][key] = e
}

// Len returns the number of entries across kinds.
func (m *Mod) Len() int {
	n := 0
	for _, entries := range m.Entries {
		n += len(entries)
	}
	return n
}

// Mod returns the named mod.
func (b *Bundle) Mod(name string) (*Mod, bool) {
	for i := range b.Mods {
		if b.Mods[i].Name == name {
			return &b.Mods[i], true
		}
	}
	return nil, false
}

// Sort orders mods base first, then by name.
func (b *Bundle) Sort() {
	sort.SliceStable(b.Mods, func(i, j int) bool {
		bi, bj := b.Mods[i].Parent == "", b.Mods[j].Parent == ""
		if bi != bj {
			return bi
		}
		return b.Mods[i].Name < b.Mods[j].Name
	})
}

// Validate decodes every entry, reporting the first malformed record.
func (b *Bundle) Validate() error {
	_, err := b.Specs()
	return err
}

// Specs converts the bundle into registry input.
func (b *Bundle) Specs() ([]dex.ModSpec, error) {
	specs := make([]dex.ModSpec, 0, len(b.Mods))
	for i := range b.Mods {
		spec, err := b.Mods[i].Spec()
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// Spec converts one mod. Full entries are decoded now; inherit entries are
// decoded onto a copy of the parent's record when the registry is built.
func (m *Mod) Spec() (dex.ModSpec, error) {
	spec := dex.ModSpec{
		Name:          m.Name,
		Parent:        m.Parent,
		Gen:           m.Gen,
		Aliases:       m.Aliases,
		CompoundNames: m.CompoundNames,
		Entries:       make(map[dex.Kind]map[id.ID]dex.Entry, len(m.Entries)),
	}
	for kind, entries := range m.Entries {
		out := make(map[id.ID]dex.Entry, len(entries))
		for key, e := range entries {
			if e.Inherit {
				if m.Parent == "" {
					return dex.ModSpec{}, fmt.Errorf("mod %q: %s %q: %w", m.Name, kind, key, dex.ErrInheritWithoutParent)
				}
				if err := checkPatch(kind, e.Data); err != nil {
					return dex.ModSpec{}, fmt.Errorf("mod %q: %s %q: %w", m.Name, kind, key, err)
				}
				data := e.Data
				out[key] = dex.Entry{Inherit: true, Patch: func(r dex.Record) error {
					return Decode(data, r)
				}}
				continue
			}
			rec, err := dex.NewRecord(kind)
			if err != nil {
				return dex.ModSpec{}, err
			}
			if err := Decode(e.Data, rec); err != nil {
				return dex.ModSpec{}, fmt.Errorf("mod %q: %s %q: %w", m.Name, kind, key, err)
			}
			out[key] = dex.Replace(rec)
		}
		spec.Entries[kind] = out
	}
	return spec, nil
}

// checkPatch decodes a patch onto an empty record so malformed fields are
// reported before the registry is built.
func checkPatch(kind dex.Kind, data json.RawMessage) error {
	rec, err := dex.NewRecord(kind)
	if err != nil {
		return err
	}
	return Decode(data, rec)
}

// Decode reads JSON record data into rec, rejecting unknown fields.
func Decode(data json.RawMessage, rec dex.Record) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return errors.New("empty record")
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(rec); err != nil {
		return fmt.Errorf("decoding record: %w", err)
	}
	return nil
}

// Encode returns the JSON form of rec.
func Encode(rec dex.Record) (json.RawMessage, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encoding record: %w", err)
	}
	return data, nil
}
