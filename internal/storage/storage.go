// Package storage holds what the database-backed content stores share: the
// row form of a bundle and the Store contract.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/vgcsim/battle-engine-go/internal/bundle"
	"github.com/vgcsim/battle-engine-go/internal/dex"
	"github.com/vgcsim/battle-engine-go/internal/id"
)

// ErrEmpty is returned by Load when the store holds no mods.
var ErrEmpty = errors.New("store holds no mods")

// Store persists a content bundle.
type Store interface {
	// Save replaces the stored content with b.
	Save(ctx context.Context, b *bundle.Bundle) error
	// Load reads every stored mod back into a validated bundle.
	Load(ctx context.Context) (*bundle.Bundle, error)
	Close() error
}

// Row is one stored record.
type Row struct {
	Mod     string
	Kind    string
	ID      string
	Inherit bool
	Data    json.RawMessage
}

// Rows flattens the entries of b in mod, kind and id order.
func Rows(b *bundle.Bundle) []Row {
	var out []Row
	for _, m := range b.Mods {
		kinds := make([]dex.Kind, 0, len(m.Entries))
		for k := range m.Entries {
			kinds = append(kinds, k)
		}
		sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
		for _, k := range kinds {
			entries := m.Entries[k]
			keys := make([]id.ID, 0, len(entries))
			for key := range entries {
				keys = append(keys, key)
			}
			sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
			for _, key := range keys {
				e := entries[key]
				out = append(out, Row{
					Mod:     m.Name,
					Kind:    k.String(),
					ID:      string(key),
					Inherit: e.Inherit,
					Data:    e.Data,
				})
			}
		}
	}
	return out
}

// Assemble rebuilds a bundle from stored mods and their rows, then sorts and
// validates it.
func Assemble(mods []bundle.Mod, rows []Row) (*bundle.Bundle, error) {
	if len(mods) == 0 {
		return nil, ErrEmpty
	}
	b := &bundle.Bundle{Mods: mods}
	for _, r := range rows {
		m, ok := b.Mod(r.Mod)
		if !ok {
			return nil, fmt.Errorf("entry %s/%s belongs to unknown mod %q", r.Kind, r.ID, r.Mod)
		}
		kind, ok := dex.ParseKind(r.Kind)
		if !ok {
			return nil, fmt.Errorf("entry %s/%s: unknown kind", r.Kind, r.ID)
		}
		m.Put(kind, id.ID(r.ID), bundle.Entry{Inherit: r.Inherit, Data: r.Data})
	}
	b.Sort()
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}
