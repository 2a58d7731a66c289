package dex

import "github.com/vgcsim/battle-engine-go/internal/id"

// MatchKind says how a search result was found.
type MatchKind string

const (
	MatchExact MatchKind = "exact"
	MatchAlias MatchKind = "alias"
	MatchFuzzy MatchKind = "fuzzy"
)

// SearchResult is one record a search text may refer to.
type SearchResult struct {
	Kind   Kind
	Record Record
	Match  MatchKind
}

var searchKinds = []Kind{Species, Moves, Abilities, Items, Natures, Types, Formats, Conditions}

// Search resolves free text to records: exact ids across all kinds first,
// then the exact alias, then fuzzy aliases. Each record appears once.
func (d *Dex) Search(text string) []SearchResult {
	key := id.ToID(text)
	if key == id.Empty {
		return nil
	}
	var out []SearchResult
	seen := make(map[string]bool)
	add := func(kind Kind, target id.ID, match MatchKind) {
		rec, ok := d.lookup(kind, target)
		if !ok {
			return
		}
		k := kind.String() + ":" + string(target)
		if seen[k] {
			return
		}
		seen[k] = true
		out = append(out, SearchResult{Kind: kind, Record: d.GetByID(kind, string(rec.RecordID())), Match: match})
	}

	for _, kind := range searchKinds {
		add(kind, key, MatchExact)
	}
	if target, ok := d.Alias(string(key)); ok {
		for _, kind := range searchKinds {
			add(kind, target, MatchAlias)
		}
	}
	for _, target := range d.FuzzyAliases(string(key)) {
		for _, kind := range fuzzyTables {
			add(kind, target, MatchFuzzy)
		}
	}
	return out
}
