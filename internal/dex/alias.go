package dex

import (
	"strings"

	"go.uber.org/zap"

	"github.com/vgcsim/battle-engine-go/internal/id"
)

// fuzzyTables are the kinds whose names feed the fuzzy alias map.
var fuzzyTables = []Kind{Items, Abilities, Moves, Species}

// regionalPrefixes maps a regional forme to the adjective players type.
var regionalPrefixes = map[string]string{
	"alola":  "alolan",
	"galar":  "galarian",
	"hisui":  "hisuian",
	"paldea": "paldean",
}

// Alias returns the canonical id an exact alias points at.
func (d *Dex) Alias(name string) (id.ID, bool) {
	b := d.registry.base
	b.loadAliases()
	target, ok := b.aliases[id.ToID(name)]
	return target, ok
}

// FuzzyAliases returns the ids a loose name such as "megazardx" or
// "alolanraichu" may refer to, in insertion order.
func (d *Dex) FuzzyAliases(name string) []id.ID {
	b := d.registry.base
	b.loadAliases()
	targets := b.fuzzy[id.ToID(name)]
	out := make([]id.ID, len(targets))
	copy(out, targets)
	return out
}

func (d *Dex) loadAliases() {
	d.aliasOnce.Do(func() {
		d.aliases = make(map[id.ID]id.ID, len(d.rawAliases))
		for alias, target := range d.rawAliases {
			d.aliases[id.ToID(alias)] = id.ToID(target)
		}
		d.fuzzy = buildFuzzy(d, d.compoundNames)
		d.Logger().Debug("aliases loaded",
			zap.Int("aliases", len(d.aliases)),
			zap.Int("fuzzy_aliases", len(d.fuzzy)),
		)
	})
}

type fuzzyBuilder map[id.ID][]id.ID

func (f fuzzyBuilder) add(alias string, target id.ID) {
	key := id.ID(alias)
	if key == target || len(alias) < 2 {
		return
	}
	for _, t := range f[key] {
		if t == target {
			return
		}
	}
	f[key] = append(f[key], target)
}

func (f fuzzyBuilder) addForme(alias string, target id.ID, forme, letter string) {
	f.add(alias+forme, target)
	if forme == "" {
		return
	}
	f.add(alias+letter, target)
	f.add(letter+alias, target)
	switch forme {
	case "megax":
		f.add("mega"+alias+"x", target)
	case "megay":
		f.add("mega"+alias+"y", target)
	default:
		if prefix, ok := regionalPrefixes[forme]; ok {
			f.add(prefix+alias, target)
		} else {
			f.add(forme+alias, target)
		}
	}
	if forme == "megax" || forme == "megay" {
		f.add("mega"+alias, target)
		f.add(alias+"mega", target)
		f.add("m"+alias, target)
		f.add(alias+"m", target)
	}
}

func splitWords(name string, seps string) []string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return strings.ContainsRune(seps, r)
	})
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if w := id.ToID(p); w != id.Empty {
			out = append(out, string(w))
		}
	}
	return out
}

func (f fuzzyBuilder) addWords(words []string, target id.ID, forme, letter string) {
	var acronym strings.Builder
	for _, w := range words {
		acronym.WriteByte(w[0])
	}
	f.addForme(acronym.String(), target, forme, letter)
	f.addForme(acronym.String()+words[len(words)-1][1:], target, forme, letter)
	for _, w := range words {
		f.addForme(w, target, forme, letter)
	}
}

func buildFuzzy(d *Dex, compound []string) map[id.ID][]id.ID {
	compoundNames := make(map[id.ID]string, len(compound))
	for _, name := range compound {
		compoundNames[id.ToID(name)] = name
	}
	f := make(fuzzyBuilder)

	for _, kind := range fuzzyTables {
		for _, key := range d.IDs(kind) {
			rec, ok := d.lookup(kind, key)
			if !ok {
				continue
			}
			name := rec.base().Name
			if n, ok := compoundNames[key]; ok {
				name = n
			}
			if i := strings.IndexByte(name, '('); i > 0 {
				f.add(string(id.ToID(name[:i])), key)
			}

			var forme, letter string
			if sp, ok := rec.(*SpeciesData); ok && sp.Forme != "" {
				baseID := id.ToID(sp.BaseSpecies)
				if baseID != key && baseID != id.Empty {
					name = sp.BaseSpecies
					if n, ok := compoundNames[baseID]; ok {
						name = n
					}
				}
				forme = string(id.ToID(sp.Forme))
				for _, part := range splitWords(sp.Forme, " -") {
					letter += part[:1]
				}
				f.addForme(string(id.ToID(name)), key, forme, letter)
			}

			full := splitWords(name, " -")
			if len(full) < 2 {
				continue
			}
			f.addWords(full, key, forme, letter)
			if spaced := splitWords(name, " "); len(spaced) != len(full) && len(spaced) > 0 {
				f.addWords(spaced, key, forme, letter)
			}
		}
	}
	return f
}
