package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/vgcsim/battle-engine-go/internal/config"
	"github.com/vgcsim/battle-engine-go/internal/dex"
	"github.com/vgcsim/battle-engine-go/internal/game/effects"
)

type app struct {
	cfg      *config.Config
	logger   *zap.Logger
	registry *dex.Registry
	dex      *dex.Dex
	out      io.Writer
}

func (a *app) run(args []string) error {
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "mods":
		return a.mods()
	case "lookup":
		if len(rest) != 2 {
			return fmt.Errorf("usage: lookup <kind> <name>")
		}
		return a.lookup(rest[0], rest[1])
	case "effectiveness":
		if len(rest) < 2 {
			return fmt.Errorf("usage: effectiveness <type> <types...>")
		}
		return a.effectiveness(rest[0], rest[1:])
	case "search":
		if len(rest) == 0 {
			return fmt.Errorf("usage: search <text>")
		}
		return a.search(strings.Join(rest, " "))
	case "events":
		if len(rest) != 2 {
			return fmt.Errorf("usage: events <kind> <name>")
		}
		return a.events(rest[0], rest[1])
	case "checksum":
		return a.checksum()
	case "trace":
		if len(rest) == 0 {
			return fmt.Errorf("usage: trace <condition...>")
		}
		return a.trace(rest)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (a *app) mods() error {
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "MOD\tGEN\tPARENT")
	for _, name := range a.registry.Mods() {
		d, err := a.registry.Mod(name)
		if err != nil {
			return err
		}
		parent := "-"
		if p := d.Parent(); p != nil {
			parent = p.Name()
		}
		fmt.Fprintf(w, "%s\t%d\t%s\n", d.Name(), d.Gen(), parent)
	}
	return w.Flush()
}

func (a *app) record(kindName, name string) (dex.Record, error) {
	kind, ok := dex.ParseKind(kindName)
	if !ok {
		return nil, fmt.Errorf("unknown kind %q", kindName)
	}
	rec := a.dex.GetByID(kind, name)
	if !rec.Exists() {
		return nil, fmt.Errorf("%s %q not found in mod %s", kind, name, a.dex.Name())
	}
	return rec, nil
}

func (a *app) lookup(kindName, name string) error {
	rec, err := a.record(kindName, name)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding record: %w", err)
	}
	_, err = fmt.Fprintln(a.out, string(data))
	return err
}

func (a *app) effectiveness(attack string, defender []string) error {
	if !a.dex.GetImmunity(attack, defender...) {
		_, err := fmt.Fprintf(a.out, "%s vs %s: immune\n", attack, strings.Join(defender, "/"))
		return err
	}
	mod := a.dex.GetEffectiveness(attack, defender...)
	multiplier := 1.0
	for i := 0; i < mod; i++ {
		multiplier *= 2
	}
	for i := 0; i > mod; i-- {
		multiplier /= 2
	}
	_, err := fmt.Fprintf(a.out, "%s vs %s: %+d (x%g)\n", attack, strings.Join(defender, "/"), mod, multiplier)
	return err
}

func (a *app) search(text string) error {
	results := a.dex.Search(text)
	if len(results) == 0 {
		return fmt.Errorf("no match for %q", text)
	}
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KIND\tID\tNAME\tMATCH")
	for _, r := range results {
		name := ""
		if e, ok := r.Record.(effects.Effect); ok {
			name = e.EffectName()
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.Kind, r.Record.RecordID(), name, r.Match)
	}
	return w.Flush()
}

func (a *app) events(kindName, name string) error {
	rec, err := a.record(kindName, name)
	if err != nil {
		return err
	}
	e, ok := rec.(effects.Effect)
	if !ok {
		return fmt.Errorf("%s records do not handle events", kindName)
	}
	h := e.EffectHandlers()
	if h.Len() == 0 {
		_, err := fmt.Fprintf(a.out, "%s handles no events\n", e.EffectName())
		return err
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SCOPE\tEVENT\tPRIORITY\tORDER\tSUBORDER\tKIND")
	for _, scope := range []effects.Scope{effects.ScopeSelf, effects.ScopeAlly, effects.ScopeFoe, effects.ScopeSource, effects.ScopeAny} {
		set := h.Scoped(scope)
		for _, ev := range set.Events() {
			hd, _ := set.Get(ev)
			slot := "func"
			if hd.IsConstant() {
				slot = fmt.Sprintf("const %v", hd.Value())
			}
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%s\n", scope, ev, hd.Priority, hd.Order, hd.SubOrder, slot)
		}
	}
	return w.Flush()
}

func (a *app) checksum() error {
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "MOD\tRECORDS\tSHA256")
	for _, name := range a.registry.Mods() {
		d, err := a.registry.Mod(name)
		if err != nil {
			return err
		}
		sum, err := d.Checksum()
		if err != nil {
			return fmt.Errorf("mod %s: %w", name, err)
		}
		fmt.Fprintf(w, "%s\t%d\t%s\n", name, sum.Records, sum.Hash)
	}
	return w.Flush()
}
