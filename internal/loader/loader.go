// Package loader reads content mods from a directory tree of YAML files:
//
//	<root>/<mod>/mod.yaml        name, parent, gen, aliases, compoundNames
//	<root>/<mod>/<kind>.yaml     records keyed by id, one file per kind
//
// A record with "inherit: true" holds only the fields that override the
// parent mod's record; any other record replaces it.
package loader

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/vgcsim/battle-engine-go/internal/bundle"
	"github.com/vgcsim/battle-engine-go/internal/dex"
	"github.com/vgcsim/battle-engine-go/internal/id"
)

const manifestFile = "mod.yaml"

// ErrNoMods is returned when the root holds no mod directories.
var ErrNoMods = errors.New("no mods found")

// Manifest is the contents of mod.yaml.
type Manifest struct {
	Name          string            `yaml:"name"`
	Parent        string            `yaml:"parent"`
	Gen           int               `yaml:"gen"`
	Aliases       map[string]string `yaml:"aliases"`
	CompoundNames []string          `yaml:"compoundNames"`
}

// Loader reads mods from a file system.
type Loader struct {
	logger *zap.Logger
	fsys   fs.FS
}

// New creates a loader over fsys, typically os.DirFS(dir).
func New(logger *zap.Logger, fsys fs.FS) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{logger: logger, fsys: fsys}
}

// Load reads every mod directory under the root and validates the records.
func (l *Loader) Load(ctx context.Context) (*bundle.Bundle, error) {
	dirs, err := fs.ReadDir(l.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("reading mods root: %w", err)
	}

	b := &bundle.Bundle{}
	for _, d := range dirs {
		if !d.IsDir() || strings.HasPrefix(d.Name(), ".") {
			continue
		}
		if _, err := fs.Stat(l.fsys, path.Join(d.Name(), manifestFile)); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				l.logger.Debug("skipping directory without manifest", zap.String("dir", d.Name()))
				continue
			}
			return nil, fmt.Errorf("mod %s: %w", d.Name(), err)
		}
		mod, err := l.LoadMod(ctx, d.Name())
		if err != nil {
			return nil, err
		}
		b.Mods = append(b.Mods, *mod)
	}
	if len(b.Mods) == 0 {
		return nil, ErrNoMods
	}
	b.Sort()
	if err := b.Validate(); err != nil {
		return nil, err
	}

	l.logger.Info("content loaded", zap.Int("mods", len(b.Mods)))
	return b, nil
}

// LoadMod reads one mod directory.
func (l *Loader) LoadMod(ctx context.Context, dir string) (*bundle.Mod, error) {
	manifest, err := l.readManifest(dir)
	if err != nil {
		return nil, err
	}
	mod := &bundle.Mod{
		Name:          manifest.Name,
		Parent:        manifest.Parent,
		Gen:           manifest.Gen,
		Aliases:       manifest.Aliases,
		CompoundNames: manifest.CompoundNames,
	}

	files, err := l.kindFiles(dir)
	if err != nil {
		return nil, err
	}

	// Kind files are independent; read them concurrently.
	results := make([]map[id.ID]bundle.Entry, len(files))
	g, gctx := errgroup.WithContext(ctx)
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			entries, err := l.readKind(path.Join(dir, f.name))
			if err != nil {
				return fmt.Errorf("mod %s: %s: %w", mod.Name, f.name, err)
			}
			results[i] = entries
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, f := range files {
		for key, e := range results[i] {
			mod.Put(f.kind, key, e)
		}
	}
	l.logger.Debug("mod loaded",
		zap.String("mod", mod.Name),
		zap.String("parent", mod.Parent),
		zap.Int("gen", mod.Gen),
		zap.Int("entries", mod.Len()),
	)
	return mod, nil
}

func (l *Loader) readManifest(dir string) (*Manifest, error) {
	data, err := fs.ReadFile(l.fsys, path.Join(dir, manifestFile))
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", dir, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", dir, err)
	}
	if m.Name == "" {
		m.Name = dir
	}
	if m.Parent != "" && (len(m.Aliases) > 0 || len(m.CompoundNames) > 0) {
		l.logger.Warn("aliases are only read from the base mod", zap.String("mod", m.Name))
	}
	return &m, nil
}

type kindFile struct {
	name string
	kind dex.Kind
}

func (l *Loader) kindFiles(dir string) ([]kindFile, error) {
	entries, err := fs.ReadDir(l.fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("reading mod %s: %w", dir, err)
	}
	seen := make(map[dex.Kind]string)
	var out []kindFile
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == manifestFile || (path.Ext(name) != ".yaml" && path.Ext(name) != ".yml") {
			continue
		}
		kind, ok := dex.ParseKind(strings.TrimSuffix(name, path.Ext(name)))
		if !ok {
			return nil, fmt.Errorf("mod %s: unknown kind file %s", dir, name)
		}
		if prev, dup := seen[kind]; dup {
			return nil, fmt.Errorf("mod %s: %s and %s both hold %s", dir, prev, name, kind)
		}
		seen[kind] = name
		out = append(out, kindFile{name: name, kind: kind})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].kind < out[j].kind })
	return out, nil
}

// readKind parses one kind file into entries keyed by normalized id.
func (l *Loader) readKind(file string) (map[id.ID]bundle.Entry, error) {
	data, err := fs.ReadFile(l.fsys, file)
	if err != nil {
		return nil, err
	}
	var raw map[string]map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing: %w", err)
	}

	out := make(map[id.ID]bundle.Entry, len(raw))
	origin := make(map[id.ID]string, len(raw))
	for name, fields := range raw {
		key := id.ToID(name)
		if key == id.Empty {
			return nil, fmt.Errorf("record %q has an empty id", name)
		}
		if prev, dup := origin[key]; dup {
			return nil, fmt.Errorf("records %q and %q share id %s", prev, name, key)
		}
		origin[key] = name

		inherit := false
		if v, ok := fields["inherit"]; ok {
			b, isBool := v.(bool)
			if !isBool {
				return nil, fmt.Errorf("record %q: inherit must be a boolean", name)
			}
			inherit = b
			delete(fields, "inherit")
		}
		if fields == nil {
			fields = map[string]any{}
		}
		encoded, err := json.Marshal(fields)
		if err != nil {
			return nil, fmt.Errorf("record %q: %w", name, err)
		}
		out[key] = bundle.Entry{Inherit: inherit, Data: encoded}
	}
	return out, nil
}
