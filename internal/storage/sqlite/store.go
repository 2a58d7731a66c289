// Package sqlite stores content mods in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/vgcsim/battle-engine-go/internal/bundle"
	"github.com/vgcsim/battle-engine-go/internal/storage"
	"github.com/vgcsim/battle-engine-go/internal/storage/migrations"
)

// Store persists content in SQLite.
type Store struct {
	db     *sql.DB
	logger *zap.Logger
}

var _ storage.Store = (*Store)(nil)

// Open opens the database at path and applies the embedded migrations.
func Open(ctx context.Context, path string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := migrations.Up(ctx, db, "sqlite3", logger); err != nil {
		_ = db.Close()
		return nil, err
	}
	logger.Info("sqlite store opened", zap.String("path", path))
	return &Store{db: db, logger: logger}, nil
}

// Close closes the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Save replaces the stored content with b in one transaction.
func (s *Store) Save(ctx context.Context, b *bundle.Bundle) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM entries"); err != nil {
		return fmt.Errorf("clear entries: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM mods"); err != nil {
		return fmt.Errorf("clear mods: %w", err)
	}

	for _, m := range b.Mods {
		aliases, err := json.Marshal(nonNilMap(m.Aliases))
		if err != nil {
			return fmt.Errorf("mod %s: encode aliases: %w", m.Name, err)
		}
		compound, err := json.Marshal(nonNilSlice(m.CompoundNames))
		if err != nil {
			return fmt.Errorf("mod %s: encode compound names: %w", m.Name, err)
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO mods (name, parent, gen, aliases, compound_names) VALUES (?, ?, ?, ?, ?)",
			m.Name, m.Parent, m.Gen, string(aliases), string(compound),
		); err != nil {
			return fmt.Errorf("insert mod %s: %w", m.Name, err)
		}
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO entries (mod, kind, id, inherit, data) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("prepare entry insert: %w", err)
	}
	defer stmt.Close()

	rows := storage.Rows(b)
	for _, r := range rows {
		if _, err := stmt.ExecContext(ctx, r.Mod, r.Kind, r.ID, r.Inherit, string(r.Data)); err != nil {
			return fmt.Errorf("insert %s %s/%s: %w", r.Mod, r.Kind, r.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	s.logger.Info("content saved",
		zap.Int("mods", len(b.Mods)),
		zap.Int("entries", len(rows)),
	)
	return nil
}

// Load reads the stored content.
func (s *Store) Load(ctx context.Context) (*bundle.Bundle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	modRows, err := s.db.QueryContext(ctx,
		"SELECT name, parent, gen, aliases, compound_names FROM mods ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("query mods: %w", err)
	}
	defer modRows.Close()

	var mods []bundle.Mod
	for modRows.Next() {
		var (
			m                 bundle.Mod
			aliases, compound string
		)
		if err := modRows.Scan(&m.Name, &m.Parent, &m.Gen, &aliases, &compound); err != nil {
			return nil, fmt.Errorf("scan mod: %w", err)
		}
		if err := json.Unmarshal([]byte(aliases), &m.Aliases); err != nil {
			return nil, fmt.Errorf("mod %s: decode aliases: %w", m.Name, err)
		}
		if err := json.Unmarshal([]byte(compound), &m.CompoundNames); err != nil {
			return nil, fmt.Errorf("mod %s: decode compound names: %w", m.Name, err)
		}
		mods = append(mods, m)
	}
	if err := modRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate mods: %w", err)
	}

	entryRows, err := s.db.QueryContext(ctx,
		"SELECT mod, kind, id, inherit, data FROM entries ORDER BY mod, kind, id")
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer entryRows.Close()

	var rows []storage.Row
	for entryRows.Next() {
		var (
			r    storage.Row
			data string
		)
		if err := entryRows.Scan(&r.Mod, &r.Kind, &r.ID, &r.Inherit, &data); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		r.Data = json.RawMessage(data)
		rows = append(rows, r)
	}
	if err := entryRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}

	b, err := storage.Assemble(mods, rows)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("content loaded", zap.Int("mods", len(b.Mods)), zap.Int("entries", len(rows)))
	return b, nil
}

func nonNilMap(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}

func nonNilSlice(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
