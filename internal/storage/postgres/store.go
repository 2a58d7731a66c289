// Package postgres stores content mods in PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"

	"github.com/vgcsim/battle-engine-go/internal/bundle"
	"github.com/vgcsim/battle-engine-go/internal/storage"
	"github.com/vgcsim/battle-engine-go/internal/storage/migrations"
)

// Store persists content in PostgreSQL.
type Store struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

var _ storage.Store = (*Store)(nil)

// Open connects to url and applies the embedded migrations.
func Open(ctx context.Context, url string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	// goose needs a database/sql handle.
	db := stdlib.OpenDBFromPool(pool)
	err = migrations.Up(ctx, db, "postgres", logger)
	_ = db.Close()
	if err != nil {
		pool.Close()
		return nil, err
	}

	stats := pool.Stat()
	logger.Info("postgres store opened",
		zap.Int32("total_conns", stats.TotalConns()),
		zap.Int32("idle_conns", stats.IdleConns()),
	)
	return &Store{pool: pool, logger: logger}, nil
}

// Close releases the pool.
func (s *Store) Close() error {
	if s != nil && s.pool != nil {
		s.pool.Close()
	}
	return nil
}

// Save replaces the stored content with b in one transaction.
func (s *Store) Save(ctx context.Context, b *bundle.Bundle) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "TRUNCATE entries, mods"); err != nil {
		return fmt.Errorf("clear content: %w", err)
	}

	batch := &pgx.Batch{}
	for _, m := range b.Mods {
		aliases := m.Aliases
		if aliases == nil {
			aliases = map[string]string{}
		}
		compound := m.CompoundNames
		if compound == nil {
			compound = []string{}
		}
		batch.Queue(
			"INSERT INTO mods (name, parent, gen, aliases, compound_names) VALUES ($1, $2, $3, $4, $5)",
			m.Name, m.Parent, m.Gen, aliases, compound,
		)
	}
	rows := storage.Rows(b)
	for _, r := range rows {
		batch.Queue(
			"INSERT INTO entries (mod, kind, id, inherit, data) VALUES ($1, $2, $3, $4, $5)",
			r.Mod, r.Kind, r.ID, r.Inherit, []byte(r.Data),
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert content: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
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
	modRows, err := s.pool.Query(ctx,
		"SELECT name, parent, gen, aliases, compound_names FROM mods ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("query mods: %w", err)
	}
	mods, err := pgx.CollectRows(modRows, func(row pgx.CollectableRow) (bundle.Mod, error) {
		var m bundle.Mod
		err := row.Scan(&m.Name, &m.Parent, &m.Gen, &m.Aliases, &m.CompoundNames)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan mods: %w", err)
	}

	entryRows, err := s.pool.Query(ctx,
		"SELECT mod, kind, id, inherit, data FROM entries ORDER BY mod, kind, id")
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	rows, err := pgx.CollectRows(entryRows, func(row pgx.CollectableRow) (storage.Row, error) {
		var (
			r    storage.Row
			data []byte
		)
		err := row.Scan(&r.Mod, &r.Kind, &r.ID, &r.Inherit, &data)
		r.Data = json.RawMessage(data)
		return r, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan entries: %w", err)
	}

	b, err := storage.Assemble(mods, rows)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("content loaded", zap.Int("mods", len(b.Mods)), zap.Int("entries", len(rows)))
	return b, nil
}
