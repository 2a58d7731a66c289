// Package migrations embeds the content schema for each supported database.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS

// Dialects maps a goose dialect to its migration directory.
var Dialects = map[string]string{
	"sqlite3":  "sqlite",
	"postgres": "postgres",
}

// goose keeps its settings in package globals.
var mu sync.Mutex

// Up applies every pending migration for dialect.
func Up(ctx context.Context, db *sql.DB, dialect string, logger *zap.Logger) error {
	dir, ok := Dialects[dialect]
	if !ok {
		return fmt.Errorf("unsupported dialect %q", dialect)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	mu.Lock()
	defer mu.Unlock()

	goose.SetBaseFS(FS)
	goose.SetLogger(gooseLogger{logger.Sugar()})
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("setting goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}

type gooseLogger struct {
	s *zap.SugaredLogger
}

func (l gooseLogger) Printf(format string, v ...any) {
	l.s.Debugf(strings.TrimSuffix(format, "\n"), v...)
}

func (l gooseLogger) Fatalf(format string, v ...any) {
	l.s.Fatalf(strings.TrimSuffix(format, "\n"), v...)
}
