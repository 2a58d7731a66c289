package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vgcsim/battle-engine-go/internal/bundle"
	"github.com/vgcsim/battle-engine-go/internal/config"
	"github.com/vgcsim/battle-engine-go/internal/content"
	"github.com/vgcsim/battle-engine-go/internal/dex"
	"github.com/vgcsim/battle-engine-go/internal/loader"
	"github.com/vgcsim/battle-engine-go/internal/storage"
	"github.com/vgcsim/battle-engine-go/internal/storage/postgres"
	"github.com/vgcsim/battle-engine-go/internal/storage/sqlite"
)

var (
	configPath = flag.String("config", "config/config.yaml", "path to configuration file")
	modName    = flag.String("mod", "", "mod to query (default: the mod for data.base_gen)")
	formatName = flag.String("format", "", "query the mod a format runs under")
	version    = "dev" // set via ldflags during build
)

const usage = `usage: dexctl [flags] <command> [args]

commands:
  mods                              list mods
  lookup <kind> <name>              print one record as JSON
  effectiveness <type> <types...>   type chart result for an attack
  search <text>                     resolve free text to records
  events <kind> <name>              list the events a record handles
  checksum                          print the content checksum of every mod
  trace <condition...>              run field or side conditions until they expire
`

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := initLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Debug("starting dexctl",
		zap.String("version", version),
		zap.String("config", *configPath),
		zap.String("source", cfg.Data.Source),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry, err := loadRegistry(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to load content", zap.Error(err))
	}

	d, err := selectDex(registry, cfg)
	if err != nil {
		logger.Fatal("failed to select mod", zap.Error(err))
	}

	app := &app{
		cfg:      cfg,
		logger:   logger,
		registry: registry,
		dex:      d,
		out:      os.Stdout,
	}
	if err := app.run(flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func selectDex(r *dex.Registry, cfg *config.Config) (*dex.Dex, error) {
	switch {
	case *formatName != "":
		d, _, err := r.ForFormat(*formatName)
		return d, err
	case *modName != "":
		return r.Mod(*modName)
	default:
		return r.ForGen(cfg.Data.BaseGen)
	}
}

// loadRegistry builds a registry from the configured source. Mods read from
// YAML or a database that carry no base mod are layered over the built-in
// content.
func loadRegistry(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*dex.Registry, error) {
	var opts []dex.RegistryOption
	if cfg.Data.EagerInheritance {
		opts = append(opts, dex.WithEagerInheritance())
	}
	if cfg.Data.Source == config.SourceBuiltin {
		return content.NewRegistry(logger, opts...)
	}

	b, err := loadBundle(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	specs, err := b.Specs()
	if err != nil {
		return nil, err
	}
	if !hasBase(b) {
		logger.Info("no base mod in source, layering over built-in content")
		specs = append(content.Specs(), specs...)
	}
	return dex.NewRegistry(logger, specs, opts...)
}

func loadBundle(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*bundle.Bundle, error) {
	if cfg.Data.Source == config.SourceYAML {
		return loader.New(logger, os.DirFS(cfg.Data.Dir)).Load(ctx)
	}
	store, err := openStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	defer store.Close()
	return store.Load(ctx)
}

func openStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (storage.Store, error) {
	switch cfg.Data.Source {
	case config.SourcePostgres:
		return postgres.Open(ctx, cfg.Database.URL, logger)
	case config.SourceSQLite:
		return sqlite.Open(ctx, cfg.SQLite.Path, logger)
	default:
		return nil, fmt.Errorf("source %q is not a database", cfg.Data.Source)
	}
}

func hasBase(b *bundle.Bundle) bool {
	for _, m := range b.Mods {
		if m.Parent == "" {
			return true
		}
	}
	return false
}

func initLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	switch cfg.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)
	// Keep stdout for command output.
	zapCfg.OutputPaths = []string{"stderr"}

	return zapCfg.Build()
}
