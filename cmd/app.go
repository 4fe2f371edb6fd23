package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"crowd-escrow/internal/adapter/memory"
	"crowd-escrow/internal/adapter/postgres"
	"crowd-escrow/internal/adapter/sqlite"
	"crowd-escrow/internal/adapter/usecase"
	"crowd-escrow/internal/config"
	"crowd-escrow/internal/config/configs"
	"crowd-escrow/internal/core/domain"
	"crowd-escrow/internal/core/escrow"
	"crowd-escrow/internal/core/port"
	"crowd-escrow/internal/db"
)

// app carries what every command needs once the config is loaded.
type app struct {
	cfg     config.Config
	logger  *slog.Logger
	deriver domain.Deriver
}

func (a *app) init(cfg config.Config) {
	a.cfg = cfg
	a.deriver = domain.NewDeriver(cfg.Escrow.ProgramName)

	a.logger = slog.New(cfg.Log.NewHandler(os.Stdout)).With(slog.String("env", cfg.Env))
	slog.SetDefault(a.logger)
}

// openRepository connects the store selected by STORE_DRIVER. The returned
// func releases it.
func (a *app) openRepository(ctx context.Context) (port.EscrowRepository, func(), error) {
	switch driver := a.cfg.Store.Normalized(); driver {
	case configs.DriverPostgres:
		// Optionally run migrations if configured. We use the Psql sub-config.
		if a.cfg.Psql.RunMigrations {
			if err := db.Migrate(a.cfg.Psql.Addr.String()); err != nil {
				return nil, nil, fmt.Errorf("migrate postgres: %w", err)
			}
			a.logger.Info("migrations applied successfully")
		}
		pool, err := db.NewPostgresPool(ctx, a.cfg.Psql)
		if err != nil {
			return nil, nil, fmt.Errorf("database connection: %w", err)
		}
		return postgres.NewEscrowRepository(pool, a.deriver), pool.Close, nil

	case configs.DriverSQLite:
		store, err := sqlite.Open(a.cfg.Sqlite.Path, a.deriver)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil

	case configs.DriverMemory:
		a.logger.Warn("using in-memory store, state is lost on exit")
		return memory.NewStore(a.deriver), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", driver)
	}
}

func (a *app) useCase(repo port.EscrowRepository) *usecase.EscrowUseCase {
	engine := escrow.New(a.deriver, escrow.WithLegacyFinalize(a.cfg.Escrow.LegacyFinalize))
	return usecase.NewEscrowUseCase(repo, engine, usecase.WithLogger(a.logger))
}

func (a *app) migrate(ctx context.Context) error {
	switch a.cfg.Store.Normalized() {
	case configs.DriverPostgres:
		if err := db.Migrate(a.cfg.Psql.Addr.String()); err != nil {
			return err
		}
	case configs.DriverSQLite:
		// Open applies pending migrations.
		store, err := sqlite.Open(a.cfg.Sqlite.Path, a.deriver)
		if err != nil {
			return err
		}
		if err = store.Close(); err != nil {
			return err
		}
	default:
		a.logger.Info("store has no schema", slog.String("driver", a.cfg.Store.Normalized()))
		return nil
	}
	a.logger.Info("migrations applied successfully", slog.String("driver", a.cfg.Store.Normalized()))
	return nil
}

func (a *app) seed(ctx context.Context) error {
	repo, closeRepo, err := a.openRepository(ctx)
	if err != nil {
		return err
	}
	defer closeRepo()
	return db.Seed(ctx, a.useCase(repo), a.logger)
}
