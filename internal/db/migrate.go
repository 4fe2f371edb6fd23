package db

import (
	"database/sql"
	"errors"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"crowd-escrow/db/migrations"
	sqlitemigrations "crowd-escrow/db/migrations/sqlite"
)

// Migrate applies all up migrations found in the embedded postgres
// migrations directory to the database at addr.
func Migrate(addr string) error {
	driver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return err
	}
	defer driver.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", driver, addr)
	if err != nil {
		return err
	}
	defer mg.Close()

	return apply(mg, migrations.Version)
}

// MigrateSQLite applies the embedded sqlite migrations to an open handle.
// The handle stays open; closing it is up to the caller.
func MigrateSQLite(conn *sql.DB) error {
	source, err := iofs.New(sqlitemigrations.FS, ".")
	if err != nil {
		return err
	}
	defer source.Close()

	var target database.Driver
	target, err = sqlite.WithInstance(conn, &sqlite.Config{})
	if err != nil {
		return err
	}

	mg, err := migrate.NewWithInstance("iofs", source, "sqlite", target)
	if err != nil {
		return err
	}

	return apply(mg, sqlitemigrations.Version)
}

func apply(mg *migrate.Migrate, version uint) error {
	_, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}

	if dirty {
		return errors.New("database is in dirty state")
	}

	if err = mg.Migrate(version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}
