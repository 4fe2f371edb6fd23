package configs

import "strings"

// Store drivers accepted by STORE_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

// Store selects the repository backing the escrow.
type Store struct {
	Driver string `env:"DRIVER" envDefault:"postgres"`
}

// Normalized returns the lower-cased driver name.
func (c Store) Normalized() string {
	return strings.ToLower(strings.TrimSpace(c.Driver))
}

// SQLite configures the embedded single-file store.
type SQLite struct {
	Path string `env:"PATH" envDefault:"crowd-escrow.db"`
}
