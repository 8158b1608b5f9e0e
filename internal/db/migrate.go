package db

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"marketsim/db/migrations"
)

// MigrationResult reports the schema version before and after Migrate.
type MigrationResult struct {
	From    uint
	To      uint
	Changed bool
}

// Migrate brings the database at addr to migrations.Version using the
// embedded SQL files. A dirty database is left untouched.
func Migrate(addr string) (MigrationResult, error) {
	var res MigrationResult

	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return res, fmt.Errorf("open embedded migrations: %w", err)
	}
	defer src.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", src, addr)
	if err != nil {
		return res, fmt.Errorf("connect migrator: %w", err)
	}
	defer mg.Close()

	from, dirty, err := mg.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
	case err != nil:
		return res, fmt.Errorf("read schema version: %w", err)
	case dirty:
		return res, fmt.Errorf("schema version %d is dirty, fix it manually", from)
	}
	res.From, res.To = from, migrations.Version

	err = mg.Migrate(migrations.Version)
	if errors.Is(err, migrate.ErrNoChange) {
		return res, nil
	}
	if err != nil {
		return res, fmt.Errorf("migrate %d -> %d: %w", from, migrations.Version, err)
	}
	res.Changed = true
	return res, nil
}
