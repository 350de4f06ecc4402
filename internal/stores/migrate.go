package stores

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog/log"
)

//go:embed migrations
var migrations embed.FS

func runMigrations(m *migrate.Migrate) error {
	err := m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	if err != nil {
		return err
	}
	version, _, _ := m.Version()
	log.Info().Uint("version", version).Msg("migrated-db")
	return nil
}

// migrateSQLite brings db up to date. The migrate instance is not closed,
// since closing it would close db as well.
func migrateSQLite(db *sql.DB) error {
	src, err := iofs.New(migrations, "migrations/sqlite")
	if err != nil {
		return err
	}
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("sqlite3 migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		return err
	}
	return runMigrations(m)
}

// MigratePostgres applies the Postgres migrations to the database at uri.
func MigratePostgres(uri string) error {
	src, err := iofs.New(migrations, "migrations/postgres")
	if err != nil {
		return err
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, uri)
	if err != nil {
		log.Err(err).Msg("on-new")
		return err
	}
	return migrateAndClose(m)
}

// migrateAndClose runs m and closes it whether or not the migrations
// succeeded.
func migrateAndClose(m *migrate.Migrate) error {
	defer func() {
		e1, e2 := m.Close()
		log.Err(e1).Msg("close-source")
		log.Err(e2).Msg("close-database")
	}()
	if err := runMigrations(m); err != nil {
		log.Err(err).Msg("on-up")
		return err
	}
	return nil
}
