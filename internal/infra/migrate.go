package infra

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"directorio/internal/config"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog/log"
)

//go:embed migrations/mysql/*.sql migrations/postgres/*.sql
var migrationsFS embed.FS

// NuevoMigrador builds a migrate instance reading the embedded files for
// cfg.DBDriver ("mysql" or "postgres").
//
// The drivers pin one connection for their whole life, so the instance runs
// on its own small pool instead of the application's. Close releases it.
func NuevoMigrador(cfg *config.Config) (*migrate.Migrate, error) {
	driver := cfg.DBDriver
	source, err := iofs.New(migrationsFS, "migrations/"+driver)
	if err != nil {
		return nil, fmt.Errorf("cargar migraciones %s: %w", driver, err)
	}

	var sqlDriver string
	switch driver {
	case "mysql":
		sqlDriver = "mysql"
	case "postgres":
		sqlDriver = "pgx"
	default:
		return nil, fmt.Errorf("driver de migraciones no soportado: %q", driver)
	}
	sqlDB, err := sql.Open(sqlDriver, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("abrir conexión de migraciones: %w", err)
	}
	sqlDB.SetMaxOpenConns(2)

	var instancia database.Driver
	if driver == "mysql" {
		instancia, err = migratemysql.WithInstance(sqlDB, &migratemysql.Config{})
	} else {
		instancia, err = migratepostgres.WithInstance(sqlDB, &migratepostgres.Config{})
	}
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("crear driver de migraciones: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, driver, instancia)
	if err != nil {
		_ = instancia.Close()
		return nil, fmt.Errorf("inicializar migraciones: %w", err)
	}
	return m, nil
}

// Migrar applies every pending migration.
func Migrar(cfg *config.Config) error {
	m, err := NuevoMigrador(cfg)
	if err != nil {
		return err
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if err := errors.Join(srcErr, dbErr); err != nil {
			log.Warn().Err(err).Msg("closing migration connection")
		}
	}()
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("aplicar migraciones: %w", err)
	}

	version, dirty, _ := m.Version()
	if dirty {
		log.Warn().Uint("version", version).Msg("database migration is dirty")
	} else {
		log.Info().Uint("version", version).Msg("database migrations applied")
	}
	return nil
}
