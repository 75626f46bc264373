package infra

import (
	"context"
	"fmt"
	"time"

	"directorio/internal/config"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Dialector returns the GORM dialector for the configured driver.
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case "mysql":
		return mysql.Open(cfg.MySQLDSN()), nil
	case "postgres":
		return postgres.Open(cfg.DatabaseURL), nil
	}
	return nil, fmt.Errorf("driver de base de datos no soportado: %q", cfg.DBDriver)
}

// NewDatabase opens the pool and pings it. The schema is owned by the SQL
// migrations (see Migrar), never by AutoMigrate.
func NewDatabase(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	nivel := logger.Silent
	if cfg.LogLevel == "debug" {
		nivel = logger.Info
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(nivel),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return db, nil
}

// ConectarConReintentos calls NewDatabase up to cfg.DBMaxRetries times,
// waiting cfg.DBRetryInterval between attempts. It runs once at startup,
// before the listener opens.
func ConectarConReintentos(ctx context.Context, cfg *config.Config) (*gorm.DB, error) {
	intentos := cfg.DBMaxRetries
	if intentos < 1 {
		intentos = 1
	}
	var lastErr error
	for i := 1; i <= intentos; i++ {
		db, err := NewDatabase(cfg)
		if err == nil {
			if i > 1 {
				log.Info().Int("intento", i).Msg("database ready")
			}
			return db, nil
		}
		lastErr = err
		log.Warn().Err(err).Int("intento", i).Int("max", intentos).Msg("database not ready, retrying")

		if i == intentos {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(cfg.DBRetryInterval):
		}
	}
	return nil, fmt.Errorf("database unreachable after %d attempts: %w", intentos, lastErr)
}
