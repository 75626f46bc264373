package main

import (
	"errors"
	"fmt"

	"directorio/internal/infra"

	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"
)

func newMigrarCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrar [arriba|abajo|version]",
		Short: "Aplica, revierte o muestra las migraciones del esquema",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "arriba",
			Short: "Aplica todas las migraciones pendientes",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return conMigrador(cmd, func(m *migrate.Migrate) error {
					if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
						return err
					}
					return imprimirVersion(cmd, m)
				})
			},
		},
		&cobra.Command{
			Use:   "abajo",
			Short: "Revierte la última migración aplicada",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return conMigrador(cmd, func(m *migrate.Migrate) error {
					if err := m.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
						return err
					}
					return imprimirVersion(cmd, m)
				})
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Muestra la versión actual del esquema",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return conMigrador(cmd, func(m *migrate.Migrate) error { return imprimirVersion(cmd, m) })
			},
		},
	)
	return cmd
}

func conMigrador(cmd *cobra.Command, fn func(*migrate.Migrate) error) error {
	// conectar waits for the database; the migrator then uses its own pool.
	cfg, db, err := conectar(cmd.Context())
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	m, err := infra.NuevoMigrador(cfg)
	if err != nil {
		return err
	}
	defer m.Close()
	return fn(m)
}

func imprimirVersion(cmd *cobra.Command, m *migrate.Migrate) error {
	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		fmt.Fprintln(cmd.OutOrStdout(), "sin migraciones aplicadas")
		return nil
	}
	if err != nil {
		return err
	}
	estado := ""
	if dirty {
		estado = " (dirty)"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "versión %d%s\n", version, estado)
	return nil
}
