// Command admin runs maintenance tasks against the directorio database:
// schema migrations, account bootstrap and password hashing.
package main

import (
	"context"
	"os"
	"time"

	"directorio/internal/config"
	"directorio/internal/infra"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	root := &cobra.Command{
		Use:           "admin",
		Short:         "Tareas de mantenimiento del directorio",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newMigrarCommand(), newUsuarioCommand(), newHashCommand())

	if err := root.ExecuteContext(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("admin")
	}
}

// conectar loads the configuration and opens the database with the same
// retry policy as the server.
func conectar(ctx context.Context) (*config.Config, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	db, err := infra.ConectarConReintentos(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, db, nil
}
