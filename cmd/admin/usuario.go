package main

import (
	"fmt"

	"directorio/internal/config"
	"directorio/internal/dto"
	"directorio/internal/repository"
	"directorio/internal/service"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

const (
	usernameFlag = "username"
	emailFlag    = "email"
	passwordFlag = "password"
)

var usuarioFlags = map[string]cobraflags.Flag{
	usernameFlag: &cobraflags.StringFlag{
		Name:  usernameFlag,
		Usage: "Nombre de usuario (obligatorio)",
	},
	emailFlag: &cobraflags.StringFlag{
		Name:  emailFlag,
		Usage: "Email de la cuenta (obligatorio)",
	},
	passwordFlag: &cobraflags.StringFlag{
		Name:  passwordFlag,
		Usage: "Contraseña, mínimo 6 caracteres (obligatorio)",
	},
}

var hashFlags = map[string]cobraflags.Flag{
	passwordFlag: &cobraflags.StringFlag{
		Name:  passwordFlag,
		Usage: "Contraseña a cifrar",
	},
}

func newUsuarioCommand() *cobra.Command {
	crear := &cobra.Command{
		Use:   "crear",
		Short: "Registra una cuenta de intranet con las mismas reglas que /register",
		RunE:  crearUsuario,
	}
	cobraflags.RegisterMap(crear, usuarioFlags)

	cmd := &cobra.Command{Use: "usuario", Short: "Gestión de cuentas"}
	cmd.AddCommand(crear)
	return cmd
}

func crearUsuario(cmd *cobra.Command, _ []string) error {
	cfg, db, err := conectar(cmd.Context())
	if err != nil {
		return err
	}
	password := usuarioFlags[passwordFlag].GetString()
	form := dto.RegistroForm{
		Username:        usuarioFlags[usernameFlag].GetString(),
		Email:           usuarioFlags[emailFlag].GetString(),
		Password:        password,
		ConfirmPassword: password,
	}

	svc := service.NewAuthService(repository.NewUsuarioRepository(db), service.SinRevocaciones{}, cfg)
	id, err := svc.Registrar(cmd.Context(), form)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "usuario %q creado con id %d\n", form.Username, id)
	return nil
}

func newHashCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash",
		Short: "Imprime el hash bcrypt de una contraseña",
		RunE: func(cmd *cobra.Command, _ []string) error {
			password := hashFlags[passwordFlag].GetString()
			if password == "" {
				return fmt.Errorf("--%s es obligatorio", passwordFlag)
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			h, err := bcrypt.GenerateFromPassword([]byte(password), service.CostoBcrypt(cfg))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(h))
			return nil
		},
	}
	cobraflags.RegisterMap(cmd, hashFlags)
	return cmd
}
