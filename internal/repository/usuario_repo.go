package repository

import (
	"context"

	"directorio/internal/model"

	"gorm.io/gorm"
)

type UsuarioRepository interface {
	Crear(ctx context.Context, u *model.Usuario) error
	ObtenerPorUsername(ctx context.Context, username string) (*model.Usuario, error)
	// Existe reports whether username or email is already taken.
	Existe(ctx context.Context, username, email string) (bool, error)
}

type usuarioRepo struct{ db *gorm.DB }

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository { return &usuarioRepo{db: db} }

func (r *usuarioRepo) Crear(ctx context.Context, u *model.Usuario) error {
	return clasificar(conexion(ctx, r.db).Create(u).Error, opEscritura)
}

func (r *usuarioRepo) ObtenerPorUsername(ctx context.Context, username string) (*model.Usuario, error) {
	var u model.Usuario
	err := conexion(ctx, r.db).Where("username = ?", username).First(&u).Error
	if err != nil {
		return nil, clasificar(err, opEscritura)
	}
	return &u, nil
}

func (r *usuarioRepo) Existe(ctx context.Context, username, email string) (bool, error) {
	var n int64
	err := conexion(ctx, r.db).Model(&model.Usuario{}).
		Where("username = ? OR email = ?", username, email).
		Count(&n).Error
	return n > 0, err
}
