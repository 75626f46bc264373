package repository

import (
	"context"

	"directorio/internal/model"

	"gorm.io/gorm"
)

type ProductoRepository interface {
	Crear(ctx context.Context, p *model.Producto) error
	Listar(ctx context.Context) ([]model.Producto, error)
	ObtenerPorCodigo(ctx context.Context, codigo string) (*model.Producto, error)
	ExisteCodigo(ctx context.Context, codigo string) (bool, error)
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) Crear(ctx context.Context, p *model.Producto) error {
	return clasificar(conexion(ctx, r.db).Create(p).Error, opEscritura)
}

func (r *productoRepo) Listar(ctx context.Context) ([]model.Producto, error) {
	var list []model.Producto
	err := conexion(ctx, r.db).Order("nombre").Find(&list).Error
	return list, err
}

func (r *productoRepo) ObtenerPorCodigo(ctx context.Context, codigo string) (*model.Producto, error) {
	var p model.Producto
	err := conexion(ctx, r.db).Where("codigo = ?", codigo).First(&p).Error
	if err != nil {
		return nil, clasificar(err, opEscritura)
	}
	return &p, nil
}

func (r *productoRepo) ExisteCodigo(ctx context.Context, codigo string) (bool, error) {
	var n int64
	err := conexion(ctx, r.db).Model(&model.Producto{}).Where("codigo = ?", codigo).Count(&n).Error
	return n > 0, err
}
