package repository

import (
	"context"

	"directorio/internal/apperr"

	"gorm.io/gorm"
)

// Entidad is implemented by every model managed through an Almacen.
type Entidad interface {
	TableName() string
	Identificador() uint
	// ColumnasEditables lists the columns an update may touch.
	ColumnasEditables() []string
}

// Almacen is the CRUD repository shared by every directory entity.
// Errors are already classified with apperr.
type Almacen[T Entidad] interface {
	Crear(ctx context.Context, e *T) error
	Actualizar(ctx context.Context, id uint, e *T) error
	Eliminar(ctx context.Context, id uint) error
	ObtenerPorID(ctx context.Context, id uint) (*T, error)
	Listar(ctx context.Context) ([]T, error)
}

type almacen[T Entidad] struct {
	db    *gorm.DB
	orden string
}

// NewAlmacen returns an Almacen for T listing rows by orden.
func NewAlmacen[T Entidad](db *gorm.DB, orden string) Almacen[T] {
	return &almacen[T]{db: db, orden: orden}
}

func (r *almacen[T]) Crear(ctx context.Context, e *T) error {
	return clasificar(conexion(ctx, r.db).Create(e).Error, opEscritura)
}

func (r *almacen[T]) Actualizar(ctx context.Context, id uint, e *T) error {
	var cero T
	res := conexion(ctx, r.db).
		Model(new(T)).
		Where("id = ?", id).
		Select(cero.ColumnasEditables()).
		Updates(e)
	if res.Error != nil {
		return clasificar(res.Error, opEscritura)
	}
	if res.RowsAffected == 0 {
		return apperr.NoEncontrado("El registro no existe")
	}
	return nil
}

func (r *almacen[T]) Eliminar(ctx context.Context, id uint) error {
	res := conexion(ctx, r.db).Delete(new(T), id)
	if res.Error != nil {
		return clasificar(res.Error, opBorrado)
	}
	if res.RowsAffected == 0 {
		return apperr.NoEncontrado("El registro no existe")
	}
	return nil
}

func (r *almacen[T]) ObtenerPorID(ctx context.Context, id uint) (*T, error) {
	var e T
	if err := conexion(ctx, r.db).First(&e, id).Error; err != nil {
		return nil, clasificar(err, opEscritura)
	}
	return &e, nil
}

func (r *almacen[T]) Listar(ctx context.Context) ([]T, error) {
	var list []T
	err := conexion(ctx, r.db).Order(r.orden).Find(&list).Error
	return list, clasificar(err, opEscritura)
}
