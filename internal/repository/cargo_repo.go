package repository

import (
	"context"

	"directorio/internal/model"

	"gorm.io/gorm"
)

type CargoRepository interface {
	Almacen[model.Cargo]
	// ListarDetalle returns cargos with their area and departamento names.
	ListarDetalle(ctx context.Context) ([]model.CargoDetalle, error)
}

type cargoRepo struct {
	Almacen[model.Cargo]
	db *gorm.DB
}

func NewCargoRepository(db *gorm.DB) CargoRepository {
	return &cargoRepo{Almacen: NewAlmacen[model.Cargo](db, "descripcion"), db: db}
}

func (r *cargoRepo) ListarDetalle(ctx context.Context) ([]model.CargoDetalle, error) {
	var filas []model.CargoDetalle
	err := conexion(ctx, r.db).
		Table("cargos c").
		Select(`c.id, c.descripcion, c.area_id, a.nombre AS area,
			c.departamento_id, d.nombre AS departamento`).
		Joins("JOIN areas a ON a.id = c.area_id").
		Joins("JOIN departamentos d ON d.id = c.departamento_id").
		Order("c.descripcion, c.id").
		Scan(&filas).Error
	return filas, err
}
