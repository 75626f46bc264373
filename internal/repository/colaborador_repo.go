package repository

import (
	"context"

	"directorio/internal/model"

	"gorm.io/gorm"
)

type ColaboradorRepository interface {
	Almacen[model.Colaborador]
	// ListarDetalle joins colaborador -> cargo -> area/departamento and the
	// ubicacion for display.
	ListarDetalle(ctx context.Context) ([]model.ColaboradorDetalle, error)
}

type colaboradorRepo struct {
	Almacen[model.Colaborador]
	db *gorm.DB
}

func NewColaboradorRepository(db *gorm.DB) ColaboradorRepository {
	return &colaboradorRepo{Almacen: NewAlmacen[model.Colaborador](db, "nombre"), db: db}
}

func (r *colaboradorRepo) ListarDetalle(ctx context.Context) ([]model.ColaboradorDetalle, error) {
	var filas []model.ColaboradorDetalle
	err := conexion(ctx, r.db).
		Table("colaboradores co").
		Select(`co.id, co.nombre, co.cargo_id, c.descripcion AS cargo,
			c.area_id, a.nombre AS area, c.departamento_id, d.nombre AS departamento,
			co.ubicacion_id, u.descripcion AS ubicacion`).
		Joins("JOIN cargos c ON c.id = co.cargo_id").
		Joins("JOIN areas a ON a.id = c.area_id").
		Joins("JOIN departamentos d ON d.id = c.departamento_id").
		Joins("LEFT JOIN ubicaciones u ON u.id = co.ubicacion_id").
		Order("co.nombre, co.id").
		Scan(&filas).Error
	return filas, err
}
