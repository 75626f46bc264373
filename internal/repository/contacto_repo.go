package repository

import (
	"context"
	"fmt"

	"directorio/internal/model"

	"gorm.io/gorm"
)

// Contacto is a contact channel row (extension, celular or correo).
type Contacto interface {
	Entidad
	// ColumnaValor names the column holding the channel value.
	ColumnaValor() string
}

type ContactoRepository[T Contacto] interface {
	Almacen[T]
	// ListarDetalle returns each row with its stored area/departamento and
	// the collaborator's current ones.
	ListarDetalle(ctx context.Context) ([]model.ContactoDetalle, error)
}

type contactoRepo[T Contacto] struct {
	Almacen[T]
	db *gorm.DB
}

func NewContactoRepository[T Contacto](db *gorm.DB) ContactoRepository[T] {
	var cero T
	return &contactoRepo[T]{Almacen: NewAlmacen[T](db, cero.ColumnaValor()), db: db}
}

func NewExtensionRepository(db *gorm.DB) ContactoRepository[model.Extension] {
	return NewContactoRepository[model.Extension](db)
}

func NewCelularRepository(db *gorm.DB) ContactoRepository[model.Celular] {
	return NewContactoRepository[model.Celular](db)
}

func NewCorreoRepository(db *gorm.DB) ContactoRepository[model.Correo] {
	return NewContactoRepository[model.Correo](db)
}

func (r *contactoRepo[T]) ListarDetalle(ctx context.Context) ([]model.ContactoDetalle, error) {
	var cero T
	// Table and column names come from the model, never from input.
	q := fmt.Sprintf(`SELECT x.id, x.colaborador_id, co.nombre AS colaborador, x.%[2]s AS valor,
		x.area_id, a.nombre AS area, x.departamento_id, d.nombre AS departamento,
		c.area_id AS area_actual_id, ca.nombre AS area_actual,
		c.departamento_id AS departamento_actual_id, cd.nombre AS departamento_actual
	FROM %[1]s x
	JOIN colaboradores co ON co.id = x.colaborador_id
	JOIN cargos c ON c.id = co.cargo_id
	JOIN areas ca ON ca.id = c.area_id
	JOIN departamentos cd ON cd.id = c.departamento_id
	LEFT JOIN areas a ON a.id = x.area_id
	LEFT JOIN departamentos d ON d.id = x.departamento_id
	ORDER BY co.nombre, x.%[2]s, x.id`, cero.TableName(), cero.ColumnaValor())

	var filas []model.ContactoDetalle
	err := conexion(ctx, r.db).Raw(q).Scan(&filas).Error
	return filas, err
}
