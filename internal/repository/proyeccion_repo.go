package repository

import (
	"context"
	"fmt"

	"directorio/internal/model"

	"gorm.io/gorm"
)

// ProyeccionRepository recomputes the cached area/departamento columns of
// contact records from colaborador -> cargo.
type ProyeccionRepository interface {
	// RecalcularPorColaborador refreshes every contact row of one collaborator.
	RecalcularPorColaborador(ctx context.Context, colaboradorID uint) error
	// RecalcularPorCargo refreshes the contact rows of every collaborator
	// holding cargoID.
	RecalcularPorCargo(ctx context.Context, cargoID uint) error
	// RecalcularTabla fixes every drifted row of one contact table and
	// returns how many rows changed.
	RecalcularTabla(ctx context.Context, tabla string) (int64, error)
}

type proyeccionRepo struct{ db *gorm.DB }

func NewProyeccionRepository(db *gorm.DB) ProyeccionRepository { return &proyeccionRepo{db: db} }

var tablasContacto = []string{
	model.Extension{}.TableName(),
	model.Celular{}.TableName(),
	model.Correo{}.TableName(),
}

func subconsulta(tabla, columna string) string {
	return fmt.Sprintf(`(SELECT c.%[2]s FROM colaboradores co JOIN cargos c ON c.id = co.cargo_id
		WHERE co.id = %[1]s.colaborador_id)`, tabla, columna)
}

func sentenciaProyeccion(tabla, filtro string) string {
	return fmt.Sprintf("UPDATE %s SET area_id = %s, departamento_id = %s WHERE %s",
		tabla, subconsulta(tabla, "area_id"), subconsulta(tabla, "departamento_id"), filtro)
}

func (r *proyeccionRepo) RecalcularPorColaborador(ctx context.Context, colaboradorID uint) error {
	db := conexion(ctx, r.db)
	for _, t := range tablasContacto {
		if err := db.Exec(sentenciaProyeccion(t, "colaborador_id = ?"), colaboradorID).Error; err != nil {
			return fmt.Errorf("recalcular %s: %w", t, err)
		}
	}
	return nil
}

func (r *proyeccionRepo) RecalcularPorCargo(ctx context.Context, cargoID uint) error {
	db := conexion(ctx, r.db)
	filtro := "colaborador_id IN (SELECT id FROM colaboradores WHERE cargo_id = ?)"
	for _, t := range tablasContacto {
		if err := db.Exec(sentenciaProyeccion(t, filtro), cargoID).Error; err != nil {
			return fmt.Errorf("recalcular %s: %w", t, err)
		}
	}
	return nil
}

func (r *proyeccionRepo) RecalcularTabla(ctx context.Context, tabla string) (int64, error) {
	if !esTablaContacto(tabla) {
		return 0, fmt.Errorf("tabla de contacto desconocida: %q", tabla)
	}
	filtro := fmt.Sprintf("area_id <> %s OR departamento_id <> %s",
		subconsulta(tabla, "area_id"), subconsulta(tabla, "departamento_id"))
	res := conexion(ctx, r.db).Exec(sentenciaProyeccion(tabla, filtro))
	return res.RowsAffected, res.Error
}

func esTablaContacto(tabla string) bool {
	for _, t := range tablasContacto {
		if t == tabla {
			return true
		}
	}
	return false
}
