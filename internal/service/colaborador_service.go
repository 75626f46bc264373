package service

import (
	"context"
	"strings"

	"directorio/internal/apperr"
	"directorio/internal/dto"
	"directorio/internal/model"
	"directorio/internal/repository"
)

type colaboradorService struct {
	repo   repository.ColaboradorRepository
	cargos repository.Almacen[model.Cargo]
	proy   repository.ProyeccionRepository
	tx     repository.Transactor
}

func NewColaboradorService(
	repo repository.ColaboradorRepository,
	cargos repository.Almacen[model.Cargo],
	proy repository.ProyeccionRepository,
	tx repository.Transactor,
) Registro[dto.ColaboradorForm, model.ColaboradorDetalle] {
	return &colaboradorService{repo: repo, cargos: cargos, proy: proy, tx: tx}
}

func (s *colaboradorService) Listar(ctx context.Context) ([]model.ColaboradorDetalle, error) {
	return s.repo.ListarDetalle(ctx)
}

func (s *colaboradorService) Crear(ctx context.Context, f dto.ColaboradorForm) (uint, error) {
	ref, err := s.preparar(f)
	if err != nil {
		return 0, err
	}
	var id uint
	err = s.tx.EnTransaccion(ctx, func(ctx context.Context) error {
		cargo, err := s.resolverCargo(ctx, ref, f)
		if err != nil {
			return err
		}
		c := model.Colaborador{Nombre: strings.TrimSpace(f.Nombre), CargoID: cargo.ID, UbicacionID: f.Ubicacion}
		if err := s.repo.Crear(ctx, &c); err != nil {
			return err
		}
		id = c.ID
		return nil
	})
	return id, err
}

// Actualizar resolves the cargo reference, writes the row and refreshes the
// collaborator's contact projections atomically.
func (s *colaboradorService) Actualizar(ctx context.Context, id uint, f dto.ColaboradorForm) error {
	ref, err := s.preparar(f)
	if err != nil {
		return err
	}
	return s.tx.EnTransaccion(ctx, func(ctx context.Context) error {
		cargo, err := s.resolverCargo(ctx, ref, f)
		if err != nil {
			return err
		}
		c := model.Colaborador{Nombre: strings.TrimSpace(f.Nombre), CargoID: cargo.ID, UbicacionID: f.Ubicacion}
		if err := s.repo.Actualizar(ctx, id, &c); err != nil {
			return err
		}
		return s.proy.RecalcularPorColaborador(ctx, id)
	})
}

func (s *colaboradorService) Eliminar(ctx context.Context, id uint) error {
	return s.repo.Eliminar(ctx, id)
}

func (s *colaboradorService) preparar(f dto.ColaboradorForm) (dto.Referencia, error) {
	if err := validar(f); err != nil {
		return dto.Referencia{}, err
	}
	return parsearReferencia(f.Cargo, "cargo")
}

// resolverCargo finds the cargo and checks it belongs to the submitted area
// and departamento.
func (s *colaboradorService) resolverCargo(ctx context.Context, ref dto.Referencia, f dto.ColaboradorForm) (*model.Cargo, error) {
	cargo, err := resolver(ctx, s.cargos, ref, func(c model.Cargo) string { return c.Descripcion }, "cargo")
	if err != nil {
		return nil, err
	}
	if cargo.AreaID != f.Area || cargo.DepartamentoID != f.Departamento {
		return nil, apperr.Validacion("El cargo seleccionado no pertenece al área y departamento indicados")
	}
	return cargo, nil
}
