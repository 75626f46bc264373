package service

import (
	"context"
	"errors"
	"strings"

	"directorio/internal/apperr"
	"directorio/internal/dto"
	"directorio/internal/model"
	"directorio/internal/repository"

	"github.com/rs/zerolog/log"
)

// Registro is the CRUD contract every directory screen is built on.
// F is the submitted form, R the row shown in the listing.
type Registro[F any, R any] interface {
	Listar(ctx context.Context) ([]R, error)
	Crear(ctx context.Context, form F) (uint, error)
	Actualizar(ctx context.Context, id uint, form F) error
	Eliminar(ctx context.Context, id uint) error
}

// catalogo implements Registro for entities whose form maps straight onto
// one row: areas, departamentos, ubicaciones and cargos.
type catalogo[T repository.Entidad, F any, R any] struct {
	repo      repository.Almacen[T]
	tx        repository.Transactor
	construir func(F) T
	listar    func(context.Context) ([]R, error)
	// alActualizar runs in the same transaction as the update.
	alActualizar func(ctx context.Context, id uint) error
}

func (s *catalogo[T, F, R]) Listar(ctx context.Context) ([]R, error) {
	return s.listar(ctx)
}

func (s *catalogo[T, F, R]) Crear(ctx context.Context, form F) (uint, error) {
	if err := validar(form); err != nil {
		return 0, err
	}
	e := s.construir(form)
	if err := s.repo.Crear(ctx, &e); err != nil {
		return 0, err
	}
	return e.Identificador(), nil
}

func (s *catalogo[T, F, R]) Actualizar(ctx context.Context, id uint, form F) error {
	if err := validar(form); err != nil {
		return err
	}
	e := s.construir(form)
	if s.alActualizar == nil {
		return s.repo.Actualizar(ctx, id, &e)
	}
	return s.tx.EnTransaccion(ctx, func(ctx context.Context) error {
		if err := s.repo.Actualizar(ctx, id, &e); err != nil {
			return err
		}
		return s.alActualizar(ctx, id)
	})
}

func (s *catalogo[T, F, R]) Eliminar(ctx context.Context, id uint) error {
	err := s.repo.Eliminar(ctx, id)
	if errors.Is(err, apperr.ErrConflictoReferencial) {
		var cero T
		log.Debug().Str("tabla", cero.TableName()).Uint("id", id).Err(err).Msg("delete blocked by dependent rows")
	}
	return err
}

// ── Constructors ─────────────────────────────────────────────────────────────

func NewAreaService(repo repository.Almacen[model.Area]) Registro[dto.AreaForm, model.Area] {
	return &catalogo[model.Area, dto.AreaForm, model.Area]{
		repo: repo,
		construir: func(f dto.AreaForm) model.Area {
			return model.Area{Nombre: strings.TrimSpace(f.Nombre), Descripcion: opcional(f.Descripcion)}
		},
		listar: repo.Listar,
	}
}

func NewDepartamentoService(repo repository.Almacen[model.Departamento]) Registro[dto.DepartamentoForm, model.Departamento] {
	return &catalogo[model.Departamento, dto.DepartamentoForm, model.Departamento]{
		repo: repo,
		construir: func(f dto.DepartamentoForm) model.Departamento {
			return model.Departamento{Nombre: strings.TrimSpace(f.Nombre), Descripcion: opcional(f.Descripcion)}
		},
		listar: repo.Listar,
	}
}

func NewUbicacionService(repo repository.Almacen[model.Ubicacion]) Registro[dto.UbicacionForm, model.Ubicacion] {
	return &catalogo[model.Ubicacion, dto.UbicacionForm, model.Ubicacion]{
		repo: repo,
		construir: func(f dto.UbicacionForm) model.Ubicacion {
			return model.Ubicacion{
				Descripcion:     strings.TrimSpace(f.Descripcion),
				Geolocalizacion: strings.TrimSpace(f.Geolocalizacion),
				Direccion:       strings.TrimSpace(f.Direccion),
			}
		},
		listar: repo.Listar,
	}
}

// NewCargoService keeps contact projections in sync: changing a cargo's area
// or departamento refreshes the contact rows of everyone holding it.
func NewCargoService(
	repo repository.CargoRepository,
	proy repository.ProyeccionRepository,
	tx repository.Transactor,
) Registro[dto.CargoForm, model.CargoDetalle] {
	return &catalogo[model.Cargo, dto.CargoForm, model.CargoDetalle]{
		repo: repo,
		tx:   tx,
		construir: func(f dto.CargoForm) model.Cargo {
			return model.Cargo{Descripcion: strings.TrimSpace(f.Descripcion), AreaID: f.Area, DepartamentoID: f.Departamento}
		},
		listar:       repo.ListarDetalle,
		alActualizar: proy.RecalcularPorCargo,
	}
}
