package service

import (
	"context"
	"strings"

	"directorio/internal/apperr"
	"directorio/internal/dto"
	"directorio/internal/model"
	"directorio/internal/repository"

	"github.com/rs/zerolog/log"
)

// ContactoService manages one contact channel.
type ContactoService interface {
	Registro[dto.ContactoForm, model.ContactoDetalle]
	// Resincronizar recomputes the area/departamento projection of every row
	// and returns how many rows had drifted.
	Resincronizar(ctx context.Context) (int64, error)
}

// TipoContacto describes a contact channel: its label, the validation rule
// of its value and how to build the row.
type TipoContacto[T repository.Contacto] struct {
	Nombre    string
	Regla     string
	Construir func(v model.Vinculo, valor string) T
}

var (
	TipoExtension = TipoContacto[model.Extension]{
		Nombre: "extension",
		Regla:  "required,numeric,min=2,max=6",
		Construir: func(v model.Vinculo, valor string) model.Extension {
			return model.Extension{Vinculo: v, Extension: valor}
		},
	}
	TipoCelular = TipoContacto[model.Celular]{
		Nombre: "celular",
		Regla:  "required,numeric,min=7,max=15",
		Construir: func(v model.Vinculo, valor string) model.Celular {
			return model.Celular{Vinculo: v, Celular: valor}
		},
	}
	TipoCorreo = TipoContacto[model.Correo]{
		Nombre: "correo",
		Regla:  "required,email,max=50",
		Construir: func(v model.Vinculo, valor string) model.Correo {
			return model.Correo{Vinculo: v, Correo: valor}
		},
	}
)

type contactoService[T repository.Contacto] struct {
	tipo          TipoContacto[T]
	repo          repository.ContactoRepository[T]
	colaboradores repository.Almacen[model.Colaborador]
	cargos        repository.Almacen[model.Cargo]
	proy          repository.ProyeccionRepository
	tx            repository.Transactor
}

func NewContactoService[T repository.Contacto](
	tipo TipoContacto[T],
	repo repository.ContactoRepository[T],
	colaboradores repository.Almacen[model.Colaborador],
	cargos repository.Almacen[model.Cargo],
	proy repository.ProyeccionRepository,
	tx repository.Transactor,
) ContactoService {
	return &contactoService[T]{
		tipo: tipo, repo: repo, colaboradores: colaboradores, cargos: cargos, proy: proy, tx: tx,
	}
}

func (s *contactoService[T]) Listar(ctx context.Context) ([]model.ContactoDetalle, error) {
	return s.repo.ListarDetalle(ctx)
}

func (s *contactoService[T]) Crear(ctx context.Context, f dto.ContactoForm) (uint, error) {
	ref, valor, err := s.validar(f)
	if err != nil {
		return 0, err
	}
	var id uint
	err = s.tx.EnTransaccion(ctx, func(ctx context.Context) error {
		e, err := s.construir(ctx, ref, valor, f)
		if err != nil {
			return err
		}
		if err := s.repo.Crear(ctx, &e); err != nil {
			return err
		}
		id = e.Identificador()
		return nil
	})
	return id, err
}

func (s *contactoService[T]) Actualizar(ctx context.Context, id uint, f dto.ContactoForm) error {
	ref, valor, err := s.validar(f)
	if err != nil {
		return err
	}
	return s.tx.EnTransaccion(ctx, func(ctx context.Context) error {
		e, err := s.construir(ctx, ref, valor, f)
		if err != nil {
			return err
		}
		return s.repo.Actualizar(ctx, id, &e)
	})
}

func (s *contactoService[T]) Eliminar(ctx context.Context, id uint) error {
	return s.repo.Eliminar(ctx, id)
}

func (s *contactoService[T]) Resincronizar(ctx context.Context) (int64, error) {
	var cero T
	n, err := s.proy.RecalcularTabla(ctx, cero.TableName())
	if err != nil {
		return 0, err
	}
	log.Info().Str("tabla", cero.TableName()).Int64("filas", n).Msg("contact projection resynced")
	return n, nil
}

func (s *contactoService[T]) validar(f dto.ContactoForm) (dto.Referencia, string, error) {
	if err := validar(f); err != nil {
		return dto.Referencia{}, "", err
	}
	valor := strings.TrimSpace(f.Valor)
	if err := validarValor(s.tipo.Nombre, valor, s.tipo.Regla); err != nil {
		return dto.Referencia{}, "", err
	}
	ref, err := parsearReferencia(f.Colaborador, "colaborador")
	return ref, valor, err
}

// construir resolves the collaborator (by id, or by name for legacy input)
// and derives the area/departamento projection from its current cargo.
func (s *contactoService[T]) construir(ctx context.Context, ref dto.Referencia, valor string, f dto.ContactoForm) (T, error) {
	var cero T
	colab, err := resolver(ctx, s.colaboradores, ref, func(c model.Colaborador) string { return c.Nombre }, "colaborador")
	if err != nil {
		return cero, err
	}
	cargo, err := s.cargos.ObtenerPorID(ctx, colab.CargoID)
	if err != nil {
		return cero, err
	}
	v := model.Vinculo{ColaboradorID: colab.ID, AreaID: cargo.AreaID, DepartamentoID: cargo.DepartamentoID}
	if (f.Area != 0 && f.Area != v.AreaID) || (f.Departamento != 0 && f.Departamento != v.DepartamentoID) {
		return cero, apperr.Validacion("El área y departamento deben coincidir con el cargo actual del colaborador")
	}
	return s.tipo.Construir(v, valor), nil
}
