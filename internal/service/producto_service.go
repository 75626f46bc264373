package service

import (
	"context"
	"errors"
	"strings"

	"directorio/internal/apperr"
	"directorio/internal/dto"
	"directorio/internal/model"
	"directorio/internal/repository"

	"github.com/shopspring/decimal"
)

type ProductoService interface {
	Crear(ctx context.Context, form dto.ProductoForm) (uint, error)
	Listar(ctx context.Context) ([]model.Producto, error)
	// ConsultarDisponibilidad answers the availability API. Pure read.
	ConsultarDisponibilidad(ctx context.Context, codigo string) (*dto.DisponibilidadResponse, error)
}

type productoService struct {
	repo     repository.ProductoRepository
	servidor string
}

// NewProductoService labels availability answers with servidor.
func NewProductoService(repo repository.ProductoRepository, servidor string) ProductoService {
	return &productoService{repo: repo, servidor: servidor}
}

func (s *productoService) Crear(ctx context.Context, f dto.ProductoForm) (uint, error) {
	f.Codigo = strings.TrimSpace(f.Codigo)
	if err := validar(f); err != nil {
		return 0, err
	}
	precio, err := decimal.NewFromString(strings.TrimSpace(f.Precio))
	if err != nil {
		return 0, apperr.ValidacionCampos("precio: no es un número válido", map[string]string{"precio": "no es un número válido"})
	}
	if precio.IsNegative() {
		return 0, apperr.ValidacionCampos("precio: no puede ser negativo", map[string]string{"precio": "no puede ser negativo"})
	}

	existe, err := s.repo.ExisteCodigo(ctx, f.Codigo)
	if err != nil {
		return 0, err
	}
	if existe {
		return 0, apperr.Duplicado("El código de producto ya existe", nil)
	}

	p := &model.Producto{
		Codigo:      f.Codigo,
		Nombre:      strings.TrimSpace(f.Nombre),
		Descripcion: opcional(f.Descripcion),
		Unidad:      strings.TrimSpace(f.Unidad),
		Categoria:   strings.TrimSpace(f.Categoria),
		Stock:       f.Stock,
		Precio:      precio.Round(2),
	}
	if err := s.repo.Crear(ctx, p); err != nil {
		if errors.Is(err, apperr.ErrDuplicado) {
			return 0, apperr.Duplicado("El código de producto ya existe", err)
		}
		return 0, err
	}
	return p.ID, nil
}

func (s *productoService) Listar(ctx context.Context) ([]model.Producto, error) {
	return s.repo.Listar(ctx)
}

func (s *productoService) ConsultarDisponibilidad(ctx context.Context, codigo string) (*dto.DisponibilidadResponse, error) {
	codigo = strings.TrimSpace(codigo)
	if codigo == "" {
		return nil, apperr.NoEncontrado("Producto no encontrado")
	}
	p, err := s.repo.ObtenerPorCodigo(ctx, codigo)
	if err != nil {
		if errors.Is(err, apperr.ErrNoEncontrado) {
			return nil, apperr.NoEncontrado("Producto no encontrado")
		}
		return nil, err
	}
	return &dto.DisponibilidadResponse{
		Codigo:     p.Codigo,
		Nombre:     p.Nombre,
		Stock:      p.Stock,
		Categoria:  p.Categoria,
		Disponible: p.Disponible(),
		Servidor:   s.servidor,
	}, nil
}
