package service

import (
	"context"
	"strings"
	"time"

	"directorio/internal/apperr"
	"directorio/internal/dto"
	"directorio/internal/infra"
	"directorio/internal/model"
)

type ExportacionService interface {
	// Directorio renders the whole directory as "pdf" or "xlsx".
	Directorio(ctx context.Context, formato string) (*dto.Archivo, error)
}

type listadorColaboradores interface {
	ListarDetalle(ctx context.Context) ([]model.ColaboradorDetalle, error)
}

type listadorContactos interface {
	ListarDetalle(ctx context.Context) ([]model.ContactoDetalle, error)
}

type exportacionService struct {
	colaboradores listadorColaboradores
	extensiones   listadorContactos
	celulares     listadorContactos
	correos       listadorContactos
	ahora         func() time.Time
}

func NewExportacionService(colaboradores listadorColaboradores, extensiones, celulares, correos listadorContactos) ExportacionService {
	return &exportacionService{
		colaboradores: colaboradores,
		extensiones:   extensiones,
		celulares:     celulares,
		correos:       correos,
		ahora:         time.Now,
	}
}

func (s *exportacionService) Directorio(ctx context.Context, formato string) (*dto.Archivo, error) {
	formato = strings.ToLower(strings.TrimSpace(formato))
	if formato != "pdf" && formato != "xlsx" {
		return nil, apperr.Validacionf("Formato de exportación no soportado: %q (use pdf o xlsx)", formato)
	}

	filas, err := s.filas(ctx)
	if err != nil {
		return nil, err
	}
	ahora := s.ahora()
	nombre := "directorio_" + ahora.Format("20060102") + "." + formato

	if formato == "pdf" {
		datos, err := infra.DirectorioPDF(filas, ahora)
		if err != nil {
			return nil, err
		}
		return &dto.Archivo{Nombre: nombre, TipoContenido: "application/pdf", Datos: datos}, nil
	}
	datos, err := infra.DirectorioXLSX(filas)
	if err != nil {
		return nil, err
	}
	return &dto.Archivo{
		Nombre:        nombre,
		TipoContenido: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Datos:         datos,
	}, nil
}

// filas flattens collaborators and their contact channels, keeping the
// collaborator order of the listing.
func (s *exportacionService) filas(ctx context.Context) ([]model.FilaDirectorio, error) {
	colaboradores, err := s.colaboradores.ListarDetalle(ctx)
	if err != nil {
		return nil, err
	}
	filas := make([]model.FilaDirectorio, len(colaboradores))
	indice := make(map[uint]int, len(colaboradores))
	for i, c := range colaboradores {
		indice[c.ID] = i
		filas[i] = model.FilaDirectorio{
			Colaborador:  c.Nombre,
			Cargo:        c.Cargo,
			Area:         c.Area,
			Departamento: c.Departamento,
			Ubicacion:    c.Ubicacion,
		}
	}

	canales := []struct {
		repo    listadorContactos
		agregar func(f *model.FilaDirectorio, v string)
	}{
		{s.extensiones, func(f *model.FilaDirectorio, v string) { f.Extensiones = append(f.Extensiones, v) }},
		{s.celulares, func(f *model.FilaDirectorio, v string) { f.Celulares = append(f.Celulares, v) }},
		{s.correos, func(f *model.FilaDirectorio, v string) { f.Correos = append(f.Correos, v) }},
	}
	for _, canal := range canales {
		contactos, err := canal.repo.ListarDetalle(ctx)
		if err != nil {
			return nil, err
		}
		for _, c := range contactos {
			if i, ok := indice[c.ColaboradorID]; ok {
				canal.agregar(&filas[i], c.Valor)
			}
		}
	}
	return filas, nil
}
