package service

import (
	"context"
	"testing"

	"directorio/internal/apperr"
	"directorio/internal/dto"
	"directorio/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nuevoExtensiones(o *organigrama) (ContactoService, *almacenStub[model.Extension]) {
	repo := nuevoAlmacen(func(e *model.Extension, id uint) { e.ID = id })
	svc := NewContactoService(TipoExtension, contactoRepoStub[model.Extension]{almacenStub: repo}, o.colaboradores, o.cargos, o.proy, o.tx)
	return svc, repo
}

func TestContacto_VinculoDerivadoDelCargo(t *testing.T) {
	o := nuevoOrganigrama(t)
	svc, repo := nuevoExtensiones(o)

	id, err := svc.Crear(context.Background(), dto.ContactoForm{Colaborador: "1", Valor: " 1234 "})
	require.NoError(t, err)

	assert.Equal(t, model.Extension{
		ID:        id,
		Vinculo:   model.Vinculo{ColaboradorID: 1, AreaID: 1, DepartamentoID: 1},
		Extension: "1234",
	}, repo.filas[id])
	assert.Equal(t, 1, o.tx.transacciones)
}

func TestContacto_ColaboradorPorNombre(t *testing.T) {
	o := nuevoOrganigrama(t)
	svc, repo := nuevoExtensiones(o)

	id, err := svc.Crear(context.Background(), dto.ContactoForm{Colaborador: "ana ruiz", Valor: "1234", Area: 1, Departamento: 1})
	require.NoError(t, err)
	assert.Equal(t, uint(1), repo.filas[id].ColaboradorID)
}

func TestContacto_ValorExtension(t *testing.T) {
	o := nuevoOrganigrama(t)
	svc, repo := nuevoExtensiones(o)

	for _, valor := range []string{"12a", "1", "1234567", ""} {
		_, err := svc.Crear(context.Background(), dto.ContactoForm{Colaborador: "1", Valor: valor})
		assert.ErrorIs(t, err, apperr.ErrValidacion, valor)
	}
	assert.Empty(t, repo.filas)
}

func TestContacto_ValorCorreo(t *testing.T) {
	o := nuevoOrganigrama(t)
	repo := nuevoAlmacen(func(c *model.Correo, id uint) { c.ID = id })
	svc := NewContactoService(TipoCorreo, contactoRepoStub[model.Correo]{almacenStub: repo}, o.colaboradores, o.cargos, o.proy, o.tx)
	ctx := context.Background()

	_, err := svc.Crear(ctx, dto.ContactoForm{Colaborador: "1", Valor: "ana.empresa.com"})
	require.ErrorIs(t, err, apperr.ErrValidacion)
	assert.Contains(t, apperr.Mensaje(err), "correo")

	id, err := svc.Crear(ctx, dto.ContactoForm{Colaborador: "1", Valor: "ana@empresa.com"})
	require.NoError(t, err)
	assert.Equal(t, "ana@empresa.com", repo.filas[id].Correo)
}

func TestContacto_AreaDistintaDelCargo(t *testing.T) {
	o := nuevoOrganigrama(t)
	svc, repo := nuevoExtensiones(o)

	_, err := svc.Crear(context.Background(), dto.ContactoForm{Colaborador: "1", Valor: "1234", Area: 2, Departamento: 1})
	require.ErrorIs(t, err, apperr.ErrValidacion)
	assert.Equal(t, "El área y departamento deben coincidir con el cargo actual del colaborador", apperr.Mensaje(err))
	assert.Empty(t, repo.filas)
}

func TestContacto_ColaboradorInexistente(t *testing.T) {
	o := nuevoOrganigrama(t)
	svc, _ := nuevoExtensiones(o)

	_, err := svc.Crear(context.Background(), dto.ContactoForm{Colaborador: "Pedro Paz", Valor: "1234"})
	assert.ErrorIs(t, err, apperr.ErrValidacion)
}

func TestContacto_ActualizarRecalculaVinculo(t *testing.T) {
	o := nuevoOrganigrama(t)
	svc, repo := nuevoExtensiones(o)
	ctx := context.Background()
	id, err := svc.Crear(ctx, dto.ContactoForm{Colaborador: "1", Valor: "1234"})
	require.NoError(t, err)

	// Ana moves to a cargo in another area.
	require.NoError(t, o.cargos.Crear(ctx, &model.Cargo{Descripcion: "Analista", AreaID: 2, DepartamentoID: 2}))
	o.colaboradores.filas[1] = model.Colaborador{ID: 1, Nombre: "Ana Ruiz", CargoID: 2, UbicacionID: 1}

	require.NoError(t, svc.Actualizar(ctx, id, dto.ContactoForm{Colaborador: "1", Valor: "4321"}))
	assert.Equal(t, model.Vinculo{ColaboradorID: 1, AreaID: 2, DepartamentoID: 2}, repo.filas[id].Vinculo)
	assert.Equal(t, "4321", repo.filas[id].Extension)
}

func TestContacto_Resincronizar(t *testing.T) {
	o := nuevoOrganigrama(t)
	o.proy.desfasadas = 3
	svc, _ := nuevoExtensiones(o)

	n, err := svc.Resincronizar(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.Equal(t, []string{"extensiones"}, o.proy.tablas)
}
