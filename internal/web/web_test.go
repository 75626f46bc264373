package web

import (
	"bytes"
	"testing"

	"directorio/internal/dto"
	"directorio/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlantillas_RenderizanCadaPantalla(t *testing.T) {
	tpl, err := Plantillas()
	require.NoError(t, err)

	areas := []model.Area{{ID: 1, Nombre: "Ventas"}}
	departamentos := []model.Departamento{{ID: 1, Nombre: "Comercial"}}
	colaboradores := []model.ColaboradorDetalle{{
		ID: 1, Nombre: "Ana Ruiz", CargoID: 1, Cargo: "Ejecutivo", AreaID: 1, Area: "Ventas",
		DepartamentoID: 1, Departamento: "Comercial", UbicacionID: 1, Ubicacion: "Matriz",
	}}

	paginas := map[string]map[string]any{
		"login.html":         {"Username": "jperez"},
		"register.html":      {"Campos": map[string]string{"email": "no es un correo válido"}},
		"menu.html":          {"Usuario": "jperez"},
		"areas.html":         {"Filas": areas},
		"departamentos.html": {"Filas": departamentos},
		"ubicaciones.html": {"Filas": []model.Ubicacion{
			{ID: 1, Descripcion: "Matriz", Geolocalizacion: "-0.18,-78.47", Direccion: "Av. Amazonas"},
		}},
		"cargos.html": {
			"Filas":         []model.CargoDetalle{{ID: 1, Descripcion: "Ejecutivo", AreaID: 1, Area: "Ventas", DepartamentoID: 1}},
			"Areas":         areas,
			"Departamentos": departamentos,
		},
		"colaboradores.html": {
			"Filas":         colaboradores,
			"Areas":         areas,
			"Departamentos": departamentos,
			"Cargos":        []model.CargoDetalle{{ID: 1, Descripcion: "Ejecutivo", Area: "Ventas", Departamento: "Comercial"}},
			"Ubicaciones":   []model.Ubicacion{{ID: 1, Descripcion: "Matriz"}},
		},
		"contactos.html": {
			"Titulo": "Extensiones", "Entidad": "extensiones", "EtiquetaValor": "Extensión", "TipoValor": "text",
			"Colaboradores": colaboradores,
			"Filas": []model.ContactoDetalle{{
				ID: 1, ColaboradorID: 1, Colaborador: "Ana Ruiz", Valor: "1234",
				AreaID: 1, Area: "Ventas", AreaActualID: 2, AreaActual: "Logística",
			}},
		},
		"productos.html": {"Filas": []model.Producto{
			{Codigo: "P001", Nombre: "Cable UTP", Precio: decimal.RequireFromString("0.5")},
		}},
		"agregar_producto.html":         {"Form": dto.ProductoForm{Codigo: "P003"}},
		"consultar_disponibilidad.html": {},
	}

	for nombre, datos := range paginas {
		t.Run(nombre, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, tpl.ExecuteTemplate(&buf, nombre, datos))
			assert.Contains(t, buf.String(), "</html>")
		})
	}
}

func TestContactos_MarcaFilasDesfasadas(t *testing.T) {
	tpl, err := Plantillas()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tpl.ExecuteTemplate(&buf, "contactos.html", map[string]any{
		"Entidad": "correos",
		"Filas": []model.ContactoDetalle{
			{ID: 1, Valor: "a@empresa.com", AreaID: 1, AreaActualID: 1, DepartamentoID: 1, DepartamentoActualID: 1},
			{ID: 2, Valor: "b@empresa.com", AreaID: 1, AreaActualID: 2, DepartamentoID: 1, DepartamentoActualID: 1},
		},
	}))
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte(`class="desfasado"`)))
	assert.Contains(t, buf.String(), `action="/correos/eliminar/2"`)
}

func TestDict(t *testing.T) {
	m, err := dict("Entidad", "areas", "ID", uint(3))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"Entidad": "areas", "ID": uint(3)}, m)

	_, err = dict("impar")
	assert.Error(t, err)
	_, err = dict(1, 2)
	assert.Error(t, err)
}
