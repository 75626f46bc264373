package handler

import (
	"context"
	"net/http"
	"strconv"

	"directorio/internal/apperr"
	"directorio/internal/service"

	"github.com/gin-gonic/gin"
)

// Selector lists the rows offered by one <select> of a form.
type Selector func(ctx context.Context) (any, error)

// Lista adapts a listing method into a Selector.
func Lista[R any](listar func(context.Context) ([]R, error)) Selector {
	return func(ctx context.Context) (any, error) { return listar(ctx) }
}

// Pantalla describes one directory screen.
type Pantalla struct {
	// Entidad is the URL segment: /crud_<Entidad>, /<Entidad>/editar/:id.
	Entidad   string
	Titulo    string
	Plantilla string
	// Selectores fills the form's <select> lists, keyed by template field.
	Selectores map[string]Selector
	// Extra is passed to the template unchanged.
	Extra gin.H
	// Mensajes shown after each successful write.
	Creado, Actualizado, Eliminado string
}

func (p Pantalla) listado() string { return "/crud_" + p.Entidad }

// CRUD serves list/create/update/delete for any service.Registro. Every
// write answers with a redirect to the listing and a flash message.
type CRUD[F any, R any] struct {
	svc service.Registro[F, R]
	p   Pantalla
}

func NewCRUD[F any, R any](svc service.Registro[F, R], p Pantalla) *CRUD[F, R] {
	if p.Creado == "" {
		p.Creado = "Registro creado correctamente"
	}
	if p.Actualizado == "" {
		p.Actualizado = "Registro actualizado correctamente"
	}
	if p.Eliminado == "" {
		p.Eliminado = "Registro eliminado correctamente"
	}
	return &CRUD[F, R]{svc: svc, p: p}
}

// Registrar mounts the four routes of the screen on g.
func (h *CRUD[F, R]) Registrar(g gin.IRoutes) {
	g.GET(h.p.listado(), h.Listar)
	g.POST(h.p.listado(), h.Crear)
	g.POST("/"+h.p.Entidad+"/editar/:id", h.Actualizar)
	g.POST("/"+h.p.Entidad+"/eliminar/:id", h.Eliminar)
}

func (h *CRUD[F, R]) Listar(c *gin.Context) {
	ctx := c.Request.Context()
	filas, err := h.svc.Listar(ctx)
	if err != nil {
		c.Error(err)
		return
	}

	datos := gin.H{"Titulo": h.p.Titulo, "Entidad": h.p.Entidad, "Filas": filas}
	for k, v := range h.p.Extra {
		datos[k] = v
	}
	for campo, sel := range h.p.Selectores {
		opciones, err := sel(ctx)
		if err != nil {
			c.Error(err)
			return
		}
		datos[campo] = opciones
	}
	render(c, http.StatusOK, h.p.Plantilla, datos)
}

func (h *CRUD[F, R]) Crear(c *gin.Context) {
	var form F
	if err := bindForm(c, &form); err != nil {
		redirigirConError(c, err, h.p.listado())
		return
	}
	if _, err := h.svc.Crear(c.Request.Context(), form); err != nil {
		redirigirConError(c, err, h.p.listado())
		return
	}
	flashExito(c, h.p.Creado)
	c.Redirect(http.StatusSeeOther, h.p.listado())
}

func (h *CRUD[F, R]) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		redirigirConError(c, apperr.Validacion("Identificador inválido"), h.p.listado())
		return
	}
	var form F
	if err := bindForm(c, &form); err != nil {
		redirigirConError(c, err, h.p.listado())
		return
	}
	if err := h.svc.Actualizar(c.Request.Context(), id, form); err != nil {
		redirigirConError(c, err, h.p.listado())
		return
	}
	flashExito(c, h.p.Actualizado)
	c.Redirect(http.StatusSeeOther, h.p.listado())
}

func (h *CRUD[F, R]) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		redirigirConError(c, apperr.Validacion("Identificador inválido"), h.p.listado())
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		redirigirConError(c, err, h.p.listado())
		return
	}
	flashExito(c, h.p.Eliminado)
	c.Redirect(http.StatusSeeOther, h.p.listado())
}

// Sincronizar recomputes the area/departamento projection of a contact
// store and reports how many rows changed.
func Sincronizar(svc service.ContactoService, entidad string) gin.HandlerFunc {
	destino := "/crud_" + entidad
	return func(c *gin.Context) {
		n, err := svc.Resincronizar(c.Request.Context())
		if err != nil {
			redirigirConError(c, err, destino)
			return
		}
		if n == 0 {
			flashExito(c, "Todos los registros ya estaban sincronizados")
		} else {
			flashExito(c, "Registros sincronizados: "+strconv.FormatInt(n, 10))
		}
		c.Redirect(http.StatusSeeOther, destino)
	}
}
