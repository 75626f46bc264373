package handler

import (
	"net/http"

	"directorio/internal/apierror"
	"directorio/internal/dto"
	"directorio/internal/service"

	"github.com/gin-gonic/gin"
)

type ProductosHandler struct{ svc service.ProductoService }

func NewProductosHandler(svc service.ProductoService) *ProductosHandler {
	return &ProductosHandler{svc: svc}
}

func (h *ProductosHandler) Listar(c *gin.Context) {
	productos, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	render(c, http.StatusOK, "productos.html", gin.H{"Titulo": "Productos", "Filas": productos})
}

func (h *ProductosHandler) FormAgregar(c *gin.Context) {
	render(c, http.StatusOK, "agregar_producto.html", gin.H{"Titulo": "Agregar producto", "Form": dto.ProductoForm{}})
}

// Agregar re-renders the form with the submitted values on failure.
func (h *ProductosHandler) Agregar(c *gin.Context) {
	var form dto.ProductoForm
	err := bindForm(c, &form)
	if err == nil {
		_, err = h.svc.Crear(c.Request.Context(), form)
	}
	if err != nil {
		render(c, estadoHTTP(err), "agregar_producto.html", gin.H{
			"Titulo": "Agregar producto",
			"Form":   form,
			"Flash":  &Flash{Tipo: "error", Mensaje: mensajeUsuario(c, err)},
		})
		return
	}
	flashExito(c, "Producto agregado correctamente")
	c.Redirect(http.StatusSeeOther, "/productos")
}

func (h *ProductosHandler) Consultar(c *gin.Context) {
	render(c, http.StatusOK, "consultar_disponibilidad.html", gin.H{"Titulo": "Consultar disponibilidad"})
}

// Disponibilidad godoc
// @Summary Disponibilidad de un producto por código
// @Tags producto
// @Produce json
// @Param codigo path string true "Código del producto"
// @Success 200 {object} dto.DisponibilidadResponse
// @Failure 401 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Router /api/producto/{codigo} [get]
func (h *ProductosHandler) Disponibilidad(c *gin.Context) {
	resp, err := h.svc.ConsultarDisponibilidad(c.Request.Context(), c.Param("codigo"))
	if err != nil {
		status := estadoHTTP(err)
		if status == http.StatusInternalServerError {
			c.Error(err)
			return
		}
		c.JSON(status, apierror.New(mensajeUsuario(c, err)))
		return
	}
	c.JSON(http.StatusOK, resp)
}
