package handler

import (
	"net/http"
	"strconv"

	"directorio/internal/service"

	"github.com/gin-gonic/gin"
)

type ExportarHandler struct{ svc service.ExportacionService }

func NewExportarHandler(svc service.ExportacionService) *ExportarHandler {
	return &ExportarHandler{svc: svc}
}

// Directorio downloads the whole directory as PDF (default) or XLSX.
func (h *ExportarHandler) Directorio(c *gin.Context) {
	archivo, err := h.svc.Directorio(c.Request.Context(), c.DefaultQuery("formato", "pdf"))
	if err != nil {
		redirigirConError(c, err, "/menu")
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+strconv.Quote(archivo.Nombre))
	c.Data(http.StatusOK, archivo.TipoContenido, archivo.Datos)
}
