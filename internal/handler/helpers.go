package handler

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strconv"

	"directorio/internal/apperr"
	"directorio/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const cookieFlash = "flash"

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Tipo    string `json:"t"` // exito | error
	Mensaje string `json:"m"`
}

func flashExito(c *gin.Context, msg string) { setFlash(c, Flash{Tipo: "exito", Mensaje: msg}) }
func flashError(c *gin.Context, msg string) { setFlash(c, Flash{Tipo: "error", Mensaje: msg}) }

func setFlash(c *gin.Context, f Flash) {
	raw, _ := json.Marshal(f)
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cookieFlash, base64.RawURLEncoding.EncodeToString(raw), 60, "/", "", false, true)
}

// leerFlash returns the pending flash, if any, and clears it.
func leerFlash(c *gin.Context) *Flash {
	v, err := c.Cookie(cookieFlash)
	if err != nil || v == "" {
		return nil
	}
	c.SetCookie(cookieFlash, "", -1, "/", "", false, true)

	raw, err := base64.RawURLEncoding.DecodeString(v)
	if err != nil {
		return nil
	}
	var f Flash
	if json.Unmarshal(raw, &f) != nil || f.Mensaje == "" {
		return nil
	}
	return &f
}

// render executes an HTML template adding the fields every page uses.
func render(c *gin.Context, status int, plantilla string, datos gin.H) {
	if datos == nil {
		datos = gin.H{}
	}
	if _, ok := datos["Flash"]; !ok {
		datos["Flash"] = leerFlash(c)
	}
	if id, ok := middleware.IdentidadDe(c.Request.Context()); ok {
		datos["Usuario"] = id.Username
	}
	c.HTML(status, plantilla, datos)
}

// bindForm binds a urlencoded or multipart form. Type errors (e.g. letters
// in a numeric select) come back as a validation error.
func bindForm(c *gin.Context, dst any) error {
	if err := c.ShouldBind(dst); err != nil {
		return apperr.Validacion("Formulario inválido: revise los campos numéricos")
	}
	return nil
}

func parseID(c *gin.Context) (uint, bool) {
	n, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}

// estadoHTTP maps an error kind onto a status code.
func estadoHTTP(err error) int {
	switch apperr.TipoDe(err) {
	case apperr.TipoValidacion:
		return http.StatusBadRequest
	case apperr.TipoDuplicado, apperr.TipoConflicto:
		return http.StatusConflict
	case apperr.TipoNoEncontrado:
		return http.StatusNotFound
	case apperr.TipoCredenciales:
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}

// mensajeUsuario returns the text to show for err, logging errors that
// carry no user-facing classification.
func mensajeUsuario(c *gin.Context, err error) string {
	if !apperr.Conocido(err) {
		log.Error().
			Str("request_id", c.GetString(middleware.RequestIDKey)).
			Str("path", c.Request.URL.Path).
			Err(err).
			Msg("request failed")
	}
	return apperr.Mensaje(err)
}

// redirigirConError flashes err and sends the browser to destino.
func redirigirConError(c *gin.Context, err error, destino string) {
	flashError(c, mensajeUsuario(c, err))
	c.Redirect(http.StatusSeeOther, destino)
}
