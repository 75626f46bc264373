package handler

import (
	"errors"
	"net/http"
	"time"

	"directorio/internal/apperr"
	"directorio/internal/dto"
	"directorio/internal/middleware"
	"directorio/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type AuthHandler struct {
	svc          service.AuthService
	cookieSecure bool
}

func NewAuthHandler(svc service.AuthService, cookieSecure bool) *AuthHandler {
	return &AuthHandler{svc: svc, cookieSecure: cookieSecure}
}

func (h *AuthHandler) FormLogin(c *gin.Context) {
	render(c, http.StatusOK, "login.html", nil)
}

// Login checks the credentials and stores the session token in an HttpOnly
// cookie. Failures re-render the form.
func (h *AuthHandler) Login(c *gin.Context) {
	var form dto.LoginForm
	if err := bindForm(c, &form); err != nil {
		h.renderLogin(c, err, form.Username)
		return
	}

	sesion, err := h.svc.Autenticar(c.Request.Context(), form)
	if err != nil {
		h.renderLogin(c, err, form.Username)
		return
	}

	maxAge := int(time.Until(sesion.Identidad.Expira).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.CookieSesion, sesion.Token, maxAge, "/", "", h.cookieSecure, true)
	log.Info().Uint("user_id", sesion.Identidad.UsuarioID).Str("username", sesion.Identidad.Username).Msg("login")
	c.Redirect(http.StatusSeeOther, "/menu")
}

func (h *AuthHandler) renderLogin(c *gin.Context, err error, username string) {
	render(c, estadoHTTP(err), "login.html", gin.H{
		"Flash":    &Flash{Tipo: "error", Mensaje: mensajeUsuario(c, err)},
		"Username": username,
	})
}

func (h *AuthHandler) FormRegistro(c *gin.Context) {
	render(c, http.StatusOK, "register.html", nil)
}

func (h *AuthHandler) Registro(c *gin.Context) {
	var form dto.RegistroForm
	if err := bindForm(c, &form); err != nil {
		h.renderRegistro(c, err, form)
		return
	}
	if _, err := h.svc.Registrar(c.Request.Context(), form); err != nil {
		h.renderRegistro(c, err, form)
		return
	}
	flashExito(c, "Usuario registrado correctamente. Inicie sesión.")
	c.Redirect(http.StatusSeeOther, "/login")
}

func (h *AuthHandler) renderRegistro(c *gin.Context, err error, form dto.RegistroForm) {
	datos := gin.H{
		"Flash":    &Flash{Tipo: "error", Mensaje: mensajeUsuario(c, err)},
		"Username": form.Username,
		"Email":    form.Email,
	}
	var ae *apperr.Error
	if errors.As(err, &ae) && len(ae.Campos) > 0 {
		datos["Campos"] = ae.Campos
	}
	render(c, estadoHTTP(err), "register.html", datos)
}

// Logout revokes the current token (when a revocation store is configured)
// and clears the cookie. It never fails from the user's point of view.
func (h *AuthHandler) Logout(c *gin.Context) {
	ctx := c.Request.Context()
	if id, err := h.svc.Verificar(ctx, middleware.TokenDe(c)); err == nil {
		if err := h.svc.CerrarSesion(ctx, *id); err != nil {
			log.Warn().Err(err).Str("request_id", c.GetString(middleware.RequestIDKey)).Msg("session revocation failed")
		}
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.CookieSesion, "", -1, "/", "", h.cookieSecure, true)
	flashExito(c, "Sesión cerrada")
	c.Redirect(http.StatusSeeOther, "/login")
}

func (h *AuthHandler) Menu(c *gin.Context) {
	render(c, http.StatusOK, "menu.html", gin.H{"Titulo": "Menú principal"})
}
