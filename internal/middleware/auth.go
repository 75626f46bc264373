package middleware

import (
	"context"
	"net/http"
	"strings"

	"directorio/internal/apierror"
	"directorio/internal/dto"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	// CookieSesion carries the session token of browser clients.
	CookieSesion = "sesion"
	IdentidadKey = "identidad"
)

// Modo selects how an unauthenticated request is rejected.
type Modo int

const (
	// ModoHTML redirects to the login page.
	ModoHTML Modo = iota
	// ModoAPI answers 401 with a JSON body.
	ModoAPI
)

// Verificador validates a session token.
type Verificador interface {
	Verificar(ctx context.Context, token string) (*dto.Identidad, error)
}

type identidadCtxKey struct{}

// SesionRequerida rejects requests without a valid session. The token is
// read from the session cookie or from an Authorization: Bearer header.
func SesionRequerida(v Verificador, modo Modo) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := v.Verificar(c.Request.Context(), TokenDe(c))
		if err != nil {
			log.Debug().Str("request_id", c.GetString(RequestIDKey)).Err(err).Msg("session rejected")
			rechazar(c, modo)
			return
		}

		c.Set(IdentidadKey, id)
		c.Request = c.Request.WithContext(ConIdentidad(c.Request.Context(), id))
		c.Next()
	}
}

func rechazar(c *gin.Context, modo Modo) {
	if modo == ModoAPI {
		c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("No autorizado"))
		return
	}
	c.Redirect(http.StatusSeeOther, "/login")
	c.Abort()
}

// TokenDe returns the session token of the request, or "".
func TokenDe(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	if ck, err := c.Cookie(CookieSesion); err == nil {
		return ck
	}
	return ""
}

// ConIdentidad stores id in ctx.
func ConIdentidad(ctx context.Context, id *dto.Identidad) context.Context {
	return context.WithValue(ctx, identidadCtxKey{}, id)
}

// IdentidadDe returns the identity set by SesionRequerida, if any.
func IdentidadDe(ctx context.Context) (*dto.Identidad, bool) {
	id, ok := ctx.Value(identidadCtxKey{}).(*dto.Identidad)
	return id, ok && id != nil
}
