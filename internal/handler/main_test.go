package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"directorio/internal/apperr"
	"directorio/internal/dto"
	"directorio/internal/model"
	"directorio/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func nuevoRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	plantillas, err := web.Plantillas()
	require.NoError(t, err)
	r := gin.New()
	r.SetHTMLTemplate(plantillas)
	return r
}

func postForm(r http.Handler, ruta string, valores url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, ruta, strings.NewReader(valores.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r http.Handler, ruta string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, ruta, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func cookie(w *httptest.ResponseRecorder, nombre string) *http.Cookie {
	for _, ck := range w.Result().Cookies() {
		if ck.Name == nombre {
			return ck
		}
	}
	return nil
}

// ── Service Stubs ────────────────────────────────────────────────────────────

type areaSvcStub struct {
	filas       []model.Area
	creadas     []dto.AreaForm
	errCrear    error
	errEliminar error
}

func (s *areaSvcStub) Listar(context.Context) ([]model.Area, error) { return s.filas, nil }

func (s *areaSvcStub) Crear(_ context.Context, f dto.AreaForm) (uint, error) {
	if s.errCrear != nil {
		return 0, s.errCrear
	}
	s.creadas = append(s.creadas, f)
	return uint(len(s.creadas)), nil
}

func (s *areaSvcStub) Actualizar(context.Context, uint, dto.AreaForm) error { return nil }

func (s *areaSvcStub) Eliminar(context.Context, uint) error { return s.errEliminar }

type contactoSvcStub struct {
	desfasadas int64
}

func (contactoSvcStub) Listar(context.Context) ([]model.ContactoDetalle, error)  { return nil, nil }
func (contactoSvcStub) Crear(context.Context, dto.ContactoForm) (uint, error)    { return 1, nil }
func (contactoSvcStub) Actualizar(context.Context, uint, dto.ContactoForm) error { return nil }
func (contactoSvcStub) Eliminar(context.Context, uint) error                     { return nil }
func (s contactoSvcStub) Resincronizar(context.Context) (int64, error)           { return s.desfasadas, nil }

type authSvcStub struct {
	cerradas []dto.Identidad
}

func (authSvcStub) Registrar(_ context.Context, f dto.RegistroForm) (uint, error) {
	if f.Password != f.ConfirmPassword {
		return 0, apperr.ValidacionCampos("confirm_password: las contraseñas no coinciden",
			map[string]string{"confirm_password": "las contraseñas no coinciden"})
	}
	return 1, nil
}

func (authSvcStub) Autenticar(_ context.Context, f dto.LoginForm) (*dto.Sesion, error) {
	if f.Username != "jperez" || f.Password != "secreto123" {
		return nil, apperr.Credenciales()
	}
	id := dto.Identidad{UsuarioID: 1, Username: "jperez", TokenID: "jti", Expira: time.Now().Add(8 * time.Hour)}
	return &dto.Sesion{Token: "tok", Identidad: id}, nil
}

func (authSvcStub) Verificar(_ context.Context, token string) (*dto.Identidad, error) {
	if token != "tok" {
		return nil, apperr.Credenciales()
	}
	return &dto.Identidad{UsuarioID: 1, Username: "jperez", TokenID: "jti"}, nil
}

func (s *authSvcStub) CerrarSesion(_ context.Context, id dto.Identidad) error {
	s.cerradas = append(s.cerradas, id)
	return nil
}
