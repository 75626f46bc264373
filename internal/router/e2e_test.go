//go:build integration

package router_test

// End-to-end tests against real MySQL and Redis started with testcontainers.
// Run with: go test -tags integration ./internal/router/... -v

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"directorio/internal/config"
	"directorio/internal/infra"
	"directorio/internal/middleware"
	"directorio/internal/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcMySQL "github.com/testcontainers/testcontainers-go/modules/mysql"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
	"golang.org/x/crypto/bcrypt"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

type testEnv struct {
	server *httptest.Server
	client *http.Client
}

// nuevoCliente keeps cookies and never follows redirects, so tests can
// assert on the 303 responses.
func nuevoCliente(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func (e *testEnv) post(t *testing.T, ruta string, form url.Values) *http.Response {
	t.Helper()
	resp, err := e.client.PostForm(e.server.URL+ruta, form)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func (e *testEnv) get(t *testing.T, ruta string) (*http.Response, string) {
	t.Helper()
	resp, err := e.client.Get(e.server.URL + ruta)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

// crear posts a CRUD form and expects the redirect back to its listing.
func (e *testEnv) crear(t *testing.T, entidad string, form url.Values) {
	t.Helper()
	resp := e.post(t, "/crud_"+entidad, form)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/crud_"+entidad, resp.Header.Get("Location"))
}

func (e *testEnv) tokenSesion(t *testing.T) string {
	t.Helper()
	u, err := url.Parse(e.server.URL)
	require.NoError(t, err)
	for _, ck := range e.client.Jar.Cookies(u) {
		if ck.Name == middleware.CookieSesion {
			return ck.Value
		}
	}
	t.Fatal("session cookie not set")
	return ""
}

// ── Test Suite Setup ─────────────────────────────────────────────────────────

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	mysqlC, err := tcMySQL.Run(ctx, "mysql:8.0",
		tcMySQL.WithDatabase("db_informacion"),
		tcMySQL.WithUsername("directorio"),
		tcMySQL.WithPassword("directorio"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = mysqlC.Terminate(ctx) })

	host, err := mysqlC.Host(ctx)
	require.NoError(t, err)
	port, err := mysqlC.MappedPort(ctx, "3306/tcp")
	require.NoError(t, err)

	redisC, err := tcRedis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err)
	t.Cleanup(func() { _ = redisC.Terminate(ctx) })

	redisURL, err := redisC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Port:            5000,
		Env:             "test",
		ServidorNombre:  "Servidor E2E",
		LogLevel:        "info",
		DBDriver:        "mysql",
		MySQLHost:       host,
		MySQLPort:       port.Int(),
		MySQLUser:       "directorio",
		MySQLPassword:   "directorio",
		MySQLDB:         "db_informacion",
		DBMaxRetries:    10,
		DBRetryInterval: time.Second,
		RedisURL:        redisURL,
		SecretKey:       "e2e-secret",
		SessionHours:    8,
		BcryptCost:      bcrypt.MinCost,
		CORSOrigins:     "*",
	}

	db, err := infra.ConectarConReintentos(ctx, cfg)
	require.NoError(t, err)
	require.NoError(t, infra.Migrar(cfg))
	// Migrations run on their own pool; none of the application's connections stay checked out.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.Zero(t, sqlDB.Stats().InUse)

	rdb, err := infra.NewRedis(ctx, cfg.RedisURL)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })

	r, err := router.New(cfg, db, rdb)
	require.NoError(t, err)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	env := &testEnv{server: srv, client: nuevoCliente(t)}

	resp := env.post(t, "/register", url.Values{
		"username": {"jperez"}, "email": {"jperez@empresa.com"},
		"password": {"secreto123"}, "confirm_password": {"secreto123"},
	})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	resp = env.post(t, "/login", url.Values{"username": {"jperez"}, "password": {"secreto123"}})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/menu", resp.Header.Get("Location"))

	return env
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestE2E_Directorio(t *testing.T) {
	env := setupTestEnv(t)

	env.crear(t, "areas", url.Values{"nombre": {"Ventas"}})
	env.crear(t, "departamentos", url.Values{"nombre": {"Comercial"}})
	env.crear(t, "ubicaciones", url.Values{
		"descripcion": {"Matriz"}, "geolocalizacion": {"-0.18,-78.47"}, "direccion": {"Av. Amazonas"},
	})
	env.crear(t, "cargos", url.Values{"descripcion": {"Ejecutivo"}, "area": {"1"}, "departamento": {"1"}})
	// The cargo is referenced by its description, as legacy forms did.
	env.crear(t, "colaboradores", url.Values{
		"nombre": {"Ana Ruiz"}, "area": {"1"}, "departamento": {"1"}, "cargo": {"ejecutivo"}, "ubicacion": {"1"},
	})
	env.crear(t, "extensiones", url.Values{"colaborador": {"1"}, "valor": {"1234"}})

	_, body := env.get(t, "/crud_colaboradores")
	assert.Contains(t, body, "Registro creado correctamente")
	assert.Contains(t, body, "Ana Ruiz")

	resp, body := env.get(t, "/crud_extensiones")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `value="1234"`)
	assert.Contains(t, body, "Ventas")
	assert.NotContains(t, body, `class="desfasado"`)

	// Rows referenced by cargos cannot be deleted.
	resp = env.post(t, "/areas/eliminar/1", nil)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	_, body = env.get(t, "/crud_areas")
	assert.Contains(t, body, "No se puede eliminar")
	assert.Contains(t, body, `value="Ventas"`)

	// Moving the cargo to another area refreshes the contact projection.
	env.crear(t, "areas", url.Values{"nombre": {"Logística"}})
	resp = env.post(t, "/cargos/editar/1", url.Values{"descripcion": {"Ejecutivo"}, "area": {"2"}, "departamento": {"1"}})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	_, body = env.get(t, "/crud_extensiones")
	assert.Contains(t, body, "Logística")
	assert.NotContains(t, body, `class="desfasado"`)

	resp = env.post(t, "/extensiones/sincronizar", nil)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	_, body = env.get(t, "/crud_extensiones")
	assert.Contains(t, body, "Todos los registros ya estaban sincronizados")

	resp, _ = env.get(t, "/directorio/exportar?formato=xlsx")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), ".xlsx")
}

func TestE2E_DisponibilidadYSesion(t *testing.T) {
	env := setupTestEnv(t)

	for i, stock := range []int{0, 5} {
		resp := env.post(t, "/agregar_producto", url.Values{
			"codigo": {"P00" + strconv.Itoa(i+1)}, "nombre": {"Producto " + strconv.Itoa(i+1)},
			"unidad": {"u"}, "categoria": {"Redes"}, "stock": {strconv.Itoa(stock)}, "precio": {"10.50"},
		})
		require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	}

	resp, body := env.get(t, "/api/producto/P002")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var disp struct {
		Codigo     string `json:"codigo"`
		Stock      int    `json:"stock"`
		Disponible bool   `json:"disponible"`
		Servidor   string `json:"servidor"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &disp))
	assert.Equal(t, "P002", disp.Codigo)
	assert.True(t, disp.Disponible)
	assert.Equal(t, "Servidor E2E", disp.Servidor)

	_, body = env.get(t, "/api/producto/P001")
	assert.Contains(t, body, `"disponible":false`)

	resp, _ = env.get(t, "/api/producto/NOEXISTE")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	anonimo := &testEnv{server: env.server, client: nuevoCliente(t)}
	resp, _ = anonimo.get(t, "/api/producto/P002")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp, _ = anonimo.get(t, "/menu")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)

	// After logout the old token is revoked even if replayed as a Bearer token.
	token := env.tokenSesion(t)
	resp, _ = env.get(t, "/logout")
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	req, err := http.NewRequest(http.MethodGet, env.server.URL+"/api/producto/P002", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	replay, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer replay.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, replay.StatusCode)
	assert.True(t, strings.HasPrefix(replay.Header.Get("Content-Type"), "application/json"))
}
