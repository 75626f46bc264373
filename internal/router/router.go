package router

import (
	"net/http"
	"time"

	"directorio/internal/config"
	"directorio/internal/dto"
	"directorio/internal/handler"
	"directorio/internal/infra"
	"directorio/internal/middleware"
	"directorio/internal/model"
	"directorio/internal/repository"
	"directorio/internal/service"
	"directorio/internal/web"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis.
// rdb may be nil: sessions then cannot be revoked before they expire.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) (*gin.Engine, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	plantillas, err := web.Plantillas()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.SetHTMLTemplate(plantillas)

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	tx := repository.NewTransactor(db)
	usuarioRepo := repository.NewUsuarioRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	areaRepo := repository.NewAlmacen[model.Area](db, "nombre")
	departamentoRepo := repository.NewAlmacen[model.Departamento](db, "nombre")
	ubicacionRepo := repository.NewAlmacen[model.Ubicacion](db, "descripcion")
	cargoRepo := repository.NewCargoRepository(db)
	colaboradorRepo := repository.NewColaboradorRepository(db)
	extensionRepo := repository.NewExtensionRepository(db)
	celularRepo := repository.NewCelularRepository(db)
	correoRepo := repository.NewCorreoRepository(db)
	proyeccionRepo := repository.NewProyeccionRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	var revocaciones service.Revocaciones = service.SinRevocaciones{}
	if rdb != nil {
		revocaciones = infra.NewRevocaciones(rdb)
	}
	authSvc := service.NewAuthService(usuarioRepo, revocaciones, cfg)
	productoSvc := service.NewProductoService(productoRepo, cfg.ServidorNombre)

	areaSvc := service.NewAreaService(areaRepo)
	departamentoSvc := service.NewDepartamentoService(departamentoRepo)
	ubicacionSvc := service.NewUbicacionService(ubicacionRepo)
	cargoSvc := service.NewCargoService(cargoRepo, proyeccionRepo, tx)
	colaboradorSvc := service.NewColaboradorService(colaboradorRepo, cargoRepo, proyeccionRepo, tx)

	extensionSvc := service.NewContactoService(service.TipoExtension, extensionRepo, colaboradorRepo, cargoRepo, proyeccionRepo, tx)
	celularSvc := service.NewContactoService(service.TipoCelular, celularRepo, colaboradorRepo, cargoRepo, proyeccionRepo, tx)
	correoSvc := service.NewContactoService(service.TipoCorreo, correoRepo, colaboradorRepo, cargoRepo, proyeccionRepo, tx)

	exportacionSvc := service.NewExportacionService(colaboradorRepo, extensionRepo, celularRepo, correoRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc, cfg.CookieSecure)
	productosH := handler.NewProductosHandler(productoSvc)
	exportarH := handler.NewExportarHandler(exportacionSvc)

	areas := handler.Lista(areaSvc.Listar)
	departamentos := handler.Lista(departamentoSvc.Listar)
	colaboradores := handler.Lista(colaboradorSvc.Listar)

	pantallaContacto := func(entidad, titulo, etiqueta, tipo string) handler.Pantalla {
		return handler.Pantalla{
			Entidad:    entidad,
			Titulo:     titulo,
			Plantilla:  "contactos.html",
			Selectores: map[string]handler.Selector{"Colaboradores": colaboradores},
			Extra:      gin.H{"EtiquetaValor": etiqueta, "TipoValor": tipo},
		}
	}

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))
	r.GET("/login", authH.FormLogin)
	r.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	r.GET("/register", authH.FormRegistro)
	r.POST("/register", middleware.LoginRateLimiter(), authH.Registro)
	r.GET("/logout", authH.Logout)

	// JSON API, session cookie or Bearer token
	api := r.Group("/api", middleware.CORS(cfg.AllowedOrigins()), middleware.SesionRequerida(authSvc, middleware.ModoAPI))
	{
		api.GET("/producto/:codigo", productosH.Disponibilidad)
		// Preflight requests are answered by the CORS middleware.
		api.OPTIONS("/*ruta", func(*gin.Context) {})
	}

	// Intranet screens
	app := r.Group("", middleware.SesionRequerida(authSvc, middleware.ModoHTML))
	{
		app.GET("/", func(c *gin.Context) { c.Redirect(http.StatusFound, "/menu") })
		app.GET("/menu", authH.Menu)

		handler.NewCRUD(areaSvc, handler.Pantalla{
			Entidad: "areas", Titulo: "Áreas", Plantilla: "areas.html",
		}).Registrar(app)
		handler.NewCRUD(departamentoSvc, handler.Pantalla{
			Entidad: "departamentos", Titulo: "Departamentos", Plantilla: "departamentos.html",
		}).Registrar(app)
		handler.NewCRUD(ubicacionSvc, handler.Pantalla{
			Entidad: "ubicaciones", Titulo: "Ubicaciones", Plantilla: "ubicaciones.html",
		}).Registrar(app)
		handler.NewCRUD(cargoSvc, handler.Pantalla{
			Entidad: "cargos", Titulo: "Cargos", Plantilla: "cargos.html",
			Selectores: map[string]handler.Selector{"Areas": areas, "Departamentos": departamentos},
		}).Registrar(app)
		handler.NewCRUD[dto.ColaboradorForm, model.ColaboradorDetalle](colaboradorSvc, handler.Pantalla{
			Entidad: "colaboradores", Titulo: "Colaboradores", Plantilla: "colaboradores.html",
			Selectores: map[string]handler.Selector{
				"Areas":         areas,
				"Departamentos": departamentos,
				"Cargos":        handler.Lista(cargoSvc.Listar),
				"Ubicaciones":   handler.Lista(ubicacionSvc.Listar),
			},
		}).Registrar(app)

		contactos := []struct {
			svc service.ContactoService
			p   handler.Pantalla
		}{
			{extensionSvc, pantallaContacto("extensiones", "Extensiones", "Extensión", "text")},
			{celularSvc, pantallaContacto("celulares", "Celulares", "Celular", "tel")},
			{correoSvc, pantallaContacto("correos", "Correos", "Correo", "email")},
		}
		for _, ct := range contactos {
			handler.NewCRUD[dto.ContactoForm, model.ContactoDetalle](ct.svc, ct.p).Registrar(app)
			app.POST("/"+ct.p.Entidad+"/sincronizar", handler.Sincronizar(ct.svc, ct.p.Entidad))
		}

		app.GET("/productos", productosH.Listar)
		app.GET("/agregar_producto", productosH.FormAgregar)
		app.POST("/agregar_producto", productosH.Agregar)
		app.GET("/consultar_disponibilidad", productosH.Consultar)

		app.GET("/directorio/exportar", exportarH.Directorio)
	}

	// Swagger UI, only outside production
	if !cfg.IsProduction() {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r, nil
}
