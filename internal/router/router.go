package router

import (
	"time"

	"github.com/Carlos-148/App-Economia-CB/internal/cache"
	"github.com/Carlos-148/App-Economia-CB/internal/config"
	"github.com/Carlos-148/App-Economia-CB/internal/handler"
	"github.com/Carlos-148/App-Economia-CB/internal/infra"
	"github.com/Carlos-148/App-Economia-CB/internal/middleware"
	"github.com/Carlos-148/App-Economia-CB/internal/repository"
	"github.com/Carlos-148/App-Economia-CB/internal/service"
	"github.com/Carlos-148/App-Economia-CB/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Deps are the long-lived components main builds once and the router wires.
type Deps struct {
	Pool       *worker.Pool
	Dispatcher *worker.Dispatcher
}

// New wires all dependencies and returns a configured Gin engine plus the
// async components main needs to start.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) (*gin.Engine, *Deps) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Infrastructure ───────────────────────────────────────────────────────
	mailer := infra.NewMailer(cfg)
	memCache := cache.New(time.Duration(cfg.CacheTTLSeconds) * time.Second)

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	inventarioRepo := repository.NewInventarioRepository(db)
	compraRepo := repository.NewCompraRepository(db)
	subproductoRepo := repository.NewSubproductoRepository(db)
	productoFinalRepo := repository.NewProductoFinalRepository(db)
	ventaRepo := repository.NewVentaRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	contabilidadRepo := repository.NewContabilidadRepository(db)
	gastoRepo := repository.NewGastoRepository(db)
	efectivoRepo := repository.NewEfectivoRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	inventarioSvc := service.NewInventarioService(inventarioRepo, memCache)
	efectivoSvc := service.NewEfectivoService(efectivoRepo, gastoRepo)
	compraSvc := service.NewCompraService(compraRepo, gastoRepo, inventarioSvc, efectivoSvc)
	produccionSvc := service.NewProduccionService(subproductoRepo, inventarioRepo, inventarioSvc, memCache.InvalidatePattern)
	productoFinalSvc := service.NewProductoFinalService(productoFinalRepo, subproductoRepo, memCache)
	contabilidadSvc := service.NewContabilidadService(contabilidadRepo)
	ventaSvc := service.NewVentaService(ventaRepo, clienteRepo, productoFinalRepo, contabilidadSvc)
	gastoSvc := service.NewGastoService(gastoRepo, inventarioRepo, inventarioSvc)

	// Worker dispatcher — injected into handlers that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)
	reporteWorker := worker.NewReporteWorker(contabilidadSvc, dispatcher, cfg.ReportStoragePath)
	emailWorker := worker.NewEmailWorker(mailer)
	pool := worker.NewPool(rdb, reporteWorker, emailWorker)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(authSvc)
	inventarioH := handler.NewInventarioHandler(inventarioSvc)
	comprasH := handler.NewComprasHandler(compraSvc)
	produccionH := handler.NewProduccionHandler(produccionSvc)
	productosFinalesH := handler.NewProductosFinalesHandler(productoFinalSvc)
	ventasH := handler.NewVentasHandler(ventaSvc)
	gastosH := handler.NewGastosHandler(gastoSvc)
	efectivoH := handler.NewEfectivoHandler(efectivoSvc)
	contabilidadH := handler.NewContabilidadHandler(contabilidadSvc, dispatcher)
	consultaH := handler.NewConsultaPreciosHandler(productoFinalRepo, rdb)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Catalog price check — no auth required
	r.GET("/v1/precio/:nombre", consultaH.GetPrecioPorNombre)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	operadores := middleware.RequireRole("operador", "administrador")
	admin := middleware.RequireRole("administrador")

	v1 := r.Group("/v1", jwtMW)
	{
		inv := v1.Group("/inventario", operadores)
		{
			inv.GET("", inventarioH.Resumen)
			inv.GET("/total-invertido", inventarioH.TotalInvertido)
			inv.GET("/:nombre", inventarioH.ObtenerProducto)
			inv.POST("/consumir", inventarioH.Consumir)
		}

		compras := v1.Group("/compras", operadores)
		{
			compras.POST("/granel", comprasH.RegistrarGranel)
			compras.POST("/paquetes", comprasH.RegistrarPaquetes)
			compras.GET("", comprasH.Historial)
		}

		subs := v1.Group("/subproductos", operadores)
		{
			subs.POST("", produccionH.CrearSubproducto)
			subs.GET("", produccionH.ListarSubproductos)
			subs.GET("/:id", produccionH.ObtenerSubproducto)
			subs.DELETE("/:id", admin, produccionH.EliminarSubproducto)
			subs.POST("/estimar", produccionH.Estimar)
			subs.POST("/producir", produccionH.Producir)
			subs.GET("/:id/producciones", produccionH.ListarProducciones)
			subs.DELETE("/:id/producciones/:produccion_id", admin, produccionH.EliminarProduccion)
		}

		finales := v1.Group("/productos-finales", operadores)
		{
			finales.POST("", productosFinalesH.Crear)
			finales.GET("", productosFinalesH.Listar)
			finales.GET("/:id/info", productosFinalesH.Info)
			finales.PATCH("/:id/precio", productosFinalesH.SetPrecioVenta)
			finales.DELETE("/:id", admin, productosFinalesH.Eliminar)
		}

		ventas := v1.Group("/ventas", operadores)
		{
			ventas.POST("", ventasH.RegistrarVenta)
			ventas.GET("", ventasH.ListarVentas)
			ventas.GET("/:id", ventasH.ObtenerVenta)
		}

		clientes := v1.Group("/clientes", operadores)
		{
			clientes.POST("", ventasH.CrearCliente)
			clientes.GET("", ventasH.ListarClientes)
			clientes.DELETE("/:id", admin, ventasH.DesactivarCliente)
		}

		gastos := v1.Group("/gastos", operadores)
		{
			gastos.POST("/money", gastosH.RegistrarMoney)
			gastos.POST("/producto", gastosH.RegistrarProducto)
			gastos.GET("/money", gastosH.ListarMoney)
			gastos.GET("/producto", gastosH.ListarProductos)
			gastos.GET("/total", gastosH.Total)
		}

		efectivo := v1.Group("/efectivo", operadores)
		{
			efectivo.GET("", efectivoH.EstadoCaja)
			efectivo.GET("/movimientos", efectivoH.Movimientos)
			efectivo.POST("/capital", admin, efectivoH.AgregarCapital)
		}

		contab := v1.Group("/contabilidad", admin)
		{
			contab.GET("/historial", contabilidadH.Historial)
			contab.GET("/resumen", contabilidadH.ResumenGeneral)
			contab.GET("/resumen-productos", contabilidadH.ResumenPorProducto)
			contab.POST("/exportar", contabilidadH.ExportarReporte)
		}

		usuarios := v1.Group("/usuarios", admin)
		{
			usuarios.POST("", usuariosH.Crear)
			usuarios.GET("", usuariosH.Listar)
			usuarios.PUT("/:id", usuariosH.Actualizar)
			usuarios.DELETE("/:id", usuariosH.Desactivar)
			usuarios.PATCH("/:id/reactivar", usuariosH.Reactivar)
		}

		v1.GET("/cache/stats", admin, handler.CacheStats(memCache))
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r, &Deps{Pool: pool, Dispatcher: dispatcher}
}
