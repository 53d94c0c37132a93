package router

import (
	"net/http"
	"time"

	"retailapi/internal/config"
	"retailapi/internal/handler"
	"retailapi/internal/infra"
	"retailapi/internal/middleware"
	"retailapi/internal/model"
	"retailapi/internal/repository"
	"retailapi/internal/resource"
	"retailapi/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB. rdb may be nil.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// ── Rate limit store ─────────────────────────────────────────────────────
	var counter middleware.Counter = middleware.NewMemoryCounter()
	var breaker *infra.CircuitBreaker
	if rdb != nil {
		breaker = infra.NewCircuitBreaker(infra.DefaultCBConfig("redis-ratelimit"))
		counter = middleware.NewRedisCounter(rdb, breaker, counter)
	}

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.Metrics())
	if origins := cfg.AllowedOrigins(); len(origins) > 0 {
		r.Use(middleware.CORS(origins))
	}
	r.Use(middleware.ErrorHandler())

	r.GET("/health", handler.Health(db, rdb, breaker))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Recurso no encontrado"})
	})

	// ── Repositories ─────────────────────────────────────────────────────────
	crudRepo := repository.NewCrudRepository(db)
	pedidoRepo := repository.NewPedidoRepository(db)
	facturaRepo := repository.NewFacturaRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	pedidoSvc := service.NewPedidoService(crudRepo, pedidoRepo)
	facturaSvc := service.NewFacturaService(facturaRepo, cfg.BusinessName)

	// ── Handlers ─────────────────────────────────────────────────────────────
	pedidosH := handler.NewPedidosHandler(pedidoSvc)
	facturasH := handler.NewFacturasHandler(facturaSvc)

	// ── Routes ───────────────────────────────────────────────────────────────
	v1 := r.Group("/v1", middleware.RateLimiter(counter, cfg.RateLimitPerMinute, time.Minute))
	{
		mount[model.Ciudad](v1, resource.Ciudad, crudRepo)
		mount[model.Cargo](v1, resource.Cargo, crudRepo)
		mount[model.Categoria](v1, resource.Categoria, crudRepo)
		mount[model.EstadoPedido](v1, resource.EstadoPedido, crudRepo)
		mount[model.TipoTransaccion](v1, resource.TipoTransaccion, crudRepo)
		mount[model.Sucursal](v1, resource.Sucursal, crudRepo)
		mount[model.Empleado](v1, resource.Empleado, crudRepo)
		mount[model.Cliente](v1, resource.Cliente, crudRepo)
		mount[model.Producto](v1, resource.Producto, crudRepo)
		mount[model.StockSucursal](v1, resource.StockSucursal, crudRepo)
		mount[model.RegistroInventario](v1, resource.RegistroInventario, crudRepo)
		mount[model.Pedido](v1, resource.Pedido, crudRepo)
		mount[model.DetallePedido](v1, resource.DetallePedido, crudRepo)
		mount[model.Factura](v1, resource.Factura, crudRepo)
		mount[model.Transaccion](v1, resource.Transaccion, crudRepo)
		mount[model.ReporteVentas](v1, resource.ReporteVentas, crudRepo)
		mount[model.ReporteDesempenio](v1, resource.ReporteDesempenio, crudRepo)

		v1.GET("/clientes/:id/pedidos", pedidosH.ListarPorCliente)
		v1.GET("/facturas/:id/pdf", facturasH.DescargarPDF)
	}

	// Swagger UI outside production
	if !cfg.IsProduction() {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}

func mount[T any](rg *gin.RouterGroup, def *resource.Definition, repo repository.CrudRepository) {
	svc := service.NewCrudService[T](def, repo)
	handler.NewCrudHandler[T](def, svc).Mount(rg)
}
