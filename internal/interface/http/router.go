package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/tiendamoderna/tienda/internal/domain/user"
	"github.com/tiendamoderna/tienda/internal/infrastructure/config"
	"github.com/tiendamoderna/tienda/internal/interface/http/handler"
	"github.com/tiendamoderna/tienda/internal/interface/http/middleware"
	"github.com/tiendamoderna/tienda/pkg/metrics"
)

// NewRouter builds the gin engine with the full API surface. Paths are in
// Spanish, matching the frontend the API serves.
func NewRouter(
	cfg *config.Config,
	authMW *middleware.AuthMiddleware,
	userHandler *handler.UserHandler,
	productHandler *handler.ProductHandler,
	catalogHandler *handler.CatalogHandler,
	orderHandler *handler.OrderHandler,
	adminHandler *handler.AdminHandler,
) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(metrics.GinMiddleware())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/metrics", metrics.Handler())
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	requireAuth := authMW.RequireAuth()
	requireAdmin := authMW.RequireRole(user.RoleAdmin)

	api := r.Group("/api")

	usuarios := api.Group("/usuarios")
	{
		usuarios.POST("/registrar", userHandler.Register)
		usuarios.POST("/login", userHandler.Login)
		usuarios.GET("/email-existe/:email", userHandler.EmailExists)
		usuarios.POST("/recuperar-password", userHandler.RecoverPassword)
		usuarios.POST("/restablecer-password", userHandler.ResetPassword)
		usuarios.GET("/verificar-email/:token", userHandler.VerifyEmail)

		usuarios.POST("/logout", requireAuth, userHandler.Logout)
		usuarios.POST("/cambiar-password", requireAuth, userHandler.ChangePassword)
		usuarios.GET("/:id", requireAuth, userHandler.GetByID)
	}

	productos := api.Group("/productos")
	{
		productos.GET("", productHandler.List)
		productos.GET("/buscar", productHandler.Search)
		productos.GET("/destacados", productHandler.ListFeatured)
		productos.GET("/ofertas", productHandler.ListOnSale)
		productos.GET("/sku/:sku", productHandler.GetBySKU)
		productos.GET("/categoria/:id", productHandler.ListByCategory)
		productos.GET("/marca/:id", productHandler.ListByBrand)
		productos.GET("/:id", productHandler.GetByID)

		productos.POST("", requireAuth, requireAdmin, productHandler.Create)
		productos.PUT("/:id", requireAuth, requireAdmin, productHandler.Update)
		productos.DELETE("/:id", requireAuth, requireAdmin, productHandler.Delete)
		productos.PATCH("/:id/estado", requireAuth, requireAdmin, productHandler.SetStatus)
		productos.PATCH("/:id/stock", requireAuth, requireAdmin, productHandler.SetStock)
	}

	categorias := api.Group("/categorias")
	{
		categorias.GET("", catalogHandler.ListCategories)
		categorias.POST("", requireAuth, requireAdmin, catalogHandler.CreateCategory)
		categorias.PUT("/:id", requireAuth, requireAdmin, catalogHandler.UpdateCategory)
		categorias.DELETE("/:id", requireAuth, requireAdmin, catalogHandler.DeleteCategory)
	}

	marcas := api.Group("/marcas")
	{
		marcas.GET("", catalogHandler.ListBrands)
		marcas.POST("", requireAuth, requireAdmin, catalogHandler.CreateBrand)
		marcas.PATCH("/:id/estado", requireAuth, requireAdmin, catalogHandler.SetBrandStatus)
	}

	ordenes := api.Group("/ordenes", requireAuth)
	{
		ordenes.POST("", orderHandler.Create)
		ordenes.GET("/mis-ordenes", orderHandler.ListMine)
		ordenes.GET("/numero/:numero", orderHandler.GetByNumber)
		ordenes.GET("/:id", orderHandler.GetByID)
		ordenes.POST("/:id/cancelar", orderHandler.Cancel)

		ordenes.GET("/por-estado/:estado", requireAdmin, orderHandler.ListByStatus)
		ordenes.GET("/total-ventas", requireAdmin, orderHandler.SalesTotal)
		ordenes.POST("/:id/marcar-pagada", requireAdmin, orderHandler.MarkPaid)
		ordenes.POST("/:id/marcar-enviada", requireAdmin, orderHandler.MarkShipped)
		ordenes.POST("/:id/marcar-entregada", requireAdmin, orderHandler.MarkDelivered)
	}

	admin := api.Group("/admin")
	{
		// The template is anonymous so the back office can link it directly.
		admin.GET("/productos/plantilla", adminHandler.DownloadTemplate)
		admin.POST("/productos/importar", requireAuth, requireAdmin, adminHandler.ImportProducts)
	}

	return r
}
