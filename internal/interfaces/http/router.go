package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tienda-api/internal/application/auth"
	"github.com/jhoicas/Tienda-api/internal/application/exchange"
	"github.com/jhoicas/Tienda-api/internal/application/usecase"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC        *usecase.ProductUseCase
	CategoryUC       *usecase.CategoryUseCase
	OrderUC          *usecase.OrderUseCase
	TransferConfigUC *usecase.TransferConfigUseCase
	ImportSession    *exchange.ImportSession
	TransferConfigs  repository.TransferConfigRepository
	AuthUC           *auth.UseCase
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Categories (protegido; las crea la importación)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Delete("/:id", categoryHandler.Delete)

	// Orders (protegido)
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Post("/:id/complete", orderHandler.Complete)

	// Transfer configs (solo admin)
	configs := protected.Group("/transfer-configs", RequireAdmin())
	configHandler := NewTransferConfigHandler(deps.TransferConfigUC)
	configs.Post("/", configHandler.Create)
	configs.Get("/", configHandler.List)
	configs.Get("/:id", configHandler.GetByID)
	configs.Put("/:id", configHandler.Update)
	configs.Delete("/:id", configHandler.Delete)

	// Importación en dos etapas (solo admin)
	importGroup := protected.Group("/import", RequireAdmin())
	importHandler := NewImportHandler(deps.ImportSession, deps.TransferConfigs)
	importGroup.Post("/categorias", importHandler.Categories)
	importGroup.Post("/productos", importHandler.Products)
}
