package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/logistica-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC     *usecase.ProductUseCase
	StockUC       *usecase.StockUseCase
	StockReportUC *usecase.StockReportUseCase
	JWTSecret     string
}

// Router registra las rutas de la API. Todas las operaciones están mapeadas
// explícitamente verbo+ruta -> handler, sin dispatch genérico.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.BulkCreate)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Patch("/:id", productHandler.Patch)
	products.Delete("/:id", productHandler.Delete)

	// Stocks (con posiciones anidadas)
	stocks := api.Group("/stocks")
	stockHandler := NewStockHandler(deps.StockUC, deps.StockReportUC)
	stocks.Post("/", stockHandler.Create)
	stocks.Get("/", stockHandler.List)
	stocks.Get("/:id", stockHandler.GetByID)
	stocks.Put("/:id", stockHandler.Update)
	stocks.Patch("/:id", stockHandler.Patch)
	stocks.Delete("/:id", stockHandler.Delete)
	stocks.Get("/:id/report", stockHandler.Report)
}
