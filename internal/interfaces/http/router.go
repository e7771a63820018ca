package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/levantapedidos/levantapedidos-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SalesSummary   *usecase.SalesSummaryUseCase
	SuggestedOrder *usecase.SuggestedOrderUseCase
	Client         *usecase.ClientUseCase
	ProductSearch  *usecase.ProductSearchUseCase
	Version        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Raíz: latido del servicio para el frontend.
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message":   "Levantapedidos API is running!",
			"version":   deps.Version,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	api := app.Group("/api")

	salesHandler := NewSalesHandler(deps.SalesSummary, deps.SuggestedOrder)
	api.Post("/sales-summary", salesHandler.Summary)
	api.Post("/suggested-order", salesHandler.SuggestedOrder)

	clientHandler := NewClientHandler(deps.Client)
	api.Post("/client-data", clientHandler.Data)
	api.Post("/client-pricing", clientHandler.Pricing)

	searchHandler := NewProductSearchHandler(deps.ProductSearch)
	api.Post("/product-search", searchHandler.Search)
}
