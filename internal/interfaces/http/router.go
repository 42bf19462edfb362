package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aoz-zh/supply-api/internal/application/aggregate"
	"github.com/aoz-zh/supply-api/internal/application/inventory"
	"github.com/aoz-zh/supply-api/internal/application/usecase"
	"github.com/aoz-zh/supply-api/internal/domain/resolver"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	LocationUC *usecase.LocationUseCase
	CategoryUC *usecase.CategoryUseCase
	UserUC     *usecase.UserUseCase
	Aggregate  *aggregate.UseCase
	Stock      *inventory.StockService
	Orders     *inventory.OrderService
	Resolver   *resolver.Resolver
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Locations
	locationHandler := NewLocationHandler(deps.LocationUC, deps.Aggregate)
	api.Get("/locations", locationHandler.List)

	// Categories
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	api.Get("/categories", categoryHandler.List)

	// Items (vistas agregadas). by_location va antes que :category para que
	// fiber no lo capture como nombre de categoría.
	itemHandler := NewItemHandler(deps.Aggregate, deps.Resolver)
	items := api.Group("/items")
	items.Get("/by_location", locationHandler.ItemsByLocation)
	items.Get("/:category", itemHandler.CategorySummary)
	items.Get("/:category/:item", itemHandler.ItemDetail)

	// Stock (mutaciones del ledger)
	stockHandler := NewStockHandler(deps.Stock)
	stock := api.Group("/stock")
	stock.Put("/", stockHandler.Adjust)
	stock.Post("/increment", stockHandler.Increment)

	// Orders (tickets de pedido)
	orderHandler := NewOrderHandler(deps.Orders)
	orders := api.Group("/orders")
	orders.Post("/", orderHandler.Create)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Post("/:id/fulfill", orderHandler.Fulfill)
	orders.Post("/:id/cancel", orderHandler.Cancel)

	// Users (roster de personal)
	userHandler := NewUserHandler(deps.UserUC)
	users := api.Group("/users")
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)
}
