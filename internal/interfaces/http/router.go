package http

import (
	"github.com/gofiber/fiber/v2"
)

// RouterDeps dependencias del router HTTP.
type RouterDeps struct {
	JWTSecret    string
	Movements    *MovementHandler
	Stock        *StockHandler
	Requirements *RequirementHandler
	Products     *ProductHandler
}

// RegisterRoutes registra todas las rutas de la API bajo /api.
// Todas requieren token válido; las operaciones de aprobación y borrado
// exigen rol de almacén.
func RegisterRoutes(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))
	warehouseStaff := RequireRole(RoleAdmin, RoleAlmacenista)

	movements := api.Group("/movements")
	movements.Post("/", deps.Movements.Create)
	movements.Get("/", deps.Movements.List)
	movements.Get("/:id", deps.Movements.GetByID)
	movements.Post("/:id/complete", warehouseStaff, deps.Movements.Complete)
	movements.Post("/:id/reject", warehouseStaff, deps.Movements.Reject)
	movements.Post("/:id/revert", warehouseStaff, deps.Movements.Revert)
	movements.Delete("/:id", warehouseStaff, deps.Movements.Delete)

	stock := api.Group("/stock")
	stock.Get("/low", deps.Stock.LowStock)
	stock.Get("/product/:code", deps.Stock.GetByProduct)
	stock.Get("/warehouse/:id", deps.Stock.ListByWarehouse)

	api.Get("/warehouses", deps.Stock.ListWarehouses)

	requirements := api.Group("/requirements")
	requirements.Post("/", deps.Requirements.Create)
	requirements.Get("/", deps.Requirements.List)
	requirements.Get("/:id", deps.Requirements.GetByID)
	requirements.Post("/:id/approve", warehouseStaff, deps.Requirements.Approve)
	requirements.Post("/:id/reject", warehouseStaff, deps.Requirements.Reject)
	requirements.Post("/:id/revert", warehouseStaff, deps.Requirements.Revert)
	requirements.Delete("/:id", warehouseStaff, deps.Requirements.Delete)

	products := api.Group("/products")
	products.Get("/", deps.Products.List)
	products.Get("/:code", deps.Products.GetByCode)
}
