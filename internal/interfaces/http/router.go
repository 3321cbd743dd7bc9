package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Trazabilidad-api/internal/application/custody"
	"github.com/jhoicas/Trazabilidad-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	RoleUC    *usecase.RoleUseCase
	ProductUC *usecase.ProductUseCase
	CustodyUC *custody.UseCase
	JWTSecret string
	JWTIssuer string
	JWTExpMin int
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público; emisión de tokens de desarrollo)
	authHandler := NewAuthHandler(deps.JWTSecret, deps.JWTIssuer, deps.JWTExpMin)
	api.Post("/auth/token", authHandler.Token)

	// Roles: lectura pública, asignación solo admin (puerta externa del registro)
	roleHandler := NewRoleHandler(deps.RoleUC)
	api.Get("/roles/:address", roleHandler.RoleOf)
	api.Post("/roles", AuthMiddleware(deps.JWTSecret), RequireAdmin(), roleHandler.Assign)

	// Products: lecturas públicas, escrituras con Bearer Token
	productHandler := NewProductHandler(deps.CustodyUC, deps.ProductUC)
	products := api.Group("/products")
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Get("/:id/history", productHandler.History)
	products.Get("/:id/manufacturer-data", productHandler.ManufacturerData)
	products.Get("/:id/distributor-data", productHandler.DistributorData)
	products.Get("/:id/retailer-data", productHandler.RetailerData)
	products.Post("/", AuthMiddleware(deps.JWTSecret), productHandler.Create)

	// Transferencias de custodia (protegido)
	custodyHandler := NewCustodyHandler(deps.CustodyUC)
	products.Post("/:id/transfer/distributor", AuthMiddleware(deps.JWTSecret), custodyHandler.TransferToDistributor)
	products.Post("/:id/transfer/retailer", AuthMiddleware(deps.JWTSecret), custodyHandler.TransferToRetailer)
}
