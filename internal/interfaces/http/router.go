package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/auth"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	ProductUC  *usecase.ProductUseCase
	PurchaseUC *usecase.PurchaseUseCase
	ReceiptUC  *usecase.ReceiptUseCase
	RoleUC     *usecase.RoleUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (register/login públicos; me requiere token)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products: las rutas estáticas van antes de /:id
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC, deps.ReceiptUC)

	products.Get("/pending-deletion", RequireLevel(entity.LevelAdmin), productHandler.ListPendingDeletion)
	products.Post("/purchase", RequireLevel(entity.LevelUsuario), purchaseHandler.Purchase)
	products.Get("/my-products", RequireLevel(entity.LevelUsuario), purchaseHandler.MyPurchases)
	products.Get("/my-products/:id/receipt", RequireLevel(entity.LevelUsuario), purchaseHandler.Receipt)

	products.Get("/", RequireLevel(entity.LevelUsuario), productHandler.List)
	products.Post("/", RequireLevel(entity.LevelFuncionario), productHandler.Create)
	products.Get("/:id", RequireLevel(entity.LevelUsuario), productHandler.GetByID)
	products.Put("/:id", RequireLevel(entity.LevelFuncionario), productHandler.Update)
	products.Delete("/:id", RequireLevel(entity.LevelFuncionario), productHandler.Delete)
	products.Post("/:id/approve-deletion", RequireLevel(entity.LevelAdmin), productHandler.ApproveDeletion)
	products.Post("/:id/reject-deletion", RequireLevel(entity.LevelAdmin), productHandler.RejectDeletion)

	// Roles
	roles := protected.Group("/roles")
	roleHandler := NewRoleHandler(deps.RoleUC)
	roles.Get("/", RequireLevel(entity.LevelFuncionario), roleHandler.List)
	roles.Post("/", RequireLevel(entity.LevelAdmin), roleHandler.Add)
}
