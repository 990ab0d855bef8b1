package routes

import (
	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/adapters/http/handlers"
	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/adapters/http/middleware"
	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/adapters/persistence/repositories"
	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/config"
	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/core/domain"
	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	itemRepo := repositories.NewItemRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	returnRepo := repositories.NewReturnRepository(db)
	vendorRepo := repositories.NewVendorRepository(db)
	logRepo := repositories.NewLogRepository(db)

	// Initialize services
	auditService := services.NewAuditService(logRepo)
	authService := services.NewAuthService(userRepo, auditService, cfg)
	itemService := services.NewItemService(itemRepo, categoryRepo, auditService)
	orderService := services.NewOrderService(orderRepo, auditService)
	returnService := services.NewReturnService(returnRepo, auditService)
	vendorService := services.NewVendorService(vendorRepo, auditService)
	logService := services.NewLogService(logRepo)
	dashboardService := services.NewDashboardService(itemRepo, orderRepo, returnRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService)
	itemHandler := handlers.NewItemHandler(itemService)
	orderHandler := handlers.NewOrderHandler(orderService)
	returnHandler := handlers.NewReturnHandler(returnService)
	vendorHandler := handlers.NewVendorHandler(vendorService)
	logHandler := handlers.NewLogHandler(logService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	authed := middleware.AuthMiddleware(cfg, userRepo)
	admin := middleware.AdminOnly()

	api := app.Group("/api")

	// Auth routes
	auth := api.Group("/auth")
	auth.Get("/", authHandler.Initialize)
	auth.Post("/signup-admin", middleware.AuthRateLimiter(), authHandler.SignupAdmin)
	auth.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	auth.Get("/info", authed, authHandler.Info)
	auth.Get("/get-users", authed, admin, authHandler.GetUsers)
	auth.Post("/create-user", authed, admin, authHandler.CreateUser)
	auth.Post("/update-user", authed, middleware.RequirePermission(domain.DomainUsers, domain.ActionWrite), authHandler.UpdateUser)
	auth.Post("/delete-user", authed, admin, authHandler.DeleteUser)

	// Item routes
	items := api.Group("/items", authed)
	items.Get("/", itemHandler.List)
	items.Get("/archived", itemHandler.ListArchived)
	items.Get("/search", itemHandler.Search)
	items.Get("/warning", itemHandler.Warnings)
	items.Get("/categories", itemHandler.Categories)
	items.Post("/add-category", middleware.RequirePermission(domain.DomainItems, domain.ActionWrite), itemHandler.AddCategory)
	items.Post("/create-item", middleware.RequirePermission(domain.DomainItems, domain.ActionWrite), itemHandler.Create)
	items.Post("/update-item", middleware.RequirePermission(domain.DomainItems, domain.ActionWrite), itemHandler.Update)
	items.Post("/use-item", middleware.RequirePermission(domain.DomainItems, domain.ActionWrite), itemHandler.Use)
	items.Post("/delete-item", middleware.RequirePermission(domain.DomainItems, domain.ActionDelete), itemHandler.Delete)
	items.Post("/archive-item", middleware.RequirePermission(domain.DomainArchives, domain.ActionWrite), itemHandler.Archive)

	// Order routes
	orders := api.Group("/orders", authed)
	orders.Get("/", orderHandler.List)
	orders.Get("/archived", orderHandler.ListArchived)
	orders.Get("/search", orderHandler.Search)
	orders.Post("/create-order", middleware.RequirePermission(domain.DomainOrders, domain.ActionWrite), orderHandler.Create)
	orders.Post("/change-order-status", middleware.RequirePermission(domain.DomainOrders, domain.ActionWrite), orderHandler.ChangeStatus)
	orders.Post("/edit-order", middleware.RequirePermission(domain.DomainOrders, domain.ActionWrite), orderHandler.Edit)
	orders.Post("/delete-order", middleware.RequirePermission(domain.DomainOrders, domain.ActionDelete), orderHandler.Delete)
	orders.Post("/archive-order", middleware.RequirePermission(domain.DomainArchives, domain.ActionWrite), orderHandler.Archive)

	// Return routes
	returns := api.Group("/returns", authed)
	returns.Get("/", returnHandler.List)
	returns.Get("/search", returnHandler.Search)
	returns.Post("/create-return", middleware.RequirePermission(domain.DomainReturns, domain.ActionWrite), returnHandler.Create)
	returns.Post("/change-return-status", middleware.RequirePermission(domain.DomainReturns, domain.ActionWrite), returnHandler.ChangeStatus)
	returns.Post("/delete-return", middleware.RequirePermission(domain.DomainReturns, domain.ActionDelete), returnHandler.Delete)

	// Vendor routes
	vendors := api.Group("/vendors", authed)
	vendors.Get("/", vendorHandler.List)
	vendors.Post("/create-vendor", middleware.RequirePermission(domain.DomainSuppliers, domain.ActionWrite), vendorHandler.Create)
	vendors.Post("/update-vendor", middleware.RequirePermission(domain.DomainSuppliers, domain.ActionWrite), vendorHandler.Update)
	vendors.Post("/delete-vendor", middleware.RequirePermission(domain.DomainSuppliers, domain.ActionDelete), vendorHandler.Delete)

	// Log routes (admin only)
	logs := api.Group("/logs", authed, admin)
	logs.Get("/", logHandler.List)
	logs.Post("/mark-as-read", logHandler.MarkAsRead)
	logs.Post("/delete-log", logHandler.Delete)
	logs.Post("/delete-read-logs", logHandler.DeleteRead)

	// Dashboard route (admin only)
	api.Get("/dashboard", authed, admin, dashboardHandler.Summary)
}
