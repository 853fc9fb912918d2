package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Directorio-api/internal/application/auth"
	"github.com/jhoicas/Directorio-api/internal/application/session"
	"github.com/jhoicas/Directorio-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	Sessions   *session.Manager
	BusinessUC *usecase.BusinessUseCase
	CategoryUC *usecase.CategoryUseCase
	MenuUC     *usecase.MenuUseCase
	WifiUC     *usecase.WifiUseCase
	UserUC     *usecase.UserUseCase
	JWTSecret  string
}

// Router registra las rutas de la API. AuthMiddleware corre en todo /api: las rutas
// públicas ven la sesión si la hay (p. ej. el dueño ve su negocio inactivo).
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret, deps.Sessions))
	private := RequireSession()

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/admin/login", authHandler.AdminLogin)
	authGroup.Get("/session", private, authHandler.Session)
	authGroup.Post("/refresh", private, authHandler.Refresh)
	authGroup.Post("/logout", private, authHandler.Logout)

	// Categorías
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	api.Get("/categories", categoryHandler.List)
	api.Post("/categories", private, RequireAdmin(), categoryHandler.Create)

	// Negocios
	businessHandler := NewBusinessHandler(deps.BusinessUC, deps.AuthUC)
	businesses := api.Group("/businesses")
	businesses.Get("/", businessHandler.List)
	businesses.Get("/:username", businessHandler.Get)
	businesses.Post("/", private, businessHandler.Create)
	businesses.Put("/:id", private, businessHandler.Update)
	businesses.Delete("/:id", private, RequireAdmin(), businessHandler.Delete)

	// Menú
	menuHandler := NewMenuHandler(deps.MenuUC)
	businesses.Get("/:id/menu", menuHandler.Get)
	businesses.Post("/:id/menu/categories", private, menuHandler.CreateCategory)
	businesses.Put("/:id/menu/categories/:categoryId", private, menuHandler.UpdateCategory)
	businesses.Delete("/:id/menu/categories/:categoryId", private, menuHandler.DeleteCategory)
	businesses.Post("/:id/menu/subcategories", private, menuHandler.CreateSubcategory)
	businesses.Delete("/:id/menu/subcategories/:subcategoryId", private, menuHandler.DeleteSubcategory)
	businesses.Post("/:id/menu/items", private, menuHandler.CreateItem)
	businesses.Put("/:id/menu/items/:itemId", private, menuHandler.UpdateItem)
	businesses.Delete("/:id/menu/items/:itemId", private, menuHandler.DeleteItem)

	// WiFi
	wifiHandler := NewWifiHandler(deps.WifiUC)
	businesses.Get("/:id/wifi", wifiHandler.List)
	businesses.Post("/:id/wifi", private, wifiHandler.Create)
	businesses.Put("/:id/wifi/:wifiId", private, wifiHandler.Update)
	businesses.Delete("/:id/wifi/:wifiId", private, wifiHandler.Delete)

	// Usuarios
	userHandler := NewUserHandler(deps.UserUC)
	api.Get("/users/:id", private, userHandler.GetByID)
	api.Put("/users/:id/status", private, RequireAdmin(), userHandler.SetStatus)
}
