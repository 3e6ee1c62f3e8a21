package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/catalogo-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC *usecase.CategoryUseCase
	JWTSecret  string
}

// Router registra las rutas de la API. Las lecturas son públicas; las
// mutaciones pasan por el AuthMiddleware (Bearer Token).
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)

	// Lecturas (público)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)

	// Mutaciones (requieren Bearer Token)
	auth := AuthMiddleware(deps.JWTSecret)
	categories.Post("/", auth, categoryHandler.Create)
	categories.Put("/:id", auth, categoryHandler.Update)
	categories.Delete("/:id", auth, categoryHandler.Delete)
}
