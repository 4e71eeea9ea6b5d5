package router

import (
	"github.com/hostpick/hostpick/app/controllers"
	"github.com/hostpick/hostpick/internal/pkg/middleware"
	"github.com/gofiber/fiber/v2"
)

// registerAdminRoutes installs the JSON admin surface. All routes require
// an authenticated admin session.
func (h HttpRouter) registerAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.RequireAPIAdmin)

	// Catalog management
	adminGroup.Post("/categories", controllers.HandleAdminCategoryCreate)
	adminGroup.Put("/categories/:id", controllers.HandleAdminCategoryUpdate)
	adminGroup.Delete("/categories/:id", controllers.HandleAdminCategoryDelete)

	adminGroup.Post("/providers", controllers.HandleAdminProviderCreate)
	adminGroup.Put("/providers/:id", controllers.HandleAdminProviderUpdate)
	adminGroup.Delete("/providers/:id", controllers.HandleAdminProviderDelete)
	adminGroup.Post("/providers/:id/logo", controllers.HandleAdminProviderLogo)

	adminGroup.Post("/plans", controllers.HandleAdminPlanCreate)
	adminGroup.Put("/plans/:id", controllers.HandleAdminPlanUpdate)
	adminGroup.Delete("/plans/:id", controllers.HandleAdminPlanDelete)
	adminGroup.Post("/plans/:id/features", controllers.HandleAdminPlanFeatureCreate)
	adminGroup.Delete("/features/:feature_id", controllers.HandleAdminPlanFeatureDelete)

	// Score weights and application settings
	adminGroup.Get("/settings/score-weights", controllers.HandleAdminGetScoreWeights)
	adminGroup.Put("/settings/score-weights", controllers.HandleAdminPutScoreWeights)
	adminGroup.Get("/settings", controllers.HandleAdminGetSettings)
	adminGroup.Put("/settings", controllers.HandleAdminUpdateSettings)

	// Bulk import
	adminGroup.Post("/import/:entity/preview", controllers.HandleAdminImportPreview)
	adminGroup.Post("/import/:entity", controllers.HandleAdminImportSubmit)
}
