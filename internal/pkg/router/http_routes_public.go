package router

import (
	"github.com/hostpick/hostpick/app/controllers"
	"github.com/hostpick/hostpick/internal/pkg/middleware"
	"github.com/gofiber/fiber/v2"
	gothfiber "github.com/shareed2k/goth_fiber"
)

func (h HttpRouter) registerPublicRoutes(app *fiber.App) {
	// Short comparison share URLs
	app.Get("/c/:token", loggedInMiddleware, controllers.HandleShareLink)

	// Auth
	app.Post("/logout", middleware.RequireAuth, controllers.HandleAuthLogout)

	// Social OAuth
	app.Get("/auth/:provider", gothfiber.BeginAuthHandler)
	app.Get("/auth/:provider/callback", controllers.HandleOAuthCallback)
}
