package router

import (
	"github.com/hostpick/hostpick/app/controllers"
	"github.com/hostpick/hostpick/internal/pkg/middleware"
	"github.com/hostpick/hostpick/internal/pkg/oauth"
	"github.com/hostpick/hostpick/internal/pkg/session"

	"github.com/gofiber/fiber/v2"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session
	session.NewSessionStore()

	// init oauth providers
	oauth.Setup()

	// Apply UserContext middleware globally as first middleware
	app.Use(middleware.UserContextMiddleware)

	// Wire controllers that need the repository factory
	controllers.InitializeControllers()
	controllers.InitializeImportArchive()

	h.registerPublicRoutes(app)
	h.registerAdminRoutes(app)
	h.registerCSRFProtectedRoutes(app)
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}

func loggedInMiddleware(c *fiber.Ctx) error {
	// UserContextMiddleware already set all user context
	return c.Next()
}
