package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hostpick/hostpick/internal/pkg/middleware"
)

// RegisterHandlers mounts the v1 routes onto the given router group.
// The route shapes mirror public/docs/v1/openapi.yml.
func RegisterHandlers(r fiber.Router, s *APIServer) {
	r.Get("/ping", s.GetPing)

	// Public catalog
	r.Get("/categories", s.GetCategories)
	r.Get("/providers", s.GetProviders)
	r.Get("/providers/:id", s.GetProvider)
	r.Get("/plans", s.GetPlans)
	r.Get("/plans/:id", s.GetPlan)
	r.Get("/plans/:id/reviews", s.GetPlanReviews)
	r.Post("/plans/:id/reviews", middleware.RequireAPISessionAuth, s.PostPlanReview)

	// Comparison selection (session-backed)
	r.Get("/compare", s.GetCompare)
	r.Get("/compare/selection", s.GetCompareSelection)
	r.Post("/compare/items", s.PostCompareItem)
	r.Delete("/compare/items/:id", s.DeleteCompareItem)
	r.Delete("/compare/items", s.DeleteCompareItems)
	r.Post("/compare/share", s.PostCompareShare)
}
