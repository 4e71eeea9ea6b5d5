package apiv1

import (
	"github.com/gofiber/fiber/v2"

	// Delegate to the controllers to keep behavior consistent
	"github.com/hostpick/hostpick/app/controllers"
)

// Pong is the health check response
type Pong struct {
	Ping string `json:"ping"`
}

// APIServer implements the public v1 surface
type APIServer struct{}

// NewAPIServer creates a new API server instance
func NewAPIServer() *APIServer {
	return &APIServer{}
}

// GetPing handles the ping endpoint
func (s *APIServer) GetPing(c *fiber.Ctx) error {
	response := Pong{
		Ping: "pong",
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

// Catalog

func (s *APIServer) GetCategories(c *fiber.Ctx) error {
	return controllers.HandleListCategories(c)
}

func (s *APIServer) GetProviders(c *fiber.Ctx) error {
	return controllers.HandleListProviders(c)
}

func (s *APIServer) GetProvider(c *fiber.Ctx) error {
	return controllers.HandleGetProvider(c)
}

func (s *APIServer) GetPlans(c *fiber.Ctx) error {
	return controllers.HandleListPlans(c)
}

func (s *APIServer) GetPlan(c *fiber.Ctx) error {
	return controllers.HandleGetPlan(c)
}

func (s *APIServer) GetPlanReviews(c *fiber.Ctx) error {
	return controllers.HandleListPlanReviews(c)
}

func (s *APIServer) PostPlanReview(c *fiber.Ctx) error {
	return controllers.HandleCreatePlanReview(c)
}

// Comparison

func (s *APIServer) GetCompare(c *fiber.Ctx) error {
	return controllers.HandleCompare(c)
}

func (s *APIServer) GetCompareSelection(c *fiber.Ctx) error {
	return controllers.HandleCompareSelection(c)
}

func (s *APIServer) PostCompareItem(c *fiber.Ctx) error {
	return controllers.HandleCompareAdd(c)
}

func (s *APIServer) DeleteCompareItem(c *fiber.Ctx) error {
	return controllers.HandleCompareRemove(c)
}

func (s *APIServer) DeleteCompareItems(c *fiber.Ctx) error {
	return controllers.HandleCompareClear(c)
}

func (s *APIServer) PostCompareShare(c *fiber.Ctx) error {
	return controllers.HandleCompareShare(c)
}
