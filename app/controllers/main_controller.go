package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/hostpick/hostpick/app/repository"
	"github.com/hostpick/hostpick/internal/pkg/statistics"
)

// HandleStart renders the landing page with catalog counters
func HandleStart(c *fiber.Ctx) error {
	stats := statistics.GetStatisticsData()

	categories, err := repository.GetGlobalFactory().GetCategoryRepository().GetAll()
	if err != nil {
		categories = nil
	}

	return c.Render("home", fiber.Map{
		"Page":           "home",
		"FromProtected":  isLoggedIn(c),
		"Username":       ExtractUsername(c),
		"Msg":            flash.Get(c),
		"Categories":     categories,
		"TotalPlans":     stats.TotalPlans,
		"TotalProviders": stats.TotalProviders,
		"TotalReviews":   stats.TotalReviews,
	}, "layouts/main")
}
