package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hostpick/hostpick/app/models"
	"github.com/hostpick/hostpick/internal/pkg/database"
	"github.com/hostpick/hostpick/internal/pkg/scoring"
)

// HandleAdminGetScoreWeights returns the active weights and their source tier
func HandleAdminGetScoreWeights(c *fiber.Ctx) error {
	res := weightStore.Load()
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"weights": res.Weights,
			"source":  res.Source,
		},
	})
}

// HandleAdminPutScoreWeights validates, rescales to a sum of 100 and saves.
// A remote outage degrades to the cache mirror and is reported as such.
func HandleAdminPutScoreWeights(c *fiber.Ctx) error {
	var w scoring.Weights
	if err := c.BodyParser(&w); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "bad_request", "invalid weights payload")
	}

	res, err := weightStore.Save(w)
	if err != nil {
		if verr := w.Validate(); verr != nil {
			return errorJSON(c, fiber.StatusUnprocessableEntity, "validation_failed", verr.Error())
		}
		return errorJSON(c, fiber.StatusServiceUnavailable, "not_persisted", err.Error())
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"weights": res.Weights,
			"source":  res.Source,
		},
	})
}

// HandleAdminGetSettings returns the general application settings
func HandleAdminGetSettings(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": models.GetAppSettings()})
}

// HandleAdminUpdateSettings persists the general application settings
func HandleAdminUpdateSettings(c *fiber.Ctx) error {
	settings := models.GetAppSettings()

	var req models.AppSettings
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "bad_request", "invalid settings payload")
	}
	if err := req.Validate(); err != nil {
		return errorJSON(c, fiber.StatusUnprocessableEntity, "validation_failed", err.Error())
	}

	settings.SiteTitle = req.SiteTitle
	settings.SiteDescription = req.SiteDescription
	settings.ReviewsEnabled = req.ReviewsEnabled
	settings.ImportEnabled = req.ImportEnabled

	if err := models.SaveSettings(database.GetDB(), settings); err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_error", "could not save settings")
	}

	return c.JSON(fiber.Map{"data": settings})
}
