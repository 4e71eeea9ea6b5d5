package controllers

import (
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"

	"github.com/hostpick/hostpick/app/models"
	"github.com/hostpick/hostpick/app/repository"
	"github.com/hostpick/hostpick/internal/pkg/logo"
	"github.com/hostpick/hostpick/internal/pkg/statistics"
	"github.com/hostpick/hostpick/internal/pkg/upload"
	"github.com/hostpick/hostpick/internal/pkg/utils"
)

// ---- categories ----

type categoryRequest struct {
	Name        string `json:"name" form:"name"`
	Slug        string `json:"slug" form:"slug"`
	Description string `json:"description" form:"description"`
	SortOrder   int    `json:"sort_order" form:"sort_order"`
}

func HandleAdminCategoryCreate(c *fiber.Ctx) error {
	var req categoryRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "bad_request", "invalid category payload")
	}

	repo := repository.GetGlobalFactory().GetCategoryRepository()

	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Name)
	}
	if exists, _ := repo.SlugExists(slug); exists {
		return errorJSON(c, fiber.StatusConflict, "slug_taken", "a category with this slug already exists")
	}

	category := &models.Category{
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
		SortOrder:   req.SortOrder,
	}
	if err := repo.Create(category); err != nil {
		return errorJSON(c, fiber.StatusUnprocessableEntity, "validation_failed", err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": category})
}

func HandleAdminCategoryUpdate(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "bad_request", err.Error())
	}

	repo := repository.GetGlobalFactory().GetCategoryRepository()
	category, err := repo.GetByID(id)
	if err != nil {
		return errorJSON(c, fiber.StatusNotFound, "not_found", "category not found")
	}

	var req categoryRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "bad_request", "invalid category payload")
	}

	if req.Name != "" {
		category.Name = req.Name
	}
	if req.Slug != "" && req.Slug != category.Slug {
		if exists, _ := repo.SlugExistsExceptID(req.Slug, id); exists {
			return errorJSON(c, fiber.StatusConflict, "slug_taken", "a category with this slug already exists")
		}
		category.Slug = req.Slug
	}
	category.Description = req.Description
	category.SortOrder = req.SortOrder

	if err := repo.Update(category); err != nil {
		return errorJSON(c, fiber.StatusUnprocessableEntity, "validation_failed", err.Error())
	}

	return c.JSON(fiber.Map{"data": category})
}

func HandleAdminCategoryDelete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "bad_request", err.Error())
	}

	if err := repository.GetGlobalFactory().GetCategoryRepository().Delete(id); err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_error", "could not delete category")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// ---- providers ----

type providerRequest struct {
	Name        string `json:"name" form:"name"`
	Slug        string `json:"slug" form:"slug"`
	Website     string `json:"website" form:"website"`
	Description string `json:"description" form:"description"`
}

func HandleAdminProviderCreate(c *fiber.Ctx) error {
	var req providerRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "bad_request", "invalid provider payload")
	}

	repo := repository.GetGlobalFactory().GetProviderRepository()

	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Name)
	}
	if exists, _ := repo.SlugExists(slug); exists {
		return errorJSON(c, fiber.StatusConflict, "slug_taken", "a provider with this slug already exists")
	}

	provider := &models.Provider{
		Name:        req.Name,
		Slug:        slug,
		Website:     req.Website,
		Description: req.Description,
	}
	if err := repo.Create(provider); err != nil {
		return errorJSON(c, fiber.StatusUnprocessableEntity, "validation_failed", err.Error())
	}

	go statistics.UpdateStatisticsCache()

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": provider})
}

func HandleAdminProviderUpdate(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "bad_request", err.Error())
	}

	repo := repository.GetGlobalFactory().GetProviderRepository()
	provider, err := repo.GetByID(id)
	if err != nil {
		return errorJSON(c, fiber.StatusNotFound, "not_found", "provider not found")
	}

	var req providerRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "bad_request", "invalid provider payload")
	}

	if req.Name != "" {
		provider.Name = req.Name
	}
	if req.Slug != "" {
		provider.Slug = req.Slug
	}
	provider.Website = req.Website
	provider.Description = req.Description

	if err := repo.Update(provider); err != nil {
		return errorJSON(c, fiber.StatusUnprocessableEntity, "validation_failed", err.Error())
	}

	return c.JSON(fiber.Map{"data": provider})
}

func HandleAdminProviderDelete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "bad_request", err.Error())
	}

	if err := repository.GetGlobalFactory().GetProviderRepository().Delete(id); err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_error", "could not delete provider")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// HandleAdminProviderLogo accepts a multipart logo upload, validates it by
// content sniffing and stores resized variants.
func HandleAdminProviderLogo(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "bad_request", err.Error())
	}

	repo := repository.GetGlobalFactory().GetProviderRepository()
	provider, err := repo.GetByID(id)
	if err != nil {
		return errorJSON(c, fiber.StatusNotFound, "not_found", "provider not found")
	}

	fileHeader, err := c.FormFile("logo")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "bad_request", "logo file is missing")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_error", "could not read upload")
	}
	head := make([]byte, 512)
	n, _ := file.Read(head)
	file.Close()

	if _, err := upload.ValidateImageBySniff(fileHeader.Filename, head[:n]); err != nil {
		return errorJSON(c, fiber.StatusUnprocessableEntity, "invalid_logo", err.Error())
	}

	tempPath := filepath.Join(os.TempDir(), uuid.New().String()+filepath.Ext(fileHeader.Filename))
	if err := c.SaveFile(fileHeader, tempPath); err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_error", "could not store upload")
	}
	defer os.Remove(tempPath)

	logoPath, err := logo.Process(tempPath, provider.Slug)
	if err != nil {
		log.Errorf("[Admin] logo processing for provider %d: %v", provider.ID, err)
		return errorJSON(c, fiber.StatusUnprocessableEntity, "invalid_logo", "could not process logo image")
	}

	provider.LogoURL = "/" + logoPath
	if err := repo.Update(provider); err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_error", "could not save provider")
	}

	return c.JSON(fiber.Map{"data": fiber.Map{"logo_url": provider.LogoURL}})
}

// ---- plans ----

type planRequest struct {
	Name           string   `json:"name" form:"name"`
	ProviderID     uint     `json:"provider_id" form:"provider_id"`
	CategoryID     uint     `json:"category_id" form:"category_id"`
	MonthlyPrice   float64  `json:"monthly_price" form:"monthly_price"`
	RenewalPrice   *float64 `json:"renewal_price" form:"renewal_price"`
	Currency       string   `json:"currency" form:"currency"`
	DiscountPct    *float64 `json:"discount_pct" form:"discount_pct"`
	FeatureSummary string   `json:"feature_summary" form:"feature_summary"`
	StorageGB      *float64 `json:"storage_gb" form:"storage_gb"`
	BandwidthTB    *float64 `json:"bandwidth_tb" form:"bandwidth_tb"`
	Support247     bool     `json:"support_247" form:"support_247"`
	SLAPct         *float64 `json:"sla_pct" form:"sla_pct"`
	MoneyBackDays  *int     `json:"money_back_days" form:"money_back_days"`
}

func (r *planRequest) apply(p *models.Plan) {
	p.Name = r.Name
	p.ProviderID = r.ProviderID
	p.CategoryID = r.CategoryID
	p.MonthlyPrice = r.MonthlyPrice
	p.RenewalPrice = r.RenewalPrice
	p.DiscountPct = r.DiscountPct
	p.FeatureSummary = r.FeatureSummary
	p.StorageGB = r.StorageGB
	p.BandwidthTB = r.BandwidthTB
	p.Support247 = r.Support247
	p.SLAPct = r.SLAPct
	p.MoneyBackDays = r.MoneyBackDays
	if r.Currency != "" {
		p.Currency = r.Currency
	} else if p.Currency == "" {
		p.Currency = "USD"
	}
}

func HandleAdminPlanCreate(c *fiber.Ctx) error {
	var req planRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "bad_request", "invalid plan payload")
	}

	factory := repository.GetGlobalFactory()
	if _, err := factory.GetProviderRepository().GetByID(req.ProviderID); err != nil {
		return errorJSON(c, fiber.StatusUnprocessableEntity, "validation_failed", "provider does not exist")
	}
	if _, err := factory.GetCategoryRepository().GetByID(req.CategoryID); err != nil {
		return errorJSON(c, fiber.StatusUnprocessableEntity, "validation_failed", "category does not exist")
	}

	plan := &models.Plan{}
	req.apply(plan)
	if err := plan.Validate(); err != nil {
		return errorJSON(c, fiber.StatusUnprocessableEntity, "validation_failed", err.Error())
	}

	if err := factory.GetPlanRepository().Create(plan); err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_error", "could not save plan")
	}

	go statistics.UpdateStatisticsCache()

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": plan})
}

func HandleAdminPlanUpdate(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "bad_request", err.Error())
	}

	repo := repository.GetGlobalFactory().GetPlanRepository()
	plan, err := repo.GetByID(id)
	if err != nil {
		return errorJSON(c, fiber.StatusNotFound, "not_found", "plan not found")
	}

	var req planRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "bad_request", "invalid plan payload")
	}

	req.apply(plan)
	if err := plan.Validate(); err != nil {
		return errorJSON(c, fiber.StatusUnprocessableEntity, "validation_failed", err.Error())
	}

	if err := repo.Update(plan); err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_error", "could not save plan")
	}

	return c.JSON(fiber.Map{"data": plan})
}

func HandleAdminPlanDelete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "bad_request", err.Error())
	}

	if err := repository.GetGlobalFactory().GetPlanRepository().Delete(id); err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_error", "could not delete plan")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// ---- plan features ----

type featureRequest struct {
	Name  string `json:"name" form:"name"`
	Value string `json:"value" form:"value"`
}

func HandleAdminPlanFeatureCreate(c *fiber.Ctx) error {
	planID, err := parseIDParam(c, "id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "bad_request", err.Error())
	}

	repo := repository.GetGlobalFactory().GetPlanRepository()
	if _, err := repo.GetByID(planID); err != nil {
		return errorJSON(c, fiber.StatusNotFound, "not_found", "plan not found")
	}

	var req featureRequest
	if err := c.BodyParser(&req); err != nil || req.Name == "" {
		return errorJSON(c, fiber.StatusBadRequest, "bad_request", "feature name is required")
	}

	feature := &models.PlanFeature{
		PlanID: planID,
		Name:   req.Name,
		Value:  req.Value,
	}
	if err := repo.AddFeature(feature); err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_error", "could not save feature")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": feature})
}

func HandleAdminPlanFeatureDelete(c *fiber.Ctx) error {
	featureID, err := parseIDParam(c, "feature_id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "bad_request", err.Error())
	}

	if err := repository.GetGlobalFactory().GetPlanRepository().DeleteFeature(featureID); err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_error", "could not delete feature")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
