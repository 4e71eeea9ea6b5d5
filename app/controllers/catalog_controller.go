package controllers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/hostpick/hostpick/app/models"
	"github.com/hostpick/hostpick/app/repository"
	"github.com/hostpick/hostpick/internal/pkg/currency"
	"github.com/hostpick/hostpick/internal/pkg/metrics/counter"
	"github.com/hostpick/hostpick/internal/pkg/scoring"
	"github.com/hostpick/hostpick/internal/pkg/usercontext"
	"github.com/hostpick/hostpick/internal/pkg/utils"
)

var weightStore *scoring.Store

// InitializeControllers wires the controllers that need repository access.
// Must run after the repository factory is initialized.
func InitializeControllers() {
	weightStore = scoring.NewStore(repository.GetGlobalFactory().GetSettingRepository())
}

// planPayload is the JSON shape of a plan in catalog and compare responses
func planPayload(p *models.Plan, w scoring.Weights) fiber.Map {
	payload := fiber.Map{
		"id":              p.ID,
		"name":            p.Name,
		"provider_id":     p.ProviderID,
		"category_id":     p.CategoryID,
		"monthly_price":   p.MonthlyPrice,
		"price_formatted": currency.Format(p.MonthlyPrice, p.Currency),
		"currency":        p.Currency,
		"feature_summary": p.FeatureSummary,
		"support_247":     p.Support247,
		"view_count":      p.ViewCount,
		"score":           scoring.ComputeScore(scoring.AttributesFromPlan(p), w),
	}
	if p.Provider.ID != 0 {
		payload["provider"] = fiber.Map{
			"id":         p.Provider.ID,
			"name":       p.Provider.Name,
			"slug":       p.Provider.Slug,
			"logo_url":   p.Provider.LogoURL,
			"avg_rating": p.Provider.AvgRating,
		}
	}
	if p.RenewalPrice != nil {
		payload["renewal_price"] = *p.RenewalPrice
		payload["renewal_formatted"] = currency.Format(*p.RenewalPrice, p.Currency)
	}
	if p.DiscountPct != nil {
		payload["discount_pct"] = *p.DiscountPct
	}
	if len(p.Features) > 0 {
		payload["features"] = p.Features
	}
	return payload
}

// HandleListCategories returns all categories ordered by sort order
func HandleListCategories(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetCategoryRepository()

	page, perPage, offset := parsePagination(c)
	categories, err := repo.List(offset, perPage)
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_error", "could not load categories")
	}
	total, _ := repo.Count()

	return listResponse(c, categories, page, perPage, total)
}

// HandleListProviders returns providers, optionally filtered by ?q
func HandleListProviders(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetProviderRepository()

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		providers, err := repo.Search(q)
		if err != nil {
			return errorJSON(c, fiber.StatusInternalServerError, "internal_error", "provider search failed")
		}
		return listResponse(c, providers, 1, len(providers)+1, int64(len(providers)))
	}

	page, perPage, offset := parsePagination(c)
	providers, err := repo.List(offset, perPage)
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_error", "could not load providers")
	}
	total, _ := repo.Count()

	return listResponse(c, providers, page, perPage, total)
}

// HandleGetProvider returns one provider with its plans
func HandleGetProvider(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "bad_request", err.Error())
	}

	factory := repository.GetGlobalFactory()
	provider, err := factory.GetProviderRepository().GetByID(id)
	if err != nil {
		return errorJSON(c, fiber.StatusNotFound, "not_found", "provider not found")
	}

	plans, err := factory.GetPlanRepository().GetByProviderID(id, 0, maxPageSize)
	if err != nil {
		plans = nil
	}

	w := weightStore.Load().Weights
	planList := make([]fiber.Map, 0, len(plans))
	for i := range plans {
		planList = append(planList, planPayload(&plans[i], w))
	}

	return c.JSON(fiber.Map{"data": fiber.Map{
		"id":          provider.ID,
		"name":        provider.Name,
		"slug":        provider.Slug,
		"website":     provider.Website,
		"logo_url":    provider.LogoURL,
		"description": provider.Description,
		"avg_rating":  provider.AvgRating,
		"plans":       planList,
	}})
}

// HandleListPlans returns plans filtered by category, provider or search term
func HandleListPlans(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetPlanRepository()
	page, perPage, offset := parsePagination(c)

	var (
		plans []models.Plan
		total int64
		err   error
	)

	switch {
	case c.Query("category_id") != "":
		categoryID, perr := strconv.ParseUint(c.Query("category_id"), 10, 32)
		if perr != nil {
			return errorJSON(c, fiber.StatusBadRequest, "bad_request", "invalid category_id")
		}
		plans, err = repo.GetByCategoryID(uint(categoryID), offset, perPage)
		if err == nil {
			total, _ = repo.CountByCategoryID(uint(categoryID))
		}
	case c.Query("provider_id") != "":
		providerID, perr := strconv.ParseUint(c.Query("provider_id"), 10, 32)
		if perr != nil {
			return errorJSON(c, fiber.StatusBadRequest, "bad_request", "invalid provider_id")
		}
		plans, err = repo.GetByProviderID(uint(providerID), offset, perPage)
		if err == nil {
			total, _ = repo.CountByProviderID(uint(providerID))
		}
	case strings.TrimSpace(c.Query("q")) != "":
		plans, err = repo.Search(strings.TrimSpace(c.Query("q")))
		total = int64(len(plans))
	default:
		plans, err = repo.List(offset, perPage)
		if err == nil {
			total, _ = repo.Count()
		}
	}

	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_error", "could not load plans")
	}

	w := weightStore.Load().Weights
	data := make([]fiber.Map, 0, len(plans))
	for i := range plans {
		data = append(data, planPayload(&plans[i], w))
	}

	return listResponse(c, data, page, perPage, total)
}

// HandleGetPlan returns one plan with features, score and formatted prices
func HandleGetPlan(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "bad_request", err.Error())
	}

	plan, err := repository.GetGlobalFactory().GetPlanRepository().GetByID(id)
	if err != nil {
		return errorJSON(c, fiber.StatusNotFound, "not_found", "plan not found")
	}

	// View counters are flushed to the plans table in batches
	if err := counter.AddPlanView(plan.ID); err != nil {
		log.Warnf("[Catalog] view counter for plan %d: %v", plan.ID, err)
	}

	w := weightStore.Load().Weights
	return c.JSON(fiber.Map{"data": planPayload(plan, w)})
}

// HandleListPlanReviews returns the reviews of a plan
func HandleListPlanReviews(c *fiber.Ctx) error {
	planID, err := parseIDParam(c, "id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "bad_request", err.Error())
	}

	repo := repository.GetGlobalFactory().GetReviewRepository()
	page, perPage, offset := parsePagination(c)

	reviews, err := repo.GetByPlanID(planID, offset, perPage)
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_error", "could not load reviews")
	}
	total, _ := repo.CountByPlanID(planID)

	payloads := make([]fiber.Map, 0, len(reviews))
	for i := range reviews {
		payloads = append(payloads, reviewPayload(&reviews[i]))
	}

	return listResponse(c, payloads, page, perPage, total)
}

// reviewPayload exposes the author as name and avatar only, never the
// account email.
func reviewPayload(r *models.Review) fiber.Map {
	payload := fiber.Map{
		"id":         r.ID,
		"plan_id":    r.PlanID,
		"rating":     r.Rating,
		"title":      r.Title,
		"body":       r.Body,
		"created_at": r.CreatedAt,
	}
	if r.User.ID != 0 {
		payload["author"] = fiber.Map{
			"name":   r.User.Name,
			"avatar": utils.GetGravatarURL(r.User.Email, 64),
		}
	}
	return payload
}

type reviewRequest struct {
	Rating int    `json:"rating" form:"rating"`
	Title  string `json:"title" form:"title"`
	Body   string `json:"body" form:"body"`
}

// HandleCreatePlanReview stores a review for the authenticated user
func HandleCreatePlanReview(c *fiber.Ctx) error {
	planID, err := parseIDParam(c, "id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "bad_request", err.Error())
	}

	userID := usercontext.GetUserID(c)
	if userID == 0 {
		return errorJSON(c, fiber.StatusUnauthorized, "unauthorized", "login required")
	}

	var req reviewRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "bad_request", "invalid review payload")
	}

	factory := repository.GetGlobalFactory()
	plan, err := factory.GetPlanRepository().GetByID(planID)
	if err != nil {
		return errorJSON(c, fiber.StatusNotFound, "not_found", "plan not found")
	}

	reviewRepo := factory.GetReviewRepository()
	already, err := reviewRepo.HasUserReviewed(userID, planID)
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_error", "could not check existing reviews")
	}
	if already {
		return errorJSON(c, fiber.StatusConflict, "already_reviewed", "you already reviewed this plan")
	}

	ipv4, ipv6 := GetClientIP(c)
	review := &models.Review{
		PlanID: planID,
		UserID: userID,
		Rating: req.Rating,
		Title:  req.Title,
		Body:   req.Body,
		IPv4:   ipv4,
		IPv6:   ipv6,
	}
	if err := review.Validate(); err != nil {
		return errorJSON(c, fiber.StatusUnprocessableEntity, "validation_failed", err.Error())
	}

	if err := reviewRepo.Create(review); err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_error", "could not save review")
	}

	// Refresh the denormalized provider rating
	if err := factory.GetProviderRepository().RefreshAvgRating(plan.ProviderID); err != nil {
		log.Warnf("[Catalog] rating refresh for provider %d: %v", plan.ProviderID, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": reviewPayload(review)})
}
