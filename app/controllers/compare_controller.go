package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/hostpick/hostpick/app/models"
	"github.com/hostpick/hostpick/app/repository"
	"github.com/hostpick/hostpick/internal/pkg/comparison"
	"github.com/hostpick/hostpick/internal/pkg/entitlements"
	"github.com/hostpick/hostpick/internal/pkg/session"
	"github.com/hostpick/hostpick/internal/pkg/sharelink"
	"github.com/hostpick/hostpick/internal/pkg/usercontext"
)

// compareSessionKey holds the encoded selection in the user session
const compareSessionKey = "compare_ids"

func compareLimit(c *fiber.Ctx) int {
	tier := entitlements.NormalizeTier(usercontext.GetTier(c))
	return entitlements.ComparisonLimit(tier)
}

// loadSelection restores the comparison selection from the session.
// A shrunk capacity (premium -> standard) truncates on decode.
func loadSelection(c *fiber.Ctx) *comparison.Set {
	encoded := session.GetSessionValue(c, compareSessionKey)
	return comparison.Decode(encoded, compareLimit(c))
}

func storeSelection(c *fiber.Ctx, set *comparison.Set) {
	if err := session.SetSessionValue(c, compareSessionKey, set.Encode()); err != nil {
		log.Warnf("[Compare] storing selection: %v", err)
	}
}

func selectionPayload(set *comparison.Set) fiber.Map {
	return fiber.Map{
		"ids":         set.IDs(),
		"size":        set.Size(),
		"capacity":    set.Capacity(),
		"can_compare": set.CanCompare(),
		"share_query": set.ShareQuery(),
	}
}

// HandleCompareSelection returns the current selection state
func HandleCompareSelection(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": selectionPayload(loadSelection(c))})
}

type compareAddRequest struct {
	PlanID uint `json:"plan_id" form:"plan_id"`
}

// HandleCompareAdd adds a plan to the selection. Duplicate and capacity
// rejections are reported as tagged statuses, not errors.
func HandleCompareAdd(c *fiber.Ctx) error {
	var req compareAddRequest
	if err := c.BodyParser(&req); err != nil || req.PlanID == 0 {
		return errorJSON(c, fiber.StatusBadRequest, "bad_request", "plan_id is required")
	}

	if _, err := repository.GetGlobalFactory().GetPlanRepository().GetByID(req.PlanID); err != nil {
		return errorJSON(c, fiber.StatusNotFound, "not_found", "plan not found")
	}

	set := loadSelection(c)
	res := set.Add(req.PlanID)
	if res.Status == comparison.StatusAdded {
		storeSelection(c, set)
	}

	status := fiber.StatusOK
	if res.Status == comparison.StatusLimitReached {
		status = fiber.StatusConflict
	}

	return c.Status(status).JSON(fiber.Map{
		"status":    res.Status.String(),
		"limit":     res.Limit,
		"selection": selectionPayload(set),
	})
}

// HandleCompareRemove removes one plan from the selection (idempotent)
func HandleCompareRemove(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "bad_request", err.Error())
	}

	set := loadSelection(c)
	removed := set.Remove(id)
	if removed {
		storeSelection(c, set)
	}

	return c.JSON(fiber.Map{
		"removed":   removed,
		"selection": selectionPayload(set),
	})
}

// HandleCompareClear empties the selection
func HandleCompareClear(c *fiber.Ctx) error {
	set := loadSelection(c)
	set.Clear()
	storeSelection(c, set)

	return c.JSON(fiber.Map{"selection": selectionPayload(set)})
}

// HandleCompare renders the comparison table data for ?ids=... or, without
// the parameter, for the session selection. Needs at least two plans.
func HandleCompare(c *fiber.Ctx) error {
	var ids []uint
	if raw := strings.TrimSpace(c.Query("ids")); raw != "" {
		ids = comparison.ParseIDList(raw)
		if len(ids) > comparison.ShareableDisplayCap {
			ids = ids[:comparison.ShareableDisplayCap]
		}
	} else {
		ids = loadSelection(c).IDs()
	}

	if len(ids) < comparison.MinCompareCount {
		return errorJSON(c, fiber.StatusUnprocessableEntity, "not_enough_plans",
			"select at least two plans to compare")
	}

	plans, err := repository.GetGlobalFactory().GetPlanRepository().GetByIDs(ids)
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_error", "could not load plans")
	}

	ordered := orderPlans(ids, plans)
	if len(ordered) < comparison.MinCompareCount {
		return errorJSON(c, fiber.StatusUnprocessableEntity, "not_enough_plans",
			"fewer than two of the requested plans exist")
	}

	loaded := weightStore.Load()
	data := make([]fiber.Map, 0, len(ordered))
	for i := range ordered {
		data = append(data, planPayload(&ordered[i], loaded.Weights))
	}

	return c.JSON(fiber.Map{
		"data": data,
		"meta": fiber.Map{
			"weights":        loaded.Weights,
			"weights_source": loaded.Source,
		},
	})
}

// HandleCompareShare issues a short share token for the current selection
func HandleCompareShare(c *fiber.Ctx) error {
	set := loadSelection(c)
	if !set.CanCompare() {
		return errorJSON(c, fiber.StatusUnprocessableEntity, "not_enough_plans",
			"select at least two plans to share")
	}

	token, err := sharelink.Create(set.ShareableIDs())
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_error", "could not create share link")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token": token,
		"url":   "/c/" + token,
	})
}

// HandleShareLink resolves a short share token to the comparison view
func HandleShareLink(c *fiber.Ctx) error {
	token := c.Params("token")
	ids, err := sharelink.Resolve(token)
	if err != nil {
		return errorJSON(c, fiber.StatusNotFound, "not_found", "unknown share link")
	}

	return c.Redirect("/api/v1/compare?ids="+comparison.JoinIDs(ids), fiber.StatusSeeOther)
}

// orderPlans returns the fetched plans in the order the IDs were requested,
// silently skipping IDs that no longer exist.
func orderPlans(ids []uint, plans []models.Plan) []models.Plan {
	byID := make(map[uint]*models.Plan, len(plans))
	for i := range plans {
		byID[plans[i].ID] = &plans[i]
	}

	ordered := make([]models.Plan, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			ordered = append(ordered, *p)
		}
	}
	return ordered
}
