package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/hostpick/hostpick/app/models"
	"github.com/hostpick/hostpick/internal/pkg/bulkimport"
	"github.com/hostpick/hostpick/internal/pkg/utils"
)

// CatalogSubmitter persists bulk import records through the catalog
// repositories. It implements bulkimport.Submitter.
type CatalogSubmitter struct {
	repos *Repositories

	// DefaultCategorySlug is used for plan rows without a category column
	DefaultCategorySlug string
}

// NewCatalogSubmitter creates a submitter over the given repositories
func NewCatalogSubmitter(repos *Repositories) *CatalogSubmitter {
	return &CatalogSubmitter{repos: repos, DefaultCategorySlug: "shared-hosting"}
}

// SubmitBatch persists all records of one entity in a single transaction
func (s *CatalogSubmitter) SubmitBatch(ctx context.Context, entity bulkimport.Entity, records []bulkimport.Record) error {
	switch entity {
	case bulkimport.EntityProviders:
		providers := make([]*models.Provider, 0, len(records))
		for _, rec := range records {
			p, err := s.buildProvider(rec)
			if err != nil {
				return err
			}
			providers = append(providers, p)
		}
		return s.repos.Provider.CreateBatch(providers)

	case bulkimport.EntityPlans:
		plans := make([]*models.Plan, 0, len(records))
		for _, rec := range records {
			p, err := s.buildPlan(rec)
			if err != nil {
				return err
			}
			plans = append(plans, p)
		}
		return s.repos.Plan.CreateBatch(plans)

	case bulkimport.EntityFeatures:
		features := make([]*models.PlanFeature, 0, len(records))
		for _, rec := range records {
			f, err := s.buildFeature(rec)
			if err != nil {
				return err
			}
			features = append(features, f)
		}
		return s.repos.Plan.AddFeatureBatch(features)

	default:
		return fmt.Errorf("unknown import entity %q", entity)
	}
}

// SubmitOne persists a single record, used by the per-record fallback
func (s *CatalogSubmitter) SubmitOne(ctx context.Context, entity bulkimport.Entity, record bulkimport.Record) error {
	switch entity {
	case bulkimport.EntityProviders:
		p, err := s.buildProvider(record)
		if err != nil {
			return err
		}
		return s.repos.Provider.Create(p)

	case bulkimport.EntityPlans:
		p, err := s.buildPlan(record)
		if err != nil {
			return err
		}
		return s.repos.Plan.Create(p)

	case bulkimport.EntityFeatures:
		f, err := s.buildFeature(record)
		if err != nil {
			return err
		}
		return s.repos.Plan.AddFeature(f)

	default:
		return fmt.Errorf("unknown import entity %q", entity)
	}
}

func (s *CatalogSubmitter) buildProvider(rec bulkimport.Record) (*models.Provider, error) {
	name := strings.TrimSpace(rec["name"])
	if name == "" {
		return nil, fmt.Errorf("provider name is empty")
	}

	provider := &models.Provider{
		Name:        name,
		Slug:        utils.Slugify(name),
		Website:     strings.TrimSpace(rec["website"]),
		Description: strings.TrimSpace(rec["description"]),
	}
	return provider, nil
}

func (s *CatalogSubmitter) buildPlan(rec bulkimport.Record) (*models.Plan, error) {
	providerName := strings.TrimSpace(rec["provider"])
	provider, err := s.repos.Provider.GetByName(providerName)
	if err != nil {
		return nil, fmt.Errorf("unknown provider %q", providerName)
	}

	category, err := s.resolveCategory(rec["category"])
	if err != nil {
		return nil, err
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(rec["price"]), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid price %q", rec["price"])
	}

	currency := strings.ToUpper(strings.TrimSpace(rec["currency"]))
	if currency == "" {
		currency = "USD"
	}

	plan := &models.Plan{
		Name:           strings.TrimSpace(rec["name"]),
		ProviderID:     provider.ID,
		CategoryID:     category.ID,
		MonthlyPrice:   price,
		Currency:       currency,
		FeatureSummary: strings.TrimSpace(rec["feature_summary"]),
		Support247:     parseBool(rec["support_247"]),
		RenewalPrice:   parseOptionalFloat(rec["renewal_price"]),
		DiscountPct:    parseOptionalFloat(rec["discount_pct"]),
		StorageGB:      parseOptionalFloat(rec["storage_gb"]),
		BandwidthTB:    parseOptionalFloat(rec["bandwidth_tb"]),
		SLAPct:         parseOptionalFloat(rec["sla_pct"]),
		MoneyBackDays:  parseOptionalInt(rec["money_back_days"]),
	}
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *CatalogSubmitter) buildFeature(rec bulkimport.Record) (*models.PlanFeature, error) {
	planName := strings.TrimSpace(rec["plan"])
	plan, err := s.repos.Plan.GetByName(planName)
	if err != nil {
		return nil, fmt.Errorf("unknown plan %q", planName)
	}

	return &models.PlanFeature{
		PlanID: plan.ID,
		Name:   strings.TrimSpace(rec["name"]),
		Value:  strings.TrimSpace(rec["value"]),
	}, nil
}

func (s *CatalogSubmitter) resolveCategory(raw string) (*models.Category, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		category, err := s.repos.Category.GetBySlug(s.DefaultCategorySlug)
		if err != nil {
			return nil, fmt.Errorf("no category given and default %q missing", s.DefaultCategorySlug)
		}
		return category, nil
	}

	if category, err := s.repos.Category.GetByName(name); err == nil {
		return category, nil
	}
	if category, err := s.repos.Category.GetBySlug(utils.Slugify(name)); err == nil {
		return category, nil
	}
	return nil, fmt.Errorf("unknown category %q", name)
}

func parseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "y":
		return true
	default:
		return false
	}
}

func parseOptionalFloat(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseOptionalInt(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}
