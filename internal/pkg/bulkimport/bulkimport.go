package bulkimport

import "fmt"

// Entity names the catalog collection an import targets.
type Entity string

const (
	EntityPlans     Entity = "plans"
	EntityProviders Entity = "providers"
	EntityFeatures  Entity = "features"
)

// ParseEntity validates an entity path segment.
func ParseEntity(s string) (Entity, error) {
	switch Entity(s) {
	case EntityPlans, EntityProviders, EntityFeatures:
		return Entity(s), nil
	default:
		return "", fmt.Errorf("unknown import entity %q", s)
	}
}

// Record is one import row after header mapping: target field -> raw value.
// Records are transient; they only become catalog rows on successful submit.
type Record map[string]string

// TargetFields lists the mappable fields per entity, in display order.
func TargetFields(entity Entity) []string {
	switch entity {
	case EntityPlans:
		return []string{
			"name", "provider", "category", "price", "renewal_price",
			"currency", "discount_pct", "feature_summary",
			"storage_gb", "bandwidth_tb", "support_247", "sla_pct", "money_back_days",
		}
	case EntityProviders:
		return []string{"name", "website", "description"}
	case EntityFeatures:
		return []string{"plan", "name", "value"}
	default:
		return nil
	}
}

// RequiredFields lists the fields a record must carry to be submittable.
func RequiredFields(entity Entity) []string {
	switch entity {
	case EntityPlans:
		return []string{"name", "provider", "price"}
	case EntityProviders:
		return []string{"name"}
	case EntityFeatures:
		return []string{"name"}
	default:
		return nil
	}
}
