package bulkimport

import (
	"fmt"
	"strconv"
	"strings"
)

// Problem is one human-readable validation finding. Row numbers are
// 1-based over the data rows, matching what the admin sees in the dialog.
type Problem struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (p Problem) String() string {
	return fmt.Sprintf("row %d: %s: %s", p.Row, p.Field, p.Message)
}

// Validate checks every record for the entity's required fields and basic
// numeric sanity. Submission is blocked while the returned list is non-empty.
func Validate(records []Record, entity Entity) []Problem {
	var problems []Problem

	required := RequiredFields(entity)
	for i, rec := range records {
		row := i + 1
		for _, field := range required {
			if strings.TrimSpace(rec[field]) == "" {
				problems = append(problems, Problem{
					Row:     row,
					Field:   field,
					Message: "required field is missing",
				})
			}
		}

		if entity == EntityPlans {
			if raw := strings.TrimSpace(rec["price"]); raw != "" {
				if v, err := strconv.ParseFloat(raw, 64); err != nil {
					problems = append(problems, Problem{Row: row, Field: "price", Message: "not a number"})
				} else if v < 0 {
					problems = append(problems, Problem{Row: row, Field: "price", Message: "must not be negative"})
				}
			}
			if raw := strings.TrimSpace(rec["discount_pct"]); raw != "" {
				if v, err := strconv.ParseFloat(raw, 64); err != nil || v < 0 || v > 100 {
					problems = append(problems, Problem{Row: row, Field: "discount_pct", Message: "must be between 0 and 100"})
				}
			}
		}
	}

	return problems
}
