package bulkimport

import "strings"

// Mapping assigns a CSV header to a target field. Headers mapped to ""
// are ignored during row mapping.
type Mapping map[string]string

// SuggestMapping proposes a header->field mapping by case-insensitive name
// match, the same auto-suggestion the import dialog starts from. Headers
// without a matching field stay unmapped.
func SuggestMapping(headers []string, entity Entity) Mapping {
	fields := TargetFields(entity)
	byLower := make(map[string]string, len(fields))
	for _, f := range fields {
		byLower[strings.ToLower(f)] = f
	}

	m := make(Mapping, len(headers))
	for _, h := range headers {
		key := strings.ToLower(strings.TrimSpace(h))
		// Tolerate "Storage GB" style headers for snake_case fields.
		key = strings.ReplaceAll(key, " ", "_")
		if f, ok := byLower[key]; ok {
			m[h] = f
		}
	}
	return m
}

// MapRows applies the header mapping to raw CSV rows, producing records.
// Ragged rows simply leave trailing fields unset.
func MapRows(data *CSVData, mapping Mapping) []Record {
	records := make([]Record, 0, len(data.Rows))
	for _, row := range data.Rows {
		rec := make(Record)
		for i, header := range data.Headers {
			field, ok := mapping[header]
			if !ok || field == "" {
				continue
			}
			if i < len(row) {
				rec[field] = strings.TrimSpace(row[i])
			}
		}
		records = append(records, rec)
	}
	return records
}
