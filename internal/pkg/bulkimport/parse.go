package bulkimport

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// CSVData is a parsed upload: the header row plus the raw data rows.
type CSVData struct {
	Headers []string
	Rows    [][]string
}

// ParseCSV reads an RFC 4180 CSV upload: quoted fields may contain commas
// and newlines, quotes are escaped by doubling. The first row is the header.
func ParseCSV(text string) (*CSVData, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1 // ragged rows are handled during mapping

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty CSV file")
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
	}

	return &CSVData{Headers: headers, Rows: records[1:]}, nil
}

// ParseJSON reads a JSON upload: an array of flat objects. Numeric and
// boolean values are rendered to their string form so records stay uniform
// with the CSV path.
func ParseJSON(text string) ([]Record, error) {
	var raw []map[string]interface{}
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("invalid JSON: expected an array of objects: %w", err)
	}

	records := make([]Record, 0, len(raw))
	for _, obj := range raw {
		rec := make(Record, len(obj))
		for k, v := range obj {
			rec[strings.TrimSpace(k)] = stringifyValue(v)
		}
		records = append(records, rec)
	}
	return records, nil
}

func stringifyValue(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		b, _ := json.Marshal(t)
		return string(b)
	}
}
