package bulkimport

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSVQuotedFields(t *testing.T) {
	t.Parallel()

	text := "name,description,price\n" +
		"\"Starter, SSD\",\"multi\nline\",4.99\n" +
		"\"He said \"\"cheap\"\"\",plain,9.99\n"

	data, err := ParseCSV(text)
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "description", "price"}, data.Headers)
	require.Len(t, data.Rows, 2)
	assert.Equal(t, "Starter, SSD", data.Rows[0][0])
	assert.Equal(t, "multi\nline", data.Rows[0][1])
	assert.Equal(t, `He said "cheap"`, data.Rows[1][0])
}

func TestParseCSVEmpty(t *testing.T) {
	t.Parallel()

	_, err := ParseCSV("")
	assert.Error(t, err)
}

func TestParseJSON(t *testing.T) {
	t.Parallel()

	records, err := ParseJSON(`[{"name":"Basic","price":4.99,"support_247":true},{"name":"Pro"}]`)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Basic", records[0]["name"])
	assert.Equal(t, "4.99", records[0]["price"])
	assert.Equal(t, "true", records[0]["support_247"])
}

func TestParseJSONRejectsNonArray(t *testing.T) {
	t.Parallel()

	_, err := ParseJSON(`{"name":"Basic"}`)
	assert.Error(t, err)
}

func TestSuggestMapping(t *testing.T) {
	t.Parallel()

	headers := []string{"Name", "PRICE", "Storage GB", "Unrelated"}
	m := SuggestMapping(headers, EntityPlans)

	assert.Equal(t, "name", m["Name"])
	assert.Equal(t, "price", m["PRICE"])
	assert.Equal(t, "storage_gb", m["Storage GB"])
	_, mapped := m["Unrelated"]
	assert.False(t, mapped)
}

func TestMapRows(t *testing.T) {
	t.Parallel()

	data := &CSVData{
		Headers: []string{"Name", "Price", "Ignored"},
		Rows: [][]string{
			{"Basic", "4.99", "x"},
			{"Pro"}, // ragged row
		},
	}
	mapping := Mapping{"Name": "name", "Price": "price"}

	records := MapRows(data, mapping)
	require.Len(t, records, 2)
	assert.Equal(t, Record{"name": "Basic", "price": "4.99"}, records[0])
	assert.Equal(t, Record{"name": "Pro"}, records[1])
}

func TestValidateRequiredFields(t *testing.T) {
	t.Parallel()

	records := []Record{
		{"name": "Basic", "provider": "Acme", "price": "4.99"},
		{"name": "", "provider": "Acme", "price": "9.99"},
		{"name": "Pro", "provider": "Acme"},
	}

	problems := Validate(records, EntityPlans)
	require.Len(t, problems, 2)
	assert.Equal(t, 2, problems[0].Row)
	assert.Equal(t, "name", problems[0].Field)
	assert.Equal(t, 3, problems[1].Row)
	assert.Equal(t, "price", problems[1].Field)
	assert.Contains(t, problems[0].String(), "row 2")
}

func TestValidateNumericSanity(t *testing.T) {
	t.Parallel()

	records := []Record{
		{"name": "Basic", "provider": "Acme", "price": "cheap"},
		{"name": "Pro", "provider": "Acme", "price": "9.99", "discount_pct": "150"},
	}

	problems := Validate(records, EntityPlans)
	require.Len(t, problems, 2)
	assert.Equal(t, "price", problems[0].Field)
	assert.Equal(t, "discount_pct", problems[1].Field)
}

type fakeSubmitter struct {
	batchErr error
	oneErr   map[int]error // record index -> error
	batches  int
	singles  int
}

func (f *fakeSubmitter) SubmitBatch(ctx context.Context, entity Entity, records []Record) error {
	f.batches++
	return f.batchErr
}

func (f *fakeSubmitter) SubmitOne(ctx context.Context, entity Entity, record Record) error {
	defer func() { f.singles++ }()
	if err, ok := f.oneErr[f.singles]; ok {
		return err
	}
	return nil
}

func TestSubmitBatchSuccess(t *testing.T) {
	t.Parallel()

	s := &fakeSubmitter{}
	res, err := Submit(context.Background(), s, EntityPlans, []Record{{"name": "a"}, {"name": "b"}})
	require.NoError(t, err)
	assert.Equal(t, Result{Imported: 2, Mode: "batch"}, res)
	assert.Equal(t, 0, s.singles)
}

func TestSubmitFallbackCountsSuccesses(t *testing.T) {
	t.Parallel()

	s := &fakeSubmitter{
		batchErr: fmt.Errorf("endpoint missing"),
		oneErr:   map[int]error{1: fmt.Errorf("bad record")},
	}
	res, err := Submit(context.Background(), s, EntityPlans,
		[]Record{{"name": "a"}, {"name": "b"}, {"name": "c"}})
	require.NoError(t, err)
	assert.Equal(t, Result{Imported: 2, Failed: 1, Mode: "fallback"}, res)
	assert.Equal(t, 3, s.singles)
}

func TestSubmitProvidersHaveNoFallback(t *testing.T) {
	t.Parallel()

	s := &fakeSubmitter{batchErr: fmt.Errorf("server error")}
	res, err := Submit(context.Background(), s, EntityProviders, []Record{{"name": "Acme"}})
	require.Error(t, err)
	assert.Equal(t, 1, res.Failed)
	assert.Equal(t, 0, s.singles)
}

func TestSubmitEmptyIsNoOp(t *testing.T) {
	t.Parallel()

	s := &fakeSubmitter{}
	res, err := Submit(context.Background(), s, EntityFeatures, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Imported)
	assert.Equal(t, 0, s.batches)
}
