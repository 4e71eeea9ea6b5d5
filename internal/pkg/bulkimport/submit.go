package bulkimport

import (
	"context"
	"fmt"
)

// Submitter persists import records. The catalog repositories back the real
// one; tests use fakes.
type Submitter interface {
	SubmitBatch(ctx context.Context, entity Entity, records []Record) error
	SubmitOne(ctx context.Context, entity Entity, record Record) error
}

// Result summarizes a submit run.
type Result struct {
	Imported int    `json:"imported"`
	Failed   int    `json:"failed"`
	Mode     string `json:"mode"` // "batch" or "fallback"
}

// Submit tries the batch path first. When the batch fails for plans or
// features, records are submitted one at a time and successes are counted.
// Providers have no per-record fallback: a failed batch fails the import.
func Submit(ctx context.Context, s Submitter, entity Entity, records []Record) (Result, error) {
	if len(records) == 0 {
		return Result{Mode: "batch"}, nil
	}

	batchErr := s.SubmitBatch(ctx, entity, records)
	if batchErr == nil {
		return Result{Imported: len(records), Mode: "batch"}, nil
	}

	if entity == EntityProviders {
		return Result{Failed: len(records), Mode: "batch"},
			fmt.Errorf("provider import failed: %w", batchErr)
	}

	res := Result{Mode: "fallback"}
	for _, rec := range records {
		if err := s.SubmitOne(ctx, entity, rec); err != nil {
			res.Failed++
			continue
		}
		res.Imported++
	}
	return res, nil
}
