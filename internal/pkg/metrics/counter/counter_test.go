package counter

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunFlusherFlushesPeriodically(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	flushed := make(chan struct{}, 16)
	flush := func() error {
		flushed <- struct{}{}
		return nil
	}

	done := make(chan struct{})
	go func() {
		runFlusher(ctx, 5*time.Millisecond, flush)
		close(done)
	}()

	// At least two ticks drain before shutdown
	for i := 0; i < 2; i++ {
		select {
		case <-flushed:
		case <-time.After(time.Second):
			t.Fatal("flush did not run on tick")
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("flusher did not stop on cancel")
	}
}

func TestRunFlusherDrainsOnShutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var calls int64
	flush := func() error {
		atomic.AddInt64(&calls, 1)
		return nil
	}

	done := make(chan struct{})
	go func() {
		runFlusher(ctx, time.Hour, flush)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("flusher did not stop on cancel")
	}

	// The interval never elapsed, so the only call is the final drain
	require.Equal(t, int64(1), atomic.LoadInt64(&calls))
}

func TestRunFlusherKeepsRunningAfterFlushError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	flushed := make(chan error, 16)
	first := int64(0)
	flush := func() error {
		if atomic.AddInt64(&first, 1) == 1 {
			flushed <- assert.AnError
			return assert.AnError
		}
		flushed <- nil
		return nil
	}

	go runFlusher(ctx, 5*time.Millisecond, flush)

	var results []error
	for i := 0; i < 2; i++ {
		select {
		case err := <-flushed:
			results = append(results, err)
		case <-time.After(time.Second):
			t.Fatal("flush did not run on tick")
		}
	}

	require.Len(t, results, 2)
	assert.Error(t, results[0])
	assert.NoError(t, results[1])
}
