package statistics

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpdateCacheIfNeededRefreshesOnceUnderConcurrency(t *testing.T) {
	ResetCacheUpdateTimer()

	var calls int64
	refresh := func() error {
		atomic.AddInt64(&calls, 1)
		return nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			updateCacheIfNeeded(refresh)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), atomic.LoadInt64(&calls))
}

func TestUpdateCacheIfNeededSkipsWithinInterval(t *testing.T) {
	ResetCacheUpdateTimer()

	var calls int64
	refresh := func() error {
		atomic.AddInt64(&calls, 1)
		return nil
	}

	updateCacheIfNeeded(refresh)
	updateCacheIfNeeded(refresh)

	assert.Equal(t, int64(1), atomic.LoadInt64(&calls))
}

func TestResetCacheUpdateTimerForcesRefresh(t *testing.T) {
	ResetCacheUpdateTimer()

	var calls int64
	refresh := func() error {
		atomic.AddInt64(&calls, 1)
		return nil
	}

	updateCacheIfNeeded(refresh)
	ResetCacheUpdateTimer()
	updateCacheIfNeeded(refresh)

	assert.Equal(t, int64(2), atomic.LoadInt64(&calls))
}
