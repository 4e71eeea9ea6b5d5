package counter

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"

	"github.com/hostpick/hostpick/internal/pkg/cache"
	"github.com/hostpick/hostpick/internal/pkg/database"
)

const (
	planViewsKey = "plan:counters:views"

	// FlushInterval is how often pending counters are written back to the
	// database.
	FlushInterval = time.Minute
)

// AddPlanView increments the pending view counter for a plan in Redis
func AddPlanView(planID uint) error {
	ctx := context.Background()
	field := strconv.FormatUint(uint64(planID), 10)
	return cache.GetClient().HIncrBy(ctx, planViewsKey, field, 1).Err()
}

// FlushAll flushes the pending plan view counters to the database
func FlushAll() error {
	return flushHashToTable(planViewsKey, "plans", "view_count")
}

// StartFlusher drains the pending counters on the given interval until the
// context is cancelled. A final drain runs on shutdown so no increments are
// lost in Redis.
func StartFlusher(ctx context.Context, interval time.Duration) {
	go runFlusher(ctx, interval, FlushAll)
}

func runFlusher(ctx context.Context, interval time.Duration, flush func() error) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if err := flush(); err != nil {
				log.Warnf("[Counter] final flush: %v", err)
			}
			return
		case <-ticker.C:
			if err := flush(); err != nil {
				log.Warnf("[Counter] flush: %v", err)
			}
		}
	}
}

// flushHashToTable drains a Redis hash atomically and applies batched increments.
// Uses RENAME to a temporary key for atomic drain without losing in-flight increments.
func flushHashToTable(redisKey, table, column string) error {
	ctx := context.Background()
	rdb := cache.GetClient()

	// Atomically move the hash to a temp key for draining
	tmpKey := fmt.Sprintf("%s:tmp:%d", redisKey, time.Now().UnixNano())
	if err := rdb.Do(ctx, "RENAME", redisKey, tmpKey).Err(); err != nil {
		// If key does not exist, nothing to flush
		if strings.Contains(strings.ToLower(err.Error()), "no such key") {
			return nil
		}
		if err.Error() == "redis: nil" {
			return nil
		}
		return err
	}

	// Ensure cleanup of tmpKey even if later steps fail
	defer rdb.Del(ctx, tmpKey)

	data, err := rdb.HGetAll(ctx, tmpKey).Result()
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}

	// Collect ids and increments; sort ids for stable SQL
	type pair struct {
		id  uint64
		inc int64
	}
	pairs := make([]pair, 0, len(data))
	for k, v := range data {
		id, perr := strconv.ParseUint(k, 10, 64)
		if perr != nil {
			continue
		}
		inc, ierr := strconv.ParseInt(v, 10, 64)
		if ierr != nil || inc == 0 {
			continue
		}
		pairs = append(pairs, pair{id: id, inc: inc})
	}
	if len(pairs) == 0 {
		return nil
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].id < pairs[j].id })

	// UPDATE plans SET view_count = view_count + CASE id WHEN ? THEN ? ... END WHERE id IN (...)
	var builder strings.Builder
	args := make([]interface{}, 0, len(pairs)*3)
	builder.WriteString("UPDATE ")
	builder.WriteString(table)
	builder.WriteString(" SET ")
	builder.WriteString(column)
	builder.WriteString(" = ")
	builder.WriteString(column)
	builder.WriteString(" + CASE id ")
	for _, p := range pairs {
		builder.WriteString(" WHEN ? THEN ?")
		args = append(args, p.id, p.inc)
	}
	builder.WriteString(" END WHERE id IN (")
	for i, p := range pairs {
		if i > 0 {
			builder.WriteString(",")
		}
		builder.WriteString("?")
		args = append(args, p.id)
	}
	builder.WriteString(")")

	db := database.GetDB()
	if err := db.Exec(builder.String(), args...).Error; err != nil {
		return err
	}
	return nil
}
