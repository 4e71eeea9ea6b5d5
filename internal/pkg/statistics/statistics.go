package statistics

import (
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/hostpick/hostpick/app/models"
	"github.com/hostpick/hostpick/internal/pkg/cache"
	"github.com/hostpick/hostpick/internal/pkg/database"
)

const (
	CacheKeyPlansTotal     = "statistics:plans:total"
	CacheKeyProvidersTotal = "statistics:providers:total"
	CacheKeyReviewsTotal   = "statistics:reviews:total"
	CacheKeyUsersTotal     = "statistics:users:total"
	CacheExpiration        = 30 * time.Minute
)

// StatisticsData holds the catalog counters shown on the start page.
type StatisticsData struct {
	TotalPlans     int
	TotalProviders int
	TotalReviews   int
	TotalUsers     int
}

var (
	lastCacheUpdate     time.Time
	cacheUpdateMutex    sync.Mutex
	cacheUpdateInterval = 5 * time.Minute
)

// UpdateCacheIfNeeded refreshes the cached counters when they are stale.
func UpdateCacheIfNeeded() {
	updateCacheIfNeeded(UpdateStatisticsCache)
}

// updateCacheIfNeeded holds the mutex across check and refresh so that
// concurrent callers cannot both trigger a refresh.
func updateCacheIfNeeded(refresh func() error) {
	cacheUpdateMutex.Lock()
	defer cacheUpdateMutex.Unlock()

	if time.Since(lastCacheUpdate) <= cacheUpdateInterval {
		return
	}

	if err := refresh(); err != nil {
		log.Printf("Error refreshing statistics cache: %v", err)
	} else {
		lastCacheUpdate = time.Now()
	}
}

// ResetCacheUpdateTimer forces the next UpdateCacheIfNeeded to refresh.
func ResetCacheUpdateTimer() {
	cacheUpdateMutex.Lock()
	defer cacheUpdateMutex.Unlock()

	lastCacheUpdate = time.Time{}
}

// UpdateStatisticsCache counts the catalog tables and stores the results.
func UpdateStatisticsCache() error {
	db := database.GetDB()

	counts := []struct {
		model    interface{}
		cacheKey string
	}{
		{&models.Plan{}, CacheKeyPlansTotal},
		{&models.Provider{}, CacheKeyProvidersTotal},
		{&models.Review{}, CacheKeyReviewsTotal},
		{&models.User{}, CacheKeyUsersTotal},
	}

	for _, c := range counts {
		var total int64
		if err := db.Model(c.model).Count(&total).Error; err != nil {
			log.Printf("Error counting for %s: %v", c.cacheKey, err)
			return err
		}
		if err := cache.Set(c.cacheKey, strconv.FormatInt(total, 10), CacheExpiration); err != nil {
			log.Printf("Error caching %s: %v", c.cacheKey, err)
			return err
		}
	}

	return nil
}

func getCount(cacheKey string, model interface{}) int {
	val, err := cache.Get(cacheKey)
	if err != nil {
		var count int64
		db := database.GetDB()
		if err := db.Model(model).Count(&count).Error; err != nil {
			log.Printf("Error counting for %s: %v", cacheKey, err)
			return 0
		}

		if err := cache.Set(cacheKey, strconv.FormatInt(count, 10), CacheExpiration); err != nil {
			log.Printf("Error caching %s: %v", cacheKey, err)
		}

		return int(count)
	}

	count, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0
	}

	return int(count)
}

// GetTotalPlans returns the plan count from cache or database.
func GetTotalPlans() int {
	return getCount(CacheKeyPlansTotal, &models.Plan{})
}

// GetTotalProviders returns the provider count from cache or database.
func GetTotalProviders() int {
	return getCount(CacheKeyProvidersTotal, &models.Provider{})
}

// GetTotalReviews returns the review count from cache or database.
func GetTotalReviews() int {
	return getCount(CacheKeyReviewsTotal, &models.Review{})
}

// GetTotalUsers returns the user count from cache or database.
func GetTotalUsers() int {
	return getCount(CacheKeyUsersTotal, &models.User{})
}

// GetStatisticsData returns all counters, refreshing the cache when stale.
func GetStatisticsData() StatisticsData {
	UpdateCacheIfNeeded()

	return StatisticsData{
		TotalPlans:     GetTotalPlans(),
		TotalProviders: GetTotalProviders(),
		TotalReviews:   GetTotalReviews(),
		TotalUsers:     GetTotalUsers(),
	}
}
