package services

import (
	"fmt"
	"time"

	"github.com/gustta03/meals-api/models"

	gocache "github.com/patrickmn/go-cache"
)

// NutritionCache memoizes validated extractions by (description, weight) so
// repeated meals don't hit the model again. Entries expire after the
// configured TTL; the janitor keeps memory bounded.
type NutritionCache struct {
	store *gocache.Cache
}

func NewNutritionCache(ttl time.Duration) *NutritionCache {
	return &NutritionCache{store: gocache.New(ttl, 2*ttl)}
}

func cacheKey(description string, weightGrams float64) string {
	return fmt.Sprintf("%s|%g", description, weightGrams)
}

func (c *NutritionCache) Get(description string, weightGrams float64) (models.ValidatedNutrition, bool) {
	v, ok := c.store.Get(cacheKey(description, weightGrams))
	if !ok {
		return models.ValidatedNutrition{}, false
	}
	cached := v.(models.ValidatedNutrition)
	// A hit is returned clean: its warnings were already logged when stored.
	cached.Warnings = nil
	return cached, true
}

func (c *NutritionCache) Set(description string, weightGrams float64, n models.ValidatedNutrition) {
	c.store.SetDefault(cacheKey(description, weightGrams), n)
}
