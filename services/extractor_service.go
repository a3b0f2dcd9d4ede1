package services

import (
	"context"
	"log"

	"github.com/gustta03/meals-api/models"
)

// ExtractorService is the cache → model → validate pipeline for a single
// (description, weight) pair.
type ExtractorService struct {
	ai        LanguageUnderstanding
	validator *ValidatorService
	cache     *NutritionCache
}

func NewExtractorService(ai LanguageUnderstanding, validator *ValidatorService, cache *NutritionCache) *ExtractorService {
	return &ExtractorService{ai: ai, validator: validator, cache: cache}
}

func (e *ExtractorService) Extract(ctx context.Context, description string, weightGrams float64) (models.ValidatedNutrition, error) {
	if cached, ok := e.cache.Get(description, weightGrams); ok {
		log.Printf("extraction cache hit for %q (%.0fg)", description, weightGrams)
		return cached, nil
	}

	extracted, err := e.ai.ExtractNutrition(ctx, description, weightGrams)
	if err != nil {
		return models.ValidatedNutrition{}, err
	}

	validated, err := e.validator.Validate(extracted)
	if err != nil {
		return models.ValidatedNutrition{}, err
	}

	e.cache.Set(description, weightGrams, validated)
	return validated, nil
}
