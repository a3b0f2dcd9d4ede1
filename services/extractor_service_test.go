package services

import (
	"context"
	"errors"
	"testing"

	"github.com/gustta03/meals-api/models"
)

func TestExtractCachesValidatedResults(t *testing.T) {
	cfg := testSettings()
	ai := &fakeAI{extraction: models.ExtractedNutrition{
		FoodName:    "feijoada",
		WeightGrams: 300,
		Calories:    360,
		ProteinG:    20,
		CarbsG:      30,
		FatG:        15,
	}}
	e := NewExtractorService(ai, NewValidatorService(cfg), NewNutritionCache(cfg.ExtractionCacheTTL))
	ctx := context.Background()

	first, err := e.Extract(ctx, "feijoada", 300)
	if err != nil {
		t.Fatal(err)
	}
	if first.FoodName != "feijoada" {
		t.Fatalf("got %+v", first)
	}

	second, err := e.Extract(ctx, "feijoada", 300)
	if err != nil {
		t.Fatal(err)
	}
	if ai.extractCalls != 1 {
		t.Errorf("model calls = %d, want 1 (second lookup served from cache)", ai.extractCalls)
	}
	if second.Calories != first.Calories {
		t.Errorf("cached calories = %v, want %v", second.Calories, first.Calories)
	}

	// A different weight is a different entry.
	if _, err := e.Extract(ctx, "feijoada", 150); err != nil {
		t.Fatal(err)
	}
	if ai.extractCalls != 2 {
		t.Errorf("model calls = %d, want 2 after a new weight", ai.extractCalls)
	}
}

func TestExtractCacheHitDropsWarnings(t *testing.T) {
	cfg := testSettings()
	// Reported calories diverge wildly from the macro math: warning attached.
	ai := &fakeAI{extraction: models.ExtractedNutrition{
		FoodName:    "bolo",
		WeightGrams: 100,
		Calories:    600,
		ProteinG:    20,
		CarbsG:      50,
		FatG:        10,
	}}
	e := NewExtractorService(ai, NewValidatorService(cfg), NewNutritionCache(cfg.ExtractionCacheTTL))
	ctx := context.Background()

	first, err := e.Extract(ctx, "bolo", 100)
	if err != nil {
		t.Fatal(err)
	}
	if len(first.Warnings) == 0 {
		t.Fatal("want warnings on the fresh extraction")
	}

	second, err := e.Extract(ctx, "bolo", 100)
	if err != nil {
		t.Fatal(err)
	}
	if len(second.Warnings) != 0 {
		t.Errorf("cache hit carried warnings %v, want none (already logged once)", second.Warnings)
	}
}

func TestExtractRejectedRecordsAreNotCached(t *testing.T) {
	cfg := testSettings()
	ai := &fakeAI{extraction: models.ExtractedNutrition{
		FoodName:    "mistério",
		WeightGrams: 100,
		Calories:    9000,
	}}
	e := NewExtractorService(ai, NewValidatorService(cfg), NewNutritionCache(cfg.ExtractionCacheTTL))
	ctx := context.Background()

	var vErr *ValidationError
	if _, err := e.Extract(ctx, "mistério", 100); !errors.As(err, &vErr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if _, err := e.Extract(ctx, "mistério", 100); !errors.As(err, &vErr) {
		t.Fatalf("err = %v, want ValidationError on retry", err)
	}
	if ai.extractCalls != 2 {
		t.Errorf("model calls = %d, want 2 (rejects never enter the cache)", ai.extractCalls)
	}
}
