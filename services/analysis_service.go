package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/gustta03/meals-api/models"

	"github.com/google/uuid"
)

// AnalysisService turns identified foods into a priced NutritionAnalysis.
// The catalog is exact and auditable but incomplete; the model is
// comprehensive but must be validated. Catalog first, model as fallback.
type AnalysisService struct {
	ai         LanguageUnderstanding
	resolver   *ResolverService
	calculator *CalculatorService
	extractor  *ExtractorService
}

func NewAnalysisService(ai LanguageUnderstanding, resolver *ResolverService, calculator *CalculatorService, extractor *ExtractorService) *AnalysisService {
	return &AnalysisService{ai: ai, resolver: resolver, calculator: calculator, extractor: extractor}
}

// AnalyzeText identifies the foods in a free-text meal description and prices
// each one.
func (a *AnalysisService) AnalyzeText(ctx context.Context, text string) (*models.NutritionAnalysis, error) {
	identifications, err := a.ai.IdentifyFoods(ctx, text)
	if err != nil {
		return nil, err
	}

	var items []models.NutritionItem
	for _, id := range identifications {
		item, err := a.priceFood(ctx, id.Name, id.WeightGrams, fmt.Sprintf("%.0fg", id.WeightGrams))
		if err != nil {
			log.Printf("skipping %q: %v", id.Name, err)
			continue
		}
		items = append(items, *item)
	}
	return a.finish(items)
}

// PriceItems prices an already-identified item list, e.g. a confirmed image
// extraction.
func (a *AnalysisService) PriceItems(ctx context.Context, pending []models.PendingItem) (*models.NutritionAnalysis, error) {
	var items []models.NutritionItem
	for _, p := range pending {
		quantity := p.Quantity
		if quantity == "" {
			quantity = fmt.Sprintf("%.0fg", p.WeightGrams)
		}
		item, err := a.priceFood(ctx, p.Name, p.WeightGrams, quantity)
		if err != nil {
			log.Printf("skipping %q: %v", p.Name, err)
			continue
		}
		items = append(items, *item)
	}
	return a.finish(items)
}

func (a *AnalysisService) priceFood(ctx context.Context, name string, weightGrams float64, quantity string) (*models.NutritionItem, error) {
	resolved, err := a.resolver.Resolve(ctx, name, weightGrams)
	if err != nil {
		return nil, err
	}
	if resolved != nil {
		nutrients := a.calculator.Scale(resolved.Food, weightGrams)
		return &models.NutritionItem{
			Name:        resolved.Food.Name,
			Quantity:    quantity,
			WeightGrams: weightGrams,
			FoodRef:     "taco_" + resolved.Food.Code,
			Nutrients:   nutrients,
		}, nil
	}

	validated, err := a.extractor.Extract(ctx, name, weightGrams)
	if err != nil {
		return nil, err
	}
	return &models.NutritionItem{
		Name:        validated.FoodName,
		Quantity:    quantity,
		WeightGrams: validated.WeightGrams,
		FoodRef:     "gemini_" + uuid.NewString(),
		Nutrients: models.Nutrients{
			Kcal:     round2(validated.Calories),
			ProteinG: round2(validated.ProteinG),
			CarbG:    round2(validated.CarbsG),
			FatG:     round2(validated.FatG),
		},
	}, nil
}

func (a *AnalysisService) finish(items []models.NutritionItem) (*models.NutritionAnalysis, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("no food could be priced: %w", ErrNotFound)
	}
	totals, err := a.calculator.Aggregate(items)
	if err != nil {
		return nil, err
	}
	return &models.NutritionAnalysis{Items: items, Totals: totals}, nil
}

// IsRecoverable reports whether the user should get a retry prompt rather
// than the generic failure message.
func IsRecoverable(err error) bool {
	var vErr *ValidationError
	return errors.Is(err, ErrNotFound) || errors.As(err, &vErr)
}
