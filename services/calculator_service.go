package services

import (
	"fmt"

	"github.com/gustta03/meals-api/models"
)

// CalculatorService scales catalog rows to requested weights and aggregates
// item lists. Every value is rounded to two decimals as soon as it is
// produced; Aggregate sums the already-rounded values and rounds the sums
// again, so a total can drift a few hundredths from an unrounded sum. That is
// the documented behavior, kept on purpose.
type CalculatorService struct{}

func NewCalculatorService() *CalculatorService { return &CalculatorService{} }

// Scale converts a catalog row's per-portion nutrients to weightGrams.
func (s *CalculatorService) Scale(food *models.Food, weightGrams float64) models.Nutrients {
	ratio := weightGrams / food.PortionG
	return models.Nutrients{
		Kcal:     round2(food.EnergyKcal * ratio),
		ProteinG: round2(food.ProteinG * ratio),
		CarbG:    round2(food.CarbG * ratio),
		FatG:     round2(food.FatG * ratio),
	}
}

// Aggregate sums item nutrients into totals. An empty list is a contract
// violation: a meal always has at least one item.
func (s *CalculatorService) Aggregate(items []models.NutritionItem) (models.Nutrients, error) {
	if len(items) == 0 {
		return models.Nutrients{}, fmt.Errorf("aggregate: %w", models.ErrEmptyMeal)
	}
	var totals models.Nutrients
	for _, item := range items {
		totals.Kcal += item.Nutrients.Kcal
		totals.ProteinG += item.Nutrients.ProteinG
		totals.CarbG += item.Nutrients.CarbG
		totals.FatG += item.Nutrients.FatG
	}
	totals.Kcal = round2(totals.Kcal)
	totals.ProteinG = round2(totals.ProteinG)
	totals.CarbG = round2(totals.CarbG)
	totals.FatG = round2(totals.FatG)
	return totals, nil
}
