package services

import (
	"errors"
	"testing"

	"github.com/gustta03/meals-api/models"
)

func extraction(weight, calories, protein, carbs, fat float64) models.ExtractedNutrition {
	return models.ExtractedNutrition{
		FoodName:    "teste",
		WeightGrams: weight,
		Calories:    calories,
		ProteinG:    protein,
		CarbsG:      carbs,
		FatG:        fat,
	}
}

func TestValidateConsistency(t *testing.T) {
	v := NewValidatorService(testSettings())

	// carbs 50g + protein 20g + fat 10g = 50*4 + 20*4 + 10*9 = 370 kcal.
	t.Run("small divergence passes clean", func(t *testing.T) {
		got, err := v.Validate(extraction(300, 400, 20, 50, 10))
		if err != nil {
			t.Fatal(err)
		}
		// |400-370|/370 = 8.1%, under the 10% threshold.
		if len(got.Warnings) != 0 {
			t.Errorf("warnings = %v, want none", got.Warnings)
		}
	})

	t.Run("large divergence warns but accepts", func(t *testing.T) {
		got, err := v.Validate(extraction(300, 600, 20, 50, 10))
		if err != nil {
			t.Fatalf("record rejected, want accepted with warnings: %v", err)
		}
		// |600-370|/370 = 62%.
		if len(got.Warnings) == 0 {
			t.Error("want at least one consistency warning")
		}
	})

	t.Run("zero macros with real calories warns", func(t *testing.T) {
		got, err := v.Validate(extraction(200, 300, 0, 0, 0))
		if err != nil {
			t.Fatal(err)
		}
		if len(got.Warnings) == 0 {
			t.Error("want a warning when macros explain none of the calories")
		}
	})
}

func TestValidateBounds(t *testing.T) {
	v := NewValidatorService(testSettings())

	tests := []struct {
		name string
		in   models.ExtractedNutrition
	}{
		{"zero weight", extraction(0, 100, 5, 10, 2)},
		{"weight over limit", extraction(1500, 100, 5, 10, 2)},
		{"negative calories", extraction(100, -10, 5, 10, 2)},
		{"calories over limit", extraction(100, 6000, 5, 10, 2)},
		{"negative macro", extraction(100, 100, -1, 10, 2)},
		{"macro over limit", extraction(100, 100, 1200, 10, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.Validate(tt.in)
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("err = %v, want a ValidationError", err)
			}
		})
	}
}
