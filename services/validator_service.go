package services

import (
	"fmt"
	"log"
	"math"

	"github.com/gustta03/meals-api/config"
	"github.com/gustta03/meals-api/models"
)

// ValidatorService checks AI-returned nutrition before it is trusted. Bound
// violations reject the record outright; mathematical consistency issues only
// attach warnings. Slightly-off model output is still useful, wildly
// out-of-range output is not.
type ValidatorService struct {
	cfg config.Settings
}

func NewValidatorService(cfg config.Settings) *ValidatorService {
	return &ValidatorService{cfg: cfg}
}

func (v *ValidatorService) Validate(n models.ExtractedNutrition) (models.ValidatedNutrition, error) {
	if reason := v.boundViolation(n); reason != "" {
		log.Printf("nutrition rejected (%s): %+v", reason, n)
		return models.ValidatedNutrition{}, &ValidationError{Reason: reason, Attempted: n}
	}

	warnings := v.consistencyWarnings(n)
	if len(warnings) > 0 {
		log.Printf("nutrition accepted with warnings %v: %+v", warnings, n)
	}
	return models.ValidatedNutrition{ExtractedNutrition: n, Warnings: warnings}, nil
}

func (v *ValidatorService) boundViolation(n models.ExtractedNutrition) string {
	switch {
	case n.WeightGrams <= 0:
		return "peso deve ser maior que zero"
	case n.WeightGrams > v.cfg.MaxFoodWeightGrams:
		return fmt.Sprintf("peso acima do limite de %.0fg", v.cfg.MaxFoodWeightGrams)
	case n.Calories < 0:
		return "calorias negativas"
	case n.Calories > v.cfg.MaxCalories:
		return fmt.Sprintf("calorias acima do limite de %.0f kcal", v.cfg.MaxCalories)
	case n.ProteinG < 0 || n.CarbsG < 0 || n.FatG < 0:
		return "macronutriente negativo"
	case n.ProteinG > v.cfg.MaxMacroGrams || n.CarbsG > v.cfg.MaxMacroGrams || n.FatG > v.cfg.MaxMacroGrams:
		return fmt.Sprintf("macronutriente acima do limite de %.0fg", v.cfg.MaxMacroGrams)
	}
	return ""
}

func (v *ValidatorService) consistencyWarnings(n models.ExtractedNutrition) []string {
	var warnings []string

	// 1g carb = 4 kcal, 1g protein = 4 kcal, 1g fat = 9 kcal.
	calculated := n.CarbsG*4 + n.ProteinG*4 + n.FatG*9

	divergence := 100.0
	if calculated > 0 {
		divergence = math.Abs(n.Calories-calculated) / calculated * 100
	}
	if divergence > v.cfg.CalorieDivergencePct {
		warnings = append(warnings, fmt.Sprintf(
			"calorias reportadas (%.0f) divergem das calculadas (%.0f) em %.0f%%",
			n.Calories, calculated, divergence))
	}

	if n.Calories > 0 {
		coverage := calculated / n.Calories
		if coverage < v.cfg.MacroCoverageMin && n.Calories > 50 {
			warnings = append(warnings, "macros não explicam as calorias totais")
		}
		if coverage > v.cfg.MacroCoverageMax {
			warnings = append(warnings, "macros excedem as calorias totais")
		}
	}

	return warnings
}
