package services

import (
	"errors"
	"testing"
	"time"

	"github.com/gustta03/meals-api/models"
)

func TestInferMealType(t *testing.T) {
	tests := []struct {
		text string
		want models.MealType
	}{
		{"no almoço comi arroz e feijão", models.MealLunch},
		{"café da manhã: pão com ovo", models.MealBreakfast},
		{"um café com leite", models.MealBreakfast},
		{"jantar leve hoje", models.MealDinner},
		{"lanche da tarde", models.MealSnack},
		{"200g de arroz", models.MealOther},
	}
	for _, tt := range tests {
		if got := InferMealType(tt.text); got != tt.want {
			t.Errorf("InferMealType(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestBuildMeal(t *testing.T) {
	now := time.Date(2025, time.March, 12, 13, 30, 0, 0, botLocation)
	analysis := &models.NutritionAnalysis{
		Items: []models.NutritionItem{
			{Name: "arroz", Quantity: "200g", WeightGrams: 200, FoodRef: "taco_C0101",
				Nutrients: models.Nutrients{Kcal: 260, ProteinG: 5, CarbG: 56, FatG: 0.4}},
		},
		Totals: models.Nutrients{Kcal: 260, ProteinG: 5, CarbG: 56, FatG: 0.4},
	}

	meal, err := BuildMeal("5511799998888", analysis, models.MealLunch, now)
	if err != nil {
		t.Fatal(err)
	}
	if meal.UUID == "" {
		t.Error("meal has no uuid")
	}
	if !meal.Date.Equal(dayStart(now)) {
		t.Errorf("date = %v, want start of day", meal.Date)
	}
	if !meal.AteAt.Equal(now) {
		t.Errorf("ateAt = %v, want %v", meal.AteAt, now)
	}
	if meal.KcalTotal != 260 {
		t.Errorf("kcal = %v, want 260", meal.KcalTotal)
	}
	if len(meal.Items) != 1 || meal.Items[0].FoodRef != "taco_C0101" {
		t.Errorf("items = %+v, want the analysis item snapshot", meal.Items)
	}
}

func TestBuildMealRejectsEmptyAnalysis(t *testing.T) {
	_, err := BuildMeal("5511799998888", &models.NutritionAnalysis{}, models.MealOther, time.Now())
	if !errors.Is(err, models.ErrEmptyMeal) {
		t.Errorf("err = %v, want ErrEmptyMeal", err)
	}
}
