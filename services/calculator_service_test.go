package services

import (
	"errors"
	"testing"

	"github.com/gustta03/meals-api/models"
)

func TestScale(t *testing.T) {
	calc := NewCalculatorService()
	rice := &models.Food{Name: "arroz", EnergyKcal: 130, ProteinG: 2.5, CarbG: 28, FatG: 0.2, PortionG: 100}

	t.Run("standard portion is identity", func(t *testing.T) {
		got := calc.Scale(rice, 100)
		want := models.Nutrients{Kcal: 130, ProteinG: 2.5, CarbG: 28, FatG: 0.2}
		if got != want {
			t.Errorf("Scale(rice, 100) = %+v, want %+v", got, want)
		}
	})

	t.Run("double weight doubles values", func(t *testing.T) {
		got := calc.Scale(rice, 200)
		want := models.Nutrients{Kcal: 260, ProteinG: 5, CarbG: 56, FatG: 0.4}
		if got != want {
			t.Errorf("Scale(rice, 200) = %+v, want %+v", got, want)
		}
	})

	t.Run("values round to two decimals", func(t *testing.T) {
		got := calc.Scale(rice, 33)
		if got.Kcal != 42.9 {
			t.Errorf("kcal = %v, want 42.9", got.Kcal)
		}
		if got.ProteinG != 0.83 {
			t.Errorf("protein = %v, want 0.83", got.ProteinG)
		}
		if got.FatG != 0.07 {
			t.Errorf("fat = %v, want 0.07", got.FatG)
		}
	})
}

func TestAggregate(t *testing.T) {
	calc := NewCalculatorService()

	t.Run("empty list is disallowed", func(t *testing.T) {
		_, err := calc.Aggregate(nil)
		if !errors.Is(err, models.ErrEmptyMeal) {
			t.Errorf("err = %v, want ErrEmptyMeal", err)
		}
	})

	t.Run("sums rounded item values", func(t *testing.T) {
		items := []models.NutritionItem{
			{Nutrients: models.Nutrients{Kcal: 260, ProteinG: 5, CarbG: 56, FatG: 0.4}},
			{Nutrients: models.Nutrients{Kcal: 159, ProteinG: 32, CarbG: 0, FatG: 2.5}},
		}
		got, err := calc.Aggregate(items)
		if err != nil {
			t.Fatal(err)
		}
		want := models.Nutrients{Kcal: 419, ProteinG: 37, CarbG: 56, FatG: 2.9}
		if got != want {
			t.Errorf("Aggregate = %+v, want %+v", got, want)
		}
	})

	// Scale rounds before Aggregate sums, so tiny per-item values can vanish
	// from the total.
	t.Run("per-item rounding happens before the sum", func(t *testing.T) {
		tiny := &models.Food{Name: "tempero", EnergyKcal: 1, PortionG: 100}
		items := []models.NutritionItem{
			{Nutrients: calc.Scale(tiny, 0.4)},
			{Nutrients: calc.Scale(tiny, 0.4)},
			{Nutrients: calc.Scale(tiny, 0.4)},
		}
		got, err := calc.Aggregate(items)
		if err != nil {
			t.Fatal(err)
		}
		if got.Kcal != 0 {
			t.Errorf("kcal = %v, want 0 (each 0.004 rounds away before summing)", got.Kcal)
		}
	})
}
