package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gustta03/meals-api/models"
)

func storedMeal(phone string, date time.Time, mealType models.MealType, kcal, protein, carb, fat float64) models.Meal {
	return models.Meal{
		UUID:      "m-" + dateKey(date),
		UserPhone: phone,
		Type:      mealType,
		Date:      dayStart(date),
		AteAt:     date,
		Items: []models.MealItem{
			{Name: "item", Kcal: kcal, ProteinG: protein, CarbG: carb, FatG: fat},
		},
		KcalTotal:    kcal,
		ProteinTotal: protein,
		CarbTotal:    carb,
		FatTotal:     fat,
	}
}

func TestDailySummary(t *testing.T) {
	phone := "5511833332222"
	day := time.Date(2025, time.March, 10, 12, 0, 0, 0, botLocation)

	meals := &fakeMealStore{meals: []models.Meal{
		storedMeal(phone, day, models.MealLunch, 419, 37, 56, 2.9),
		storedMeal(phone, day.Add(7*time.Hour), models.MealDinner, 300.5, 20.25, 30, 10),
		storedMeal(phone, day.AddDate(0, 0, 1), models.MealLunch, 999, 1, 1, 1),
	}}
	s := NewReportService(meals)

	summary, err := s.DailySummary(context.Background(), phone, day)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Date != "2025-03-10" {
		t.Errorf("date = %q, want 2025-03-10", summary.Date)
	}
	if len(summary.Meals) != 2 {
		t.Fatalf("meals = %d, want 2 (the next day's meal excluded)", len(summary.Meals))
	}
	if summary.DailyTotals.Kcal != 719.5 {
		t.Errorf("daily kcal = %v, want 719.5", summary.DailyTotals.Kcal)
	}
	if summary.DailyTotals.ProteinG != 57.25 {
		t.Errorf("daily protein = %v, want 57.25", summary.DailyTotals.ProteinG)
	}
}

func TestWeeklyReportZeroFillAndAverages(t *testing.T) {
	phone := "5511822221111"
	monday := time.Date(2025, time.March, 10, 0, 0, 0, 0, botLocation)

	meals := &fakeMealStore{meals: []models.Meal{
		storedMeal(phone, monday.Add(12*time.Hour), models.MealLunch, 2000, 100, 200, 80),
	}}
	s := NewReportService(meals)

	report, err := s.WeeklyReport(context.Background(), phone, monday)
	if err != nil {
		t.Fatal(err)
	}
	if report.StartDate != "2025-03-10" || report.EndDate != "2025-03-16" {
		t.Errorf("window = %s..%s, want 2025-03-10..2025-03-16", report.StartDate, report.EndDate)
	}
	if len(report.Days) != 7 {
		t.Fatalf("days = %d, want 7", len(report.Days))
	}
	for i, day := range report.Days[1:] {
		if day.Totals.Kcal != 0 || day.MealCount != 0 {
			t.Errorf("day %d = %+v, want zeroed", i+1, day)
		}
	}
	if report.Days[0].Totals.Kcal != 2000 || report.Days[0].MealCount != 1 {
		t.Errorf("monday = %+v, want the logged meal", report.Days[0])
	}
	if report.Totals.Kcal != 2000 {
		t.Errorf("weekly kcal = %v, want 2000", report.Totals.Kcal)
	}

	// Averages always divide by 7, not by days with data.
	if report.Totals.AvgKcal != 285.71 {
		t.Errorf("avg kcal = %v, want 285.71", report.Totals.AvgKcal)
	}
	if report.Totals.AvgProteinG != 14.29 {
		t.Errorf("avg protein = %v, want 14.29", report.Totals.AvgProteinG)
	}
}

func TestFormatWeeklyText(t *testing.T) {
	phone := "5511811110000"
	monday := time.Date(2025, time.March, 10, 0, 0, 0, 0, botLocation)

	meals := &fakeMealStore{meals: []models.Meal{
		storedMeal(phone, monday.Add(12*time.Hour), models.MealLunch, 2000, 100, 200, 80),
	}}
	report, err := NewReportService(meals).WeeklyReport(context.Background(), phone, monday)
	if err != nil {
		t.Fatal(err)
	}

	text := FormatWeeklyText(report)
	for _, want := range []string{
		"RELATÓRIO SEMANAL",
		"segunda-feira, 10/03",
		"domingo, 16/03",
		"Total de Calorias: 2000.00 kcal",
		"Média de Calorias: 285.71 kcal/dia",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("report text missing %q", want)
		}
	}
}
