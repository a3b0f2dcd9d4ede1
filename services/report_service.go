package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gustta03/meals-api/models"
)

type MealSummary struct {
	UUID     string                 `json:"uuid"`
	MealType models.MealType        `json:"meal_type"`
	Items    []models.NutritionItem `json:"items"`
	Totals   models.Nutrients       `json:"totals"`
}

type DailySummary struct {
	Date        string           `json:"date"`
	Meals       []MealSummary    `json:"meals"`
	DailyTotals models.Nutrients `json:"daily_totals"`
}

type DayRow struct {
	Date      string           `json:"date"`
	Totals    models.Nutrients `json:"totals"`
	MealCount int              `json:"meal_count"`
}

type WeeklyTotals struct {
	models.Nutrients
	AvgKcal     float64 `json:"avg_kcal"`
	AvgProteinG float64 `json:"avg_protein_g"`
	AvgCarbG    float64 `json:"avg_carb_g"`
	AvgFatG     float64 `json:"avg_fat_g"`
}

type WeeklyReport struct {
	StartDate string       `json:"start_date"`
	EndDate   string       `json:"end_date"`
	Days      []DayRow     `json:"days"`
	Totals    WeeklyTotals `json:"totals"`
}

// ReportService builds the daily and weekly views out of stored meals.
type ReportService struct {
	meals MealStore
}

func NewReportService(meals MealStore) *ReportService { return &ReportService{meals: meals} }

func (s *ReportService) DailySummary(ctx context.Context, phone string, date time.Time) (*DailySummary, error) {
	meals, err := s.meals.FindByUserAndDate(ctx, phone, date)
	if err != nil {
		return nil, err
	}

	summary := &DailySummary{Date: dateKey(date), Meals: make([]MealSummary, 0, len(meals))}
	for _, meal := range meals {
		items := make([]models.NutritionItem, 0, len(meal.Items))
		for _, it := range meal.Items {
			items = append(items, models.NutritionItem{
				Name:        it.Name,
				Quantity:    it.Quantity,
				WeightGrams: it.WeightGrams,
				FoodRef:     it.FoodRef,
				Nutrients:   models.Nutrients{Kcal: it.Kcal, ProteinG: it.ProteinG, CarbG: it.CarbG, FatG: it.FatG},
			})
		}
		summary.Meals = append(summary.Meals, MealSummary{
			UUID:     meal.UUID,
			MealType: meal.Type,
			Items:    items,
			Totals:   models.Nutrients{Kcal: meal.KcalTotal, ProteinG: meal.ProteinTotal, CarbG: meal.CarbTotal, FatG: meal.FatTotal},
		})

		summary.DailyTotals.Kcal += meal.KcalTotal
		summary.DailyTotals.ProteinG += meal.ProteinTotal
		summary.DailyTotals.CarbG += meal.CarbTotal
		summary.DailyTotals.FatG += meal.FatTotal
	}

	summary.DailyTotals.Kcal = round2(summary.DailyTotals.Kcal)
	summary.DailyTotals.ProteinG = round2(summary.DailyTotals.ProteinG)
	summary.DailyTotals.CarbG = round2(summary.DailyTotals.CarbG)
	summary.DailyTotals.FatG = round2(summary.DailyTotals.FatG)
	return summary, nil
}

// WeeklyReport covers the 7-day window starting at start (Monday of the
// current week when zero). Every day gets a row, zeroed when no meals were
// logged, and averages always divide by 7.
func (s *ReportService) WeeklyReport(ctx context.Context, phone string, start time.Time) (*WeeklyReport, error) {
	if start.IsZero() {
		start = weekStart(time.Now())
	}
	from := dayStart(start)
	to := from.AddDate(0, 0, 6)

	meals, err := s.meals.FindByUserAndRange(ctx, phone, from, to)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string][]models.Meal)
	for _, m := range meals {
		key := dateKey(m.Date)
		byDay[key] = append(byDay[key], m)
	}

	report := &WeeklyReport{StartDate: dateKey(from), EndDate: dateKey(to)}
	for i := 0; i < 7; i++ {
		day := from.AddDate(0, 0, i)
		key := dateKey(day)
		row := DayRow{Date: key}
		for _, m := range byDay[key] {
			row.Totals.Kcal += m.KcalTotal
			row.Totals.ProteinG += m.ProteinTotal
			row.Totals.CarbG += m.CarbTotal
			row.Totals.FatG += m.FatTotal
			row.MealCount++
		}
		row.Totals.Kcal = round2(row.Totals.Kcal)
		row.Totals.ProteinG = round2(row.Totals.ProteinG)
		row.Totals.CarbG = round2(row.Totals.CarbG)
		row.Totals.FatG = round2(row.Totals.FatG)
		report.Days = append(report.Days, row)

		report.Totals.Kcal += row.Totals.Kcal
		report.Totals.ProteinG += row.Totals.ProteinG
		report.Totals.CarbG += row.Totals.CarbG
		report.Totals.FatG += row.Totals.FatG
	}

	report.Totals.Kcal = round2(report.Totals.Kcal)
	report.Totals.ProteinG = round2(report.Totals.ProteinG)
	report.Totals.CarbG = round2(report.Totals.CarbG)
	report.Totals.FatG = round2(report.Totals.FatG)

	report.Totals.AvgKcal = round2(report.Totals.Kcal / 7)
	report.Totals.AvgProteinG = round2(report.Totals.ProteinG / 7)
	report.Totals.AvgCarbG = round2(report.Totals.CarbG / 7)
	report.Totals.AvgFatG = round2(report.Totals.FatG / 7)
	return report, nil
}

var weekdayNames = map[time.Weekday]string{
	time.Sunday: "domingo", time.Monday: "segunda-feira", time.Tuesday: "terça-feira",
	time.Wednesday: "quarta-feira", time.Thursday: "quinta-feira",
	time.Friday: "sexta-feira", time.Saturday: "sábado",
}

// FormatWeeklyText renders the weekly report the way the bot speaks.
func FormatWeeklyText(report *WeeklyReport) string {
	var b strings.Builder
	b.WriteString("Olá! Aqui está seu relatório semanal completo! 😊\n\n")
	b.WriteString("📊 RELATÓRIO SEMANAL DE NUTRIÇÃO\n")
	fmt.Fprintf(&b, "📅 Período: %s a %s\n\n", report.StartDate, report.EndDate)

	b.WriteString("📈 RESUMO POR DIA:\n\n")
	for _, day := range report.Days {
		d, _ := time.ParseInLocation("2006-01-02", day.Date, botLocation)
		fmt.Fprintf(&b, "📅 %s, %02d/%02d:\n", weekdayNames[d.Weekday()], d.Day(), int(d.Month()))
		fmt.Fprintf(&b, "   • Calorias: %.2f kcal\n", day.Totals.Kcal)
		fmt.Fprintf(&b, "   • Proteína: %.2f g\n", day.Totals.ProteinG)
		fmt.Fprintf(&b, "   • Carboidrato: %.2f g\n", day.Totals.CarbG)
		fmt.Fprintf(&b, "   • Lipídio: %.2f g\n", day.Totals.FatG)
		fmt.Fprintf(&b, "   • Refeições: %d\n\n", day.MealCount)
	}

	b.WriteString("📊 TOTAIS DA SEMANA:\n")
	fmt.Fprintf(&b, "   • Total de Calorias: %.2f kcal\n", report.Totals.Kcal)
	fmt.Fprintf(&b, "   • Total de Proteína: %.2f g\n", report.Totals.ProteinG)
	fmt.Fprintf(&b, "   • Total de Carboidrato: %.2f g\n", report.Totals.CarbG)
	fmt.Fprintf(&b, "   • Total de Lipídio: %.2f g\n\n", report.Totals.FatG)

	b.WriteString("📈 MÉDIAS DIÁRIAS:\n")
	fmt.Fprintf(&b, "   • Média de Calorias: %.2f kcal/dia\n", report.Totals.AvgKcal)
	fmt.Fprintf(&b, "   • Média de Proteína: %.2f g/dia\n", report.Totals.AvgProteinG)
	fmt.Fprintf(&b, "   • Média de Carboidrato: %.2f g/dia\n", report.Totals.AvgCarbG)
	fmt.Fprintf(&b, "   • Média de Lipídio: %.2f g/dia\n\n", report.Totals.AvgFatG)

	b.WriteString("Parabéns por acompanhar sua alimentação durante toda a semana! 🌟💪")
	return b.String()
}
