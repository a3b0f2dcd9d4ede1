package services

import (
	"bytes"
	"fmt"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ChartService renders the report images the bot attaches to replies.
type ChartService struct{}

func NewChartService() *ChartService { return &ChartService{} }

// CalorieProgressBar draws consumed vs. remaining calories for the day.
func (s *ChartService) CalorieProgressBar(current, goal float64) ([]byte, error) {
	if goal <= 0 {
		goal = 1
	}
	remaining := math.Max(goal-current, 0)
	pct := math.Min(current/goal*100, 100)

	graph := chart.BarChart{
		Title:    fmt.Sprintf("Meta Diária de Calorias — %.0f%%", pct),
		Width:    512,
		Height:   360,
		BarWidth: 120,
		Bars: []chart.Value{
			{Value: current, Label: fmt.Sprintf("Consumido (%.0f)", current),
				Style: chart.Style{FillColor: drawing.ColorFromHex("22c55e"), StrokeColor: drawing.ColorFromHex("22c55e")}},
			{Value: remaining, Label: fmt.Sprintf("Restante (%.0f)", remaining),
				Style: chart.Style{FillColor: drawing.ColorFromHex("e5e7eb"), StrokeColor: drawing.ColorFromHex("e5e7eb")}},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render progress bar: %w", err)
	}
	return buf.Bytes(), nil
}

// WeeklyNutritionChart draws the calorie line over the 7 report days.
func (s *ChartService) WeeklyNutritionChart(report *WeeklyReport) ([]byte, error) {
	xs := make([]float64, 0, len(report.Days))
	kcal := make([]float64, 0, len(report.Days))
	protein := make([]float64, 0, len(report.Days))
	carb := make([]float64, 0, len(report.Days))
	fat := make([]float64, 0, len(report.Days))
	ticks := make([]chart.Tick, 0, len(report.Days))

	for i, day := range report.Days {
		x := float64(i)
		xs = append(xs, x)
		kcal = append(kcal, day.Totals.Kcal)
		protein = append(protein, day.Totals.ProteinG)
		carb = append(carb, day.Totals.CarbG)
		fat = append(fat, day.Totals.FatG)
		ticks = append(ticks, chart.Tick{Value: x, Label: day.Date[5:]})
	}

	graph := chart.Chart{
		Title:          "Relatório Semanal de Nutrição",
		Width:          900,
		Height:         480,
		XAxis:          chart.XAxis{Ticks: ticks},
		YAxis:          chart.YAxis{Name: "kcal"},
		YAxisSecondary: chart.YAxis{Name: "gramas"},
		Series: []chart.Series{
			chart.ContinuousSeries{Name: "Calorias", XValues: xs, YValues: kcal,
				Style: chart.Style{StrokeColor: drawing.ColorFromHex("ef4444"), StrokeWidth: 2.5}},
			chart.ContinuousSeries{Name: "Proteína (g)", XValues: xs, YValues: protein, YAxis: chart.YAxisSecondary,
				Style: chart.Style{StrokeColor: drawing.ColorFromHex("3b82f6"), StrokeWidth: 2}},
			chart.ContinuousSeries{Name: "Carboidrato (g)", XValues: xs, YValues: carb, YAxis: chart.YAxisSecondary,
				Style: chart.Style{StrokeColor: drawing.ColorFromHex("f59e0b"), StrokeWidth: 2}},
			chart.ContinuousSeries{Name: "Lipídio (g)", XValues: xs, YValues: fat, YAxis: chart.YAxisSecondary,
				Style: chart.Style{StrokeColor: drawing.ColorFromHex("8b5cf6"), StrokeWidth: 2}},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render weekly chart: %w", err)
	}
	return buf.Bytes(), nil
}
