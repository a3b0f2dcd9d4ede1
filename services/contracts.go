package services

import (
	"context"
	"time"

	"github.com/gustta03/meals-api/models"
)

// LanguageUnderstanding is the generative-model capability the pipeline leans
// on. Implementations must return an error on failure, never partial success.
type LanguageUnderstanding interface {
	IdentifyFoods(ctx context.Context, text string) ([]models.FoodIdentification, error)
	ExtractNutrition(ctx context.Context, description string, weightGrams float64) (models.ExtractedNutrition, error)
	IdentifyFoodsFromImage(ctx context.Context, image []byte, mimeType string) ([]models.ImageFoodItem, error)
}

// FoodCatalog is read-only lookup over the nutrition reference table.
type FoodCatalog interface {
	FindByName(ctx context.Context, name string) (*models.Food, error)
	Search(ctx context.Context, query string, limit int) ([]models.Food, error)
}

type MealStore interface {
	Save(ctx context.Context, meal *models.Meal) error
	FindByUserAndDate(ctx context.Context, phone string, date time.Time) ([]models.Meal, error)
	FindByUserAndRange(ctx context.Context, phone string, start, end time.Time) ([]models.Meal, error)
}

type SessionStore interface {
	Get(ctx context.Context, phone string) (*models.UserSession, error)
	Upsert(ctx context.Context, session *models.UserSession) error
}

// Messenger delivers replies. The core only builds the payload.
type Messenger interface {
	SendText(ctx context.Context, to, body string) error
	SendImage(ctx context.Context, to string, image []byte, caption, mimeType string) error
}

// ImageScreener answers whether a photo plausibly shows food, before any
// expensive identification runs.
type ImageScreener interface {
	LooksLikeFood(ctx context.Context, image []byte) (bool, []string, error)
}

// ChartRenderer turns report data into PNG bytes. Failures degrade the reply
// to text only.
type ChartRenderer interface {
	CalorieProgressBar(current, goal float64) ([]byte, error)
	WeeklyNutritionChart(report *WeeklyReport) ([]byte, error)
}
