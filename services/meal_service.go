package services

import (
	"context"
	"strings"
	"time"

	"github.com/gustta03/meals-api/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MealService persists analyzed meals and reads them back for reporting.
type MealService struct {
	db *gorm.DB
}

func NewMealService(db *gorm.DB) *MealService { return &MealService{db: db} }

// BuildMeal assembles an immutable Meal from an analysis. The meal date is
// the start of today in the bot timezone.
func BuildMeal(phone string, analysis *models.NutritionAnalysis, mealType models.MealType, now time.Time) (*models.Meal, error) {
	items := make([]models.MealItem, 0, len(analysis.Items))
	for _, it := range analysis.Items {
		items = append(items, models.MealItem{
			FoodRef:     it.FoodRef,
			Name:        it.Name,
			Quantity:    it.Quantity,
			WeightGrams: it.WeightGrams,
			Kcal:        it.Nutrients.Kcal,
			ProteinG:    it.Nutrients.ProteinG,
			CarbG:       it.Nutrients.CarbG,
			FatG:        it.Nutrients.FatG,
		})
	}

	meal := &models.Meal{
		UUID:         uuid.NewString(),
		UserPhone:    phone,
		Type:         mealType,
		Date:         dayStart(now),
		AteAt:        now,
		Items:        items,
		KcalTotal:    analysis.Totals.Kcal,
		ProteinTotal: analysis.Totals.ProteinG,
		CarbTotal:    analysis.Totals.CarbG,
		FatTotal:     analysis.Totals.FatG,
	}
	if err := meal.Validate(); err != nil {
		return nil, err
	}
	return meal, nil
}

func (s *MealService) Save(ctx context.Context, meal *models.Meal) error {
	if err := meal.Validate(); err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Create(meal).Error; err != nil {
		return externalErr("meal save", err)
	}
	return nil
}

func (s *MealService) FindByUserAndDate(ctx context.Context, phone string, date time.Time) ([]models.Meal, error) {
	return s.findInRange(ctx, phone, dayStart(date), dayEnd(date))
}

func (s *MealService) FindByUserAndRange(ctx context.Context, phone string, start, end time.Time) ([]models.Meal, error) {
	return s.findInRange(ctx, phone, dayStart(start), dayEnd(end))
}

func (s *MealService) findInRange(ctx context.Context, phone string, from, to time.Time) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.WithContext(ctx).
		Preload("Items").
		Where("user_phone = ? AND date BETWEEN ? AND ?", phone, from, to).
		Order("ate_at ASC").
		Find(&meals).Error
	if err != nil {
		return nil, externalErr("meal query", err)
	}
	return meals, nil
}

var mealTypeKeywords = []struct {
	keyword  string
	mealType models.MealType
}{
	{"café da manhã", models.MealBreakfast},
	{"cafe da manha", models.MealBreakfast},
	{"café", models.MealBreakfast},
	{"breakfast", models.MealBreakfast},
	{"almoço", models.MealLunch},
	{"almoco", models.MealLunch},
	{"lunch", models.MealLunch},
	{"jantar", models.MealDinner},
	{"janta", models.MealDinner},
	{"dinner", models.MealDinner},
	{"lanche", models.MealSnack},
	{"snack", models.MealSnack},
}

// InferMealType guesses the meal slot from message keywords; "other" when
// nothing matches.
func InferMealType(text string) models.MealType {
	lower := strings.ToLower(text)
	for _, k := range mealTypeKeywords {
		if strings.Contains(lower, k.keyword) {
			return k.mealType
		}
	}
	return models.MealOther
}
