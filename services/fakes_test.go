package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gustta03/meals-api/config"
	"github.com/gustta03/meals-api/models"
)

func testSettings() config.Settings {
	return config.Settings{
		MinDailyCalorieGoal:    800,
		MaxDailyCalorieGoal:    10000,
		MaxFoodWeightGrams:     1000,
		MaxCalories:            5000,
		MaxMacroGrams:          1000,
		CalorieDivergencePct:   10,
		MacroCoverageMin:       0.85,
		MacroCoverageMax:       1.10,
		ExtractionCacheTTL:     time.Hour,
		PendingConfirmationTTL: 30 * time.Minute,
	}
}

type fakeCatalog struct {
	foods []models.Food
}

func (f *fakeCatalog) FindByName(_ context.Context, name string) (*models.Food, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i := range f.foods {
		if strings.ToLower(f.foods[i].Name) == name {
			return &f.foods[i], nil
		}
		for _, alt := range strings.Split(f.foods[i].AltNames, ",") {
			alt = strings.ToLower(strings.TrimSpace(alt))
			if alt != "" && alt == name {
				return &f.foods[i], nil
			}
		}
	}
	return nil, nil
}

func (f *fakeCatalog) Search(_ context.Context, query string, limit int) ([]models.Food, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	var out []models.Food
	for _, food := range f.foods {
		name := strings.ToLower(food.Name)
		if strings.Contains(name, query) || strings.Contains(query, name) {
			out = append(out, food)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

type fakeAI struct {
	identifications []models.FoodIdentification
	identifyErr     error
	identifyCalls   int

	extraction   models.ExtractedNutrition
	extractErr   error
	extractCalls int

	imageItems []models.ImageFoodItem
	imageErr   error
}

func (f *fakeAI) IdentifyFoods(_ context.Context, _ string) ([]models.FoodIdentification, error) {
	f.identifyCalls++
	return f.identifications, f.identifyErr
}

func (f *fakeAI) ExtractNutrition(_ context.Context, _ string, _ float64) (models.ExtractedNutrition, error) {
	f.extractCalls++
	return f.extraction, f.extractErr
}

func (f *fakeAI) IdentifyFoodsFromImage(_ context.Context, _ []byte, _ string) ([]models.ImageFoodItem, error) {
	return f.imageItems, f.imageErr
}

type fakeSessionStore struct {
	sessions map[string]*models.UserSession
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]*models.UserSession)}
}

func (f *fakeSessionStore) Get(_ context.Context, phone string) (*models.UserSession, error) {
	return f.sessions[phone], nil
}

func (f *fakeSessionStore) Upsert(_ context.Context, session *models.UserSession) error {
	f.sessions[session.UserPhone] = session
	return nil
}

type fakeMealStore struct {
	meals    []models.Meal
	failSave bool
}

func (f *fakeMealStore) Save(_ context.Context, meal *models.Meal) error {
	if f.failSave {
		return externalErr("meal save", errors.New("connection refused"))
	}
	f.meals = append(f.meals, *meal)
	return nil
}

func (f *fakeMealStore) FindByUserAndDate(_ context.Context, phone string, date time.Time) ([]models.Meal, error) {
	var out []models.Meal
	for _, m := range f.meals {
		if m.UserPhone == phone && dateKey(m.Date) == dateKey(date) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMealStore) FindByUserAndRange(_ context.Context, phone string, start, end time.Time) ([]models.Meal, error) {
	from, to := dayStart(start), dayEnd(end)
	var out []models.Meal
	for _, m := range f.meals {
		if m.UserPhone == phone && !m.Date.Before(from) && !m.Date.After(to) {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeScreener struct {
	food   bool
	labels []string
	err    error
}

func (f *fakeScreener) LooksLikeFood(_ context.Context, _ []byte) (bool, []string, error) {
	return f.food, f.labels, f.err
}
